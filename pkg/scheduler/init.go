package scheduler

import (
	"sync"

	"github.com/drinkshop/backend/internal/configs"
	"github.com/drinkshop/backend/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

var initSchedulerOnce sync.Once

func Init(config configs.Configs) {
	initSchedulerOnce.Do(func() {
		c := cron.New(cron.WithSeconds())

		cronExpression := config.SessionPurgeCronExpression
		if cronExpression == "" {
			log.Warn().Msg("SESSION_PURGE_CRON_EXPRESSION not found in the config, skipping scheduler")
			return
		}

		job := jobs.InitSessionPurgeJob(config)
		if job == nil {
			log.Fatal().Msg("Failed to initialize session purge job")
			return
		}

		_, err := c.AddFunc(cronExpression, job.Run)
		if err != nil {
			log.Error().Err(err).Msg("Failed to schedule the session purge job")
			return
		}

		c.Start()
		log.Info().Str("cron", cronExpression).Msg("Session purge scheduler started")
	})
}
