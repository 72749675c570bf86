package jobs

import (
	"github.com/drinkshop/backend/internal/configs"
	"github.com/drinkshop/backend/internal/repositories/sql/session"
	"github.com/drinkshop/backend/pkg/infra"
	"github.com/rs/zerolog/log"
)

// SessionPurgeJob deletes login sessions whose expiry has passed
type SessionPurgeJob struct {
	sessions session.Repository
}

func InitSessionPurgeJob(_ configs.Configs) *SessionPurgeJob {
	sessionRepo, err := session.NewRepository(infra.SQL)
	if err != nil {
		log.Error().Err(err).Msg("Error in creating session repository for purge job")
		return nil
	}
	return &SessionPurgeJob{sessions: sessionRepo}
}

func (j *SessionPurgeJob) Run() {
	if err := j.sessions.PurgeExpired(); err != nil {
		log.Error().Err(err).Msg("Session purge failed")
		return
	}
	log.Debug().Msg("Expired sessions purged")
}
