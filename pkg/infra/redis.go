package infra

import (
	"context"
	"errors"
	"time"

	"github.com/drinkshop/backend/internal/configs"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	Redis *RedisConnection
)

// RedisConnection encapsulates the redis client used for durable slots
type RedisConnection struct {
	Client *redis.Client
	Meta   map[string]interface{}
}

// GetConn returns the redis client
func (c *RedisConnection) GetConn() (interface{}, error) {
	if c.Client == nil {
		return nil, errors.New("redis client is nil")
	}
	return c.Client, nil
}

// GetMeta returns metadata about the connection
func (c *RedisConnection) GetMeta() (map[string]interface{}, error) {
	if c.Meta == nil {
		return nil, errors.New("meta is nil")
	}
	return c.Meta, nil
}

func (c *RedisConnection) IsLive() bool {
	if c.Client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return c.Client.Ping(ctx).Err() == nil
}

// initRedisConn initializes the redis connection based on app configuration
func initRedisConn(config configs.Configs) {
	if config.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR not set, redis connection not initialized")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDb,
	})

	Redis = &RedisConnection{
		Client: client,
		Meta: map[string]interface{}{
			"addr": config.RedisAddr,
			"type": DBTypeRedis,
		},
	}
	log.Info().Msgf("Connected to redis at %s", config.RedisAddr)
}
