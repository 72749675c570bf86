package config

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	initialized = false
	once        sync.Once
)

// InitEnv binds process environment variables so the storefront config
// structs can be unmarshalled from them
func InitEnv() {
	if initialized {
		log.Debug().Msg("Environment bindings already initialized")
		return
	}
	once.Do(func() {
		viper.AutomaticEnv()
		initialized = true
		log.Info().Msg("Environment bindings initialized")
	})
}
