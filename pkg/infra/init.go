package infra

import (
	"sync"

	"github.com/drinkshop/backend/internal/configs"
)

var (
	mut sync.Mutex
)

func InitDBConnectors(config configs.Configs) {
	mut.Lock()
	defer mut.Unlock()
	if SQL == nil {
		initSQLConn(config)
	}
	if Redis == nil {
		initRedisConn(config)
	}
}
