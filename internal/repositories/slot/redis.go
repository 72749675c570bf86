package slot

import (
	"context"
	"errors"

	"github.com/drinkshop/backend/pkg/infra"
	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps slots in redis so carts survive process restarts
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(connection *infra.RedisConnection) (Storage, error) {
	if connection == nil {
		return nil, errors.New("connection cannot be nil")
	}
	conn, err := connection.GetConn()
	if err != nil {
		return nil, err
	}
	return &RedisStorage{client: conn.(*redis.Client)}, nil
}

func (r *RedisStorage) Read(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *RedisStorage) Write(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
