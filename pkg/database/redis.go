package database

import (
	"context"
	"fmt"
	"time"

	"treinahub_backend/internal/config"
	"treinahub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// InitRedis abre o cliente usado pelo cache de catálogo e valida a conexão
// com um ping curto antes de entregar.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	logger.Log.Info("Conexão com o Redis estabelecida", zap.String("addr", addr), zap.Int("db", cfg.DB))
	return rdb, nil
}
