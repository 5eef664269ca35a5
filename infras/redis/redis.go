package redis

import (
	"context"
	"fmt"
	"net"
	"todonotes/config"
	"todonotes/shared/failure"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func New(ctx context.Context, config *config.Config) (*goRedis.Client, func(), error) {
	redisConfig := config.Sequence.Redis

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(redisConfig.Host, redisConfig.Port),
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed closing Redis client")
		}
	}

	if _, err := client.Ping(ctx).Result(); err != nil {
		cleanup()
		log.Error().Err(err).Msg("Failed to connect to Redis")

		return nil, nil, failure.Unavailable(fmt.Errorf("failed to connect to redis: %w", err))
	}

	log.Debug().
		Int("db", redisConfig.DB).
		Str("host", redisConfig.Host).
		Str("port", redisConfig.Port).
		Msg("Connected to Redis")

	return client, cleanup, nil
}
