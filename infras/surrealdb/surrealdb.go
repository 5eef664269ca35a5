package surrealdb

import (
	"context"
	"fmt"
	"todonotes/config"
	"todonotes/shared/failure"

	"github.com/rs/zerolog/log"
	surrealdb "github.com/surrealdb/surrealdb.go"
)

// New opens a SurrealDB connection, signs in when credentials are configured,
// selects the namespace/database and runs a liveness query.
func New(ctx context.Context, config *config.Config) (*surrealdb.DB, func(), error) {
	surrealConfig := config.Store.SurrealDB

	db, err := surrealdb.FromEndpointURLString(ctx, surrealConfig.URL)
	if err != nil {
		log.Error().Err(err).Str("url", surrealConfig.URL).Msg("Failed connecting to SurrealDB")

		return nil, nil, failure.Unavailable(fmt.Errorf("failed to connect to surrealdb: %w", err))
	}

	cleanup := func() {
		if err := db.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed closing SurrealDB connection")
		}
	}

	if surrealConfig.Username != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{
			Username: surrealConfig.Username,
			Password: surrealConfig.Password,
		}); err != nil {
			cleanup()

			return nil, nil, failure.Unavailable(fmt.Errorf("failed to sign in to surrealdb: %w", err))
		}
	}

	if err := db.Use(ctx, surrealConfig.Namespace, surrealConfig.Database); err != nil {
		cleanup()

		return nil, nil, failure.Unavailable(fmt.Errorf("failed to select surrealdb namespace: %w", err))
	}

	if err := Ping(ctx, db); err != nil {
		cleanup()
		log.Error().Err(err).Str("url", surrealConfig.URL).Msg("Failed pinging SurrealDB")

		return nil, nil, failure.Unavailable(err)
	}

	log.
		Debug().
		Str("namespace", surrealConfig.Namespace).
		Str("database", surrealConfig.Database).
		Msg("Connected to SurrealDB")

	return db, cleanup, nil
}

func Ping(ctx context.Context, db *surrealdb.DB) error {
	res, err := surrealdb.Query[bool](ctx, db, "RETURN true", nil)
	if err != nil {
		return fmt.Errorf("failed to ping surrealdb: %w", err)
	}

	if res == nil || len(*res) == 0 || !(*res)[0].Result {
		return fmt.Errorf("failed to ping surrealdb: unexpected liveness response")
	}

	return nil
}
