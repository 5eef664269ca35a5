package mongo

import (
	"context"
	"fmt"
	"time"
	"todonotes/config"
	"todonotes/shared/failure"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// New connects to MongoDB and pings the primary before handing the
// connection out. The returned cleanup disconnects the client.
func New(ctx context.Context, config *config.Config) (*Connection, func(), error) {
	mongoConfig := config.Store.Mongo

	opts := options.Client().ApplyURI(mongoConfig.URI)
	if mongoConfig.TimeoutSeconds > 0 {
		opts.SetTimeout(time.Duration(mongoConfig.TimeoutSeconds) * time.Second)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Error().Err(err).Str("uri", mongoConfig.URI).Msg("Failed connecting to MongoDB")

		return nil, nil, failure.Unavailable(fmt.Errorf("failed to connect to mongodb: %w", err))
	}

	cleanup := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed disconnecting from MongoDB")
		}
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		cleanup()
		log.Error().Err(err).Str("uri", mongoConfig.URI).Msg("Failed pinging MongoDB")

		return nil, nil, failure.Unavailable(fmt.Errorf("failed to ping mongodb: %w", err))
	}

	log.
		Debug().
		Str("database", mongoConfig.Database).
		Str("collection", mongoConfig.Collection).
		Msg("Connected to MongoDB")

	return &Connection{
		Client:   client,
		Database: client.Database(mongoConfig.Database),
	}, cleanup, nil
}
