//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks
package repository

import (
	"context"
	"fmt"
	"todonotes/config"
	"todonotes/infras/mongo"
	"todonotes/infras/otel"
	"todonotes/infras/surrealdb"
	"todonotes/internal/domains/note/model"
)

type Note interface {
	Insert(ctx context.Context, note model.Note) error
	GetAll(ctx context.Context) ([]model.Note, error)
	Count(ctx context.Context) (int64, error)
	// MaxID returns the largest stored note id, or zero for an empty store.
	MaxID(ctx context.Context) (int64, error)
	// NextID atomically increments the named counter, never returning a value
	// at or below floor.
	NextID(ctx context.Context, name string, floor int64) (int64, error)
	// MarkCompleted reports how many notes matched id.
	MarkCompleted(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// New connects to the configured store and returns its note repository. The
// cleanup releases the connection.
func New(ctx context.Context, cfg *config.Config, otel otel.Otel) (Note, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreBackendSurrealDB:
		db, cleanup, err := surrealdb.New(ctx, cfg)
		if err != nil {
			return nil, nil, err //nolint:wrapcheck
		}

		return NewSurreal(db, cfg, otel), cleanup, nil
	case config.StoreBackendMongo, "":
		conn, cleanup, err := mongo.New(ctx, cfg)
		if err != nil {
			return nil, nil, err //nolint:wrapcheck
		}

		return NewMongo(conn, cfg, otel), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}
