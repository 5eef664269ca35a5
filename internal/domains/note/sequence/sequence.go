//go:generate go run go.uber.org/mock/mockgen -source=./sequence.go -destination=../mocks/sequence_mock.go -package=mocks
package sequence

import (
	"context"
	"fmt"
	"todonotes/config"
	"todonotes/infras/otel"
	"todonotes/infras/redis"
	"todonotes/internal/domains/note/repository"
)

// Sequence allocates note ids.
type Sequence interface {
	Next(ctx context.Context) (int64, error)
}

// New returns the configured allocator. Only the redis allocator holds a
// connection of its own; the others share the repository's.
func New(ctx context.Context, cfg *config.Config, repo repository.Note, otel otel.Otel) (Sequence, func(), error) {
	switch cfg.Sequence.Backend {
	case config.SequenceBackendCount:
		return NewCount(repo, otel), func() {}, nil
	case config.SequenceBackendRedis:
		client, cleanup, err := redis.New(ctx, cfg)
		if err != nil {
			return nil, nil, err //nolint:wrapcheck
		}

		return NewRedis(client, repo, cfg.Sequence.Name, otel), cleanup, nil
	case config.SequenceBackendCounter, "":
		return NewCounter(repo, cfg.Sequence.Name, otel), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported sequence backend %q", cfg.Sequence.Backend)
	}
}
