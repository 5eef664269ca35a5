package sequence

import (
	"context"
	"fmt"
	"todonotes/infras/otel"
	"todonotes/internal/domains/note/repository"
	"todonotes/shared/constant"
)

type counterSequence struct {
	repo repository.Note
	name string
	otel otel.Otel
}

// NewCounter allocates from a counter record kept in the note store.
func NewCounter(repo repository.Note, name string, otel otel.Otel) Sequence {
	return &counterSequence{
		repo: repo,
		name: name,
		otel: otel,
	}
}

func (s *counterSequence) Next(ctx context.Context) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSequenceScopeName, constant.OtelSequenceScopeName+".counter.Next")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	floor, err := s.repo.MaxID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read highest note id: %w", err)
	}

	id, err = s.repo.NextID(ctx, s.name, floor)
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", s.name, err)
	}

	return id, nil
}
