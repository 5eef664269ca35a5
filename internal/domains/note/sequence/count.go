package sequence

import (
	"context"
	"fmt"
	"todonotes/infras/otel"
	"todonotes/internal/domains/note/repository"
	"todonotes/shared/constant"
)

type countSequence struct {
	repo repository.Note
	otel otel.Otel
}

// NewCount allocates count+1. Ids are reused after deletions and may collide
// between concurrent writers.
func NewCount(repo repository.Note, otel otel.Otel) Sequence {
	return &countSequence{
		repo: repo,
		otel: otel,
	}
}

func (s *countSequence) Next(ctx context.Context) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSequenceScopeName, constant.OtelSequenceScopeName+".count.Next")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}

	return total + 1, nil
}
