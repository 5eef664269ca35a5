//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Note=MockNoteService
package service

import (
	"context"
	"fmt"
	"todonotes/infras/otel"
	"todonotes/internal/domains/note/model"
	"todonotes/internal/domains/note/model/dto"
	"todonotes/internal/domains/note/repository"
	"todonotes/internal/domains/note/sequence"
	"todonotes/shared/constant"

	"github.com/rs/zerolog/log"
)

type Note interface {
	Add(ctx context.Context, req dto.AddNoteRequest) (model.Note, error)
	GetAll(ctx context.Context) ([]model.Note, error)
	Mark(ctx context.Context, id int64) (dto.ChangeResult, error)
	Delete(ctx context.Context, id int64) (dto.ChangeResult, error)
}

type serviceImpl struct {
	repo     repository.Note
	sequence sequence.Sequence
	otel     otel.Otel
}

func New(repo repository.Note, sequence sequence.Sequence, otel otel.Otel) Note {
	return &serviceImpl{
		repo:     repo,
		sequence: sequence,
		otel:     otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddNoteRequest) (note model.Note, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.sequence.Next(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to allocate note id")

		return note, fmt.Errorf("failed to allocate note id: %w", err)
	}

	note = req.ToModel(id)
	scope.SetAttribute(constant.OtelNoteIDAttributeKey, id)

	if err = s.repo.Insert(ctx, note); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to add note")

		return model.Note{}, fmt.Errorf("failed to add note: %w", err)
	}

	log.Debug().Int64("id", id).Msg("note added")

	return note, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (notes []model.Note, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	notes, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notes")

		return nil, fmt.Errorf("failed to get notes: %w", err)
	}

	return notes, nil
}

func (s *serviceImpl) Mark(ctx context.Context, id int64) (res dto.ChangeResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Mark")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelNoteIDAttributeKey, id)

	count, err := s.repo.MarkCompleted(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to mark note")

		return res, fmt.Errorf("failed to mark note: %w", err)
	}

	res = dto.ChangeResult{ID: id, Count: count}
	if !res.Found() {
		log.Warn().Int64("id", id).Msg("no note matched id, nothing marked")
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (res dto.ChangeResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelNoteIDAttributeKey, id)

	count, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete note")

		return res, fmt.Errorf("failed to delete note: %w", err)
	}

	res = dto.ChangeResult{ID: id, Count: count}
	if !res.Found() {
		log.Warn().Int64("id", id).Msg("no note matched id, nothing deleted")
	}

	return res, nil
}
