//go:build wireinject
// +build wireinject

package di

import (
	"context"
	"todonotes/config"
	"todonotes/infras/otel"

	noteRepository "todonotes/internal/domains/note/repository"
	noteSequence "todonotes/internal/domains/note/sequence"
	noteService "todonotes/internal/domains/note/service"
	noteHandler "todonotes/internal/handlers/note"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var noteDomain = wire.NewSet(
	noteRepository.New,
	noteSequence.New,
	noteService.New,
)

var handlers = wire.NewSet(
	noteHandler.New,
)

// InitializeNoteHandler opens the configured store and builds the note
// handler on top of it. Call the returned cleanup once the command is done.
func InitializeNoteHandler(ctx context.Context) (noteHandler.Handler, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		noteDomain,
		handlers,
	)

	return noteHandler.Handler{}, nil, nil
}
