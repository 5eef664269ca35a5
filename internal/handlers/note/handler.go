package note

import (
	"context"
	"fmt"
	"io"
	"todonotes/infras/otel"
	"todonotes/internal/domains/note/model/dto"
	"todonotes/internal/domains/note/service"
	"todonotes/shared/constant"
	"todonotes/shared/prompt"

	"github.com/rs/zerolog/log"
)

// Handler drives one note operation over a line-oriented console.
type Handler struct {
	service service.Note
	otel    otel.Otel
}

func New(service service.Note, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Add prompts for a title and a description, stores the note and echoes it.
func (handler *Handler) Add(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reader := prompt.New(in, out)

	title, err := reader.Line(constant.PromptTitle)
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	description, err := reader.Line(constant.PromptDescription)
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	note, err := handler.service.Add(ctx, dto.AddNoteRequest{
		Title:       title,
		Description: description,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to add note")

		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "\n%s\n\n%s\n", note.Summarize(), constant.MessageAdded)

	return nil
}

// List prints every stored note in the store's natural order.
func (handler *Handler) List(ctx context.Context, out io.Writer) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	notes, err := handler.service.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list notes")

		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "%s\n\n", constant.MessageSummary)

	for _, note := range notes {
		fmt.Fprintf(out, "%s\n\n", note.Summarize())
	}

	return nil
}

func (handler *Handler) Mark(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Mark")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := handler.listAndReadID(ctx, in, out, constant.PromptMarkID)
	if err != nil {
		return err
	}

	res, err := handler.service.Mark(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to mark note")

		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "Matched %d note(s).\n%s\n", res.Count, constant.MessageMarked)

	return nil
}

func (handler *Handler) Delete(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := handler.listAndReadID(ctx, in, out, constant.PromptDeleteID)
	if err != nil {
		return err
	}

	res, err := handler.service.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete note")

		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "Deleted %d note(s).\n%s\n", res.Count, constant.MessageDeleted)

	return nil
}

func (handler *Handler) listAndReadID(ctx context.Context, in io.Reader, out io.Writer, label string) (int64, error) {
	if err := handler.List(ctx, out); err != nil {
		return 0, err
	}

	input, err := prompt.New(in, out).Line(label)
	if err != nil {
		return 0, fmt.Errorf("failed to read note id: %w", err)
	}

	return dto.ParseID(input) //nolint:wrapcheck
}
