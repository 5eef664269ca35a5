package repository

import (
	"context"
	"fmt"
	"strconv"
	"todonotes/config"
	"todonotes/infras/otel"
	"todonotes/internal/domains/note/model"
	gRepo "todonotes/shared/repository"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

const (
	querySelectAll   = "SELECT * FROM type::table($tb)"
	queryCount       = "SELECT count() AS total FROM type::table($tb) GROUP ALL"
	queryMaxID       = "SELECT id FROM type::table($tb) ORDER BY id DESC LIMIT 1"
	queryMark        = "UPDATE type::thing($tb, $id) SET completed = true RETURN AFTER"
	queryDelete      = "DELETE type::thing($tb, $id) RETURN BEFORE"
	queryNextCounter = "UPSERT type::thing($tb, $name) SET seq = math::max([seq ?? 0, $floor]) + 1 RETURN AFTER"
)

type surrealNote struct {
	ID          *models.RecordID      `json:"id,omitempty"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Completed   bool                  `json:"completed"`
	CreatedOn   models.CustomDateTime `json:"created_on"`
}

func (n surrealNote) toModel() model.Note {
	return model.Note{
		ID:          recordKey(n.ID),
		Title:       n.Title,
		Description: n.Description,
		Completed:   n.Completed,
		CreatedOn:   n.CreatedOn.Time,
	}
}

type surrealCounter struct {
	ID  *models.RecordID `json:"id,omitempty"`
	Seq int64            `json:"seq"`
}

type surrealCount struct {
	Total int64 `json:"total"`
}

type surrealRepository struct {
	notes    gRepo.Table[surrealNote]
	counters gRepo.Table[surrealCounter]
}

func NewSurreal(db *surrealdb.DB, cfg *config.Config, otel otel.Otel) Note {
	return &surrealRepository{
		notes:    gRepo.NewTable[surrealNote](model.EntityName, cfg.Store.SurrealDB.Table, db, otel),
		counters: gRepo.NewTable[surrealCounter]("counter", cfg.Store.SurrealDB.CounterTable, db, otel),
	}
}

// recordKey extracts the numeric key of a notes:<id> record.
func recordKey(id *models.RecordID) int64 {
	if id == nil {
		return 0
	}

	switch key := id.ID.(type) {
	case int64:
		return key
	case uint64:
		return int64(key)
	case int:
		return int64(key)
	case float64:
		return int64(key)
	case string:
		parsed, _ := strconv.ParseInt(key, 10, 64)
		return parsed
	default:
		return 0
	}
}

func (r *surrealRepository) Insert(ctx context.Context, note model.Note) error {
	record := surrealNote{
		Title:       note.Title,
		Description: note.Description,
		Completed:   note.Completed,
		CreatedOn:   models.CustomDateTime{Time: note.CreatedOn},
	}

	return r.notes.Create(ctx, note.ID, &record) //nolint:wrapcheck
}

func (r *surrealRepository) GetAll(ctx context.Context) ([]model.Note, error) {
	records, err := r.notes.Query(ctx, querySelectAll, nil)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	notes := make([]model.Note, len(records))
	for i, record := range records {
		notes[i] = record.toModel()
	}

	return notes, nil
}

func (r *surrealRepository) Count(ctx context.Context) (int64, error) {
	rows, err := gRepo.Query[surrealCount](ctx, &r.notes, queryCount, nil)
	if err != nil || len(rows) == 0 {
		return 0, err //nolint:wrapcheck
	}

	return rows[0].Total, nil
}

func (r *surrealRepository) MaxID(ctx context.Context) (int64, error) {
	records, err := r.notes.Query(ctx, queryMaxID, nil)
	if err != nil || len(records) == 0 {
		return 0, err //nolint:wrapcheck
	}

	return recordKey(records[0].ID), nil
}

func (r *surrealRepository) NextID(ctx context.Context, name string, floor int64) (int64, error) {
	records, err := r.counters.Query(ctx, queryNextCounter, map[string]any{
		"name":  name,
		"floor": floor,
	})
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	if len(records) == 0 {
		return 0, fmt.Errorf("counter %q was not returned by upsert", name)
	}

	return records[0].Seq, nil
}

func (r *surrealRepository) MarkCompleted(ctx context.Context, id int64) (int64, error) {
	records, err := r.notes.Query(ctx, queryMark, map[string]any{"id": id})
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return int64(len(records)), nil
}

func (r *surrealRepository) Delete(ctx context.Context, id int64) (int64, error) {
	records, err := r.notes.Query(ctx, queryDelete, map[string]any{"id": id})
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return int64(len(records)), nil
}
