package repository

import (
	"context"
	"fmt"
	"todonotes/infras/otel"
	"todonotes/shared/constant"
	"todonotes/shared/logger"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// Table is a typed pass-through to one SurrealDB table.
type Table[T any] struct {
	db     *surrealdb.DB
	otel   otel.Otel
	table  string
	entity string
}

func NewTable[T any](entity, table string, db *surrealdb.DB, otl otel.Otel) Table[T] {
	return Table[T]{
		db:     db,
		otel:   otl,
		table:  table,
		entity: entity,
	}
}

func (repo *Table[T]) Name() string {
	return repo.table
}

func (repo *Table[T]) RecordID(id any) models.RecordID {
	return models.NewRecordID(repo.table, id)
}

// Create stores record under the given key. record should be a pointer so
// custom CBOR marshalers on its fields are honored.
func (repo *Table[T]) Create(ctx context.Context, id any, record *T) error {
	ctx, scope := newScope(ctx, repo.otel, repo.entity, "Create")
	defer scope.End()

	if _, err := surrealdb.Create[T](ctx, repo.db, repo.RecordID(id), record); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	return nil
}

// Query runs a single SurrealQL statement and decodes its result set. The
// table name is always bound as $tb.
func (repo *Table[T]) Query(ctx context.Context, query string, vars map[string]any) ([]T, error) {
	return Query[T](ctx, repo, query, vars)
}

// Query is Table.Query with a result type that differs from the table's
// record type, such as counts or projections.
func Query[R, T any](ctx context.Context, repo *Table[T], query string, vars map[string]any) ([]R, error) {
	ctx, scope := newScope(ctx, repo.otel, repo.entity, "Query")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	params := map[string]any{"tb": repo.table}
	for key, value := range vars {
		params[key] = value
	}

	res, err := surrealdb.Query[[]R](ctx, repo.db, query, params)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to query data (%s): %w", repo.entity, err)
	}

	if res == nil || len(*res) == 0 {
		return []R{}, nil
	}

	return (*res)[0].Result, nil
}
