package repository

import (
	"context"
	"errors"
	"fmt"
	"todonotes/infras/otel"
	"todonotes/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is a typed pass-through to one MongoDB collection.
type Collection[T any] struct {
	collection *mongo.Collection
	otel       otel.Otel
	entity     string
}

func NewCollection[T any](entity string, collection *mongo.Collection, otl otel.Otel) Collection[T] {
	return Collection[T]{
		collection: collection,
		otel:       otl,
		entity:     entity,
	}
}

func (repo *Collection[T]) InsertOne(ctx context.Context, document T) error {
	ctx, scope := newScope(ctx, repo.otel, repo.entity, "InsertOne")
	defer scope.End()

	if _, err := repo.collection.InsertOne(ctx, document); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	return nil
}

// Find returns every document matching filter. A nil filter matches all.
func (repo *Collection[T]) Find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]T, error) {
	ctx, scope := newScope(ctx, repo.otel, repo.entity, "Find")
	defer scope.End()

	if filter == nil {
		filter = bson.D{}
	}

	cursor, err := repo.collection.Find(ctx, filter, opts...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find data (%s): %w", repo.entity, err)
	}

	result := []T{}
	if err := cursor.All(ctx, &result); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to decode data (%s): %w", repo.entity, err)
	}

	return result, nil
}

// FindOne returns the first matching document, or false when none matches.
func (repo *Collection[T]) FindOne(ctx context.Context, filter any, opts ...*options.FindOneOptions) (T, bool, error) {
	ctx, scope := newScope(ctx, repo.otel, repo.entity, "FindOne")
	defer scope.End()

	var result T

	err := repo.collection.FindOne(ctx, filter, opts...).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return result, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return result, false, fmt.Errorf("failed to find data (%s): %w", repo.entity, err)
	}

	return result, true, nil
}

func (repo *Collection[T]) Count(ctx context.Context, filter any) (int64, error) {
	ctx, scope := newScope(ctx, repo.otel, repo.entity, "Count")
	defer scope.End()

	if filter == nil {
		filter = bson.D{}
	}

	total, err := repo.collection.CountDocuments(ctx, filter)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entity, err)
	}

	return total, nil
}

// UpdateOne applies update to the first matching document and reports how
// many documents matched filter, whether or not they changed.
func (repo *Collection[T]) UpdateOne(ctx context.Context, filter, update any) (int64, error) {
	ctx, scope := newScope(ctx, repo.otel, repo.entity, "UpdateOne")
	defer scope.End()

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update data (%s): %w", repo.entity, err)
	}

	return result.MatchedCount, nil
}

func (repo *Collection[T]) DeleteOne(ctx context.Context, filter any) (int64, error) {
	ctx, scope := newScope(ctx, repo.otel, repo.entity, "DeleteOne")
	defer scope.End()

	result, err := repo.collection.DeleteOne(ctx, filter)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete data (%s): %w", repo.entity, err)
	}

	return result.DeletedCount, nil
}

// Upsert atomically updates (or creates) the matching document and returns
// it as it is after the update.
func (repo *Collection[T]) Upsert(ctx context.Context, filter, update any) (T, error) {
	ctx, scope := newScope(ctx, repo.otel, repo.entity, "Upsert")
	defer scope.End()

	var result T

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	if err := repo.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return result, fmt.Errorf("failed to upsert data (%s): %w", repo.entity, err)
	}

	return result, nil
}
