package repository

import (
	"context"
	"todonotes/config"
	"todonotes/infras/mongo"
	"todonotes/infras/otel"
	"todonotes/internal/domains/note/model"
	"todonotes/shared/constant"
	gRepo "todonotes/shared/repository"

	"go.mongodb.org/mongo-driver/bson"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type counter struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}

type mongoRepository struct {
	notes    gRepo.Collection[model.Note]
	counters gRepo.Collection[counter]
}

func NewMongo(conn *mongo.Connection, cfg *config.Config, otel otel.Otel) Note {
	return &mongoRepository{
		notes:    gRepo.NewCollection[model.Note](model.EntityName, conn.Database.Collection(cfg.Store.Mongo.Collection), otel),
		counters: gRepo.NewCollection[counter]("counter", conn.Database.Collection(cfg.Store.Mongo.CounterCollection), otel),
	}
}

func byID(id any) bson.D {
	return bson.D{{Key: constant.FieldID, Value: id}}
}

func (r *mongoRepository) Insert(ctx context.Context, note model.Note) error {
	return r.notes.InsertOne(ctx, note) //nolint:wrapcheck
}

func (r *mongoRepository) GetAll(ctx context.Context) ([]model.Note, error) {
	return r.notes.Find(ctx, nil) //nolint:wrapcheck
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	return r.notes.Count(ctx, nil) //nolint:wrapcheck
}

func (r *mongoRepository) MaxID(ctx context.Context) (int64, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: constant.FieldID, Value: -1}}).
		SetProjection(bson.D{{Key: constant.FieldID, Value: 1}})

	note, found, err := r.notes.FindOne(ctx, bson.D{}, opts)
	if err != nil || !found {
		return 0, err //nolint:wrapcheck
	}

	return note.ID, nil
}

func (r *mongoRepository) NextID(ctx context.Context, name string, floor int64) (int64, error) {
	// seq = max(seq ?? 0, floor) + 1, evaluated server side in one round trip.
	update := mongoDriver.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: constant.FieldSeq, Value: bson.D{{Key: "$add", Value: bson.A{
			bson.D{{Key: "$max", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$" + constant.FieldSeq, 0}}},
				floor,
			}}},
			1,
		}}}}}}},
	}

	next, err := r.counters.Upsert(ctx, byID(name), update)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return next.Seq, nil
}

func (r *mongoRepository) MarkCompleted(ctx context.Context, id int64) (int64, error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: constant.FieldCompleted, Value: true}}}}

	return r.notes.UpdateOne(ctx, byID(id), update) //nolint:wrapcheck
}

func (r *mongoRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.notes.DeleteOne(ctx, byID(id)) //nolint:wrapcheck
}
