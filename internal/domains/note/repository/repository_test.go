package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todonotes/config"
	"todonotes/infras/otel/mocks"
	"todonotes/internal/domains/note/model"
	"todonotes/internal/domains/note/repository"
)

func integrationConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	switch {
	case os.Getenv("NOTES_TEST_MONGO_URI") != "":
		cfg.Store.Backend = config.StoreBackendMongo
		cfg.Store.Mongo.URI = os.Getenv("NOTES_TEST_MONGO_URI")
		cfg.Store.Mongo.Database = "todo-rs-test"
		cfg.Store.Mongo.Collection = "notes_" + suffix
		cfg.Store.Mongo.CounterCollection = "counters_" + suffix
	case os.Getenv("NOTES_TEST_SURREALDB_URL") != "":
		cfg.Store.Backend = config.StoreBackendSurrealDB
		cfg.Store.SurrealDB.URL = os.Getenv("NOTES_TEST_SURREALDB_URL")
		cfg.Store.SurrealDB.Namespace = "todo_test"
		cfg.Store.SurrealDB.Database = "todo_test"
		cfg.Store.SurrealDB.Table = "notes_" + suffix
		cfg.Store.SurrealDB.CounterTable = "counters_" + suffix
		cfg.Store.SurrealDB.Username = os.Getenv("NOTES_TEST_SURREALDB_USER")
		cfg.Store.SurrealDB.Password = os.Getenv("NOTES_TEST_SURREALDB_PASS")
	default:
		t.Skip("set NOTES_TEST_MONGO_URI or NOTES_TEST_SURREALDB_URL to run store integration tests")
	}

	return cfg
}

func TestNew_UnsupportedBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Backend = "sqlite"

	repo, cleanup, err := repository.New(context.Background(), cfg, mocks.NewOtel())

	assert.Error(t, err)
	assert.Nil(t, repo)
	assert.Nil(t, cleanup)
}

func TestNoteRepository_Integration(t *testing.T) {
	cfg := integrationConfig(t)
	ctx := context.Background()

	repo, cleanup, err := repository.New(ctx, cfg, mocks.NewOtel())
	require.NoError(t, err)
	defer cleanup()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	maxID, err := repo.MaxID(ctx)
	require.NoError(t, err)
	assert.Zero(t, maxID)

	first := model.New().WithID(1).WithTitle("Buy milk").WithDescription("2 liters")
	second := model.New().WithID(5).WithTitle("Call mom")

	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	notes, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	maxID, err = repo.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), maxID)

	next, err := repo.NextID(ctx, "notes", maxID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), next)

	next, err = repo.NextID(ctx, "notes", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), next)

	matched, err := repo.MarkCompleted(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	matched, err = repo.MarkCompleted(ctx, 99)
	require.NoError(t, err)
	assert.Zero(t, matched)

	deleted, err := repo.Delete(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = repo.Delete(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	notes, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, int64(1), notes[0].ID)
	assert.True(t, notes[0].Completed)
	assert.Equal(t, "Buy milk", notes[0].Title)
	assert.Equal(t, "2 liters", notes[0].Description)
	assert.WithinDuration(t, first.CreatedOn, notes[0].CreatedOn, time.Second)
}
