package sequence

import (
	"context"
	"fmt"
	"todonotes/infras/otel"
	"todonotes/internal/domains/note/repository"
	"todonotes/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "notes:sequence:"

// incrWithFloor raises the counter to ARGV[1] when it lags behind, then
// increments it.
var incrWithFloor = goRedis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local floor = tonumber(ARGV[1])
if current < floor then
	redis.call('SET', KEYS[1], floor)
end
return redis.call('INCR', KEYS[1])
`)

type redisSequence struct {
	client goRedis.Scripter
	repo   repository.Note
	key    string
	otel   otel.Otel
}

func NewRedis(client goRedis.Scripter, repo repository.Note, name string, otel otel.Otel) Sequence {
	return &redisSequence{
		client: client,
		repo:   repo,
		key:    redisKeyPrefix + name,
		otel:   otel,
	}
}

func (s *redisSequence) Next(ctx context.Context) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSequenceScopeName, constant.OtelSequenceScopeName+".redis.Next")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	floor, err := s.repo.MaxID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read highest note id: %w", err)
	}

	id, err = incrWithFloor.Run(ctx, s.client, []string{s.key}, floor).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to increment redis sequence %s: %w", s.key, err)
	}

	return id, nil
}
