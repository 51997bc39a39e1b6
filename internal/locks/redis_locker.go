package locks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"

	apperrors "task-marketplace.com/task-marketplace/internal/errors"
)

// releaseScript deletes the lock only if it still carries our token, so an
// expired holder cannot release somebody else's lock.
var releaseScript = rueidis.NewLuaScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a Locker shared by every process talking to the same Redis.
type RedisLocker struct {
	client     rueidis.Client
	prefix     string
	ttl        time.Duration
	retryDelay time.Duration
	logger     *slog.Logger
}

func NewRedisLocker(client rueidis.Client, prefix string, ttl time.Duration, logger *slog.Logger) *RedisLocker {
	return &RedisLocker{
		client:     client,
		prefix:     prefix,
		ttl:        ttl,
		retryDelay: 25 * time.Millisecond,
		logger:     logger,
	}
}

func (r *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := r.prefix + key
	token := uuid.NewString()

	for {
		cmd := r.client.B().Set().Key(redisKey).Value(token).Nx().PxMilliseconds(r.ttl.Milliseconds()).Build()
		err := r.client.Do(ctx, cmd).Error()
		if err == nil {
			break
		}
		if !rueidis.IsRedisNil(err) {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, "lock backend unavailable", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.retryDelay):
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			r.release(redisKey, token)
		})
	}, nil
}

func (r *RedisLocker) release(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := releaseScript.Exec(ctx, r.client, []string{redisKey}, []string{token}).Error(); err != nil {
		r.logger.Warn("failed to release redis lock", slog.String("key", redisKey), slog.Any("error", err))
	}
}
