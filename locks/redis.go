package locks

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL   = 30 * time.Second
	defaultRetry = 25 * time.Millisecond
	keyPrefix    = "booking:room:"
)

// Deletes the key only while it still holds our token, so an expired lock
// taken over by another instance is left alone.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lock per room shared by every instance talking to the same
// redis. A holder that dies loses the lock after the TTL.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
	retry  time.Duration
	logger log.Logger
}

func NewRedis(client redis.UniversalClient, ttl time.Duration, logger log.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Redis{
		client: client,
		ttl:    ttl,
		retry:  defaultRetry,
		logger: log.With(logger, "component", "redis-lock"),
	}
}

func (r *Redis) Lock(ctx context.Context, roomID int64) (func(), error) {
	key := fmt.Sprintf("%s%d", keyPrefix, roomID)
	token := uuid.NewString()

	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()
	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquiring %s: %w", key, err)
		}
		if ok {
			return func() { r.unlock(key, token) }, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *Redis) unlock(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := unlockScript.Run(ctx, r.client, []string{key}, token).Err(); err != nil {
		level.Error(r.logger).Log("msg", "failed to release lock", "key", key, "err", err)
	}
}
