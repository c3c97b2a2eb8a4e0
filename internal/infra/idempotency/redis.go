package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "checkout:idem:"

// RedisStore keeps checkout replay records keyed by client idempotency key.
// Entries expire after the configured TTL; there is no explicit delete.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) commands.IdempotencyStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Lookup(ctx context.Context, key string) (*commands.CheckoutReplay, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "idempotency lookup failed")
	}

	var replay commands.CheckoutReplay
	if err := json.Unmarshal(raw, &replay); err != nil {
		return nil, errs.Wrap(err, "failed to decode stored checkout result")
	}
	return &replay, nil
}

func (s *RedisStore) Store(ctx context.Context, key string, result commands.CheckoutReplay, ttl time.Duration) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return errs.Wrap(err, "failed to encode checkout result")
	}
	// NX: the first completed checkout for a key wins; later writers lose.
	if err := s.client.SetNX(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store checkout result")
	}
	return nil
}
