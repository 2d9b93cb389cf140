package devicesync

import (
	"context"
	"errors"
	"time"

	"waitwise/internal/shared/constants"

	"github.com/redis/go-redis/v9"
)

// IdempotencyStore remembers sync responses by device and Idempotency-Key
// so a retried upload gets the original answer back
type IdempotencyStore struct {
	rdb     *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

func NewIdempotencyStore(rdb *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = constants.TTL_IDEMPOTENCY
	}
	return &IdempotencyStore{rdb: rdb, ttl: ttl, lockTTL: constants.TTL_SYNC_LOCK}
}

// AcquireLock claims the key for one in-flight request. False means another
// request holds it.
func (s *IdempotencyStore) AcquireLock(ctx context.Context, deviceID, key string) (bool, error) {
	return s.rdb.SetNX(ctx, constants.BuildSyncLockKey(deviceID, key), "LOCK", s.lockTTL).Result()
}

// Release drops the in-flight claim
func (s *IdempotencyStore) Release(ctx context.Context, deviceID, key string) error {
	return s.rdb.Del(ctx, constants.BuildSyncLockKey(deviceID, key)).Err()
}

// SaveResult stores the encoded response for replay
func (s *IdempotencyStore) SaveResult(ctx context.Context, deviceID, key string, payload []byte) error {
	return s.rdb.Set(ctx, constants.BuildSyncResultKey(deviceID, key), payload, s.ttl).Err()
}

// GetResult returns the stored response, if any
func (s *IdempotencyStore) GetResult(ctx context.Context, deviceID, key string) ([]byte, bool, error) {
	v, err := s.rdb.Get(ctx, constants.BuildSyncResultKey(deviceID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}
