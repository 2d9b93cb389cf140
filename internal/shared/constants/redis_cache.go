package constants

import (
	"fmt"
	"time"
)

// Redis key layout
// Pattern: waitwise:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

// Fallbacks used when config leaves a TTL at zero
const (
	TTL_DASHBOARD   = 10 * time.Second // staff dashboard snapshot
	TTL_IDEMPOTENCY = 2 * time.Hour    // replayable sync responses
	TTL_SYNC_LOCK   = 30 * time.Second // in-flight sync batch guard
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "waitwise"
)

// ================== STAFF MODULE ==================

const (
	CACHE_KEY_DASHBOARD = CACHE_PREFIX + ":staff:dashboard:event:" // + event-id
)

// ================== SYNC MODULE ==================

const (
	IDEMPOTENCY_KEY_SYNC_RESULT = CACHE_PREFIX + ":sync:result:" // + device-id:key
	IDEMPOTENCY_KEY_SYNC_LOCK   = CACHE_PREFIX + ":sync:lock:"   // + device-id:key
)

// ================== RATE LIMITING ==================

const (
	RATE_LIMIT_PREFIX = CACHE_PREFIX + ":rate_limit:"
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_DASHBOARD_ALL = CACHE_PREFIX + ":staff:dashboard:*"
)

// ================== KEY BUILDERS ==================

func BuildDashboardKey(eventID string) string {
	return CACHE_KEY_DASHBOARD + eventID
}

func BuildSyncResultKey(deviceID, idempotencyKey string) string {
	return fmt.Sprintf("%s%s:%s", IDEMPOTENCY_KEY_SYNC_RESULT, deviceID, idempotencyKey)
}

func BuildSyncLockKey(deviceID, idempotencyKey string) string {
	return fmt.Sprintf("%s%s:%s", IDEMPOTENCY_KEY_SYNC_LOCK, deviceID, idempotencyKey)
}
