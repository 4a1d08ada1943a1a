// Package redis provides a Redis-backed port.QuotaStore.
//
// Each identity owns one hash holding the day it belongs to, the task count
// and one usage field per resource type. Every mutation is a Lua script, so
// the compare-and-increment is atomic across engine instances.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

const (
	dayLayout    = "20060102"
	fieldDay     = "day"
	fieldTasks   = "tasks"
	resourceMark = "r:"
	// keys outlive their day so late readers still see yesterday's usage
	keyTTL = 48 * time.Hour
)

var _ port.QuotaStore = (*QuotaStore)(nil)

// QuotaStore is a Redis-backed quota ledger.
type QuotaStore struct {
	client    goredis.Cmdable
	keyPrefix string
}

// Option configures QuotaStore.
type Option func(*QuotaStore)

// WithKeyPrefix sets the Redis key prefix (default "adgate:quota:").
func WithKeyPrefix(prefix string) Option {
	return func(s *QuotaStore) { s.keyPrefix = prefix }
}

// NewQuotaStore creates a store on top of a connected *goredis.Client or
// *goredis.ClusterClient.
func NewQuotaStore(client goredis.Cmdable, opts ...Option) *QuotaStore {
	s := &QuotaStore{client: client, keyPrefix: "adgate:quota:"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *QuotaStore) key(identityID string) string {
	return s.keyPrefix + identityID
}

// consumeScript resets the hash when it belongs to an earlier day, then
// increments the resource and task counters if usage is below the limit.
// KEYS[1] = identity hash
// ARGV[1] = day (YYYYMMDD)
// ARGV[2] = resource field
// ARGV[3] = limit, negative for unlimited
// ARGV[4] = ttl seconds
//
// Returns {allowed, used, tasks}.
var consumeScript = goredis.NewScript(`
local key = KEYS[1]
local day = ARGV[1]
local field = ARGV[2]
local limit = tonumber(ARGV[3])

local current = redis.call("HGET", key, "day")
if not current or current < day then
    redis.call("DEL", key)
    redis.call("HSET", key, "day", day, "tasks", "0")
end

local used = tonumber(redis.call("HGET", key, field) or "0")
if limit >= 0 and used >= limit then
    local tasks = tonumber(redis.call("HGET", key, "tasks") or "0")
    return {0, used, tasks}
end

used = redis.call("HINCRBY", key, field, 1)
local tasks = redis.call("HINCRBY", key, "tasks", 1)
redis.call("EXPIRE", key, tonumber(ARGV[4]))
return {1, used, tasks}
`)

// resetScript zeroes a hash that belongs to an earlier day.
// KEYS[1] = identity hash
// ARGV[1] = day (YYYYMMDD)
//
// Returns 1 if the hash was reset.
var resetScript = goredis.NewScript(`
local key = KEYS[1]
local current = redis.call("HGET", key, "day")
if not current or current >= ARGV[1] then
    return 0
end
local ttl = redis.call("TTL", key)
redis.call("DEL", key)
redis.call("HSET", key, "day", ARGV[1], "tasks", "0")
if ttl > 0 then
    redis.call("EXPIRE", key, ttl)
end
return 1
`)

// Consume implements port.QuotaStore.
func (s *QuotaStore) Consume(ctx context.Context, identityID string, resource domain.ResourceType, limit int64, day time.Time) (domain.Consumption, error) {
	res, err := consumeScript.Run(ctx, s.client,
		[]string{s.key(identityID)},
		day.Format(dayLayout), resourceMark+string(resource), limit, int64(keyTTL/time.Second),
	).Int64Slice()
	if err != nil {
		return domain.Consumption{}, fmt.Errorf("adgate/redis: consume: %w", err)
	}
	if len(res) != 3 {
		return domain.Consumption{}, fmt.Errorf("adgate/redis: unexpected consume result: %v", res)
	}
	return domain.Consumption{Allowed: res[0] == 1, Used: res[1], TasksToday: res[2]}, nil
}

// Usage implements port.QuotaStore.
func (s *QuotaStore) Usage(ctx context.Context, identityID string, day time.Time) (domain.Usage, error) {
	vals, err := s.client.HGetAll(ctx, s.key(identityID)).Result()
	if err != nil {
		return domain.Usage{}, fmt.Errorf("adgate/redis: usage: %w", err)
	}

	u := domain.Usage{PerResource: make(map[domain.ResourceType]int64)}
	// Lazy reset check (read-only, don't write).
	if vals[fieldDay] < day.Format(dayLayout) {
		return u, nil
	}
	for field, raw := range vals {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		switch {
		case field == fieldTasks:
			u.TasksToday = n
		case strings.HasPrefix(field, resourceMark):
			u.PerResource[domain.ResourceType(strings.TrimPrefix(field, resourceMark))] = n
		}
	}
	return u, nil
}

// ResetDay implements port.QuotaStore. It walks every key under the prefix
// and resets those still on an earlier day.
func (s *QuotaStore) ResetDay(ctx context.Context, day time.Time) (int64, error) {
	var n int64
	iter := s.client.Scan(ctx, 0, s.keyPrefix+"*", 200).Iterator()
	for iter.Next(ctx) {
		reset, err := resetScript.Run(ctx, s.client, []string{iter.Val()}, day.Format(dayLayout)).Int64()
		if err != nil {
			return n, fmt.Errorf("adgate/redis: reset %s: %w", iter.Val(), err)
		}
		n += reset
	}
	if err := iter.Err(); err != nil {
		return n, fmt.Errorf("adgate/redis: scan: %w", err)
	}
	return n, nil
}
