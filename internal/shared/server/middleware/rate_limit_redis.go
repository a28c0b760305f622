package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"guide-backend/internal/shared/telemetry"
)

// Counts hits in a fixed window and returns {count, remaining ttl in ms}.
var windowScript = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {n, redis.call('PTTL', KEYS[1])}
`)

// RedisRateLimiter shares limits between instances with a fixed window per key. A window lasts
// Burst/Rate seconds and admits Burst requests, matching the token bucket's long-run rate.
// Redis failures let the request through.
type RedisRateLimiter struct {
	Client redis.Scripter
	Prefix string
}

// NewRedisRateLimiter constructs a RedisRateLimiter.
func NewRedisRateLimiter(client redis.Scripter) *RedisRateLimiter {
	return &RedisRateLimiter{Client: client, Prefix: "guide:ratelimit:"}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, rule RateLimitRule) (bool, time.Duration) {
	if l == nil || l.Client == nil || rule.Rate <= 0 || rule.Burst <= 0 {
		return true, 0
	}
	window := time.Duration(float64(rule.Burst) / rule.Rate * float64(time.Second))
	if window < time.Millisecond {
		window = time.Millisecond
	}

	res, err := windowScript.Run(ctx, l.Client, []string{l.Prefix + key}, window.Milliseconds()).Int64Slice()
	if err != nil || len(res) != 2 {
		telemetry.Warn("ratelimit.redis_unavailable", map[string]any{"error": err, "key": key})
		return true, 0
	}
	if res[0] <= int64(rule.Burst) {
		return true, 0
	}
	ttl := time.Duration(res[1]) * time.Millisecond
	if ttl <= 0 {
		ttl = window
	}
	return false, ttl
}

var (
	_ Limiter = (*RateLimiter)(nil)
	_ Limiter = (*RedisRateLimiter)(nil)
)
