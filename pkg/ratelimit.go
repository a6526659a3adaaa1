package pkg

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// windowTTL keeps per-second counters around long enough for late replicas.
const windowTTL = 2 * time.Second

// DistributedLimiter combines a local rate.Limiter with an optional Redis counter
// so replicas share one request budget toward the prediction service.
type DistributedLimiter struct {
	localLimiter *rate.Limiter
	redisClient  *redis.Client // nil: local enforcement only
	key          string        // e.g: "analysis_web:predict_rate"
	globalRate   int
	logger       *zap.Logger
	now          func() time.Time
}

// NewDistributedLimiter creates a limiter; if globalRate=0, it's unlimited.
func NewDistributedLimiter(redisClient *redis.Client, key string, globalRate, burst int, logger *zap.Logger) *DistributedLimiter {
	var local *rate.Limiter
	if globalRate > 0 {
		if burst < 1 {
			burst = 1
		}
		local = rate.NewLimiter(rate.Limit(globalRate), burst)
	}
	return &DistributedLimiter{
		localLimiter: local,
		redisClient:  redisClient,
		key:          key,
		globalRate:   globalRate,
		logger:       logger,
		now:          time.Now,
	}
}

// Wait blocks until a token is available. If the local reservation would take
// longer than maxWait it fails fast with ErrRateLimitExceeded. maxWait <= 0 waits
// as long as ctx allows.
func (d *DistributedLimiter) Wait(ctx context.Context, maxWait time.Duration) error {
	if d == nil || d.localLimiter == nil {
		return nil
	}

	r := d.localLimiter.Reserve()
	if !r.OK() {
		return ErrRateLimitExceeded
	}
	delay := r.Delay()
	if maxWait > 0 && delay > maxWait {
		r.Cancel()
		return ErrRateLimitExceeded
	}
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			r.Cancel()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if !d.allowGlobal(ctx) {
		return ErrRateLimitExceeded
	}
	return nil
}

// allowGlobal increments the shared counter for the current second.
func (d *DistributedLimiter) allowGlobal(ctx context.Context) bool {
	if d.redisClient == nil {
		return true
	}

	windowKey := fmt.Sprintf("%s:%d", d.key, d.now().Unix())
	pipe := d.redisClient.Pipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, windowTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		d.logger.Error("redis rate limit error; falling back to local", zap.Error(err))
		return true
	}

	count := incr.Val()
	if count > int64(d.globalRate) {
		d.logger.Warn("global rate limit exceeded", zap.String("key", windowKey), zap.Int64("count", count))
		return false
	}
	return true
}
