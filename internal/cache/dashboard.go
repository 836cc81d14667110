package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/disease-risk-server/internal/domain"
)

const distributionKey = "dashboard:risk_distribution"

// DashboardCache caches the aggregate risk distribution in Redis. All
// operations pass through a circuit breaker: when Redis is down the breaker
// opens and Get reports a miss immediately, so dashboard requests fall back
// to the database without waiting on connection timeouts. A nil
// DashboardCache is valid and always misses, which is how the server runs
// with caching disabled.
type DashboardCache struct {
	redis   *redis.Client
	breaker *gobreaker.CircuitBreaker
	ttl     time.Duration
	log     *logrus.Logger
}

// NewDashboardCache creates a Redis-backed dashboard cache and verifies the
// connection.
func NewDashboardCache(cfg domain.CacheConfig, logger *logrus.Logger) (*DashboardCache, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.PoolTimeout = cfg.PoolTimeout

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "dashboard-cache",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Cache circuit breaker state changed")
		},
	})

	return &DashboardCache{
		redis:   client,
		breaker: breaker,
		ttl:     cfg.DefaultTTL,
		log:     logger,
	}, nil
}

// GetDistribution returns the cached risk distribution, reporting a miss on
// absence, breaker-open, or any Redis failure.
func (c *DashboardCache) GetDistribution(ctx context.Context) (*domain.RiskDistribution, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.breaker.Execute(func() (interface{}, error) {
		return c.redis.Get(ctx, distributionKey).Result()
	})
	if err != nil {
		if err != redis.Nil && err != gobreaker.ErrOpenState {
			c.log.WithError(err).Warn("Dashboard cache read failed")
		}
		return nil, false
	}

	var dist domain.RiskDistribution
	if err := json.Unmarshal([]byte(val.(string)), &dist); err != nil {
		c.redis.Del(ctx, distributionKey)
		return nil, false
	}
	return &dist, true
}

// SetDistribution stores the risk distribution with the configured TTL.
// Failures are logged and swallowed; caching is best-effort.
func (c *DashboardCache) SetDistribution(ctx context.Context, dist *domain.RiskDistribution) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(dist)
	if err != nil {
		c.log.WithError(err).Warn("Dashboard cache encode failed")
		return
	}

	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, c.redis.Set(ctx, distributionKey, payload, c.ttl).Err()
	})
	if err != nil && err != gobreaker.ErrOpenState {
		c.log.WithError(err).Warn("Dashboard cache write failed")
	}
}

// Invalidate drops the cached distribution, called after each new prediction
// is persisted so the dashboard converges quickly.
func (c *DashboardCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.redis.Del(ctx, distributionKey).Err()
	})
	if err != nil && err != gobreaker.ErrOpenState {
		c.log.WithError(err).Warn("Dashboard cache invalidation failed")
	}
}

// Close releases the Redis connection.
func (c *DashboardCache) Close() error {
	if c == nil {
		return nil
	}
	return c.redis.Close()
}
