package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"alcyxob/fitplan/internal/domain"
	"alcyxob/fitplan/internal/logger"

	goredis "github.com/redis/go-redis/v9"
)

// ErrMiss is returned by PlanCache.Get when no plan is cached for the user.
var ErrMiss = errors.New("cache miss")

// PlanCache holds each user's most recently generated plan.
type PlanCache interface {
	Get(ctx context.Context, userID string) (*domain.WorkoutPlan, error)
	Set(ctx context.Context, plan *domain.WorkoutPlan) error
	Delete(ctx context.Context, userID string) error
	Close() error
}

const planKeyPrefix = "fitplan:plan:latest:"

func planKey(userID string) string { return planKeyPrefix + userID }

type redisPlanCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// RedisOptions configures NewRedisPlanCache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisPlanCache connects to Redis and verifies the connection with a ping.
func NewRedisPlanCache(log *logger.Logger, opts RedisOptions) (PlanCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if opts.Addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisPlanCache{
		log: log.With("service", "RedisPlanCache"),
		rdb: rdb,
		ttl: opts.TTL,
	}, nil
}

func (c *redisPlanCache) Get(ctx context.Context, userID string) (*domain.WorkoutPlan, error) {
	raw, err := c.rdb.Get(ctx, planKey(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var plan domain.WorkoutPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		// A stale or foreign payload is treated as a miss and dropped.
		c.log.Warn("Discarding undecodable cached plan", "userID", userID, "error", err)
		_ = c.rdb.Del(ctx, planKey(userID)).Err()
		return nil, ErrMiss
	}
	return &plan, nil
}

func (c *redisPlanCache) Set(ctx context.Context, plan *domain.WorkoutPlan) error {
	raw, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, planKey(plan.UserID.Hex()), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *redisPlanCache) Delete(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, planKey(userID)).Err()
}

func (c *redisPlanCache) Close() error {
	return c.rdb.Close()
}

// NoopPlanCache never stores anything. It stands in when Redis is not configured.
type NoopPlanCache struct{}

func (NoopPlanCache) Get(context.Context, string) (*domain.WorkoutPlan, error) {
	return nil, ErrMiss
}

func (NoopPlanCache) Set(context.Context, *domain.WorkoutPlan) error {
	return nil
}

func (NoopPlanCache) Delete(context.Context, string) error {
	return nil
}

func (NoopPlanCache) Close() error {
	return nil
}
