// Package cache memoizes pattern sweeps in redis. The cache is disposable:
// redis failures are logged and the sweep is recomputed.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/primespiral/internal/config"
	"github.com/katalvlaran/primespiral/internal/logging"
	"github.com/katalvlaran/primespiral/pattern"
	"github.com/katalvlaran/primespiral/spiral"
	"github.com/katalvlaran/primespiral/sweep"
)

// ErrMiss is returned by Get when the key is absent.
var ErrMiss = errors.New("cache: miss")

// Key identifies one sweep: the prime count, the range, the rotation and
// the grouping tolerance fully determine the result.
type Key struct {
	Primes    int
	Range     sweep.Range
	Direction spiral.Direction
	Tolerance float64
}

// String renders the key as "<primes>:<start>:<end>:<step>:<direction>:<tol>".
func (k Key) String() string {
	return fmt.Sprintf("%d:%s:%s:%s:%s:%s", k.Primes,
		sweep.FormatAngle(k.Range.Start), sweep.FormatAngle(k.Range.End), sweep.FormatAngle(k.Range.Step),
		k.Direction, strconv.FormatFloat(k.Tolerance, 'g', -1, 64))
}

// AnalysisCache stores JSON-encoded pattern.Analysis values.
type AnalysisCache struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
	logger logging.Logger
	group  singleflight.Group
}

// New wraps rdb. ttl 0 stores without expiry.
func New(rdb redis.Cmdable, prefix string, ttl time.Duration, log logging.Logger) *AnalysisCache {
	if log == nil {
		log = logging.NewNopLogger()
	}

	return &AnalysisCache{rdb: rdb, prefix: prefix, ttl: ttl, logger: log}
}

// Dial connects to cfg.Addr and pings it. The returned client must be closed by the caller.
func Dial(ctx context.Context, cfg config.CacheConfig, log logging.Logger) (*AnalysisCache, *redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("cache: ping %s: %w", cfg.Addr, err)
	}

	return New(rdb, cfg.Prefix, cfg.TTL, log), rdb, nil
}

func (c *AnalysisCache) fullKey(k Key) string { return c.prefix + k.String() }

// Get loads the analysis stored under k.
func (c *AnalysisCache) Get(ctx context.Context, k Key) (*pattern.Analysis, error) {
	data, err := c.rdb.Get(ctx, c.fullKey(k)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: get %s: %w", k, err)
	}

	var a pattern.Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("cache: decode %s: %w", k, err)
	}

	return &a, nil
}

// Set stores a under k with the configured TTL.
func (c *AnalysisCache) Set(ctx context.Context, k Key, a *pattern.Analysis) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", k, err)
	}
	if err := c.rdb.Set(ctx, c.fullKey(k), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", k, err)
	}

	return nil
}

// Delete drops k.
func (c *AnalysisCache) Delete(ctx context.Context, k Key) error {
	return c.rdb.Del(ctx, c.fullKey(k)).Err()
}

// GetOrCompute returns the cached analysis for k, or runs compute once per
// key across concurrent callers and stores its result. hit reports whether
// the value came from redis. Redis errors never fail the call.
func (c *AnalysisCache) GetOrCompute(ctx context.Context, k Key, compute func(context.Context) (*pattern.Analysis, error)) (a *pattern.Analysis, hit bool, err error) {
	a, err = c.Get(ctx, k)
	switch {
	case err == nil:
		c.logger.Debug("analysis cache hit", logging.String("key", k.String()))
		return a, true, nil
	case !errors.Is(err, ErrMiss):
		c.logger.Warn("analysis cache read failed", logging.String("key", k.String()), logging.Err(err))
	}

	v, err, _ := c.group.Do(k.String(), func() (interface{}, error) {
		res, cerr := compute(ctx)
		if cerr != nil {
			return nil, cerr
		}
		if serr := c.Set(ctx, k, res); serr != nil {
			c.logger.Warn("analysis cache write failed", logging.String("key", k.String()), logging.Err(serr))
		}

		return res, nil
	})
	if err != nil {
		return nil, false, err
	}

	return v.(*pattern.Analysis), false, nil
}
