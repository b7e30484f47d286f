// Package currencies decorates a currency catalog with a Redis read-through
// cache. Currency rows are reference data, so entries only expire by TTL.
package currencies

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fastprodman/gameledger/internal/repos/currencies"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "currency:"

var _ currencies.Currencies = (*cachedRepo)(nil)

type cachedRepo struct {
	inner  currencies.Currencies
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// New wraps inner. Cache errors are logged and the call falls through to
// inner; not-found results are never cached.
func New(inner currencies.Currencies, rdb redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *cachedRepo {
	if logger == nil {
		logger = slog.Default()
	}

	return &cachedRepo{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

func (r *cachedRepo) GetDefault(ctx context.Context) (currencies.Currency, error) {
	return readThrough(ctx, r, keyPrefix+"default", func() (currencies.Currency, error) {
		return r.inner.GetDefault(ctx)
	})
}

func (r *cachedRepo) Get(ctx context.Context, id int) (currencies.Currency, error) {
	return readThrough(ctx, r, fmt.Sprintf("%sid:%d", keyPrefix, id), func() (currencies.Currency, error) {
		return r.inner.Get(ctx, id)
	})
}

func (r *cachedRepo) GetByName(ctx context.Context, nameSingular string) (currencies.Currency, error) {
	key := keyPrefix + "name:" + strings.ToLower(nameSingular)

	return readThrough(ctx, r, key, func() (currencies.Currency, error) {
		return r.inner.GetByName(ctx, nameSingular)
	})
}

func (r *cachedRepo) List(ctx context.Context) ([]currencies.Currency, error) {
	return readThrough(ctx, r, keyPrefix+"list", func() ([]currencies.Currency, error) {
		return r.inner.List(ctx)
	})
}

// Invalidate drops every cached catalog entry.
func (r *cachedRepo) Invalidate(ctx context.Context) error {
	iter := r.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	err := iter.Err()
	if err != nil {
		return fmt.Errorf("scan currency keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	err = r.rdb.Del(ctx, keys...).Err()
	if err != nil {
		return fmt.Errorf("delete currency keys: %w", err)
	}

	return nil
}

func readThrough[T any](ctx context.Context, r *cachedRepo, key string, load func() (T, error)) (T, error) {
	var cached T

	hit, err := r.get(ctx, key, &cached)
	if err != nil {
		r.logger.Warn("currency cache read failed", "key", key, "error", err)
	}

	if hit {
		return cached, nil
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	err = r.set(ctx, key, v)
	if err != nil {
		r.logger.Warn("currency cache write failed", "key", key, "error", err)
	}

	return v, nil
}

func (r *cachedRepo) get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("redis get: %w", err)
	}

	err = json.Unmarshal(raw, dest)
	if err != nil {
		return false, fmt.Errorf("decode cached value: %w", err)
	}

	return true, nil
}

func (r *cachedRepo) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode value: %w", err)
	}

	err = r.rdb.Set(ctx, key, raw, r.ttl).Err()
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}
