// Package presence tracks which users currently hold a live realtime
// connection, backed by Redis so presence survives across instances.
package presence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blazer444/Talkalot/internal/config"
)

// defaultTTL bounds how long a presence key survives without renewal, so a
// crashed instance cannot leave users marked online forever.
const defaultTTL = 5 * time.Minute

// NewRedisClient connects to Redis per the server configuration. Returns an
// error when Redis is unreachable; callers may run without presence.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	addr := cfg.RedisHost + ":" + cfg.RedisPort

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}

// Registry records online users in Redis. A nil client turns every method
// into a no-op, mirroring how the server degrades when Redis is absent.
type Registry struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRegistry creates a Registry. If ttl is 0 a default is applied; if
// prefix is empty it uses "presence".
func NewRegistry(rdb *redis.Client, ttl time.Duration, prefix string) *Registry {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if prefix == "" {
		prefix = "presence"
	}
	return &Registry{rdb: rdb, ttl: ttl, prefix: prefix}
}

func (r *Registry) key(userID uint) string {
	return fmt.Sprintf("%s:%d", r.prefix, userID)
}

// SetOnline marks the user online for the registry TTL.
func (r *Registry) SetOnline(ctx context.Context, userID uint) error {
	if r.rdb == nil {
		return nil
	}
	return r.rdb.Set(ctx, r.key(userID), "1", r.ttl).Err()
}

// SetOffline removes the user's presence key.
func (r *Registry) SetOffline(ctx context.Context, userID uint) error {
	if r.rdb == nil {
		return nil
	}
	return r.rdb.Del(ctx, r.key(userID)).Err()
}

// IsOnline reports whether the user has a live presence entry.
func (r *Registry) IsOnline(ctx context.Context, userID uint) (bool, error) {
	if r.rdb == nil {
		return false, nil
	}
	_, err := r.rdb.Get(ctx, r.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
