package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	elevationKeyFmt = "elevate:attempts:%s"

	// Five wrong elevation codes per window lock the client out until the
	// window expires.
	elevationAttemptLimit  = 5
	elevationAttemptWindow = 15 * time.Minute
)

var client *redis.Client

// Init initializes the Redis connection. An empty addr or an unreachable
// server leaves the client nil; callers degrade gracefully.
func Init(addr, password string, db int) error {
	if addr == "" {
		return nil
	}

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Close releases the Redis connection if one was established.
func Close() {
	if client != nil {
		client.Close()
		client = nil
	}
}

// AllowElevationAttempt records one elevation attempt for the client key
// (an IP) and reports whether it is still within the limit. Without redis
// every attempt is allowed but logged, so a missing cache never locks
// admins out.
func AllowElevationAttempt(ctx context.Context, clientKey string) bool {
	if client == nil {
		log.Printf("[Cache] Redis unavailable, elevation attempt by %s not rate-limited", clientKey)
		return true
	}

	key := fmt.Sprintf(elevationKeyFmt, clientKey)
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("[Cache] Elevation limiter error: %v", err)
		return true
	}
	if count == 1 {
		client.Expire(ctx, key, elevationAttemptWindow)
	}
	return count <= elevationAttemptLimit
}

// ClearElevationAttempts resets the counter after a successful elevation.
func ClearElevationAttempts(ctx context.Context, clientKey string) {
	if client == nil {
		return
	}
	client.Del(ctx, fmt.Sprintf(elevationKeyFmt, clientKey))
}
