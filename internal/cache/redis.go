// Package cache provides the optional Redis-backed scan result cache. Scans
// are pure functions of (text, rule set, threshold), which makes results
// safe to cache under a digest of those three inputs.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/promptwarden/promptwarden/internal/rules"
)

// ScanCache is a Redis-backed cache of scan results. Lookup failures and
// corrupt entries degrade to misses; the cache never fails a scan.
type ScanCache struct {
	client *redis.Client
	config Config
	logger *zap.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// NewScanCache connects to Redis and verifies the connection.
func NewScanCache(config Config, logger *zap.Logger) (*ScanCache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opts.PoolSize = config.MaxConnections
	opts.MinIdleConns = config.MinIdleConns

	client := redis.NewClient(opts)

	sc := &ScanCache{
		client: client,
		config: config,
		logger: logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Scan cache initialized",
		zap.String("redis_url", maskRedisURL(config.RedisURL)),
		zap.Int("max_connections", config.MaxConnections),
		zap.Duration("default_ttl", config.DefaultTTL))
	return sc, nil
}

// Key derives the cache key for one scan: a digest over the prompt text,
// the rule set fingerprint and the threshold. Any rule edit changes the
// fingerprint, so stale entries simply stop being addressed.
func (sc *ScanCache) Key(text, ruleFingerprint string, threshold int) string {
	hasher := sha256.New()
	hasher.Write([]byte(text))
	hasher.Write([]byte{0})
	hasher.Write([]byte(ruleFingerprint))
	hasher.Write([]byte{0})
	hasher.Write([]byte(strconv.Itoa(threshold)))
	digest := hex.EncodeToString(hasher.Sum(nil))
	return fmt.Sprintf("%s:scan:%s", sc.config.KeyPrefix, digest[:32])
}

// Get retrieves a cached scan result. The boolean reports a hit; errors are
// logged and surfaced as misses.
func (sc *ScanCache) Get(ctx context.Context, key string) (*rules.ScanResult, bool) {
	data, err := sc.client.Get(ctx, key).Result()
	if err == redis.Nil {
		sc.misses.Add(1)
		return nil, false
	} else if err != nil {
		sc.misses.Add(1)
		sc.logger.Error("Cache lookup failed", zap.Error(err))
		return nil, false
	}

	var result rules.ScanResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		sc.logger.Error("Failed to unmarshal cached scan result", zap.Error(err))
		sc.client.Del(ctx, key)
		sc.misses.Add(1)
		return nil, false
	}

	sc.hits.Add(1)
	return &result, true
}

// Set stores a scan result under key with the configured TTL. Failures are
// logged and swallowed.
func (sc *ScanCache) Set(ctx context.Context, key string, result *rules.ScanResult) {
	data, err := json.Marshal(result)
	if err != nil {
		sc.logger.Error("Failed to marshal scan result for caching", zap.Error(err))
		return
	}
	if err := sc.client.Set(ctx, key, data, sc.config.DefaultTTL).Err(); err != nil {
		sc.logger.Error("Failed to cache scan result", zap.Error(err))
	}
}

// Stats returns hit/miss counters plus Redis-side key count and memory use.
func (sc *ScanCache) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		Hits:   sc.hits.Load(),
		Misses: sc.misses.Load(),
	}
	if total := stats.Hits + stats.Misses; total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total) * 100
	}

	info, err := sc.client.Info(ctx, "memory").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get Redis info: %w", err)
	}
	for _, line := range strings.Split(info, "\r\n") {
		if memStr, ok := strings.CutPrefix(line, "used_memory:"); ok {
			if mem, err := strconv.ParseInt(memStr, 10, 64); err == nil {
				stats.MemoryUsage = mem
			}
		}
	}

	if keys, err := sc.client.DBSize(ctx).Result(); err == nil {
		stats.TotalKeys = keys
	}
	return stats, nil
}

// Clear removes all cached scan results under the configured prefix.
func (sc *ScanCache) Clear(ctx context.Context) error {
	pattern := sc.config.KeyPrefix + ":scan:*"

	iter := sc.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	batchSize := 100
	for i := 0; i < len(keys); i += batchSize {
		end := i + batchSize
		if end > len(keys) {
			end = len(keys)
		}
		if err := sc.client.Del(ctx, keys[i:end]...).Err(); err != nil {
			return fmt.Errorf("failed to delete cache keys: %w", err)
		}
	}

	sc.logger.Info("Scan cache cleared", zap.Int("deleted_keys", len(keys)))
	return nil
}

// Close closes the Redis connection.
func (sc *ScanCache) Close() error {
	if sc.client != nil {
		return sc.client.Close()
	}
	return nil
}

// maskRedisURL hides the password portion of a Redis URL for logging.
func maskRedisURL(url string) string {
	if strings.Contains(url, "@") {
		parts := strings.Split(url, "@")
		if len(parts) >= 2 {
			userPart := parts[0]
			if strings.Contains(userPart, ":") {
				userParts := strings.Split(userPart, ":")
				if len(userParts) >= 3 {
					userParts[len(userParts)-1] = "***"
					parts[0] = strings.Join(userParts, ":")
				}
			}
			return strings.Join(parts, "@")
		}
	}
	return url
}
