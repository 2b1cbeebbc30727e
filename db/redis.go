// db/redis.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/model"
)

// RedisClient stays nil when no address is configured; every helper below
// then degrades to a cache miss, an allowed request or a live session.
var RedisClient *redis.Client

func InitRedis() error {
	addr := viper.GetString("redis.addr")
	if addr == "" {
		logger.Warn("Redis address not configured; cache, rate limiting and session revocation disabled")
		return nil
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func CacheEmployee(ctx context.Context, employee *model.Employee) error {
	if RedisClient == nil {
		return nil
	}
	employeeJSON, err := json.Marshal(cachedEmployee{Employee: employee, ID: employee.ID})
	if err != nil {
		return fmt.Errorf("failed to marshal employee: %w", err)
	}

	key := fmt.Sprintf("employee:%d", employee.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, employeeJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache employee: %w", err)
	}

	logger.Debug("Employee cached successfully", zap.Int("employeeID", employee.ID))
	return nil
}

func GetCachedEmployee(ctx context.Context, employeeID int) (*model.Employee, error) {
	if RedisClient == nil {
		return nil, nil
	}
	key := fmt.Sprintf("employee:%d", employeeID)
	employeeJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Employee not found in cache", zap.Int("employeeID", employeeID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get employee from cache: %w", err)
	}

	cached := cachedEmployee{Employee: &model.Employee{}}
	err = json.Unmarshal([]byte(employeeJSON), &cached)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal employee: %w", err)
	}
	cached.Employee.ID = cached.ID

	logger.Debug("Employee retrieved from cache", zap.Int("employeeID", employeeID))
	return cached.Employee, nil
}

func DeleteCachedEmployee(ctx context.Context, employeeID int) error {
	if RedisClient == nil {
		return nil
	}
	key := fmt.Sprintf("employee:%d", employeeID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete employee from cache: %w", err)
	}
	logger.Debug("Employee deleted from cache", zap.Int("employeeID", employeeID))
	return nil
}

// cachedEmployee keeps the raw id, which the public JSON form hides.
type cachedEmployee struct {
	*model.Employee
	ID int `json:"id"`
}

// rateLimitEntry is one request in a sliding log. Members are unique so
// requests landing in the same nanosecond are all counted.
func rateLimitEntry(now int64) redis.Z {
	return redis.Z{Score: float64(now), Member: uuid.NewString()}
}

// RateLimit records a request under key in a sliding log of length per and
// reports whether at most limit requests fall inside it.
func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	if RedisClient == nil {
		return true, nil
	}
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, rateLimitEntry(now))
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

// RevokeSession marks a session token id as signed out until it would have
// expired anyway.
func RevokeSession(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if RedisClient == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	key := fmt.Sprintf("session:revoked:%s", tokenID)
	if err := RedisClient.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	logger.Debug("Session revoked", zap.String("tokenID", tokenID))
	return nil
}

func IsSessionRevoked(ctx context.Context, tokenID string) (bool, error) {
	if RedisClient == nil {
		return false, nil
	}
	key := fmt.Sprintf("session:revoked:%s", tokenID)
	n, err := RedisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session revocation: %w", err)
	}
	return n > 0, nil
}
