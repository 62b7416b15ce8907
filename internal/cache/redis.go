package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"exerciselog/internal/models"
)

const exercisesKey = "exercises:all"

// RedisClient caches the exercise catalog listing.
type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, redisURL string, ttl time.Duration) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisClientFrom(client, ttl), nil
}

// NewRedisClientFrom wraps an already configured go-redis client.
func NewRedisClientFrom(client *redis.Client, ttl time.Duration) *RedisClient {
	return &RedisClient{client: client, ttl: ttl}
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// GetExercises reports ok=false on a cache miss.
func (r *RedisClient) GetExercises(ctx context.Context) ([]models.Exercise, bool, error) {
	data, err := r.client.Get(ctx, exercisesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get exercises from Redis: %w", err)
	}

	var exercises []models.Exercise
	if err := json.Unmarshal(data, &exercises); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal exercises: %w", err)
	}
	return exercises, true, nil
}

func (r *RedisClient) SetExercises(ctx context.Context, exercises []models.Exercise) error {
	data, err := json.Marshal(exercises)
	if err != nil {
		return fmt.Errorf("failed to marshal exercises: %w", err)
	}
	if err := r.client.Set(ctx, exercisesKey, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store exercises in Redis: %w", err)
	}
	return nil
}

func (r *RedisClient) InvalidateExercises(ctx context.Context) error {
	return r.client.Del(ctx, exercisesKey).Err()
}

// GetStatus reports connectivity and pool counters.
func (r *RedisClient) GetStatus(ctx context.Context) map[string]interface{} {
	stats := r.client.PoolStats()
	status := map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}
	if err := r.client.Ping(ctx).Err(); err != nil {
		status["connected"] = false
		status["error"] = err.Error()
	}
	return status
}
