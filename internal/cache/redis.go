package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	trainsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, trainsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		trainsTTL: trainsTTL,
	}
}

func (c *RedisCache) GetTrains(ctx context.Context) ([]domain.Train, error) {
	data, err := c.client.Get(ctx, trainsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var trains []domain.Train
	if err := json.Unmarshal(data, &trains); err != nil {
		return nil, err
	}
	return trains, nil
}

func (c *RedisCache) SetTrains(ctx context.Context, trains []domain.Train) error {
	payload, err := json.Marshal(trains)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, trainsKey(), payload, c.trainsTTL).Err()
}

func (c *RedisCache) InvalidateTrains(ctx context.Context) error {
	return c.client.Del(ctx, trainsKey()).Err()
}

// AcquireTrainLock serializes bookings against one train: the availability
// read and the ticket append must not interleave with another booking.
func (c *RedisCache) AcquireTrainLock(ctx context.Context, trainID int64, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, trainLockKey(trainID), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseTrainLock(ctx context.Context, trainID int64) error {
	return c.client.Del(ctx, trainLockKey(trainID)).Err()
}

func trainsKey() string {
	return "cache:trains"
}

func trainLockKey(trainID int64) string {
	return fmt.Sprintf("lock:train:%d", trainID)
}
