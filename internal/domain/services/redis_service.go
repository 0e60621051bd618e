package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/OussemaDev7/AfarTech-Project/internal/domain/models"
	"github.com/OussemaDev7/AfarTech-Project/internal/infrastructure/config"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheNotifications(adminID uint, notifications []models.Notification, expiration time.Duration) error
	GetCachedNotifications(adminID uint) ([]models.Notification, error)
	InvalidateNotifications(adminID uint) error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// 1 Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// 4 CacheNotifications caches an admin's notification list
func (s *RedisService) CacheNotifications(adminID uint, notifications []models.Notification, expiration time.Duration) error {
	return s.Set(notificationsKey(adminID), notifications, expiration)
}

// 5 GetCachedNotifications returns a cached notification list, or a redis.Nil
// error on a cache miss
func (s *RedisService) GetCachedNotifications(adminID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.Get(notificationsKey(adminID), &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// 6 InvalidateNotifications drops an admin's cached notification list
func (s *RedisService) InvalidateNotifications(adminID uint) error {
	return s.Delete(notificationsKey(adminID))
}

func notificationsKey(adminID uint) string {
	return fmt.Sprintf("admin:%d:notifications", adminID)
}
