package container

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/OussemaDev7/AfarTech-Project/internal/domain/services"
	"github.com/OussemaDev7/AfarTech-Project/internal/infrastructure/config"
	"github.com/OussemaDev7/AfarTech-Project/internal/infrastructure/database"
	Logger "github.com/OussemaDev7/AfarTech-Project/pkg/logger"
)

// ServiceContainer wires every service with its dependencies
type ServiceContainer struct {
	db     *gorm.DB
	pool   *database.ConnectionPool
	config *config.Config
	redis  *redis.Client

	jwtService          services.InterfaceJWTService
	redisService        services.InterfaceRedisService
	adminService        services.InterfaceAdminService
	notificationService services.InterfaceNotificationService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container. The redis client may
// be nil, in which case the notification read path runs uncached.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			Logger.Warning("redis ping failed: %v, running without cache", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		pool:   database.WrapDB(db),
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices builds every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config, c.db)

	if c.redis != nil {
		c.redisService = services.NewRedisService(c.config)
	}

	c.adminService = services.NewAdminService(c.db, c.config)
	c.notificationService = services.NewNotificationService(c.db, c.config, c.redisService)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "pool":
		return c.pool
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "admin":
		return c.adminService
	case "notification":
		return c.notificationService
	default:
		return nil
	}
}

// GetDB returns the GORM database instance
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetPool returns the database connection pool
func (c *ServiceContainer) GetPool() *database.ConnectionPool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pool
}
