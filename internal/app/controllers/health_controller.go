package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OussemaDev7/AfarTech-Project/internal/domain/services/container"
	"github.com/OussemaDev7/AfarTech-Project/internal/error/code"
	"github.com/OussemaDev7/AfarTech-Project/internal/error/response"
)

// HealthController handles health check requests
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler dispatching to the health controller
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// Ping is the liveness endpoint
func (c *HealthController) Ping() {
	response.OK(c.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status reports database reachability and connection pool statistics
func (c *HealthController) Status() {
	pool := c.Container.GetPool()

	dbStatus := "up"
	if err := pool.HealthCheck(); err != nil {
		dbStatus = "down"
	}

	poolStats, err := pool.Stats()
	if err != nil {
		poolStats = map[string]interface{}{}
	}

	response.OK(c.Ctx, gin.H{
		"status":    "healthy",
		"database":  dbStatus,
		"pool":      poolStats,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
