package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/OussemaDev7/AfarTech-Project/docs"
	"github.com/OussemaDev7/AfarTech-Project/internal/app/controllers"
	"github.com/OussemaDev7/AfarTech-Project/internal/app/middleware"
	"github.com/OussemaDev7/AfarTech-Project/internal/domain/services/container"
	"github.com/OussemaDev7/AfarTech-Project/internal/infrastructure/config"
)

// SetupRouter assembles the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// The original API was served with all origins allowed.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	var redisClient *redis.Client
	if cfg.RedisEnabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.GetRedisAddr(),
			DB:   cfg.RedisDB,
		})
	}

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	middleware.InitAuthMiddleware(cfg, db)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	registerPublicRoutes(r, container)
	registerAuthenticatedRoutes(r, container)
}

// registerPublicRoutes registers the open surface: health checks and the
// admin account API
func registerPublicRoutes(r *gin.Engine, container *container.ServiceContainer) {
	public := r.Group("/")
	public.Use(middleware.IPRateLimiter(50, 100))

	// Health check routes
	public.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	public.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	public.GET("/health/status", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Second}), controllers.HandleHealthFunc(container, "status"))

	// Admin account routes
	adminGroup := public.Group("/admin")
	adminGroup.POST("", controllers.HandleAdminFunc(container, "createAdmin"))
	adminGroup.GET("", controllers.HandleAdminFunc(container, "getAdmins"))
	adminGroup.GET("/:id", controllers.HandleAdminFunc(container, "getAdmin"))
	adminGroup.PUT("/:id", controllers.HandleAdminFunc(container, "updateAdmin"))
	adminGroup.DELETE("/:id", controllers.HandleAdminFunc(container, "deleteAdmin"))
	adminGroup.GET("/:id/notifications", controllers.HandleNotificationFunc(container, "getAdminNotifications"))
	adminGroup.POST("/login", controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes registers routes behind bearer-token auth
func registerAuthenticatedRoutes(r *gin.Engine, container *container.ServiceContainer) {
	auth := r.Group("/auth")
	auth.Use(middleware.Authenticate())

	auth.GET("/me", controllers.HandleJWTFunc(container, "me"))
}
