package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OussemaDev7/AfarTech-Project/internal/domain/services"
	"github.com/OussemaDev7/AfarTech-Project/internal/error/response"
	"github.com/OussemaDev7/AfarTech-Project/internal/infrastructure/config"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware wires the authentication middleware
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// extractToken strips the "Bearer " prefix off an Authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// Authenticate verifies the bearer token and stores the account claims in
// the request context under "adminID", "role" and "claims".
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			return
		}

		claims, err := jwtService.ExtractClaims(extractToken(authHeader))
		if err != nil {
			response.Unauthorized(c, "Invalid token: "+err.Error())
			return
		}

		c.Set("adminID", claims.Data.ID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}
