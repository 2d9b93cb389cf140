package middleware

import (
	"net/http"
	"strings"
	"time"

	"waitwise/internal/shared/apperror"
	"waitwise/internal/shared/config"
	"waitwise/internal/shared/utils/response"
	"waitwise/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Context keys set by RequireStaff
const (
	StaffRoleKey   = "user_role"
	StaffMethodKey = "auth_method"
)

// RequireStaff accepts either the demo API key or the demo bearer token
func RequireStaff(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		method, ok := authenticate(c, cfg)
		if !ok {
			logger.GetDefault().LogAuthFailure(c.Request.Context(), "missing or invalid credentials", c.ClientIP())
			response.RespondStatusError(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing or invalid authentication")
			return
		}

		c.Set(StaffRoleKey, "staff")
		c.Set(StaffMethodKey, method)
		c.Next()
	}
}

func authenticate(c *gin.Context, cfg config.AuthConfig) (string, bool) {
	if key := c.GetHeader("X-API-Key"); key != "" && key == cfg.DemoAPIKey {
		return "api_key", true
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" && parts[1] == cfg.DemoToken {
		return "bearer", true
	}
	return "", false
}

// RequestID records the caller's X-Request-ID for error bodies and logs
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = response.DefaultRequestID
		} else {
			c.Header("X-Request-ID", id)
		}
		c.Set(response.RequestIDKey, id)
		c.Next()
	}
}

// RequestLogger logs every request once it completes
func RequestLogger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.WithRequestID(response.RequestID(c)).LogHTTPRequest(c, time.Since(start))
	}
}

// CORS builds the cross-origin policy from the configured allow-list
func CORS(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-API-Key", "X-Request-ID", "Idempotency-Key"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
