// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	_ "waitwise/docs"
	"waitwise/internal/auth"
	"waitwise/internal/devicesync"
	"waitwise/internal/events"
	"waitwise/internal/notifications"
	"waitwise/internal/shared/config"
	"waitwise/internal/shared/database"
	"waitwise/internal/shared/middleware"
	"waitwise/internal/staff"
	"waitwise/internal/store"
	"waitwise/internal/waitlist"
	"waitwise/pkg/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	store     store.Store
	publisher notifications.Publisher

	// Built once so the versioned and unversioned mounts share state
	authController     *auth.Controller
	eventController    events.Controller
	waitlistController *waitlist.Controller
	staffController    *staff.Controller
	syncController     *devicesync.Controller
	requireStaff       gin.HandlerFunc
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, s store.Store, publisher notifications.Publisher) *Router {
	r := &Router{
		config:    cfg,
		db:        db,
		store:     s,
		publisher: publisher,
	}
	r.buildControllers()
	return r
}

func (r *Router) buildControllers() {
	var cacheService cache.Service
	var idem *devicesync.IdempotencyStore
	if rdb := r.db.GetRedisClient(); rdb != nil {
		cacheService = cache.NewService(rdb)
		idem = devicesync.NewIdempotencyStore(rdb, r.config.Redis.IdempotencyTTL)
	}

	waitlistService := waitlist.NewService(r.store, r.publisher)
	staffService := staff.NewService(r.store, r.publisher)
	if cacheService != nil {
		waitlistService.SetCacheService(cacheService)
		staffService.SetCacheService(cacheService, r.config.Redis.DashboardTTL)
	}

	r.authController = auth.NewController(auth.NewService(r.config.Auth))
	r.eventController = events.NewController(events.NewService(r.store, r.publisher))
	r.waitlistController = waitlist.NewController(waitlistService)
	r.staffController = staff.NewController(staffService)
	r.syncController = devicesync.NewController(devicesync.NewService(), idem)
	r.requireStaff = middleware.RequireStaff(r.config.Auth)
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Versioned contract
	r.setupAPIRoutes(engine.Group(r.config.GetAPIBasePath()))

	// Unversioned aliases for older clients
	r.setupAPIRoutes(&engine.RouterGroup)
}

func (r *Router) setupAPIRoutes(api *gin.RouterGroup) {
	auth.NewRouter(r.authController).SetupRoutes(api)
	events.SetupEventRoutes(api, r.eventController, r.requireStaff)
	waitlist.SetupWaitlistRoutes(api, r.waitlistController, r.requireStaff)
	staff.SetupStaffRoutes(api, r.staffController, r.requireStaff)
	devicesync.SetupSyncRoutes(api, r.syncController, r.requireStaff)
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"service":     r.config.AppName,
			"api_version": r.config.APIVersion,
			"redis":       r.db.GetRedisClient() != nil,
			"timestamp":   time.Now(),
		})
	})
}
