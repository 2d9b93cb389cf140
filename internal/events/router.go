package events

import (
	"github.com/gin-gonic/gin"
)

// SetupEventRoutes mounts event management; every route is staff-only
func SetupEventRoutes(router *gin.RouterGroup, controller Controller, requireStaff gin.HandlerFunc) {
	staffEvents := router.Group("/events")
	staffEvents.Use(requireStaff)
	{
		staffEvents.POST("", controller.CreateEvent)        // POST /v1/events
		staffEvents.GET("/:event_id", controller.GetEvent) // GET /v1/events/:event_id
	}
}
