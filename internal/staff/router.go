package staff

import (
	"github.com/gin-gonic/gin"
)

// SetupStaffRoutes mounts the staff console routes
func SetupStaffRoutes(rg *gin.RouterGroup, controller *Controller, requireStaff gin.HandlerFunc) {
	staff := rg.Group("/events/:event_id/staff")
	staff.Use(requireStaff)
	{
		staff.GET("/dashboard", controller.Dashboard)
		staff.POST("/promote", controller.Promote)
		staff.POST("/seat", controller.Seat)
	}
}
