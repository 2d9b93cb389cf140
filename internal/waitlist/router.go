package waitlist

import (
	"github.com/gin-gonic/gin"
)

// SetupWaitlistRoutes mounts the guest queue routes and the staff listing
func SetupWaitlistRoutes(rg *gin.RouterGroup, controller *Controller, requireStaff gin.HandlerFunc) {
	waitlist := rg.Group("/events/:event_id/waitlist")
	{
		// Guests join and poll their own entry without credentials
		waitlist.POST("", controller.JoinWaitlist)
		waitlist.GET("/:entry_id", controller.GetEntry)

		waitlist.GET("", requireStaff, controller.ListEntries)
	}
}
