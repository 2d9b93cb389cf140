package devicesync

import (
	"github.com/gin-gonic/gin"
)

// SetupSyncRoutes mounts the offline device sync endpoint
func SetupSyncRoutes(rg *gin.RouterGroup, controller *Controller, requireStaff gin.HandlerFunc) {
	rg.POST("/sync", requireStaff, controller.Sync)
}
