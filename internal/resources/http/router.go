package http

import "github.com/gin-gonic/gin"

// RegisterProjectRoutes attaches the hardware-set routes underneath the
// projects group.
func (h *Handler) RegisterProjectRoutes(projectsGroup *gin.RouterGroup) {
	projectsGroup.GET("/:projectId/resources", h.list)
	projectsGroup.POST("/:projectId/resources/:hwsetId/checkout", h.checkout)
	projectsGroup.POST("/:projectId/resources/:hwsetId/checkin", h.checkin)
}
