package probation

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	periods := r.Group("/probation-periods")
	{
		periods.GET("", h.GetAll)
		periods.POST("", h.Create)
		periods.PUT("/:id", h.Update)
		periods.DELETE("/:id", h.Delete)
	}
}
