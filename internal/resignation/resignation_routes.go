package resignation

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	resignations := r.Group("/resignations")
	{
		resignations.GET("", h.GetAll)
		resignations.POST("", h.Create)
		resignations.DELETE("/:id", h.Delete)
	}
}
