package position

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	positions := r.Group("/positions")
	{
		positions.GET("", h.GetAll)
		positions.POST("", h.Create)
		positions.GET("/:id", h.GetById)
		positions.PUT("/:id", h.Update)
		positions.DELETE("/:id", h.Delete)
	}
}
