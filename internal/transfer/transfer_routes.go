package transfer

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	transfers := r.Group("/position-transfers")
	{
		transfers.GET("", h.GetAll)
		transfers.POST("", h.Create)
		transfers.DELETE("/:id", h.Delete)
	}
}
