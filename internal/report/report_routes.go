package report

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	reports := r.Group("/reports")
	{
		reports.GET("/new-hires", h.NewHires)
		reports.GET("/new-hires/export", h.ExportNewHires)
		reports.GET("/resignations", h.Resignations)
		reports.GET("/resignations/export", h.ExportResignations)
		reports.GET("/transfers", h.Transfers)
		reports.GET("/transfers/export", h.ExportTransfers)
	}
}
