package report

import (
	"fmt"
	"net/http"
	"time"

	"hrms/internal/shared/apperror"
	"hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func dateRangeParams(c *gin.Context) (string, string) {
	return c.Query("start_date"), c.Query("end_date")
}

func (h *Handler) NewHires(c *gin.Context) {
	start, end := dateRangeParams(c)
	resp, err := h.service.NewHires(c.Request.Context(), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Resignations(c *gin.Context) {
	start, end := dateRangeParams(c)
	resp, err := h.service.Resignations(c.Request.Context(), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Transfers(c *gin.Context) {
	start, end := dateRangeParams(c)
	resp, err := h.service.Transfers(c.Request.Context(), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) ExportNewHires(c *gin.Context) {
	start, end := dateRangeParams(c)
	buf, err := h.service.ExportNewHires(c.Request.Context(), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeAttachment(c, "new_hires", buf.Bytes())
}

func (h *Handler) ExportResignations(c *gin.Context) {
	start, end := dateRangeParams(c)
	buf, err := h.service.ExportResignations(c.Request.Context(), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeAttachment(c, "resignations", buf.Bytes())
}

func (h *Handler) ExportTransfers(c *gin.Context) {
	start, end := dateRangeParams(c)
	buf, err := h.service.ExportTransfers(c.Request.Context(), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeAttachment(c, "transfers", buf.Bytes())
}

func (h *Handler) writeAttachment(c *gin.Context, name string, payload []byte) {
	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment;filename="+filename)
	c.Data(http.StatusOK, xlsxContentType, payload)
}
