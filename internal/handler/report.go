package handler

import (
	"net/http"

	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{ svc service.ReportService }

func NewReportHandler(svc service.ReportService) *ReportHandler { return &ReportHandler{svc: svc} }

// Summary godoc
// @Summary Dashboard aggregate for a time range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param range query string false "today | week | month | year | custom | all"
// @Param startDate query string false "YYYY-MM-DD (custom)"
// @Param endDate query string false "YYYY-MM-DD (custom)"
// @Success 200 {object} dto.SummaryResponse
// @Router /v1/reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	var filter dto.ReportFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Trend godoc
// @Summary 30-day daily sales trend, zero-filled
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TrendResponse
// @Router /v1/reports/trend [get]
func (h *ReportHandler) Trend(c *gin.Context) {
	resp, err := h.svc.Trend(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Log godoc
// @Summary Unified activity log, newest first
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param range query string false "today | week | month | year | custom | all"
// @Success 200 {object} dto.LogResponse
// @Router /v1/log [get]
func (h *ReportHandler) Log(c *gin.Context) {
	var filter dto.ReportFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Log(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
