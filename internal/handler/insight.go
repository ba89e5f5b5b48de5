package handler

import (
	"net/http"

	"github.com/fady121/alfady/internal/service"

	"github.com/gin-gonic/gin"
)

type InsightHandler struct{ svc service.InsightService }

func NewInsightHandler(svc service.InsightService) *InsightHandler {
	return &InsightHandler{svc: svc}
}

// Insights godoc
// @Summary Model-generated commentary on the last month of sales
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.InsightsResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/insights [post]
func (h *InsightHandler) Insights(c *gin.Context) {
	resp, err := h.svc.Insights(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
