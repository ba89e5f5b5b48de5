package handler

import (
	"net/http"

	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/service"

	"github.com/gin-gonic/gin"
)

type TreasuryHandler struct{ svc service.TreasuryService }

func NewTreasuryHandler(svc service.TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{svc: svc}
}

// Wallets godoc
// @Summary Derived balance of the four treasury wallets
// @Tags treasury
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TreasuryResponse
// @Router /v1/treasury [get]
func (h *TreasuryHandler) Wallets(c *gin.Context) {
	resp, err := h.svc.Wallets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddTransaction godoc
// @Summary Record a deposit or expense
// @Tags treasury
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/transactions [post]
func (h *TreasuryHandler) AddTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListTransactions godoc
// @Summary List general transactions in a time range
// @Tags treasury
// @Produce json
// @Security BearerAuth
// @Param range query string false "today | week | month | year | custom | all"
// @Success 200 {object} dto.TransactionListResponse
// @Router /v1/transactions [get]
func (h *TreasuryHandler) ListTransactions(c *gin.Context) {
	var filter dto.ReportFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteTransaction godoc
// @Summary Delete a general transaction
// @Tags treasury
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/transactions/{id} [delete]
func (h *TreasuryHandler) DeleteTransaction(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
