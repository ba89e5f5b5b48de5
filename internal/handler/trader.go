package handler

import (
	"net/http"

	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/service"

	"github.com/gin-gonic/gin"
)

type TraderHandler struct{ svc service.TraderService }

func NewTraderHandler(svc service.TraderService) *TraderHandler { return &TraderHandler{svc: svc} }

// Create godoc
// @Summary Register a gold or silver trader
// @Tags traders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateTraderRequest true "Trader"
// @Success 201 {object} dto.TraderResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/traders [post]
func (h *TraderHandler) Create(c *gin.Context) {
	var req dto.CreateTraderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List traders with derived balances
// @Tags traders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TraderListResponse
// @Router /v1/traders [get]
func (h *TraderHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get one trader with transactions and balances
// @Tags traders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trader ID"
// @Success 200 {object} dto.TraderDetailResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/traders/{id} [get]
func (h *TraderHandler) Get(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Rename a trader / change its phone
// @Tags traders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trader ID"
// @Param body body dto.UpdateTraderRequest true "Trader"
// @Success 200 {object} dto.TraderResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/traders/{id} [put]
func (h *TraderHandler) Update(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTraderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a trader and all of its transactions
// @Tags traders
// @Security BearerAuth
// @Param id path string true "Trader ID"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/traders/{id} [delete]
func (h *TraderHandler) Delete(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddTransaction godoc
// @Summary Record an exchange with a trader
// @Tags traders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trader ID"
// @Param body body dto.TraderTransactionRequest true "Transaction"
// @Success 201 {object} dto.TraderDetailResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/traders/{id}/transactions [post]
func (h *TraderHandler) AddTransaction(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.TraderTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddTransaction(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateTransaction godoc
// @Summary Correct a recorded trader transaction
// @Tags traders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trader ID"
// @Param txId path string true "Transaction ID"
// @Param body body dto.TraderTransactionRequest true "Transaction"
// @Success 200 {object} dto.TraderDetailResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/traders/{id}/transactions/{txId} [put]
func (h *TraderHandler) UpdateTransaction(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	txID, ok := parseUUID(c, "txId")
	if !ok {
		return
	}
	var req dto.TraderTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateTransaction(c.Request.Context(), id, txID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteTransaction godoc
// @Summary Delete one trader transaction
// @Tags traders
// @Security BearerAuth
// @Param id path string true "Trader ID"
// @Param txId path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/traders/{id}/transactions/{txId} [delete]
func (h *TraderHandler) DeleteTransaction(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	txID, ok := parseUUID(c, "txId")
	if !ok {
		return
	}
	if err := h.svc.DeleteTransaction(c.Request.Context(), id, txID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Account godoc
// @Summary Get a trader's derived balances only
// @Tags traders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trader ID"
// @Success 200 {object} ledger.TraderAccount
// @Failure 404 {object} apierror.APIError
// @Router /v1/traders/{id}/account [get]
func (h *TraderHandler) Account(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Account(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
