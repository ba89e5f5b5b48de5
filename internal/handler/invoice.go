package handler

import (
	"net/http"
	"os"

	"github.com/fady121/alfady/internal/apierror"
	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/infra"
	"github.com/fady121/alfady/internal/model"
	"github.com/fady121/alfady/internal/repository"
	"github.com/fady121/alfady/internal/service"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	svc         service.InvoiceService
	repo        repository.InvoiceRepository
	receiptPath string
}

func NewInvoiceHandler(svc service.InvoiceService, repo repository.InvoiceRepository, receiptPath string) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, repo: repo, receiptPath: receiptPath}
}

// Create godoc
// @Summary Create a sales / buy-back invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
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
// @Summary List invoices in a time range
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param range query string false "today | week | month | year | custom | all"
// @Param startDate query string false "YYYY-MM-DD (custom)"
// @Param endDate query string false "YYYY-MM-DD (custom)"
// @Success 200 {object} dto.InvoiceListResponse
// @Router /v1/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	var filter dto.InvoiceFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get one invoice with derived totals
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
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
// @Summary Replace an invoice's header and items
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param body body dto.UpdateInvoiceRequest true "Invoice"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateInvoiceRequest
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
// @Summary Delete an invoice with its items and payments
// @Tags invoices
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
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

// AddPayment godoc
// @Summary Append a signed payment to an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param body body dto.PaymentRequest true "Payment"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/invoices/{id}/payments [post]
func (h *InvoiceHandler) AddPayment(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddPayment(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Receipt godoc
// @Summary Download a PDF receipt for an invoice
// @Tags invoices
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /v1/invoices/{id}/receipt [get]
func (h *InvoiceHandler) Receipt(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	inv, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, apierror.NotFound("invoice not found"))
		return
	}
	path, err := infra.GenerateReceiptPDF(inv, h.receiptPath)
	if err != nil {
		respondError(c, err)
		return
	}
	defer os.Remove(path)
	c.FileAttachment(path, receiptFileName(inv))
}

func receiptFileName(inv *model.Invoice) string {
	return "receipt_" + inv.ID.String() + ".pdf"
}
