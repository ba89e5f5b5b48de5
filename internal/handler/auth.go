package handler

import (
	"net/http"

	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// RequestCode godoc
// @Summary Request a one-time login code via WhatsApp
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RequestCodeRequest true "Owner phone"
// @Success 200 {object} dto.RequestCodeResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/request-code [post]
func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req dto.RequestCodeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RequestCode(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Verify godoc
// @Summary Exchange a one-time code for a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.VerifyCodeRequest true "Phone and code"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyCodeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Verify(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Refresh an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
