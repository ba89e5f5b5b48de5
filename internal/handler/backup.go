package handler

import (
	"fmt"
	"net/http"

	"github.com/fady121/alfady/internal/apierror"
	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BackupHandler struct{ svc service.BackupService }

func NewBackupHandler(svc service.BackupService) *BackupHandler { return &BackupHandler{svc: svc} }

// Export godoc
// @Summary Download the book of record as an xlsx workbook
// @Tags backup
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param range query string false "today | week | month | year | custom | all"
// @Success 200 {file} binary
// @Router /v1/export [get]
func (h *BackupHandler) Export(c *gin.Context) {
	var filter dto.ReportFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	f, name, err := h.svc.Export(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Import godoc
// @Summary Restore records from an exported workbook
// @Tags backup
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} dto.ImportResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/import [post]
func (h *BackupHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("missing file upload"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	resp, err := h.svc.Import(c.Request.Context(), file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
