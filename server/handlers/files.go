package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lvgroup1/eksperti-sub000/database"
	apperrors "github.com/lvgroup1/eksperti-sub000/server/errors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FilesHandler serves the generated files list and downloads.
type FilesHandler struct {
	db *database.ServiceDB
}

// NewFilesHandler creates the generated files handler.
func NewFilesHandler(db *database.ServiceDB) *FilesHandler {
	return &FilesHandler{db: db}
}

// List returns the generated files in append order, metadata only.
// @Summary List generated files
// @Tags files
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /files [get]
func (h *FilesHandler) List(c *gin.Context) {
	files, err := h.db.ListGeneratedFiles()
	if err != nil {
		SendAppError(c, apperrors.NewInternalError("failed to list generated files", err))
		return
	}

	SendJSONResponse(c, http.StatusOK, gin.H{
		"count": len(files),
		"files": files,
	})
}

// Download streams one generated workbook by id.
// @Summary Download a generated file
// @Tags files
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Generated file id"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{}
// @Router /files/{id} [get]
func (h *FilesHandler) Download(c *gin.Context) {
	file, err := h.db.GetGeneratedFile(c.Param("id"))
	if err != nil {
		SendAppError(c, apperrors.NewInternalError("failed to load generated file", err))
		return
	}
	if file == nil {
		SendAppError(c, apperrors.NewNotFoundError("Generated file not found", nil))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, xlsxContentType, file.Payload)
}
