package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lvgroup1/eksperti-sub000/catalog"
	"github.com/lvgroup1/eksperti-sub000/database"
	"github.com/lvgroup1/eksperti-sub000/estimate"
)

// EstimateHandler assembles estimates and exports them as xlsx workbooks.
type EstimateHandler struct {
	store     *catalog.Store
	db        *database.ServiceDB
	exporter  *estimate.Exporter
	exportDir string
}

// NewEstimateHandler creates the estimate export handler.
func NewEstimateHandler(store *catalog.Store, db *database.ServiceDB, exportDir string) *EstimateHandler {
	return &EstimateHandler{
		store:     store,
		db:        db,
		exporter:  estimate.NewExporter(),
		exportDir: exportDir,
	}
}

// ExportRequest is the export payload: the insurer whose catalog prices
// the estimate, plus everything the expert entered.
type ExportRequest struct {
	Insurer string          `json:"insurer"`
	Author  string          `json:"author"`
	Intake  estimate.Intake `json:"intake"`
}

// ExportResponse describes the generated workbook.
type ExportResponse struct {
	ID       string  `json:"id"`
	Filename string  `json:"filename"`
	Total    float64 `json:"total"`
	Rows     int     `json:"rows"`
}

// Export assembles the estimate, renders the workbook and appends it to
// the generated files list.
// @Summary Export an estimate
// @Description Prices the intake against the insurer catalog and returns the stored workbook metadata.
// @Tags estimates
// @Accept json
// @Produce json
// @Param request body ExportRequest true "Estimate intake"
// @Success 200 {object} ExportResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /estimates/export [post]
func (h *EstimateHandler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendJSONError(c, http.StatusBadRequest, "Invalid export payload")
		return
	}
	if strings.TrimSpace(req.Insurer) == "" {
		SendJSONError(c, http.StatusBadRequest, "insurer is required")
		return
	}

	cat := h.store.Catalog(req.Insurer)
	export := estimate.Assemble(req.Intake, cat)

	payload, err := h.exporter.Bytes(export)
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "Failed to render workbook")
		return
	}

	filename := exportFilename(req.Insurer, time.Now())
	saved, err := h.db.AppendGeneratedFile(database.GeneratedFile{
		Filename: filename,
		Author:   req.Author,
		Payload:  payload,
	})
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "Failed to store generated file")
		return
	}

	// The database copy is the record; the disk copy is for opening the
	// workbook directly on the assessor's machine.
	if h.exportDir != "" {
		if err := os.WriteFile(filepath.Join(h.exportDir, filename), payload, 0o644); err != nil {
			SendJSONError(c, http.StatusInternalServerError, "Failed to write export file")
			return
		}
	}

	SendJSONResponse(c, http.StatusOK, ExportResponse{
		ID:       saved.ID,
		Filename: saved.Filename,
		Total:    export.Total(),
		Rows:     len(export.Actions),
	})
}

func exportFilename(insurer string, ts time.Time) string {
	return fmt.Sprintf("tame_%s_%s.xlsx", insurer, ts.Format("2006-01-02_150405"))
}
