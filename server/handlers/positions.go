package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lvgroup1/eksperti-sub000/catalog"
)

// PositionsHandler resolves standard work packages from the position
// matrices.
type PositionsHandler struct {
	store *catalog.Store
}

// NewPositionsHandler creates a positions handler over a catalog store.
func NewPositionsHandler(store *catalog.Store) *PositionsHandler {
	return &PositionsHandler{store: store}
}

// ListCategories returns the surface categories with standard work
// packages for an insurer.
// @Summary List surface categories
// @Tags positions
// @Produce json
// @Param insurer path string true "Insurer key"
// @Success 200 {object} map[string]interface{}
// @Router /positions/{insurer} [get]
func (h *PositionsHandler) ListCategories(c *gin.Context) {
	insurer := c.Param("insurer")
	SendJSONResponse(c, http.StatusOK, gin.H{
		"insurer":    insurer,
		"categories": catalog.SurfaceCategories(insurer),
	})
}

// ResolvedStep is one work-package step with its catalog pricing, when the
// catalog carries the step.
type ResolvedStep struct {
	Step string               `json:"step"`
	Item *catalog.CatalogItem `json:"item,omitempty"`
}

// Resolve returns the ordered work steps for an insurer, category and
// finish, priced against the insurer catalog. A combination without a
// standard package yields an empty list.
// @Summary Resolve a work package
// @Tags positions
// @Produce json
// @Param insurer path string true "Insurer key"
// @Param category query string true "Surface category, e.g. sienas"
// @Param finish query string true "Finish choice"
// @Param variant query string false "Variant for dual-variant finishes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /positions/{insurer}/resolve [get]
func (h *PositionsHandler) Resolve(c *gin.Context) {
	insurer := c.Param("insurer")
	category := c.Query("category")
	finish := c.Query("finish")
	variant := c.Query("variant")

	if category == "" || finish == "" {
		SendJSONError(c, http.StatusBadRequest, "category and finish are required")
		return
	}

	steps := catalog.ResolveWorkPackage(insurer, category, finish, variant)

	cat := h.store.Catalog(insurer)
	idx := catalog.NewItemIndex(cat.Items)

	resolved := make([]ResolvedStep, 0, len(steps))
	for _, step := range steps {
		resolved = append(resolved, ResolvedStep{
			Step: step,
			Item: catalog.StepItem(idx, step),
		})
	}

	SendJSONResponse(c, http.StatusOK, gin.H{
		"insurer":  insurer,
		"category": category,
		"finish":   finish,
		"variant":  variant,
		"steps":    resolved,
	})
}
