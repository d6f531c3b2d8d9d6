package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lvgroup1/eksperti-sub000/catalog"
	"github.com/lvgroup1/eksperti-sub000/catalog/algorithms"
)

// CatalogHandler serves normalized pricing catalogs.
type CatalogHandler struct {
	store *catalog.Store
}

// NewCatalogHandler creates a catalog handler over a store.
func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// GetCatalog returns the full normalized catalog for an insurer.
// @Summary Get insurer catalog
// @Description Returns the normalized pricing catalog for one insurer.
// @Tags catalogs
// @Produce json
// @Param insurer path string true "Insurer key, e.g. bta"
// @Success 200 {object} map[string]interface{}
// @Router /catalogs/{insurer} [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	insurer := c.Param("insurer")
	cat := h.store.Catalog(insurer)

	SendJSONResponse(c, http.StatusOK, gin.H{
		"insurer":  cat.Insurer,
		"version":  cat.Version,
		"currency": cat.Currency,
		"items":    cat.Items,
	})
}

// ListItems returns catalog items, optionally filtered by a folded
// substring match on name and category.
// @Summary List catalog items
// @Description Lists catalog items for an insurer, filtered by the q parameter.
// @Tags catalogs
// @Produce json
// @Param insurer path string true "Insurer key"
// @Param q query string false "Substring filter, diacritic and case insensitive"
// @Success 200 {object} map[string]interface{}
// @Router /catalogs/{insurer}/items [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	cat := h.store.Catalog(c.Param("insurer"))
	query := algorithms.FoldKey(c.Query("q"))

	items := cat.Items
	if query != "" {
		items = []catalog.CatalogItem{}
		for _, item := range cat.Items {
			if strings.Contains(algorithms.FoldKey(item.Name), query) ||
				strings.Contains(algorithms.FoldKey(item.Category), query) {
				items = append(items, item)
			}
		}
	}

	SendJSONResponse(c, http.StatusOK, gin.H{
		"insurer": cat.Insurer,
		"count":   len(items),
		"items":   items,
	})
}
