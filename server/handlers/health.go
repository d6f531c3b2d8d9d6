package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lvgroup1/eksperti-sub000/catalog"
	"github.com/lvgroup1/eksperti-sub000/database"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	store *catalog.Store
	db    *database.ServiceDB
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(store *catalog.Store, db *database.ServiceDB) *HealthHandler {
	return &HealthHandler{store: store, db: db}
}

// Health reports database reachability and the loaded catalogs.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "ok"
	if err := h.db.Ping(); err != nil {
		dbStatus = "unreachable"
	}

	SendJSONResponse(c, http.StatusOK, gin.H{
		"status":   "ok",
		"database": dbStatus,
		"insurers": h.store.Insurers(),
	})
}
