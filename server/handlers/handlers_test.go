package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/lvgroup1/eksperti-sub000/catalog"
	"github.com/lvgroup1/eksperti-sub000/database"
)

const testCatalogJSON = `{
	"insurer": "bta",
	"version": "v2",
	"currency": "EUR",
	"items": [
		{"id": "GRI:001", "category": "Griesti", "name": "Gruntēšana", "unit": "m2", "labor": 1.5, "materials": 0.5},
		{"id": "SIE:001", "category": "Sienas", "name": "Sienu virsmas attīrīšana", "unit": "m2", "cena": 2.0},
		{"id": "SIE:002", "category": "Sienas", "name": "Krāsošana divās kārtās", "unit": "m2", "labor": 2.5, "materials": 1.2}
	]
}`

func newTestStore(t *testing.T) *catalog.Store {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "bta_v2.json"), []byte(testCatalogJSON), 0o644)
	require.NoError(t, err)
	return catalog.NewStore(dir)
}

func newTestDB(t *testing.T) *database.ServiceDB {
	t.Helper()
	db, err := database.NewServiceDB(filepath.Join(t.TempDir(), "service_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
