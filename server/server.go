package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lvgroup1/eksperti-sub000/catalog"
	"github.com/lvgroup1/eksperti-sub000/database"
	"github.com/lvgroup1/eksperti-sub000/internal/config"
	"github.com/lvgroup1/eksperti-sub000/server/handlers"
	"github.com/lvgroup1/eksperti-sub000/server/middleware"
)

// Server wires the catalog store, the estimate engine and the service
// database behind the HTTP API.
type Server struct {
	cfg        *config.Config
	store      *catalog.Store
	db         *database.ServiceDB
	engine     *gin.Engine
	httpServer *http.Server
}

// NewServer builds the server with all routes registered.
func NewServer(cfg *config.Config, db *database.ServiceDB, store *catalog.Store) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(
		middleware.GinRequestIDMiddleware(),
		middleware.GinLoggerMiddleware(),
		middleware.GinRecoveryMiddleware(),
		middleware.GinCORSMiddleware(),
	)

	s := &Server{
		cfg:    cfg,
		store:  store,
		db:     db,
		engine: engine,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: engine,
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	auth := handlers.NewAuthHandler(s.cfg.LoginUser, s.cfg.LoginPassword)
	catalogs := handlers.NewCatalogHandler(s.store)
	positions := handlers.NewPositionsHandler(s.store)
	estimates := handlers.NewEstimateHandler(s.store, s.db, s.cfg.ExportDir)
	files := handlers.NewFilesHandler(s.db)
	health := handlers.NewHealthHandler(s.store, s.db)

	api := s.engine.Group("/api")
	api.POST("/login", auth.Login)
	api.GET("/health", health.Health)

	protected := api.Group("", auth.RequireAuth())
	protected.GET("/catalogs/:insurer", catalogs.GetCatalog)
	protected.GET("/catalogs/:insurer/items", catalogs.ListItems)
	protected.GET("/positions/:insurer", positions.ListCategories)
	protected.GET("/positions/:insurer/resolve", positions.Resolve)
	protected.POST("/estimates/export",
		middleware.GinRateLimitMiddleware(s.cfg.ExportRatePerSec, s.cfg.ExportBurst),
		estimates.Export)
	protected.GET("/files", files.List)
	protected.GET("/files/:id", files.Download)

	handlers.RegisterSwaggerRoutes(s.engine)
}

// Engine exposes the gin engine for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start runs the HTTP server until Shutdown or a listener error.
func (s *Server) Start() error {
	log.Printf("listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
