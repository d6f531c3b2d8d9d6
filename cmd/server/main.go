// @title Eksperti Estimate API
// @version 1.0
// @description Insurance damage assessment intake and estimate export service.

// @host localhost:8787
// @BasePath /api
// @schemes http

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lvgroup1/eksperti-sub000/catalog"
	"github.com/lvgroup1/eksperti-sub000/database"
	"github.com/lvgroup1/eksperti-sub000/internal/config"
	"github.com/lvgroup1/eksperti-sub000/server"
)

func main() {
	log.Println("starting eksperti estimate server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		log.Fatalf("failed to create export directory %s: %v", cfg.ExportDir, err)
	}

	dbConfig := database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
	db, err := database.NewServiceDBWithConfig(cfg.ServiceDatabasePath, dbConfig)
	if err != nil {
		log.Fatalf("failed to open service database: %v", err)
	}
	defer db.Close()
	log.Printf("service database: %s", cfg.ServiceDatabasePath)

	store := catalog.NewStore(cfg.CatalogDir)
	log.Printf("catalog directory: %s", cfg.CatalogDir)

	srv := server.NewServer(cfg, db, store)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("received %v, shutting down...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	log.Println("server stopped")
}
