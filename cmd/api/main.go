package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	pg "patient-care-manager/internal/adapters/storage/postgres"
	"patient-care-manager/internal/config"
	"patient-care-manager/internal/platform/logger"
	"patient-care-manager/internal/router"
)

// @title Patient Care Manager API
// @version 0.1
// @description CRUD de pacientes: alta, edición con reconciliación contra valores guardados, baja e historial de cambios.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			// sin Postgres arrancamos igual con el store in-memory
			appLog.Warn("postgres unavailable, using in-memory store", map[string]any{
				"error": err.Error(),
			})
			db = nil
		} else {
			defer db.Close()
		}
	}

	r := router.NewRouter(router.Options{DB: db, Log: appLog})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	appLog.Info("starting server", map[string]any{
		"addr":    addr,
		"storage": storageName(db),
	})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		appLog.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func storageName(db *sql.DB) string {
	if db != nil {
		return "postgres"
	}
	return "memory"
}
