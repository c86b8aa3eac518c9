package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pharmacare/m/internal/api"
	"pharmacare/m/internal/config"
	"pharmacare/m/internal/database"
	"pharmacare/m/internal/logger"
	"pharmacare/m/internal/migrations"
	"pharmacare/m/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init("pharmacare")
	log := logger.L()
	defer log.Sync()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	if cfg.SeedFile != "" {
		seed.LoadProducts(db, log, cfg.SeedFile)
	}

	handler := api.New(db, log)

	log.Info("pharmacare server starting", zap.String("port", cfg.HTTPPort))
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
