package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/strideline/routes-backend-go/internal/api"
	"github.com/strideline/routes-backend-go/internal/config"
	"github.com/strideline/routes-backend-go/internal/database"
	"github.com/strideline/routes-backend-go/internal/logger"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zlog, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		zlog.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.InitSchema(db); err != nil {
		zlog.Fatal("Failed to initialize schema", zap.Error(err))
	}

	router := api.SetupRouter(cfg, db, zlog)

	zlog.Info("Server starting", zap.String("port", cfg.Port), zap.String("db", cfg.DBPath))
	if err := router.Run(cfg.Port); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}
}
