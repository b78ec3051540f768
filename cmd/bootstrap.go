package cmd

import (
	"fmt"

	"craftstore/core/config"
	"craftstore/core/database"
	"craftstore/core/logger"
	"craftstore/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what every command needs.
type runtime struct {
	cfg   *config.Config
	log   *zap.Logger
	store storage.Client
	db    *gorm.DB
}

// bootstrap loads configuration, the logger and the storage client. The database is
// optional: a failed connection is logged and leaves db nil.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	rt := &runtime{cfg: cfg, log: logg, store: store}
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		rt.db = conn
		logg.Info("Connected to inventory database", zap.String("driver", cfg.Database.Driver))
	}

	return rt, nil
}
