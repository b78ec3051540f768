package integrity

import (
	"context"

	"craftstore/core/masterdata"
	"craftstore/core/storage"
	"craftstore/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	cfg    masterdata.Config
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, cfg masterdata.Config, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
		db:     db,
	}
}

// CheckMasterData verifies the master data objects.
func (s *Service) CheckMasterData(ctx context.Context) (*checks.MasterDataReport, error) {
	return checks.CheckMasterData(ctx, s.client, s.bucket, s.cfg)
}

// CheckServer verifies the inventory schema.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db)
}
