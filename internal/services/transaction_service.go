package services

import (
	"context"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/pkg/logger"
)

// TransactionService ingests device-reported transactions. Devices retry
// aggressively on flaky links, so duplicate transaction IDs are expected
// and surface as ErrDuplicate for the handler to map to a conflict.
type TransactionService interface {
	Ingest(ctx context.Context, transaction *models.Transaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Transaction, int64, error)
	ListByDateRange(ctx context.Context, from, to time.Time, params *utils.PaginationParams) ([]*models.Transaction, int64, error)
}

type transactionService struct {
	transactionRepo interfaces.TransactionRepository
	deviceRepo      interfaces.DeviceRepository
	logger          *logger.Logger
}

func NewTransactionService(
	transactionRepo interfaces.TransactionRepository,
	deviceRepo interfaces.DeviceRepository,
	logger *logger.Logger,
) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		deviceRepo:      deviceRepo,
		logger:          logger,
	}
}

func (s *transactionService) Ingest(ctx context.Context, transaction *models.Transaction) error {
	if _, err := s.deviceRepo.GetByCode(ctx, transaction.DeviceCode); err != nil {
		return err
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return err
	}

	s.logger.WithTransactionID(transaction.TransactionID).
		WithDeviceCode(transaction.DeviceCode).
		Info("Transaction ingested")

	return nil
}

func (s *transactionService) GetByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	return s.transactionRepo.GetByTransactionID(ctx, transactionID)
}

func (s *transactionService) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	return s.transactionRepo.List(ctx, params)
}

func (s *transactionService) ListByDateRange(ctx context.Context, from, to time.Time, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	return s.transactionRepo.ListByDateRange(ctx, from, to, params)
}
