package services

import (
	"context"
	"fmt"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/pricing"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventBroadcaster pushes live parking events to connected dashboards.
type EventBroadcaster interface {
	SendParkingEvent(locationID primitive.ObjectID, eventType string, data map[string]interface{})
}

// VehicleEntryRequest is the gate payload reported when a vehicle enters.
// Field names follow the device firmware's JSON convention.
type VehicleEntryRequest struct {
	VehicleNumber string    `json:"vehicleNumber" validate:"required,vehicle_number"`
	VehicleType   string    `json:"vehicleType" validate:"required,object_id"`
	TransactionID string    `json:"transactionId" validate:"required"`
	EntryTime     time.Time `json:"entryTime" validate:"required"`
	DeviceCode    string    `json:"deviceId" validate:"required,device_code"`
}

// VehicleExitRequest is the gate payload reported when a vehicle exits.
// QRCode is optional; gates that scan the ticket send it and it must match
// the signature issued at entry.
type VehicleExitRequest struct {
	TransactionID string    `json:"transactionId" validate:"required"`
	ExitTime      time.Time `json:"exitTime" validate:"required"`
	DeviceCode    string    `json:"deviceId" validate:"required,device_code"`
	QRCode        string    `json:"qrCode"`
}

// ExitResult bundles the finalized session with its fee assessment.
type ExitResult struct {
	Entry      *models.VehicleEntry `json:"entry"`
	Assessment *pricing.Assessment  `json:"assessment"`
}

// SessionService manages parking sessions: one entry per transaction ID,
// finalized exactly once at exit when the fee is assessed.
type SessionService interface {
	RegisterEntry(ctx context.Context, request *VehicleEntryRequest) (*models.VehicleEntry, error)
	RegisterExit(ctx context.Context, request *VehicleExitRequest) (*ExitResult, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*models.VehicleEntry, error)
	ListActive(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error)
}

type sessionService struct {
	entryRepo    interfaces.VehicleEntryRepository
	categoryRepo interfaces.VehicleCategoryRepository
	deviceRepo   interfaces.DeviceRepository
	siteRepo     interfaces.SiteRepository
	locationRepo interfaces.LocationRepository
	feeService   FeeService
	broadcaster  EventBroadcaster
	qrSecret     string
	logger       *logger.Logger
}

func NewSessionService(
	entryRepo interfaces.VehicleEntryRepository,
	categoryRepo interfaces.VehicleCategoryRepository,
	deviceRepo interfaces.DeviceRepository,
	siteRepo interfaces.SiteRepository,
	locationRepo interfaces.LocationRepository,
	feeService FeeService,
	broadcaster EventBroadcaster,
	qrSecret string,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		deviceRepo:   deviceRepo,
		siteRepo:     siteRepo,
		locationRepo: locationRepo,
		feeService:   feeService,
		broadcaster:  broadcaster,
		qrSecret:     qrSecret,
		logger:       logger,
	}
}

func (s *sessionService) RegisterEntry(ctx context.Context, request *VehicleEntryRequest) (*models.VehicleEntry, error) {
	categoryID, err := primitive.ObjectIDFromHex(request.VehicleType)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle type: %w", err)
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("entry vehicle category: %w", err)
	}
	if !category.IsActive() {
		return nil, ErrInactiveRecord
	}

	site, location, err := s.resolveGate(ctx, request.DeviceCode)
	if err != nil {
		return nil, err
	}

	entry := &models.VehicleEntry{
		VehicleNumber: request.VehicleNumber,
		VehicleType:   categoryID.Hex(),
		TransactionID: request.TransactionID,
		EntryTime:     request.EntryTime,
		QRCode:        utils.GenerateHMAC(request.TransactionID, s.qrSecret),
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.adjustOccupancy(ctx, site, location, -1)

	s.logger.LogSessionEvent(entry.TransactionID, "vehicle_entry", map[string]interface{}{
		"vehicle_number": entry.VehicleNumber,
		"device_code":    request.DeviceCode,
	})
	if s.broadcaster != nil {
		s.broadcaster.SendParkingEvent(location.ID, "vehicle_entry", map[string]interface{}{
			"transaction_id": entry.TransactionID,
			"vehicle_number": entry.VehicleNumber,
			"entry_time":     entry.EntryTime,
		})
	}

	return entry, nil
}

func (s *sessionService) RegisterExit(ctx context.Context, request *VehicleExitRequest) (*ExitResult, error) {
	entry, err := s.entryRepo.GetByTransactionID(ctx, request.TransactionID)
	if err != nil {
		return nil, err
	}
	if entry.HasExited() {
		return nil, ErrAlreadyExited
	}
	if request.QRCode != "" && !utils.VerifyHMAC(request.TransactionID, request.QRCode, s.qrSecret) {
		return nil, ErrInvalidQRCode
	}
	if request.ExitTime.Before(entry.EntryTime) {
		return nil, fmt.Errorf("exit %s before entry: %w", request.TransactionID, pricing.ErrExitBeforeEntry)
	}

	categoryID, err := primitive.ObjectIDFromHex(entry.VehicleType)
	if err != nil {
		return nil, fmt.Errorf("stored vehicle type: %w", err)
	}
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("exit vehicle category: %w", err)
	}

	assessment, err := s.feeService.AssessExit(ctx, request.DeviceCode, category, entry.EntryTime, request.ExitTime)
	if err != nil {
		return nil, err
	}

	// The filter in FinalizeExit only matches open entries, so a concurrent
	// exit for the same transaction loses here.
	err = s.entryRepo.FinalizeExit(ctx, request.TransactionID, request.ExitTime, assessment.Amount, string(assessment.Classification))
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, ErrAlreadyExited
		}
		return nil, err
	}

	entry.ExitTime = &request.ExitTime
	entry.AmountPaid = &assessment.Amount
	entry.FeeClass = string(assessment.Classification)

	site, location, gateErr := s.resolveGate(ctx, request.DeviceCode)
	if gateErr == nil {
		s.adjustOccupancy(ctx, site, location, 1)
	}

	s.logger.LogFeeEvent(entry.TransactionID, assessment.Amount, string(assessment.Classification))
	if s.broadcaster != nil && gateErr == nil {
		s.broadcaster.SendParkingEvent(location.ID, "vehicle_exit", map[string]interface{}{
			"transaction_id": entry.TransactionID,
			"vehicle_number": entry.VehicleNumber,
			"amount":         assessment.Amount,
			"amount_display": utils.FormatCurrency(assessment.Amount, utils.DefaultCurrency),
			"classification": assessment.Classification,
		})
	}

	return &ExitResult{Entry: entry, Assessment: assessment}, nil
}

func (s *sessionService) GetByTransactionID(ctx context.Context, transactionID string) (*models.VehicleEntry, error) {
	return s.entryRepo.GetByTransactionID(ctx, transactionID)
}

func (s *sessionService) ListActive(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error) {
	return s.entryRepo.ListActive(ctx, params)
}

func (s *sessionService) List(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error) {
	return s.entryRepo.List(ctx, params)
}

func (s *sessionService) resolveGate(ctx context.Context, deviceCode string) (*models.Site, *models.Location, error) {
	device, err := s.deviceRepo.GetByCode(ctx, deviceCode)
	if err != nil {
		return nil, nil, fmt.Errorf("gate device: %w", err)
	}
	site, err := s.siteRepo.GetByID(ctx, device.SiteID)
	if err != nil {
		return nil, nil, fmt.Errorf("gate site: %w", err)
	}
	location, err := s.locationRepo.GetByID(ctx, site.LocationID)
	if err != nil {
		return nil, nil, fmt.Errorf("gate location: %w", err)
	}

	return site, location, nil
}

// Occupancy counters are advisory; a failed adjustment is logged and does
// not fail the gate operation.
func (s *sessionService) adjustOccupancy(ctx context.Context, site *models.Site, location *models.Location, delta int) {
	if err := s.siteRepo.AdjustAvailableSpaces(ctx, site.ID, delta); err != nil {
		s.logger.WithError(err).Warn("Failed to adjust site occupancy")
	}
	if err := s.locationRepo.AdjustAvailableSpaces(ctx, location.ID, delta); err != nil {
		s.logger.WithError(err).Warn("Failed to adjust location occupancy")
	}
}
