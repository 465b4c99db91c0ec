package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/pricing"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/pkg/logger"
)

// FeeService turns a completed stay into a fee assessment. It resolves the
// pricing scope from the device the vehicle exits through, then defers to
// the pricing engine. A scope with no tariff does not fail the exit: the
// assessment comes back classified not_found with a zero amount so the gate
// can open and the fee can be settled manually.
type FeeService interface {
	AssessExit(ctx context.Context, deviceCode string, category *models.VehicleCategory, entryTime, exitTime time.Time) (*pricing.Assessment, error)
}

type feeService struct {
	deviceRepo interfaces.DeviceRepository
	siteRepo   interfaces.SiteRepository
	catalog    CatalogService
	logger     *logger.Logger
}

func NewFeeService(
	deviceRepo interfaces.DeviceRepository,
	siteRepo interfaces.SiteRepository,
	catalog CatalogService,
	logger *logger.Logger,
) FeeService {
	return &feeService{
		deviceRepo: deviceRepo,
		siteRepo:   siteRepo,
		catalog:    catalog,
		logger:     logger,
	}
}

func (s *feeService) AssessExit(ctx context.Context, deviceCode string, category *models.VehicleCategory, entryTime, exitTime time.Time) (*pricing.Assessment, error) {
	device, err := s.deviceRepo.GetByCode(ctx, deviceCode)
	if err != nil {
		return nil, fmt.Errorf("assess exit device: %w", err)
	}

	site, err := s.siteRepo.GetByID(ctx, device.SiteID)
	if err != nil {
		return nil, fmt.Errorf("assess exit site: %w", err)
	}

	scope := models.TariffScope{
		LocationID:        site.LocationID,
		SiteID:            site.ID,
		DeviceID:          device.ID,
		VehicleCategoryID: category.ID,
	}

	tariff, err := s.catalog.ResolveTariff(ctx, scope)
	if err != nil && !errors.Is(err, pricing.ErrTariffNotFound) {
		return nil, err
	}

	overnight, err := s.catalog.ResolveOvernightPolicy(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	assessment, err := pricing.Evaluate(entryTime, exitTime, category, tariff, overnight)
	if err != nil {
		if errors.Is(err, pricing.ErrTariffNotFound) {
			s.logger.WithFields(map[string]interface{}{
				"device_code":         deviceCode,
				"vehicle_category_id": category.ID.Hex(),
			}).Warn("No tariff configured for scope, fee left unassessed")

			return &pricing.Assessment{
				Amount:          0,
				Classification:  pricing.ClassNotFound,
				DurationMinutes: utils.DurationMinutesCeil(entryTime, exitTime),
			}, nil
		}
		return nil, err
	}

	return assessment, nil
}
