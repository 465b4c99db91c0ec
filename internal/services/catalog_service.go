package services

import (
	"context"
	"fmt"

	"parkwise/internal/models"
	"parkwise/internal/pricing"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/pkg/cache"
	"parkwise/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogService resolves the pricing catalog: which tariff, overnight
// policy, and category apply to a stay scope, and the full configuration
// bundle a gate device pulls on startup.
type CatalogService interface {
	ResolveTariff(ctx context.Context, scope models.TariffScope) (*models.Tariff, error)
	ResolveOvernightPolicy(ctx context.Context, categoryID primitive.ObjectID) (*models.OvernightPolicy, error)
	GetDeviceConfig(ctx context.Context, deviceCode string) (*models.DeviceConfig, error)
}

type catalogService struct {
	deviceRepo    interfaces.DeviceRepository
	siteRepo      interfaces.SiteRepository
	locationRepo  interfaces.LocationRepository
	categoryRepo  interfaces.VehicleCategoryRepository
	tariffRepo    interfaces.TariffRepository
	overnightRepo interfaces.OvernightPolicyRepository
	cache         *cache.RedisCache
	logger        *logger.Logger
}

func NewCatalogService(
	deviceRepo interfaces.DeviceRepository,
	siteRepo interfaces.SiteRepository,
	locationRepo interfaces.LocationRepository,
	categoryRepo interfaces.VehicleCategoryRepository,
	tariffRepo interfaces.TariffRepository,
	overnightRepo interfaces.OvernightPolicyRepository,
	cache *cache.RedisCache,
	logger *logger.Logger,
) CatalogService {
	return &catalogService{
		deviceRepo:    deviceRepo,
		siteRepo:      siteRepo,
		locationRepo:  locationRepo,
		categoryRepo:  categoryRepo,
		tariffRepo:    tariffRepo,
		overnightRepo: overnightRepo,
		cache:         cache,
		logger:        logger,
	}
}

// ResolveTariff returns the single tariff applicable to the scope. When the
// scope matches several active tariffs the most recently created one wins;
// the ambiguity is logged so operators can clean up the catalog.
func (s *catalogService) ResolveTariff(ctx context.Context, scope models.TariffScope) (*models.Tariff, error) {
	tariffs, err := s.tariffRepo.GetActiveByScope(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("resolve tariff: %w", err)
	}

	tariff, ambiguous := pricing.SelectTariff(tariffs)
	if tariff == nil {
		return nil, pricing.ErrTariffNotFound
	}
	if ambiguous {
		s.logger.WithFields(map[string]interface{}{
			"tariff_id":           tariff.ID.Hex(),
			"tariff_name":         tariff.Name,
			"matching_tariffs":    len(tariffs),
			"location_id":         scope.LocationID.Hex(),
			"site_id":             scope.SiteID.Hex(),
			"device_id":           scope.DeviceID.Hex(),
			"vehicle_category_id": scope.VehicleCategoryID.Hex(),
		}).Warn("Multiple active tariffs match scope, using most recently created")
	}

	return tariff, nil
}

func (s *catalogService) ResolveOvernightPolicy(ctx context.Context, categoryID primitive.ObjectID) (*models.OvernightPolicy, error) {
	policy, err := s.overnightRepo.GetActiveByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("resolve overnight policy: %w", err)
	}

	return policy, nil
}

// GetDeviceConfig assembles the bootstrap payload for a gate device: the
// device record, its site and location, the active vehicle categories and
// tariffs for the location, and monthly passes projected with the validity
// window the device prints on receipts.
func (s *catalogService) GetDeviceConfig(ctx context.Context, deviceCode string) (*models.DeviceConfig, error) {
	cacheKey := fmt.Sprintf("device_config_%s", deviceCode)
	if s.cache != nil {
		var config models.DeviceConfig
		if err := s.cache.Get(ctx, cacheKey, &config); err == nil {
			return &config, nil
		}
	}

	device, err := s.deviceRepo.GetByCode(ctx, deviceCode)
	if err != nil {
		return nil, err
	}
	if !deviceIsActive(device) {
		return nil, ErrInactiveRecord
	}

	site, err := s.siteRepo.GetByID(ctx, device.SiteID)
	if err != nil {
		return nil, fmt.Errorf("device config site: %w", err)
	}

	location, err := s.locationRepo.GetByID(ctx, site.LocationID)
	if err != nil {
		return nil, fmt.Errorf("device config location: %w", err)
	}

	categories, err := s.categoryRepo.GetByLocation(ctx, location.ID)
	if err != nil {
		return nil, fmt.Errorf("device config categories: %w", err)
	}

	tariffs, err := s.tariffRepo.GetByLocation(ctx, location.ID)
	if err != nil {
		return nil, fmt.Errorf("device config tariffs: %w", err)
	}

	passes, err := s.categoryRepo.GetMonthlyPassesByLocation(ctx, location.ID)
	if err != nil {
		return nil, fmt.Errorf("device config monthly passes: %w", err)
	}

	config := &models.DeviceConfig{
		Device:            device,
		Site:              site,
		Location:          location,
		VehicleCategories: categories,
		Tariffs:           tariffs,
		MonthlyPasses:     make([]*models.MonthlyPass, 0, len(passes)),
	}
	for _, pass := range passes {
		config.MonthlyPasses = append(config.MonthlyPasses, &models.MonthlyPass{
			ID:                pass.ID,
			Name:              pass.Name,
			VehicleCategoryID: pass.ID,
			Amount:            pass.Amount,
			ValidityDays:      pricing.MonthlyPassValidityDays,
			Status:            pass.Status,
		})
	}

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, config, utils.DeviceConfigCacheTTL)
	}

	return config, nil
}

func deviceIsActive(device *models.Device) bool {
	return device != nil && device.Status == utils.StatusActive
}
