package services

import (
	"context"
	"testing"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/pricing"
	"parkwise/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestCatalog(tariffRepo *fakeTariffRepo, overnightRepo *fakeOvernightRepo, deviceRepo *fakeDeviceRepo, categoryRepo *fakeCategoryRepo) CatalogService {
	return NewCatalogService(
		deviceRepo,
		&fakeSiteRepo{},
		&fakeLocationRepo{},
		categoryRepo,
		tariffRepo,
		overnightRepo,
		nil,
		testLogger(),
	)
}

func TestResolveTariffNoneConfigured(t *testing.T) {
	catalog := newTestCatalog(&fakeTariffRepo{}, &fakeOvernightRepo{}, &fakeDeviceRepo{}, &fakeCategoryRepo{})

	_, err := catalog.ResolveTariff(context.Background(), models.TariffScope{})
	assert.ErrorIs(t, err, pricing.ErrTariffNotFound)
}

func TestResolveTariffAmbiguousPicksNewest(t *testing.T) {
	older := &models.Tariff{
		ID:        primitive.NewObjectID(),
		Name:      "old",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &models.Tariff{
		ID:        primitive.NewObjectID(),
		Name:      "new",
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	tariffRepo := &fakeTariffRepo{
		GetActiveByScopeFn: func(ctx context.Context, scope models.TariffScope) ([]*models.Tariff, error) {
			return []*models.Tariff{older, newer}, nil
		},
	}
	catalog := newTestCatalog(tariffRepo, &fakeOvernightRepo{}, &fakeDeviceRepo{}, &fakeCategoryRepo{})

	tariff, err := catalog.ResolveTariff(context.Background(), models.TariffScope{})
	require.NoError(t, err)
	assert.Equal(t, "new", tariff.Name)
}

func TestResolveOvernightPolicyAbsent(t *testing.T) {
	catalog := newTestCatalog(&fakeTariffRepo{}, &fakeOvernightRepo{}, &fakeDeviceRepo{}, &fakeCategoryRepo{})

	policy, err := catalog.ResolveOvernightPolicy(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, policy)
}

func TestGetDeviceConfigAssemblesBundle(t *testing.T) {
	siteID := primitive.NewObjectID()
	passID := primitive.NewObjectID()

	deviceRepo := &fakeDeviceRepo{
		GetByCodeFn: func(ctx context.Context, deviceCode string) (*models.Device, error) {
			return &models.Device{
				ID:         primitive.NewObjectID(),
				DeviceCode: deviceCode,
				SiteID:     siteID,
				Status:     utils.StatusActive,
			}, nil
		},
	}
	categoryRepo := &fakeCategoryRepo{
		GetByLocationFn: func(ctx context.Context, locationID primitive.ObjectID) ([]*models.VehicleCategory, error) {
			return []*models.VehicleCategory{{ID: passID, Name: "Car"}}, nil
		},
		GetMonthlyPassesByLocationFn: func(ctx context.Context, locationID primitive.ObjectID) ([]*models.VehicleCategory, error) {
			return []*models.VehicleCategory{{
				ID:            passID,
				Name:          "Car Monthly",
				IsMonthlyPass: true,
				Amount:        1500,
				Status:        utils.StatusActive,
			}}, nil
		},
	}
	catalog := newTestCatalog(&fakeTariffRepo{}, &fakeOvernightRepo{}, deviceRepo, categoryRepo)

	config, err := catalog.GetDeviceConfig(context.Background(), "GATE01")
	require.NoError(t, err)
	assert.Equal(t, "GATE01", config.Device.DeviceCode)
	require.Len(t, config.MonthlyPasses, 1)
	assert.Equal(t, pricing.MonthlyPassValidityDays, config.MonthlyPasses[0].ValidityDays)
	assert.Equal(t, 1500.0, config.MonthlyPasses[0].Amount)
}

func TestGetDeviceConfigInactiveDevice(t *testing.T) {
	deviceRepo := &fakeDeviceRepo{
		GetByCodeFn: func(ctx context.Context, deviceCode string) (*models.Device, error) {
			return &models.Device{DeviceCode: deviceCode, Status: "disabled"}, nil
		},
	}
	catalog := newTestCatalog(&fakeTariffRepo{}, &fakeOvernightRepo{}, deviceRepo, &fakeCategoryRepo{})

	_, err := catalog.GetDeviceConfig(context.Background(), "GATE01")
	assert.ErrorIs(t, err, ErrInactiveRecord)
}
