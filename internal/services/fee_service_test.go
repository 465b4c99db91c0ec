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

func activeGateDevice(siteID primitive.ObjectID) *fakeDeviceRepo {
	return &fakeDeviceRepo{
		GetByCodeFn: func(ctx context.Context, deviceCode string) (*models.Device, error) {
			return &models.Device{
				ID:         primitive.NewObjectID(),
				DeviceCode: deviceCode,
				SiteID:     siteID,
				Status:     utils.StatusActive,
			}, nil
		},
	}
}

func TestAssessExitStandardPricing(t *testing.T) {
	category := &models.VehicleCategory{ID: primitive.NewObjectID(), Name: "Car", Status: utils.StatusActive}
	tariffRepo := &fakeTariffRepo{
		GetActiveByScopeFn: func(ctx context.Context, scope models.TariffScope) ([]*models.Tariff, error) {
			return []*models.Tariff{{
				ID:        primitive.NewObjectID(),
				GraceTime: 15,
				Intervals: []models.TariffInterval{
					{FromMinute: 0, ToMinute: 60, Amount: 20},
					{FromMinute: 60, ToMinute: 120, Amount: 40},
				},
			}}, nil
		},
	}
	deviceRepo := activeGateDevice(primitive.NewObjectID())
	catalog := newTestCatalog(tariffRepo, &fakeOvernightRepo{}, deviceRepo, &fakeCategoryRepo{})
	svc := NewFeeService(deviceRepo, &fakeSiteRepo{}, catalog, testLogger())

	entry := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	assessment, err := svc.AssessExit(context.Background(), "GATE01", category, entry, entry.Add(90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, pricing.ClassStandard, assessment.Classification)
	assert.Equal(t, 40.0, assessment.Amount)
}

func TestAssessExitNoTariffLeavesFeePending(t *testing.T) {
	category := &models.VehicleCategory{ID: primitive.NewObjectID(), Name: "Car", Status: utils.StatusActive}
	deviceRepo := activeGateDevice(primitive.NewObjectID())
	catalog := newTestCatalog(&fakeTariffRepo{}, &fakeOvernightRepo{}, deviceRepo, &fakeCategoryRepo{})
	svc := NewFeeService(deviceRepo, &fakeSiteRepo{}, catalog, testLogger())

	entry := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	assessment, err := svc.AssessExit(context.Background(), "GATE01", category, entry, entry.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, pricing.ClassNotFound, assessment.Classification)
	assert.Zero(t, assessment.Amount)
	assert.Equal(t, 60, assessment.DurationMinutes)
}

func TestAssessExitMonthlyPassSkipsTariff(t *testing.T) {
	category := &models.VehicleCategory{
		ID:            primitive.NewObjectID(),
		Name:          "Car Monthly",
		IsMonthlyPass: true,
		Amount:        1500,
		Status:        utils.StatusActive,
	}
	deviceRepo := activeGateDevice(primitive.NewObjectID())
	catalog := newTestCatalog(&fakeTariffRepo{}, &fakeOvernightRepo{}, deviceRepo, &fakeCategoryRepo{})
	svc := NewFeeService(deviceRepo, &fakeSiteRepo{}, catalog, testLogger())

	entry := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	assessment, err := svc.AssessExit(context.Background(), "GATE01", category, entry, entry.Add(26*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, pricing.ClassMonthly, assessment.Classification)
	assert.Equal(t, 1500.0, assessment.Amount)
	require.NotNil(t, assessment.ValidUntil)
	assert.Equal(t, entry.AddDate(0, 0, 30), *assessment.ValidUntil)
}

func TestAssessExitOvernightOverride(t *testing.T) {
	category := &models.VehicleCategory{ID: primitive.NewObjectID(), Name: "Car", Status: utils.StatusActive}
	overnightRepo := &fakeOvernightRepo{
		GetActiveByCategoryFn: func(ctx context.Context, categoryID primitive.ObjectID) (*models.OvernightPolicy, error) {
			return &models.OvernightPolicy{
				VehicleCategoryID: categoryID,
				Amount:            150,
				Status:            utils.StatusActive,
			}, nil
		},
	}
	tariffRepo := &fakeTariffRepo{
		GetActiveByScopeFn: func(ctx context.Context, scope models.TariffScope) ([]*models.Tariff, error) {
			return []*models.Tariff{{
				ID:        primitive.NewObjectID(),
				Intervals: []models.TariffInterval{{FromMinute: 0, ToMinute: 1440, Amount: 20}},
			}}, nil
		},
	}
	deviceRepo := activeGateDevice(primitive.NewObjectID())
	catalog := newTestCatalog(tariffRepo, overnightRepo, deviceRepo, &fakeCategoryRepo{})
	svc := NewFeeService(deviceRepo, &fakeSiteRepo{}, catalog, testLogger())

	entry := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	assessment, err := svc.AssessExit(context.Background(), "GATE01", category, entry, entry.Add(13*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, pricing.ClassOvernight, assessment.Classification)
	assert.Equal(t, 150.0, assessment.Amount)
}
