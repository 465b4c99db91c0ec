package services

import (
	"context"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hand-rolled repository fakes: each method delegates to a function field
// when one is set and otherwise returns zero values, so tests only stub
// what they touch.

type fakeLocationRepo struct {
	GetByIDFn               func(ctx context.Context, id primitive.ObjectID) (*models.Location, error)
	AdjustAvailableSpacesFn func(ctx context.Context, id primitive.ObjectID, delta int) error
	CountFn                 func(ctx context.Context) (int64, error)
	ListFn                  func(ctx context.Context, params *utils.PaginationParams) ([]*models.Location, int64, error)
}

func (f *fakeLocationRepo) Create(ctx context.Context, location *models.Location) error { return nil }
func (f *fakeLocationRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Location, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	return &models.Location{ID: id, Status: utils.StatusActive}, nil
}
func (f *fakeLocationRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Location, int64, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, params)
	}
	return nil, 0, nil
}
func (f *fakeLocationRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}
func (f *fakeLocationRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeLocationRepo) AdjustAvailableSpaces(ctx context.Context, id primitive.ObjectID, delta int) error {
	if f.AdjustAvailableSpacesFn != nil {
		return f.AdjustAvailableSpacesFn(ctx, id, delta)
	}
	return nil
}
func (f *fakeLocationRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	return 0, nil
}

type fakeSiteRepo struct {
	GetByIDFn               func(ctx context.Context, id primitive.ObjectID) (*models.Site, error)
	AdjustAvailableSpacesFn func(ctx context.Context, id primitive.ObjectID, delta int) error
}

func (f *fakeSiteRepo) Create(ctx context.Context, site *models.Site) error { return nil }
func (f *fakeSiteRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Site, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	return &models.Site{ID: id, Status: utils.StatusActive}, nil
}
func (f *fakeSiteRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Site, int64, error) {
	return nil, 0, nil
}
func (f *fakeSiteRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}
func (f *fakeSiteRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeSiteRepo) GetByLocation(ctx context.Context, locationID primitive.ObjectID) ([]*models.Site, error) {
	return nil, nil
}
func (f *fakeSiteRepo) AdjustAvailableSpaces(ctx context.Context, id primitive.ObjectID, delta int) error {
	if f.AdjustAvailableSpacesFn != nil {
		return f.AdjustAvailableSpacesFn(ctx, id, delta)
	}
	return nil
}
func (f *fakeSiteRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type fakeDeviceRepo struct {
	GetByCodeFn func(ctx context.Context, deviceCode string) (*models.Device, error)
}

func (f *fakeDeviceRepo) Create(ctx context.Context, device *models.Device) error { return nil }
func (f *fakeDeviceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Device, error) {
	return nil, interfaces.ErrNotFound
}
func (f *fakeDeviceRepo) GetByCode(ctx context.Context, deviceCode string) (*models.Device, error) {
	if f.GetByCodeFn != nil {
		return f.GetByCodeFn(ctx, deviceCode)
	}
	return nil, interfaces.ErrNotFound
}
func (f *fakeDeviceRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Device, int64, error) {
	return nil, 0, nil
}
func (f *fakeDeviceRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}
func (f *fakeDeviceRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeDeviceRepo) GetBySite(ctx context.Context, siteID primitive.ObjectID) ([]*models.Device, error) {
	return nil, nil
}
func (f *fakeDeviceRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type fakeCategoryRepo struct {
	GetByIDFn                    func(ctx context.Context, id primitive.ObjectID) (*models.VehicleCategory, error)
	GetByLocationFn              func(ctx context.Context, locationID primitive.ObjectID) ([]*models.VehicleCategory, error)
	GetMonthlyPassesByLocationFn func(ctx context.Context, locationID primitive.ObjectID) ([]*models.VehicleCategory, error)
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *models.VehicleCategory) error {
	return nil
}
func (f *fakeCategoryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleCategory, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	return nil, interfaces.ErrNotFound
}
func (f *fakeCategoryRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleCategory, int64, error) {
	return nil, 0, nil
}
func (f *fakeCategoryRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}
func (f *fakeCategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeCategoryRepo) GetByLocation(ctx context.Context, locationID primitive.ObjectID) ([]*models.VehicleCategory, error) {
	if f.GetByLocationFn != nil {
		return f.GetByLocationFn(ctx, locationID)
	}
	return nil, nil
}
func (f *fakeCategoryRepo) GetMonthlyPassesByLocation(ctx context.Context, locationID primitive.ObjectID) ([]*models.VehicleCategory, error) {
	if f.GetMonthlyPassesByLocationFn != nil {
		return f.GetMonthlyPassesByLocationFn(ctx, locationID)
	}
	return nil, nil
}

type fakeTariffRepo struct {
	GetActiveByScopeFn func(ctx context.Context, scope models.TariffScope) ([]*models.Tariff, error)
	GetByLocationFn    func(ctx context.Context, locationID primitive.ObjectID) ([]*models.Tariff, error)
}

func (f *fakeTariffRepo) Create(ctx context.Context, tariff *models.Tariff) error { return nil }
func (f *fakeTariffRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Tariff, error) {
	return nil, interfaces.ErrNotFound
}
func (f *fakeTariffRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Tariff, int64, error) {
	return nil, 0, nil
}
func (f *fakeTariffRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}
func (f *fakeTariffRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeTariffRepo) GetActiveByScope(ctx context.Context, scope models.TariffScope) ([]*models.Tariff, error) {
	if f.GetActiveByScopeFn != nil {
		return f.GetActiveByScopeFn(ctx, scope)
	}
	return nil, nil
}
func (f *fakeTariffRepo) GetByLocation(ctx context.Context, locationID primitive.ObjectID) ([]*models.Tariff, error) {
	if f.GetByLocationFn != nil {
		return f.GetByLocationFn(ctx, locationID)
	}
	return nil, nil
}

type fakeOvernightRepo struct {
	GetActiveByCategoryFn func(ctx context.Context, categoryID primitive.ObjectID) (*models.OvernightPolicy, error)
}

func (f *fakeOvernightRepo) Create(ctx context.Context, policy *models.OvernightPolicy) error {
	return nil
}
func (f *fakeOvernightRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.OvernightPolicy, error) {
	return nil, interfaces.ErrNotFound
}
func (f *fakeOvernightRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.OvernightPolicy, int64, error) {
	return nil, 0, nil
}
func (f *fakeOvernightRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}
func (f *fakeOvernightRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeOvernightRepo) GetActiveByCategory(ctx context.Context, categoryID primitive.ObjectID) (*models.OvernightPolicy, error) {
	if f.GetActiveByCategoryFn != nil {
		return f.GetActiveByCategoryFn(ctx, categoryID)
	}
	return nil, nil
}
func (f *fakeOvernightRepo) GetByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]*models.OvernightPolicy, error) {
	return nil, nil
}

type fakeTransactionRepo struct {
	CreateFn               func(ctx context.Context, transaction *models.Transaction) error
	GetByTransactionIDFn   func(ctx context.Context, transactionID string) (*models.Transaction, error)
	CountByPaymentStatusFn func(ctx context.Context, status string) (int64, error)
	TotalRevenueFn         func(ctx context.Context, from, to time.Time) (float64, error)
}

func (f *fakeTransactionRepo) Create(ctx context.Context, transaction *models.Transaction) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, transaction)
	}
	return nil
}
func (f *fakeTransactionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	return nil, interfaces.ErrNotFound
}
func (f *fakeTransactionRepo) GetByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	if f.GetByTransactionIDFn != nil {
		return f.GetByTransactionIDFn(ctx, transactionID)
	}
	return nil, interfaces.ErrNotFound
}
func (f *fakeTransactionRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	return nil, 0, nil
}
func (f *fakeTransactionRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}
func (f *fakeTransactionRepo) ListByDateRange(ctx context.Context, from, to time.Time, params *utils.PaginationParams) ([]*models.Transaction, int64, error) {
	return nil, 0, nil
}
func (f *fakeTransactionRepo) RevenueByCategory(ctx context.Context, from, to time.Time) ([]*interfaces.RevenueBucket, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) RevenueByDay(ctx context.Context, from, to time.Time) ([]*interfaces.RevenueBucket, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) CountByPaymentStatus(ctx context.Context, status string) (int64, error) {
	if f.CountByPaymentStatusFn != nil {
		return f.CountByPaymentStatusFn(ctx, status)
	}
	return 0, nil
}
func (f *fakeTransactionRepo) TotalRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	if f.TotalRevenueFn != nil {
		return f.TotalRevenueFn(ctx, from, to)
	}
	return 0, nil
}

type fakeEntryRepo struct {
	CreateFn             func(ctx context.Context, entry *models.VehicleEntry) error
	GetByTransactionIDFn func(ctx context.Context, transactionID string) (*models.VehicleEntry, error)
	FinalizeExitFn       func(ctx context.Context, transactionID string, exitTime time.Time, amount float64, feeClass string) error
	CountActiveFn        func(ctx context.Context) (int64, error)
}

func (f *fakeEntryRepo) Create(ctx context.Context, entry *models.VehicleEntry) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, entry)
	}
	return nil
}
func (f *fakeEntryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleEntry, error) {
	return nil, interfaces.ErrNotFound
}
func (f *fakeEntryRepo) GetByTransactionID(ctx context.Context, transactionID string) (*models.VehicleEntry, error) {
	if f.GetByTransactionIDFn != nil {
		return f.GetByTransactionIDFn(ctx, transactionID)
	}
	return nil, interfaces.ErrNotFound
}
func (f *fakeEntryRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error) {
	return nil, 0, nil
}
func (f *fakeEntryRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}
func (f *fakeEntryRepo) FinalizeExit(ctx context.Context, transactionID string, exitTime time.Time, amount float64, feeClass string) error {
	if f.FinalizeExitFn != nil {
		return f.FinalizeExitFn(ctx, transactionID, exitTime, amount, feeClass)
	}
	return nil
}
func (f *fakeEntryRepo) ListActive(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error) {
	return nil, 0, nil
}
func (f *fakeEntryRepo) CountActive(ctx context.Context) (int64, error) {
	if f.CountActiveFn != nil {
		return f.CountActiveFn(ctx)
	}
	return 0, nil
}
func (f *fakeEntryRepo) AverageStayMinutes(ctx context.Context, from, to time.Time) (float64, error) {
	return 0, nil
}

type fakeUserRepo struct {
	CreateFn     func(ctx context.Context, user *models.User) error
	GetByEmailFn func(ctx context.Context, email string) (*models.User, error)
	GetByIDFn    func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, user)
	}
	return nil
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	return nil, interfaces.ErrNotFound
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.GetByEmailFn != nil {
		return f.GetByEmailFn(ctx, email)
	}
	return nil, interfaces.ErrNotFound
}
func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

type fakeBroadcaster struct {
	events []string
}

func (f *fakeBroadcaster) SendParkingEvent(locationID primitive.ObjectID, eventType string, data map[string]interface{}) {
	f.events = append(f.events, eventType)
}

func testLogger() *logger.Logger {
	l, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "json", Output: "stdout"})
	if err != nil {
		panic(err)
	}
	return l
}
