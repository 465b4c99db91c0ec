package services

import (
	"context"
	"testing"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/pricing"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFeeService struct {
	assessment *pricing.Assessment
	err        error
}

func (f *fakeFeeService) AssessExit(ctx context.Context, deviceCode string, category *models.VehicleCategory, entryTime, exitTime time.Time) (*pricing.Assessment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.assessment, nil
}

type sessionFixture struct {
	entryRepo    *fakeEntryRepo
	categoryRepo *fakeCategoryRepo
	broadcaster  *fakeBroadcaster
	service      SessionService
}

func newSessionFixture(fee FeeService) *sessionFixture {
	f := &sessionFixture{
		entryRepo:   &fakeEntryRepo{},
		broadcaster: &fakeBroadcaster{},
	}
	f.categoryRepo = &fakeCategoryRepo{
		GetByIDFn: func(ctx context.Context, id primitive.ObjectID) (*models.VehicleCategory, error) {
			return &models.VehicleCategory{ID: id, Name: "Car", Status: utils.StatusActive}, nil
		},
	}
	f.service = NewSessionService(
		f.entryRepo,
		f.categoryRepo,
		activeGateDevice(primitive.NewObjectID()),
		&fakeSiteRepo{},
		&fakeLocationRepo{},
		fee,
		f.broadcaster,
		"test-secret",
		testLogger(),
	)
	return f
}

func entryRequest() *VehicleEntryRequest {
	return &VehicleEntryRequest{
		VehicleNumber: "KA01AB1234",
		VehicleType:   primitive.NewObjectID().Hex(),
		TransactionID: "TXN-1001",
		EntryTime:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		DeviceCode:    "GATE01",
	}
}

func TestRegisterEntryCreatesSession(t *testing.T) {
	f := newSessionFixture(&fakeFeeService{})

	var created *models.VehicleEntry
	f.entryRepo.CreateFn = func(ctx context.Context, entry *models.VehicleEntry) error {
		created = entry
		return nil
	}

	entry, err := f.service.RegisterEntry(context.Background(), entryRequest())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "TXN-1001", entry.TransactionID)
	assert.NotEmpty(t, entry.QRCode)
	assert.Contains(t, f.broadcaster.events, "vehicle_entry")
}

func TestRegisterEntryDuplicateTransaction(t *testing.T) {
	f := newSessionFixture(&fakeFeeService{})
	f.entryRepo.CreateFn = func(ctx context.Context, entry *models.VehicleEntry) error {
		return interfaces.ErrDuplicate
	}

	_, err := f.service.RegisterEntry(context.Background(), entryRequest())
	assert.ErrorIs(t, err, interfaces.ErrDuplicate)
}

func TestRegisterEntryUnknownCategory(t *testing.T) {
	f := newSessionFixture(&fakeFeeService{})
	f.categoryRepo.GetByIDFn = func(ctx context.Context, id primitive.ObjectID) (*models.VehicleCategory, error) {
		return nil, interfaces.ErrNotFound
	}

	_, err := f.service.RegisterEntry(context.Background(), entryRequest())
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestRegisterExitUnknownTransaction(t *testing.T) {
	f := newSessionFixture(&fakeFeeService{})

	_, err := f.service.RegisterExit(context.Background(), &VehicleExitRequest{
		TransactionID: "TXN-MISSING",
		ExitTime:      time.Now(),
		DeviceCode:    "GATE01",
	})
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestRegisterExitAlreadyExited(t *testing.T) {
	f := newSessionFixture(&fakeFeeService{})
	exited := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.entryRepo.GetByTransactionIDFn = func(ctx context.Context, transactionID string) (*models.VehicleEntry, error) {
		return &models.VehicleEntry{
			TransactionID: transactionID,
			VehicleType:   primitive.NewObjectID().Hex(),
			EntryTime:     exited.Add(-2 * time.Hour),
			ExitTime:      &exited,
		}, nil
	}

	_, err := f.service.RegisterExit(context.Background(), &VehicleExitRequest{
		TransactionID: "TXN-1001",
		ExitTime:      exited.Add(time.Hour),
		DeviceCode:    "GATE01",
	})
	assert.ErrorIs(t, err, ErrAlreadyExited)
}

func TestRegisterExitRejectsForgedQRCode(t *testing.T) {
	f := newSessionFixture(&fakeFeeService{})
	entryTime := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.entryRepo.GetByTransactionIDFn = func(ctx context.Context, transactionID string) (*models.VehicleEntry, error) {
		return &models.VehicleEntry{
			TransactionID: transactionID,
			VehicleType:   primitive.NewObjectID().Hex(),
			EntryTime:     entryTime,
			QRCode:        utils.GenerateHMAC(transactionID, "test-secret"),
		}, nil
	}

	_, err := f.service.RegisterExit(context.Background(), &VehicleExitRequest{
		TransactionID: "TXN-1001",
		ExitTime:      entryTime.Add(time.Hour),
		DeviceCode:    "GATE01",
		QRCode:        "not-the-issued-signature",
	})
	assert.ErrorIs(t, err, ErrInvalidQRCode)
}

func TestRegisterExitAcceptsIssuedQRCode(t *testing.T) {
	fee := &fakeFeeService{assessment: &pricing.Assessment{
		Amount:          40,
		Classification:  pricing.ClassStandard,
		DurationMinutes: 60,
	}}
	f := newSessionFixture(fee)
	entryTime := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.entryRepo.GetByTransactionIDFn = func(ctx context.Context, transactionID string) (*models.VehicleEntry, error) {
		return &models.VehicleEntry{
			TransactionID: transactionID,
			VehicleType:   primitive.NewObjectID().Hex(),
			EntryTime:     entryTime,
			QRCode:        utils.GenerateHMAC(transactionID, "test-secret"),
		}, nil
	}

	result, err := f.service.RegisterExit(context.Background(), &VehicleExitRequest{
		TransactionID: "TXN-1001",
		ExitTime:      entryTime.Add(time.Hour),
		DeviceCode:    "GATE01",
		QRCode:        utils.GenerateHMAC("TXN-1001", "test-secret"),
	})
	require.NoError(t, err)
	assert.Equal(t, pricing.ClassStandard, result.Assessment.Classification)
}

func TestRegisterExitBeforeEntryRejected(t *testing.T) {
	f := newSessionFixture(&fakeFeeService{})
	entryTime := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.entryRepo.GetByTransactionIDFn = func(ctx context.Context, transactionID string) (*models.VehicleEntry, error) {
		return &models.VehicleEntry{
			TransactionID: transactionID,
			VehicleType:   primitive.NewObjectID().Hex(),
			EntryTime:     entryTime,
		}, nil
	}

	_, err := f.service.RegisterExit(context.Background(), &VehicleExitRequest{
		TransactionID: "TXN-1001",
		ExitTime:      entryTime.Add(-time.Minute),
		DeviceCode:    "GATE01",
	})
	assert.ErrorIs(t, err, pricing.ErrExitBeforeEntry)
}

func TestRegisterExitFinalizesWithFee(t *testing.T) {
	fee := &fakeFeeService{assessment: &pricing.Assessment{
		Amount:          40,
		Classification:  pricing.ClassStandard,
		DurationMinutes: 90,
	}}
	f := newSessionFixture(fee)

	entryTime := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.entryRepo.GetByTransactionIDFn = func(ctx context.Context, transactionID string) (*models.VehicleEntry, error) {
		return &models.VehicleEntry{
			TransactionID: transactionID,
			VehicleNumber: "KA01AB1234",
			VehicleType:   primitive.NewObjectID().Hex(),
			EntryTime:     entryTime,
		}, nil
	}

	var finalizedAmount float64
	var finalizedClass string
	f.entryRepo.FinalizeExitFn = func(ctx context.Context, transactionID string, exitTime time.Time, amount float64, feeClass string) error {
		finalizedAmount = amount
		finalizedClass = feeClass
		return nil
	}

	result, err := f.service.RegisterExit(context.Background(), &VehicleExitRequest{
		TransactionID: "TXN-1001",
		ExitTime:      entryTime.Add(90 * time.Minute),
		DeviceCode:    "GATE01",
	})
	require.NoError(t, err)
	assert.Equal(t, 40.0, finalizedAmount)
	assert.Equal(t, string(pricing.ClassStandard), finalizedClass)
	assert.Equal(t, 40.0, *result.Entry.AmountPaid)
	assert.Contains(t, f.broadcaster.events, "vehicle_exit")
}

func TestRegisterExitConcurrentLoserGetsConflict(t *testing.T) {
	fee := &fakeFeeService{assessment: &pricing.Assessment{Classification: pricing.ClassGrace}}
	f := newSessionFixture(fee)

	entryTime := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.entryRepo.GetByTransactionIDFn = func(ctx context.Context, transactionID string) (*models.VehicleEntry, error) {
		return &models.VehicleEntry{
			TransactionID: transactionID,
			VehicleType:   primitive.NewObjectID().Hex(),
			EntryTime:     entryTime,
		}, nil
	}
	f.entryRepo.FinalizeExitFn = func(ctx context.Context, transactionID string, exitTime time.Time, amount float64, feeClass string) error {
		return interfaces.ErrNotFound
	}

	_, err := f.service.RegisterExit(context.Background(), &VehicleExitRequest{
		TransactionID: "TXN-1001",
		ExitTime:      entryTime.Add(5 * time.Minute),
		DeviceCode:    "GATE01",
	})
	assert.ErrorIs(t, err, ErrAlreadyExited)
}
