package services

import (
	"context"
	"fmt"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/pkg/logger"
)

// DashboardReport is the live operational snapshot for the admin dashboard.
type DashboardReport struct {
	ActiveSessions   int64   `json:"active_sessions"`
	PendingPayments  int64   `json:"pending_payments"`
	Locations        int64   `json:"locations"`
	Sites            int64   `json:"sites"`
	Devices          int64   `json:"devices"`
	RevenueToday     float64 `json:"revenue_today"`
	AverageStayToday float64 `json:"average_stay_minutes_today"`
}

// RevenueReport aggregates settled fees over a date range.
type RevenueReport struct {
	From       time.Time                   `json:"from"`
	To         time.Time                   `json:"to"`
	Total      float64                     `json:"total"`
	ByCategory []*interfaces.RevenueBucket `json:"by_category"`
	ByDay      []*interfaces.RevenueBucket `json:"by_day"`
}

type ReportService interface {
	Dashboard(ctx context.Context) (*DashboardReport, error)
	Revenue(ctx context.Context, from, to time.Time) (*RevenueReport, error)
	Occupancy(ctx context.Context, params *utils.PaginationParams) ([]*models.Location, int64, error)
}

type reportService struct {
	transactionRepo interfaces.TransactionRepository
	entryRepo       interfaces.VehicleEntryRepository
	locationRepo    interfaces.LocationRepository
	siteRepo        interfaces.SiteRepository
	deviceRepo      interfaces.DeviceRepository
	logger          *logger.Logger
}

func NewReportService(
	transactionRepo interfaces.TransactionRepository,
	entryRepo interfaces.VehicleEntryRepository,
	locationRepo interfaces.LocationRepository,
	siteRepo interfaces.SiteRepository,
	deviceRepo interfaces.DeviceRepository,
	logger *logger.Logger,
) ReportService {
	return &reportService{
		transactionRepo: transactionRepo,
		entryRepo:       entryRepo,
		locationRepo:    locationRepo,
		siteRepo:        siteRepo,
		deviceRepo:      deviceRepo,
		logger:          logger,
	}
}

func (s *reportService) Dashboard(ctx context.Context) (*DashboardReport, error) {
	report := &DashboardReport{}

	var err error
	if report.ActiveSessions, err = s.entryRepo.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("dashboard active sessions: %w", err)
	}
	if report.PendingPayments, err = s.transactionRepo.CountByPaymentStatus(ctx, string(models.PaymentStatusPending)); err != nil {
		return nil, fmt.Errorf("dashboard pending payments: %w", err)
	}
	if report.Locations, err = s.locationRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard locations: %w", err)
	}
	if report.Sites, err = s.siteRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard sites: %w", err)
	}
	if report.Devices, err = s.deviceRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard devices: %w", err)
	}

	from, to := todayRange()
	if report.RevenueToday, err = s.transactionRepo.TotalRevenue(ctx, from, to); err != nil {
		return nil, fmt.Errorf("dashboard revenue: %w", err)
	}
	if report.AverageStayToday, err = s.entryRepo.AverageStayMinutes(ctx, from, to); err != nil {
		return nil, fmt.Errorf("dashboard average stay: %w", err)
	}

	return report, nil
}

func (s *reportService) Revenue(ctx context.Context, from, to time.Time) (*RevenueReport, error) {
	report := &RevenueReport{From: from, To: to}

	var err error
	if report.Total, err = s.transactionRepo.TotalRevenue(ctx, from, to); err != nil {
		return nil, fmt.Errorf("revenue total: %w", err)
	}
	if report.ByCategory, err = s.transactionRepo.RevenueByCategory(ctx, from, to); err != nil {
		return nil, fmt.Errorf("revenue by category: %w", err)
	}
	if report.ByDay, err = s.transactionRepo.RevenueByDay(ctx, from, to); err != nil {
		return nil, fmt.Errorf("revenue by day: %w", err)
	}

	return report, nil
}

// Occupancy reports per-location space availability straight from the
// location documents.
func (s *reportService) Occupancy(ctx context.Context, params *utils.PaginationParams) ([]*models.Location, int64, error) {
	return s.locationRepo.List(ctx, params)
}

func todayRange() (time.Time, time.Time) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 0, 1)
}
