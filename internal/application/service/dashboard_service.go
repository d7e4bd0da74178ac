package service

import (
	"context"
	"time"

	"github.com/shipos/shipos-api/internal/domain/repository"
	infraRepo "github.com/shipos/shipos-api/internal/infrastructure/repository"
	"github.com/shipos/shipos-api/pkg/apperror"
	"github.com/shipos/shipos-api/pkg/money"
)

// DashboardService provides counter and billing statistics for the store
// dashboard.
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	tenantRepo    repository.TenantRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, tenantRepo repository.TenantRepository) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		tenantRepo:    tenantRepo,
	}
}

// DashboardStats represents the dashboard summary
type DashboardStats struct {
	PackagesReceivedToday int64       `json:"packages_received_today"`
	PendingPackages       int64       `json:"pending_packages"`
	AgedPackages          int64       `json:"aged_packages"`
	FeesCollectedToday    money.Cents `json:"fees_collected_today"`
	FeesCollectedMonth    money.Cents `json:"fees_collected_month"`

	DailyFees     []DailyFeesPoint     `json:"daily_fees"`
	CarrierVolume []CarrierVolumePoint `json:"carrier_volume"`
	TopCustomers  []TopCustomerPoint   `json:"top_customers"`
}

// DailyFeesPoint is one day of fee revenue
type DailyFeesPoint struct {
	Date      string      `json:"date"`
	Fees      money.Cents `json:"fees"`
	Checkouts int         `json:"checkouts"`
}

// CarrierVolumePoint is this month's package count for one carrier
type CarrierVolumePoint struct {
	Carrier string `json:"carrier"`
	Count   int    `json:"count"`
}

// TopCustomerPoint is a customer ranked by fees paid
type TopCustomerPoint struct {
	CustomerID string      `json:"customer_id"`
	Name       string      `json:"name"`
	PMBNumber  string      `json:"pmb_number"`
	TotalFees  money.Cents `json:"total_fees"`
	Checkouts  int         `json:"checkouts"`
}

// GetDashboardStats returns the store dashboard summary
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	stats := &DashboardStats{}

	stats.PackagesReceivedToday, err = s.analyticsRepo.GetPackagesReceived(ctx, startOfDay, endOfDay)
	if err != nil {
		return nil, err
	}

	stats.PendingPackages, err = s.analyticsRepo.GetPendingPackageCount(ctx)
	if err != nil {
		return nil, err
	}

	// Packages past the free storage period are accruing fees on the shelf
	freeDays := tenant.Settings.Fees.StorageFreeDays
	cutoff := startOfDay.AddDate(0, 0, -freeDays)
	stats.AgedPackages, err = s.analyticsRepo.GetAgedPackageCount(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	stats.FeesCollectedToday, err = s.analyticsRepo.GetFeesCollected(ctx, startOfDay, endOfDay)
	if err != nil {
		return nil, err
	}

	stats.FeesCollectedMonth, err = s.analyticsRepo.GetFeesCollected(ctx, startOfMonth, endOfDay)
	if err != nil {
		return nil, err
	}

	dailyFees, err := s.analyticsRepo.GetDailyFees(ctx, 14)
	if err != nil {
		return nil, err
	}
	for _, d := range dailyFees {
		stats.DailyFees = append(stats.DailyFees, DailyFeesPoint{
			Date:      d.Date.Format("2006-01-02"),
			Fees:      d.Fees,
			Checkouts: d.Count,
		})
	}

	carriers, err := s.analyticsRepo.GetCarrierVolume(ctx, startOfMonth, endOfDay)
	if err != nil {
		return nil, err
	}
	for _, c := range carriers {
		stats.CarrierVolume = append(stats.CarrierVolume, CarrierVolumePoint{
			Carrier: c.Carrier,
			Count:   c.Count,
		})
	}

	top, err := s.analyticsRepo.GetTopCustomers(ctx, 5)
	if err != nil {
		return nil, err
	}
	for _, t := range top {
		stats.TopCustomers = append(stats.TopCustomers, TopCustomerPoint{
			CustomerID: t.CustomerID.String(),
			Name:       t.CustomerName,
			PMBNumber:  t.PMBNumber,
			TotalFees:  t.TotalFees,
			Checkouts:  t.Checkouts,
		})
	}

	return stats, nil
}
