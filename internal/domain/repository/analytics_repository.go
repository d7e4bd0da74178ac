package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/pkg/money"
)

// DailyFeesResult represents fee revenue for a single day
type DailyFeesResult struct {
	Date  time.Time
	Fees  money.Cents
	Count int
}

// CarrierVolumeResult represents package volume for one carrier
type CarrierVolumeResult struct {
	Carrier string
	Count   int
}

// TopCustomerResult represents a customer's fee contribution
type TopCustomerResult struct {
	CustomerID   uuid.UUID
	CustomerName string
	PMBNumber    string
	TotalFees    money.Cents
	Checkouts    int
}

// AnalyticsRepository defines interface for billing dashboard aggregations.
// All queries are tenant-scoped through context.
type AnalyticsRepository interface {
	// GetPackagesReceived counts packages checked in between from and to.
	GetPackagesReceived(ctx context.Context, from, to time.Time) (int64, error)

	// GetPendingPackageCount counts packages still on the shelf.
	GetPendingPackageCount(ctx context.Context) (int64, error)

	// GetAgedPackageCount counts pending packages checked in before cutoff
	// (i.e. past the storage free period).
	GetAgedPackageCount(ctx context.Context, cutoff time.Time) (int64, error)

	// GetFeesCollected sums checkout totals between from and to.
	GetFeesCollected(ctx context.Context, from, to time.Time) (money.Cents, error)

	// GetDailyFees returns per-day fee revenue for the last N days.
	GetDailyFees(ctx context.Context, days int) ([]DailyFeesResult, error)

	// GetCarrierVolume returns package counts per carrier between from and to.
	GetCarrierVolume(ctx context.Context, from, to time.Time) ([]CarrierVolumeResult, error)

	// GetTopCustomers returns customers ranked by fees paid.
	GetTopCustomers(ctx context.Context, limit int) ([]TopCustomerResult, error)
}
