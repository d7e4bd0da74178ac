package repository

import (
	"context"
	"time"

	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/internal/domain/enum"
	domainRepo "github.com/shipos/shipos-api/internal/domain/repository"
	"github.com/shipos/shipos-api/pkg/money"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetPackagesReceived(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Package{}).
		Scopes(TenantScope(ctx)).
		Where("checked_in_at >= ? AND checked_in_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) GetPendingPackageCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Package{}).
		Scopes(TenantScope(ctx)).
		Where("status = ?", enum.PackageStatusPending).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) GetAgedPackageCount(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Package{}).
		Scopes(TenantScope(ctx)).
		Where("status = ? AND checked_in_at < ?", enum.PackageStatusPending, cutoff).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) GetFeesCollected(ctx context.Context, from, to time.Time) (money.Cents, error) {
	var total *int64
	err := r.db.WithContext(ctx).
		Model(&entity.CheckoutTransaction{}).
		Scopes(TenantScope(ctx)).
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("SUM(total)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return money.Cents(*total), nil
}

func (r *analyticsRepository) GetDailyFees(ctx context.Context, days int) ([]domainRepo.DailyFeesResult, error) {
	results := make([]domainRepo.DailyFeesResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Fees  *int64
			Count int
		}
		err := r.db.WithContext(ctx).
			Model(&entity.CheckoutTransaction{}).
			Scopes(TenantScope(ctx)).
			Where("created_at >= ? AND created_at < ?", startOfDay, endOfDay).
			Select("SUM(total) as fees, COUNT(*) as count").
			Scan(&row).Error
		if err != nil {
			return nil, err
		}

		var fees money.Cents
		if row.Fees != nil {
			fees = money.Cents(*row.Fees)
		}

		results = append(results, domainRepo.DailyFeesResult{
			Date:  startOfDay,
			Fees:  fees,
			Count: row.Count,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetCarrierVolume(ctx context.Context, from, to time.Time) ([]domainRepo.CarrierVolumeResult, error) {
	var results []domainRepo.CarrierVolumeResult
	err := r.db.WithContext(ctx).
		Model(&entity.Package{}).
		Scopes(TenantScope(ctx)).
		Where("checked_in_at >= ? AND checked_in_at < ?", from, to).
		Select("carrier, COUNT(*) as count").
		Group("carrier").
		Order("count DESC").
		Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) GetTopCustomers(ctx context.Context, limit int) ([]domainRepo.TopCustomerResult, error) {
	var results []domainRepo.TopCustomerResult
	err := r.db.WithContext(ctx).
		Model(&entity.CheckoutTransaction{}).
		Scopes(TenantScopeFor(ctx, "checkout_transactions")).
		Joins("JOIN customers ON customers.id = checkout_transactions.customer_id").
		Select(`customers.id as customer_id,
			customers.name as customer_name,
			customers.pmb_number as pmb_number,
			SUM(checkout_transactions.total) as total_fees,
			COUNT(checkout_transactions.id) as checkouts`).
		Group("customers.id, customers.name, customers.pmb_number").
		Order("total_fees DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}
