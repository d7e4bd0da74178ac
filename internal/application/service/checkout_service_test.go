package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/internal/domain/enum"
	"github.com/shipos/shipos-api/internal/domain/repository"
	infraRepo "github.com/shipos/shipos-api/internal/infrastructure/repository"
	"github.com/shipos/shipos-api/pkg/money"
)

// stubPackageRepo holds the customer's packages for this month in memory and
// answers the two reads QuoteCheckout performs.
type stubPackageRepo struct {
	repository.PackageRepository
	pkgs []entity.Package
}

func (s *stubPackageRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Package, error) {
	var out []entity.Package
	for _, id := range ids {
		for _, pkg := range s.pkgs {
			if pkg.ID == id {
				out = append(out, pkg)
			}
		}
	}
	return out, nil
}

func (s *stubPackageRepo) CountReceivedInMonth(ctx context.Context, customerID uuid.UUID, ref time.Time, excludeIDs []uuid.UUID) (int64, error) {
	excluded := make(map[uuid.UUID]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	var count int64
	for _, pkg := range s.pkgs {
		if pkg.CustomerID == customerID && !excluded[pkg.ID] && pkg.CheckedInAt.Before(ref) {
			count++
		}
	}
	return count, nil
}

type stubTenantRepo struct {
	repository.TenantRepository
	tenant *entity.Tenant
}

func (s *stubTenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	return s.tenant, nil
}

// A customer whose entire monthly intake is picked up in one batch must not
// have those packages counted against the quota a second time through the
// monthly snapshot.
func TestQuoteCheckoutQuotaSnapshotExcludesBatch(t *testing.T) {
	tenantID := uuid.New()
	customerID := uuid.New()

	tenant := &entity.Tenant{
		ID:   tenantID,
		Name: "Downtown Mail Center",
		Settings: entity.StoreSettings{
			Fees: entity.FeeSettings{
				StorageRate:          100,
				StorageFreeDays:      30,
				StorageCountWeekends: true,
				ReceivingFee:         300,
				PackageQuota:         5,
				PackageQuotaOverage:  200,
				TaxRate:              0,
			},
		},
	}

	pkgs := make([]entity.Package, 5)
	ids := make([]uuid.UUID, 5)
	for i := range pkgs {
		pkgs[i] = entity.Package{
			ID:          uuid.New(),
			TenantID:    tenantID,
			CustomerID:  customerID,
			Carrier:     "ups",
			PackageType: "box",
			Status:      enum.PackageStatusPending,
			CheckedInAt: time.Now().Add(-2 * time.Hour),
		}
		ids[i] = pkgs[i].ID
	}

	svc := NewCheckoutService(
		&stubPackageRepo{pkgs: pkgs},
		nil,
		&stubTenantRepo{tenant: tenant},
		nil, nil, nil, nil, nil,
	)

	ctx := infraRepo.WithTenant(context.Background(), tenantID)
	quote, err := svc.QuoteCheckout(ctx, &QuoteInput{
		CustomerID: customerID,
		PackageIDs: ids,
	})
	if err != nil {
		t.Fatalf("QuoteCheckout returned error: %v", err)
	}

	if quote.Fees.QuotaFeeTotal != 0 {
		t.Errorf("QuotaFeeTotal = %d, want 0: five packages within a quota of five", quote.Fees.QuotaFeeTotal)
	}
	if quote.Fees.QuotaOverageCount != 0 {
		t.Errorf("QuotaOverageCount = %d, want 0", quote.Fees.QuotaOverageCount)
	}
	if quote.Fees.QuotaUsedThisMonth != 5 {
		t.Errorf("QuotaUsedThisMonth = %d, want 5", quote.Fees.QuotaUsedThisMonth)
	}
	if want := money.Cents(5 * 300); quote.Fees.ReceivingFeeTotal != want {
		t.Errorf("ReceivingFeeTotal = %d, want %d", quote.Fees.ReceivingFeeTotal, want)
	}
}

// A sixth package received earlier in the month but not part of the batch
// still counts toward the quota, pushing one batch package into overage.
func TestQuoteCheckoutQuotaCountsEarlierPackages(t *testing.T) {
	tenantID := uuid.New()
	customerID := uuid.New()

	tenant := &entity.Tenant{
		ID:   tenantID,
		Name: "Downtown Mail Center",
		Settings: entity.StoreSettings{
			Fees: entity.FeeSettings{
				StorageFreeDays:      30,
				StorageCountWeekends: true,
				PackageQuota:         5,
				PackageQuotaOverage:  200,
			},
		},
	}

	pkgs := make([]entity.Package, 6)
	for i := range pkgs {
		pkgs[i] = entity.Package{
			ID:          uuid.New(),
			TenantID:    tenantID,
			CustomerID:  customerID,
			Carrier:     "usps",
			PackageType: "box",
			Status:      enum.PackageStatusPending,
			CheckedInAt: time.Now().Add(-time.Duration(i+1) * time.Hour),
		}
	}
	// First package stays on the shelf; the other five are the batch.
	batchIDs := make([]uuid.UUID, 0, 5)
	for _, pkg := range pkgs[1:] {
		batchIDs = append(batchIDs, pkg.ID)
	}

	svc := NewCheckoutService(
		&stubPackageRepo{pkgs: pkgs},
		nil,
		&stubTenantRepo{tenant: tenant},
		nil, nil, nil, nil, nil,
	)

	ctx := infraRepo.WithTenant(context.Background(), tenantID)
	quote, err := svc.QuoteCheckout(ctx, &QuoteInput{
		CustomerID: customerID,
		PackageIDs: batchIDs,
	})
	if err != nil {
		t.Fatalf("QuoteCheckout returned error: %v", err)
	}

	if quote.Fees.QuotaOverageCount != 1 {
		t.Errorf("QuotaOverageCount = %d, want 1", quote.Fees.QuotaOverageCount)
	}
	if want := money.Cents(200); quote.Fees.QuotaFeeTotal != want {
		t.Errorf("QuotaFeeTotal = %d, want %d", quote.Fees.QuotaFeeTotal, want)
	}
	if quote.Fees.QuotaUsedThisMonth != 6 {
		t.Errorf("QuotaUsedThisMonth = %d, want 6", quote.Fees.QuotaUsedThisMonth)
	}
}
