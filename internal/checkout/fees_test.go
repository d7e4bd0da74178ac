package checkout

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/pkg/money"
)

// 2025-03-14 is a Friday.
var testNow = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

func pkgCheckedIn(t time.Time) PackageForFees {
	return PackageForFees{
		ID:          uuid.New(),
		CheckedInAt: t,
		Carrier:     "ups",
		PackageType: "box",
	}
}

func pkgAgedDays(days int) PackageForFees {
	return pkgCheckedIn(testNow.AddDate(0, 0, -days))
}

func TestCalculateFeesSinglePackageStorageAndTax(t *testing.T) {
	// One package held 45 days: 15 billable days past the free period at
	// $1.00/day plus the $3.00 receiving fee, taxed at 8.75%.
	cfg := DefaultFeeConfig()
	result := CalculateFees([]PackageForFees{pkgAgedDays(45)}, cfg, 0, 0, testNow)

	pkg := result.Packages[0]
	if pkg.DaysHeld != 45 {
		t.Errorf("DaysHeld = %d, want 45", pkg.DaysHeld)
	}
	if pkg.BillableDays != 45 {
		t.Errorf("BillableDays = %d, want 45", pkg.BillableDays)
	}
	if pkg.StorageFee != 1500 {
		t.Errorf("StorageFee = %d, want 1500", pkg.StorageFee)
	}
	if pkg.ReceivingFee != 300 {
		t.Errorf("ReceivingFee = %d, want 300", pkg.ReceivingFee)
	}
	if pkg.QuotaFee != 0 {
		t.Errorf("QuotaFee = %d, want 0", pkg.QuotaFee)
	}
	if result.Subtotal != 1800 {
		t.Errorf("Subtotal = %d, want 1800", result.Subtotal)
	}
	if result.TaxAmount != 158 {
		t.Errorf("TaxAmount = %d, want 158 (1.575 rounds up)", result.TaxAmount)
	}
	if result.Total != 1958 {
		t.Errorf("Total = %d, want 1958", result.Total)
	}
}

func TestCalculateFeesFreePeriod(t *testing.T) {
	cfg := DefaultFeeConfig()
	for _, days := range []int{0, 1, 15, 29, 30} {
		result := CalculateFees([]PackageForFees{pkgAgedDays(days)}, cfg, 0, 0, testNow)
		if fee := result.Packages[0].StorageFee; fee != 0 {
			t.Errorf("package held %d days: StorageFee = %d, want 0 within free period", days, fee)
		}
	}
}

func TestCalculateFeesStorageLinearity(t *testing.T) {
	cfg := DefaultFeeConfig()
	cfg.StorageRateCents = 150
	for _, days := range []int{31, 40, 90, 365} {
		result := CalculateFees([]PackageForFees{pkgAgedDays(days)}, cfg, 0, 0, testNow)
		want := money.Cents(days-cfg.StorageFreeDays) * cfg.StorageRateCents
		if fee := result.Packages[0].StorageFee; fee != want {
			t.Errorf("package held %d days: StorageFee = %d, want %d", days, fee, want)
		}
	}
}

func TestCalculateFeesReceivingFeeUniversal(t *testing.T) {
	// The receiving fee applies to every package, even same-day pickups.
	cfg := DefaultFeeConfig()
	packages := []PackageForFees{pkgAgedDays(0), pkgAgedDays(5), pkgAgedDays(200)}
	result := CalculateFees(packages, cfg, 0, 0, testNow)

	for i, pkg := range result.Packages {
		if pkg.ReceivingFee != cfg.ReceivingFeeCents {
			t.Errorf("package %d: ReceivingFee = %d, want %d", i, pkg.ReceivingFee, cfg.ReceivingFeeCents)
		}
	}
	if result.ReceivingFeeTotal != 900 {
		t.Errorf("ReceivingFeeTotal = %d, want 900", result.ReceivingFeeTotal)
	}
}

func TestCalculateFeesQuotaOrdering(t *testing.T) {
	// Quota 2 with 1 already used this month: in a batch of 3, exactly
	// the 2nd and 3rd packages bear the overage fee.
	cfg := DefaultFeeConfig()
	cfg.PackageQuota = 2
	cfg.QuotaOverageCents = 200

	packages := []PackageForFees{pkgAgedDays(0), pkgAgedDays(0), pkgAgedDays(0)}
	result := CalculateFees(packages, cfg, 1, 0, testNow)

	wantFees := []money.Cents{0, 200, 200}
	for i, pkg := range result.Packages {
		if pkg.QuotaFee != wantFees[i] {
			t.Errorf("package %d: QuotaFee = %d, want %d", i, pkg.QuotaFee, wantFees[i])
		}
	}
	if result.QuotaFeeTotal != 400 {
		t.Errorf("QuotaFeeTotal = %d, want 400", result.QuotaFeeTotal)
	}
	if result.QuotaOverageCount != 2 {
		t.Errorf("QuotaOverageCount = %d, want 2", result.QuotaOverageCount)
	}
	if result.QuotaUsedThisMonth != 4 {
		t.Errorf("QuotaUsedThisMonth = %d, want 4", result.QuotaUsedThisMonth)
	}
}

func TestCalculateFeesUnlimitedQuota(t *testing.T) {
	cfg := DefaultFeeConfig()
	cfg.PackageQuota = 0

	var packages []PackageForFees
	for i := 0; i < 50; i++ {
		packages = append(packages, pkgAgedDays(0))
	}
	result := CalculateFees(packages, cfg, 120, 0, testNow)

	if result.QuotaFeeTotal != 0 {
		t.Errorf("QuotaFeeTotal = %d, want 0 with unlimited quota", result.QuotaFeeTotal)
	}
	if result.QuotaOverageCount != 0 {
		t.Errorf("QuotaOverageCount = %d, want 0", result.QuotaOverageCount)
	}
	if result.QuotaUsedThisMonth != 170 {
		t.Errorf("QuotaUsedThisMonth = %d, want monthlyCount+batch = 170", result.QuotaUsedThisMonth)
	}
}

func TestCalculateFeesWeekendExclusion(t *testing.T) {
	// Checked in on a Friday, picked up the following Friday: 7 calendar
	// days held but only 5 billable when weekends are excluded.
	cfg := DefaultFeeConfig()
	cfg.StorageCountWeekends = false

	friday := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	nextFriday := friday.AddDate(0, 0, 7)

	result := CalculateFees([]PackageForFees{pkgCheckedIn(friday)}, cfg, 0, 0, nextFriday)
	pkg := result.Packages[0]
	if pkg.DaysHeld != 7 {
		t.Errorf("DaysHeld = %d, want 7", pkg.DaysHeld)
	}
	if pkg.BillableDays != 5 {
		t.Errorf("BillableDays = %d, want 5", pkg.BillableDays)
	}
}

func TestCalculateFeesWeekendsCountedMatchesDaysHeld(t *testing.T) {
	cfg := DefaultFeeConfig()
	cfg.StorageCountWeekends = true
	for _, days := range []int{0, 3, 7, 31, 100} {
		result := CalculateFees([]PackageForFees{pkgAgedDays(days)}, cfg, 0, 0, testNow)
		pkg := result.Packages[0]
		if pkg.BillableDays != pkg.DaysHeld {
			t.Errorf("held %d days: BillableDays = %d, DaysHeld = %d, want equal", days, pkg.BillableDays, pkg.DaysHeld)
		}
	}
}

func TestCalculateFeesFutureCheckInClampsToZero(t *testing.T) {
	cfg := DefaultFeeConfig()
	result := CalculateFees([]PackageForFees{pkgAgedDays(-3)}, cfg, 0, 0, testNow)
	pkg := result.Packages[0]
	if pkg.DaysHeld != 0 {
		t.Errorf("DaysHeld = %d, want 0 for future check-in", pkg.DaysHeld)
	}
	if pkg.StorageFee != 0 {
		t.Errorf("StorageFee = %d, want 0", pkg.StorageFee)
	}
}

func TestCalculateFeesAddOnTotal(t *testing.T) {
	cfg := DefaultFeeConfig()
	result := CalculateFees([]PackageForFees{pkgAgedDays(0)}, cfg, 0, 2500, testNow)

	if result.AddOnTotal != 2500 {
		t.Errorf("AddOnTotal = %d, want 2500", result.AddOnTotal)
	}
	// subtotal = receiving (300) + add-ons (2500)
	if result.Subtotal != 2800 {
		t.Errorf("Subtotal = %d, want 2800", result.Subtotal)
	}
}

func TestCalculateFeesTotalDecomposition(t *testing.T) {
	cfg := DefaultFeeConfig()
	cfg.PackageQuota = 1
	cfg.StorageCountWeekends = false

	packages := []PackageForFees{pkgAgedDays(60), pkgAgedDays(10), pkgAgedDays(45)}
	result := CalculateFees(packages, cfg, 1, 750, testNow)

	for i, pkg := range result.Packages {
		if pkg.Total != pkg.StorageFee+pkg.ReceivingFee+pkg.QuotaFee {
			t.Errorf("package %d: Total = %d, want sum of components %d",
				i, pkg.Total, pkg.StorageFee+pkg.ReceivingFee+pkg.QuotaFee)
		}
	}

	wantSubtotal := result.StorageFeeTotal + result.ReceivingFeeTotal + result.QuotaFeeTotal + result.AddOnTotal
	if result.Subtotal != wantSubtotal {
		t.Errorf("Subtotal = %d, want %d", result.Subtotal, wantSubtotal)
	}
	if result.Total != result.Subtotal+result.TaxAmount {
		t.Errorf("Total = %d, want Subtotal+TaxAmount = %d", result.Total, result.Subtotal+result.TaxAmount)
	}
}

func TestCalculateFeesDuplicatePackagesBillTwice(t *testing.T) {
	cfg := DefaultFeeConfig()
	pkg := pkgAgedDays(40)
	result := CalculateFees([]PackageForFees{pkg, pkg}, cfg, 0, 0, testNow)

	if len(result.Packages) != 2 {
		t.Fatalf("got %d breakdowns, want 2", len(result.Packages))
	}
	if result.Packages[0].Total != result.Packages[1].Total {
		t.Errorf("duplicate package billed differently: %d vs %d",
			result.Packages[0].Total, result.Packages[1].Total)
	}
	if result.ReceivingFeeTotal != 600 {
		t.Errorf("ReceivingFeeTotal = %d, want 600", result.ReceivingFeeTotal)
	}
}

func TestCalculateFeesEmptyBatch(t *testing.T) {
	cfg := DefaultFeeConfig()
	result := CalculateFees(nil, cfg, 5, 0, testNow)

	if len(result.Packages) != 0 {
		t.Errorf("got %d breakdowns, want 0", len(result.Packages))
	}
	if result.Subtotal != 0 || result.TaxAmount != 0 || result.Total != 0 {
		t.Errorf("empty batch produced nonzero totals: %+v", result)
	}
	if result.QuotaUsedThisMonth != 5 {
		t.Errorf("QuotaUsedThisMonth = %d, want monthlyCount echo of 5", result.QuotaUsedThisMonth)
	}
}

func TestCalculateFeesDeterministic(t *testing.T) {
	cfg := DefaultFeeConfig()
	cfg.PackageQuota = 3
	packages := []PackageForFees{pkgAgedDays(45), pkgAgedDays(2), pkgAgedDays(90)}

	first := CalculateFees(packages, cfg, 2, 500, testNow)
	second := CalculateFees(packages, cfg, 2, 500, testNow)

	if first.Total != second.Total || first.QuotaOverageCount != second.QuotaOverageCount {
		t.Errorf("same inputs produced different results: %+v vs %+v", first, second)
	}
}

func TestDefaultFeeConfigIsFresh(t *testing.T) {
	a := DefaultFeeConfig()
	a.StorageRateCents = 999
	b := DefaultFeeConfig()
	if b.StorageRateCents != 100 {
		t.Fatalf("mutating one default leaked into the next: %d", b.StorageRateCents)
	}
}

func TestWeekdaysBetween(t *testing.T) {
	monday := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", monday, monday, 0},
		{"one weekday", monday, monday.AddDate(0, 0, 1), 1},
		{"monday to saturday", monday, monday.AddDate(0, 0, 5), 5},
		{"monday to monday spans weekend", monday, monday.AddDate(0, 0, 7), 5},
		{"two full weeks", monday, monday.AddDate(0, 0, 14), 10},
		{"saturday to monday", monday.AddDate(0, 0, -2), monday, 0},
	}
	for _, tt := range tests {
		if got := weekdaysBetween(tt.start, tt.end); got != tt.want {
			t.Errorf("%s: weekdaysBetween = %d, want %d", tt.name, got, tt.want)
		}
	}
}
