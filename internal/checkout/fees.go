package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/pkg/money"
)

// FeeConfig holds a store's fee policy for package checkout. It is plain
// injected data: per-tenant overrides produce a new value, the shared default
// is never patched in place.
type FeeConfig struct {
	// StorageRateCents is charged per billable day after the free period.
	StorageRateCents money.Cents `json:"storage_rate"`
	// StorageFreeDays is how many days a package may sit before storage
	// fees accrue.
	StorageFreeDays int `json:"storage_free_days"`
	// StorageCountWeekends controls whether Saturday/Sunday count toward
	// the billable day count. The customer-facing "days held" number always
	// includes weekends.
	StorageCountWeekends bool `json:"storage_count_weekends"`
	// ReceivingFeeCents is a flat handling charge applied once per package.
	ReceivingFeeCents money.Cents `json:"receiving_fee"`
	// PackageQuota is the monthly package allowance. 0 means unlimited.
	PackageQuota int `json:"package_quota"`
	// QuotaOverageCents is charged for each package beyond the quota.
	QuotaOverageCents money.Cents `json:"package_quota_overage"`
	// TaxRate is a decimal fraction applied to the subtotal, e.g. 0.0875.
	TaxRate float64 `json:"tax_rate"`
}

// DefaultFeeConfig returns the fallback fee policy for stores that have not
// configured their own: $1.00/day storage after 30 free days, weekends
// counted, $3.00 receiving fee, unlimited quota, $2.00 overage, 8.75% tax.
func DefaultFeeConfig() FeeConfig {
	return FeeConfig{
		StorageRateCents:     100,
		StorageFreeDays:      30,
		StorageCountWeekends: true,
		ReceivingFeeCents:    300,
		PackageQuota:         0,
		QuotaOverageCents:    200,
		TaxRate:              0.0875,
	}
}

// PackageForFees is the slice of a package record the calculator needs.
// Only ID and CheckedInAt feed the arithmetic; the rest is carried through
// for display on receipts.
type PackageForFees struct {
	ID             uuid.UUID `json:"id"`
	CheckedInAt    time.Time `json:"checked_in_at"`
	Carrier        string    `json:"carrier"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	PackageType    string    `json:"package_type"`
}

// PackageFeeBreakdown is the per-package output of a fee calculation.
type PackageFeeBreakdown struct {
	PackageID uuid.UUID `json:"package_id"`
	// DaysHeld is the customer-facing age of the package: whole calendar
	// days since check-in, weekends always included.
	DaysHeld int `json:"days_held"`
	// BillableDays is the day count used for storage billing, which
	// excludes weekends when the store's policy says so.
	BillableDays int         `json:"billable_days"`
	StorageFee   money.Cents `json:"storage_fee"`
	ReceivingFee money.Cents `json:"receiving_fee"`
	QuotaFee     money.Cents `json:"quota_fee"`
	Total        money.Cents `json:"total"`
}

// FeeCalculationResult aggregates a batch fee calculation.
type FeeCalculationResult struct {
	Packages []PackageFeeBreakdown `json:"packages"`

	StorageFeeTotal   money.Cents `json:"storage_fee_total"`
	ReceivingFeeTotal money.Cents `json:"receiving_fee_total"`
	QuotaFeeTotal     money.Cents `json:"quota_fee_total"`
	AddOnTotal        money.Cents `json:"add_on_total"`
	Subtotal          money.Cents `json:"subtotal"`
	TaxRate           float64     `json:"tax_rate"`
	TaxAmount         money.Cents `json:"tax_amount"`
	Total             money.Cents `json:"total"`

	QuotaUsedThisMonth int `json:"quota_used_this_month"`
	QuotaLimit         int `json:"quota_limit"`
	QuotaOverageCount  int `json:"quota_overage_count"`
}

// quotaState is the accumulator threaded through the per-package pass.
// Quota attribution is order-dependent: the counter is incremented before
// testing, so the first package past the limit is the first to pay.
type quotaState struct {
	used     int
	overages int
}

func (q quotaState) next(limit int) (quotaState, bool) {
	q.used++
	if limit > 0 && q.used > limit {
		q.overages++
		return q, true
	}
	return q, false
}

// CalculateFees computes storage, receiving and quota fees for a batch of
// packages being picked up, plus tax and totals.
//
// monthlyCount is the number of packages this customer already received
// earlier in the current calendar month, the seed for quota accounting.
// addOn is a pre-summed amount for ancillary services that bypass the
// per-package fee logic. now is the reference instant for all day counting;
// pass time.Now() outside of tests.
//
// The function is pure arithmetic over its inputs: no I/O, no validation,
// never an error. Packages are billed in input order and duplicates bill
// twice.
func CalculateFees(packages []PackageForFees, cfg FeeConfig, monthlyCount int, addOn money.Cents, now time.Time) FeeCalculationResult {
	result := FeeCalculationResult{
		Packages:   make([]PackageFeeBreakdown, 0, len(packages)),
		AddOnTotal: addOn,
		TaxRate:    cfg.TaxRate,
		QuotaLimit: cfg.PackageQuota,
	}

	quota := quotaState{used: monthlyCount}
	for _, pkg := range packages {
		held := daysBetween(pkg.CheckedInAt, now)
		billable := held
		if !cfg.StorageCountWeekends {
			billable = weekdaysBetween(pkg.CheckedInAt, now)
		}

		var storage money.Cents
		if billable > cfg.StorageFreeDays {
			storage = money.Cents(billable-cfg.StorageFreeDays) * cfg.StorageRateCents
		}

		var quotaFee money.Cents
		var over bool
		quota, over = quota.next(cfg.PackageQuota)
		if over {
			quotaFee = cfg.QuotaOverageCents
		}

		breakdown := PackageFeeBreakdown{
			PackageID:    pkg.ID,
			DaysHeld:     held,
			BillableDays: billable,
			StorageFee:   storage,
			ReceivingFee: cfg.ReceivingFeeCents,
			QuotaFee:     quotaFee,
			Total:        storage + cfg.ReceivingFeeCents + quotaFee,
		}
		result.Packages = append(result.Packages, breakdown)

		result.StorageFeeTotal += breakdown.StorageFee
		result.ReceivingFeeTotal += breakdown.ReceivingFee
		result.QuotaFeeTotal += breakdown.QuotaFee
	}

	result.Subtotal = result.StorageFeeTotal + result.ReceivingFeeTotal + result.QuotaFeeTotal + addOn
	result.TaxAmount = money.RoundTax(result.Subtotal, cfg.TaxRate)
	result.Total = result.Subtotal + result.TaxAmount

	result.QuotaUsedThisMonth = quota.used
	result.QuotaOverageCount = quota.overages

	return result
}

// daysBetween returns whole elapsed days from checkIn to now, floored and
// clamped at zero. Weekends are always included here.
func daysBetween(checkIn, now time.Time) int {
	if !now.After(checkIn) {
		return 0
	}
	return int(now.Sub(checkIn) / (24 * time.Hour))
}

// weekdaysBetween counts the non-weekend days in the span, walking calendar
// days from check-in's midnight to now's midnight.
func weekdaysBetween(checkIn, now time.Time) int {
	start := midnight(checkIn)
	end := midnight(now)
	count := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
