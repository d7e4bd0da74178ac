package checkout

import (
	"strings"
	"testing"

	"github.com/shipos/shipos-api/pkg/money"
)

func sumLineItems(items []LineItem) money.Cents {
	var sum money.Cents
	for _, item := range items {
		sum += item.Total
	}
	return sum
}

func TestBuildLineItemsSumEqualsSubtotal(t *testing.T) {
	tests := []struct {
		name         string
		cfg          func() FeeConfig
		packages     []PackageForFees
		monthlyCount int
		addOn        money.Cents
	}{
		{
			name:     "storage and receiving",
			cfg:      DefaultFeeConfig,
			packages: []PackageForFees{pkgAgedDays(45), pkgAgedDays(5)},
		},
		{
			name: "quota overages",
			cfg: func() FeeConfig {
				cfg := DefaultFeeConfig()
				cfg.PackageQuota = 1
				return cfg
			},
			packages:     []PackageForFees{pkgAgedDays(0), pkgAgedDays(0), pkgAgedDays(0)},
			monthlyCount: 1,
		},
		{
			name:     "add-on services",
			cfg:      DefaultFeeConfig,
			packages: []PackageForFees{pkgAgedDays(0)},
			addOn:    2500,
		},
		{
			name: "everything at once",
			cfg: func() FeeConfig {
				cfg := DefaultFeeConfig()
				cfg.PackageQuota = 2
				cfg.StorageCountWeekends = false
				return cfg
			},
			packages:     []PackageForFees{pkgAgedDays(90), pkgAgedDays(45), pkgAgedDays(1)},
			monthlyCount: 2,
			addOn:        1250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateFees(tt.packages, tt.cfg(), tt.monthlyCount, tt.addOn, testNow)
			items := BuildLineItems(result)
			if got := sumLineItems(items); got != result.Subtotal {
				t.Errorf("line item sum = %d, want subtotal %d", got, result.Subtotal)
			}
		})
	}
}

func TestBuildLineItemsStorageLines(t *testing.T) {
	// Two aged packages and one fresh one: storage lines only for the
	// aged two, in input order.
	result := CalculateFees([]PackageForFees{pkgAgedDays(45), pkgAgedDays(3), pkgAgedDays(60)}, DefaultFeeConfig(), 0, 0, testNow)
	items := BuildLineItems(result)

	var storageLines []LineItem
	for _, item := range items {
		if strings.HasPrefix(item.Description, "Storage") {
			storageLines = append(storageLines, item)
		}
	}
	if len(storageLines) != 2 {
		t.Fatalf("got %d storage lines, want 2", len(storageLines))
	}
	if storageLines[0].Total != 1500 || storageLines[1].Total != 3000 {
		t.Errorf("storage line totals = %d, %d; want 1500, 3000 in input order",
			storageLines[0].Total, storageLines[1].Total)
	}
	for _, line := range storageLines {
		if line.Quantity != 1 {
			t.Errorf("storage line quantity = %d, want 1", line.Quantity)
		}
		if line.UnitPrice != line.Total {
			t.Errorf("storage line unit price %d != total %d", line.UnitPrice, line.Total)
		}
		if !strings.Contains(line.Description, "billable days") {
			t.Errorf("storage description %q should name the billable day count", line.Description)
		}
	}
}

func TestBuildLineItemsReceivingAggregated(t *testing.T) {
	result := CalculateFees([]PackageForFees{pkgAgedDays(0), pkgAgedDays(0), pkgAgedDays(0)}, DefaultFeeConfig(), 0, 0, testNow)
	items := BuildLineItems(result)

	var receiving *LineItem
	for i := range items {
		if strings.HasPrefix(items[i].Description, "Package receiving") {
			if receiving != nil {
				t.Fatal("more than one receiving line")
			}
			receiving = &items[i]
		}
	}
	if receiving == nil {
		t.Fatal("no receiving line")
	}
	if receiving.Quantity != 3 {
		t.Errorf("receiving quantity = %d, want 3", receiving.Quantity)
	}
	if receiving.UnitPrice != 300 {
		t.Errorf("receiving unit price = %d, want 300", receiving.UnitPrice)
	}
	if receiving.Total != 900 {
		t.Errorf("receiving total = %d, want 900", receiving.Total)
	}
}

func TestBuildLineItemsQuotaAggregated(t *testing.T) {
	cfg := DefaultFeeConfig()
	cfg.PackageQuota = 5
	result := CalculateFees([]PackageForFees{pkgAgedDays(0), pkgAgedDays(0)}, cfg, 4, 0, testNow)
	items := BuildLineItems(result)

	var quota *LineItem
	for i := range items {
		if strings.HasPrefix(items[i].Description, "Quota overage") {
			quota = &items[i]
		}
	}
	if quota == nil {
		t.Fatal("no quota line")
	}
	if quota.Quantity != 1 {
		t.Errorf("quota quantity = %d, want 1", quota.Quantity)
	}
	if quota.UnitPrice != 200 {
		t.Errorf("quota unit price = %d, want 200", quota.UnitPrice)
	}
	if !strings.Contains(quota.Description, "limit of 5") {
		t.Errorf("quota description %q should name the limit", quota.Description)
	}
}

func TestBuildLineItemsNoFees(t *testing.T) {
	cfg := DefaultFeeConfig()
	cfg.ReceivingFeeCents = 0
	result := CalculateFees([]PackageForFees{pkgAgedDays(1)}, cfg, 0, 0, testNow)
	if items := BuildLineItems(result); len(items) != 0 {
		t.Errorf("got %d line items for a zero-fee checkout, want 0", len(items))
	}
}

func TestBuildReceiptDataCopiesTotalsAndContext(t *testing.T) {
	result := CalculateFees([]PackageForFees{pkgAgedDays(45)}, DefaultFeeConfig(), 0, 0, testNow)
	items := BuildLineItems(result)
	ctx := ReceiptContext{
		InvoiceNo:     "SHP-1234",
		StoreName:     "Sunset Mail Center",
		CustomerName:  "Dana Fox",
		PMBNumber:     "204",
		StaffName:     "Riley",
		PaymentMethod: "post_to_account",
		Packages:      []PackageForFees{pkgAgedDays(45)},
	}

	data := BuildReceiptData(result, items, ctx)

	if data.Subtotal != result.Subtotal || data.TaxAmount != result.TaxAmount || data.Total != result.Total {
		t.Errorf("totals not copied: %+v", data)
	}
	if data.TaxRate != result.TaxRate {
		t.Errorf("TaxRate = %v, want %v", data.TaxRate, result.TaxRate)
	}
	if data.InvoiceNo != "SHP-1234" || data.CustomerName != "Dana Fox" || data.PMBNumber != "204" {
		t.Errorf("context fields not copied verbatim: %+v", data)
	}
	if data.DateTime.IsZero() {
		t.Error("DateTime not stamped")
	}
	if len(data.LineItems) != len(items) {
		t.Errorf("got %d line items, want %d", len(data.LineItems), len(items))
	}
}

func TestPaymentMethodLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"cash", "Cash"},
		{"post_to_account", "Post to Account"},
		{"card", "Credit/Debit Card"},
		{"bitcoin", "bitcoin"}, // unmapped codes pass through
	}
	for _, tt := range tests {
		if got := PaymentMethodLabel(tt.code); got != tt.want {
			t.Errorf("PaymentMethodLabel(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
