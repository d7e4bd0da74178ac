package checkout

import (
	"fmt"
	"time"

	"github.com/shipos/shipos-api/pkg/money"
)

// LineItem is one itemized charge row destined for the printed/emailed
// receipt. Line items never include tax; tax is a separate receipt field.
type LineItem struct {
	Description string      `json:"description"`
	Quantity    int         `json:"quantity"`
	UnitPrice   money.Cents `json:"unit_price"`
	Total       money.Cents `json:"total"`
}

// BuildLineItems derives receipt line items from a fee calculation. The sum
// of the returned totals always equals the calculation's subtotal.
//
// Storage fees get one line per package (input order, zero-fee packages
// skipped); receiving, quota and add-on charges each get a single aggregated
// line when nonzero.
func BuildLineItems(result FeeCalculationResult) []LineItem {
	var items []LineItem

	for _, pkg := range result.Packages {
		if pkg.StorageFee <= 0 {
			continue
		}
		items = append(items, LineItem{
			Description: fmt.Sprintf("Storage: %d billable days (pkg %s)", pkg.BillableDays, shortID(pkg.PackageID.String())),
			Quantity:    1,
			UnitPrice:   pkg.StorageFee,
			Total:       pkg.StorageFee,
		})
	}

	if result.ReceivingFeeTotal > 0 {
		// All packages share the same flat rate; read it off the first.
		items = append(items, LineItem{
			Description: fmt.Sprintf("Package receiving (%d packages)", len(result.Packages)),
			Quantity:    len(result.Packages),
			UnitPrice:   result.Packages[0].ReceivingFee,
			Total:       result.ReceivingFeeTotal,
		})
	}

	if result.QuotaFeeTotal > 0 {
		var unit money.Cents
		for _, pkg := range result.Packages {
			if pkg.QuotaFee > 0 {
				unit = pkg.QuotaFee
				break
			}
		}
		items = append(items, LineItem{
			Description: fmt.Sprintf("Quota overage: %d over monthly limit of %d", result.QuotaOverageCount, result.QuotaLimit),
			Quantity:    result.QuotaOverageCount,
			UnitPrice:   unit,
			Total:       result.QuotaFeeTotal,
		})
	}

	if result.AddOnTotal > 0 {
		items = append(items, LineItem{
			Description: "Add-on services",
			Quantity:    1,
			UnitPrice:   result.AddOnTotal,
			Total:       result.AddOnTotal,
		})
	}

	return items
}

// shortID truncates a package identifier for display on receipt lines.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ReceiptContext carries the display-only identifying fields a receipt
// needs beyond the fee calculation itself.
type ReceiptContext struct {
	InvoiceNo        string
	StoreName        string
	StoreAddress     string
	StorePhone       string
	CustomerName     string
	PMBNumber        string
	StaffName        string
	PaymentMethod    string
	SignatureDataURL string
	Packages         []PackageForFees
}

// ReceiptData is the immutable record of what was charged at checkout,
// assembled once per transaction and handed to rendering, printing and
// email delivery. It is a value object, not a database entity.
type ReceiptData struct {
	InvoiceNo    string
	StoreName    string
	StoreAddress string
	StorePhone   string
	CustomerName string
	PMBNumber    string
	StaffName    string

	Packages  []PackageForFees
	LineItems []LineItem

	Subtotal  money.Cents
	TaxRate   float64
	TaxAmount money.Cents
	Total     money.Cents

	PaymentMethod    string
	SignatureDataURL string
	DateTime         time.Time
}

// BuildReceiptData assembles the receipt record from a fee calculation, its
// derived line items and the transaction context. DateTime is stamped at
// call time: it records when the receipt was produced, it is not a
// calculation input.
func BuildReceiptData(feeResult FeeCalculationResult, lineItems []LineItem, ctx ReceiptContext) ReceiptData {
	return ReceiptData{
		InvoiceNo:        ctx.InvoiceNo,
		StoreName:        ctx.StoreName,
		StoreAddress:     ctx.StoreAddress,
		StorePhone:       ctx.StorePhone,
		CustomerName:     ctx.CustomerName,
		PMBNumber:        ctx.PMBNumber,
		StaffName:        ctx.StaffName,
		Packages:         ctx.Packages,
		LineItems:        lineItems,
		Subtotal:         feeResult.Subtotal,
		TaxRate:          feeResult.TaxRate,
		TaxAmount:        feeResult.TaxAmount,
		Total:            feeResult.Total,
		PaymentMethod:    ctx.PaymentMethod,
		SignatureDataURL: ctx.SignatureDataURL,
		DateTime:         time.Now(),
	}
}

// paymentMethodLabels maps payment method codes to their receipt labels.
var paymentMethodLabels = map[string]string{
	"cash":            "Cash",
	"card":            "Credit/Debit Card",
	"check":           "Check",
	"post_to_account": "Post to Account",
	"account_credit":  "Account Credit",
}

// PaymentMethodLabel translates a payment method code for display. Unmapped
// codes pass through verbatim.
func PaymentMethodLabel(code string) string {
	if label, ok := paymentMethodLabels[code]; ok {
		return label
	}
	return code
}
