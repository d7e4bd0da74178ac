package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/shipos/shipos-api/internal/checkout"
	"github.com/shipos/shipos-api/pkg/money"
)

func sampleReceipt() *checkout.ReceiptData {
	return &checkout.ReceiptData{
		InvoiceNo:    "INV-AB12CD34",
		StoreName:    "Downtown Mail Center",
		StoreAddress: "100 Main St",
		StorePhone:   "555-0100",
		CustomerName: "Pat Jones",
		PMBNumber:    "142",
		StaffName:    "Alex Kim",
		Packages:     make([]checkout.PackageForFees, 2),
		LineItems: []checkout.LineItem{
			{Description: "Receiving fee", Quantity: 2, UnitPrice: money.Cents(300), Total: money.Cents(600)},
			{Description: "Storage: 5 billable days", Quantity: 1, UnitPrice: money.Cents(500), Total: money.Cents(500)},
		},
		Subtotal:      money.Cents(1100),
		TaxRate:       0.0875,
		TaxAmount:     money.Cents(96),
		Total:         money.Cents(1196),
		PaymentMethod: "cash",
		DateTime:      time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestFormatCheckoutReceiptContents(t *testing.T) {
	data := FormatCheckoutReceipt(sampleReceipt())

	for _, want := range []string{
		"Downtown Mail Center",
		"INV-AB12CD34",
		"2025-03-14 10:30",
		"Alex Kim",
		"Pat Jones",
		"142",
		"Cash",
		"Receiving fee",
		"$3.00",
		"$11.00",
		"$0.96",
		"$11.96",
		"2 package(s) picked up",
		"Thank you!",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("receipt output missing %q", want)
		}
	}
}

func TestFormatCheckoutReceiptOmitsEmptyFields(t *testing.T) {
	r := sampleReceipt()
	r.StaffName = ""
	r.TaxAmount = 0
	data := FormatCheckoutReceipt(r)

	if bytes.Contains(data, []byte("Clerk:")) {
		t.Error("clerk line printed without a staff name")
	}
	if bytes.Contains(data, []byte("Tax")) {
		t.Error("tax line printed for zero tax")
	}
}

func TestFormatCheckoutReceiptEndsWithCut(t *testing.T) {
	data := FormatCheckoutReceipt(sampleReceipt())
	// GS V 1 is the ESC/POS partial cut sequence
	cut := []byte{0x1D, 0x56, 1}
	if !bytes.HasSuffix(data, cut) {
		t.Error("receipt does not end with a partial cut")
	}
}
