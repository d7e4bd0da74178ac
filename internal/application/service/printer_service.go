package service

import (
	"fmt"
	"time"

	"github.com/shipos/shipos-api/internal/checkout"
	"github.com/shipos/shipos-api/pkg/money"
	"github.com/shipos/shipos-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, printerType string) *PrinterService {
	return &PrinterService{
		printer:     p,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
func (s *PrinterService) TestPrint() error {
	doc := printer.NewDocument(32)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text("PRINTER TEST").
		SetFontSize(printer.FontNormal).
		SetBold(false).
		Text(time.Now().Format("2006-01-02 15:04")).
		SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Alignment:", "OK").
		KeyValue("Currency:", money.Cents(1234).Format()).
		Separator('-').
		FeedLines(3).
		PartialCut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		return fmt.Errorf("test print failed: %w", err)
	}
	return nil
}

// PrintCheckoutReceipt formats a checkout receipt as ESC/POS and sends it to
// the thermal printer. The paper copy carries the same charges as the HTML
// receipt; only the layout differs.
func (s *PrinterService) PrintCheckoutReceipt(r *checkout.ReceiptData) error {
	data := FormatCheckoutReceipt(r)
	if err := s.printer.Print(data); err != nil {
		return fmt.Errorf("failed to print receipt %s: %w", r.InvoiceNo, err)
	}
	return nil
}

// FormatCheckoutReceipt converts receipt data into ESC/POS bytes.
func FormatCheckoutReceipt(r *checkout.ReceiptData) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.StoreAddress != "" {
		doc.Text(r.StoreAddress)
	}
	if r.StorePhone != "" {
		doc.Text(r.StorePhone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Date:", r.DateTime.Format("2006-01-02 15:04"))

	if r.StaffName != "" {
		doc.KeyValue("Clerk:", r.StaffName)
	}
	if r.CustomerName != "" {
		doc.KeyValue("Customer:", r.CustomerName)
	}
	if r.PMBNumber != "" {
		doc.KeyValue("PMB:", r.PMBNumber)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", checkout.PaymentMethodLabel(r.PaymentMethod))
	}

	doc.Separator('-')

	// Charges
	for _, item := range r.LineItems {
		doc.ItemLine(item.Quantity, item.Description, item.Total.Format())
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", item.UnitPrice.Format())
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", r.Subtotal.Format())
	if r.TaxAmount > 0 {
		doc.KeyValue(fmt.Sprintf("Tax (%.2f%%):", r.TaxRate*100), r.TaxAmount.Format())
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", r.Total.Format()).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		TextF("%d package(s) picked up", len(r.Packages)).
		Text("Thank you!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
