package checkout

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func sampleReceipt() ReceiptData {
	result := CalculateFees([]PackageForFees{pkgAgedDays(45)}, DefaultFeeConfig(), 0, 0, testNow)
	items := BuildLineItems(result)
	return BuildReceiptData(result, items, ReceiptContext{
		InvoiceNo:     "SHP-0042",
		StoreName:     "Sunset Mail Center",
		StoreAddress:  "123 Ocean Ave",
		CustomerName:  "Dana Fox",
		PMBNumber:     "204",
		StaffName:     "Riley",
		PaymentMethod: "post_to_account",
		Packages: []PackageForFees{
			{ID: uuid.New(), Carrier: "ups", TrackingNumber: "1Z999AA10123456784", PackageType: "box"},
			{ID: uuid.New(), Carrier: "fedex", PackageType: "envelope"},
		},
	})
}

func TestRenderReceiptBasics(t *testing.T) {
	html := RenderReceipt(sampleReceipt())

	for _, want := range []string{
		"Sunset Mail Center",
		"SHP-0042",
		"Dana Fox",
		"PMB 204",
		"Post to Account",
		"Subtotal",
		"Tax (8.75%)",
		"Total",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered receipt missing %q", want)
		}
	}
}

func TestRenderReceiptPackageList(t *testing.T) {
	html := RenderReceipt(sampleReceipt())

	if !strings.Contains(html, "UPS") || !strings.Contains(html, "FEDEX") {
		t.Error("carriers should be upper-cased")
	}
	// Tracking numbers are shown as their last 8 characters.
	if !strings.Contains(html, "23456784") {
		t.Error("missing truncated tracking suffix")
	}
	if strings.Contains(html, "1Z999AA10123456784") {
		t.Error("full tracking number should not appear")
	}
	// Packages without tracking get a placeholder dash.
	if !strings.Contains(html, "<td>-</td>") {
		t.Error("missing placeholder for absent tracking number")
	}
}

func TestRenderReceiptCurrencyFormatting(t *testing.T) {
	html := RenderReceipt(sampleReceipt())
	// subtotal 18.00, tax 1.58, total 19.58
	for _, want := range []string{"$18.00", "$1.58", "$19.58"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered receipt missing currency value %q", want)
		}
	}
}

func TestRenderReceiptOmitsSignatureWhenAbsent(t *testing.T) {
	data := sampleReceipt()
	data.SignatureDataURL = ""
	html := RenderReceipt(data)

	if strings.Contains(html, "<img") {
		t.Error("signature image rendered without a signature")
	}
	if strings.Contains(html, "Customer signature") {
		t.Error("signature section rendered without a signature")
	}
}

func TestRenderReceiptEmbedsSignatureWhenPresent(t *testing.T) {
	data := sampleReceipt()
	data.SignatureDataURL = "data:image/png;base64,iVBORw0KGgo="
	html := RenderReceipt(data)

	if !strings.Contains(html, `<img src="data:image/png;base64,iVBORw0KGgo="`) {
		t.Error("signature image not embedded")
	}
	if strings.Contains(html, "ZgotmplZ") {
		t.Error("signature data URL was rejected by the template engine")
	}
}

func TestRenderReceiptEscapesUserText(t *testing.T) {
	data := sampleReceipt()
	data.CustomerName = `<script>alert("x")</script>`
	data.StoreName = `Bob's "Mail" & More`
	html := RenderReceipt(data)

	if strings.Contains(html, "<script>") {
		t.Error("unescaped script tag in output")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("customer name not HTML-escaped")
	}
	if !strings.Contains(html, "&amp; More") {
		t.Error("ampersand not escaped")
	}
}

func TestRenderReceiptDateFormat(t *testing.T) {
	data := sampleReceipt()
	data.DateTime = time.Date(2025, time.March, 14, 15, 4, 0, 0, time.UTC)
	html := RenderReceipt(data)

	if !strings.Contains(html, "Friday, March 14, 2025 3:04 PM") {
		t.Error("date not rendered in long human-readable form")
	}
}

func TestTrackingSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "-"},
		{"1234", "1234"},
		{"1Z999AA10123456784", "23456784"},
	}
	for _, tt := range tests {
		if got := trackingSuffix(tt.in); got != tt.want {
			t.Errorf("trackingSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
