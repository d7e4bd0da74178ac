package checkout

import (
	"fmt"
	"html/template"
	"strings"
)

// RenderReceipt produces a single self-contained HTML document for the
// receipt, suitable for the browser print dialog, PDF conversion or email
// delivery. All user-controlled text (names, tracking numbers, descriptions)
// is HTML-escaped by the template engine. Missing optional fields are
// omitted rather than rendered empty; rendering never fails.
func RenderReceipt(data ReceiptData) string {
	view := receiptView{
		InvoiceNo:    data.InvoiceNo,
		StoreName:    data.StoreName,
		StoreAddress: data.StoreAddress,
		StorePhone:   data.StorePhone,
		CustomerName: data.CustomerName,
		PMBNumber:    data.PMBNumber,
		StaffName:    data.StaffName,
		DateTime:     data.DateTime.Format("Monday, January 2, 2006 3:04 PM"),
		Subtotal:     data.Subtotal.Format(),
		TaxLabel:     fmt.Sprintf("Tax (%.2f%%)", data.TaxRate*100),
		TaxAmount:    data.TaxAmount.Format(),
		Total:        data.Total.Format(),
		Payment:      PaymentMethodLabel(data.PaymentMethod),
	}

	if data.SignatureDataURL != "" {
		// Signature images come from the store's own capture pad, not
		// from customer-controlled records.
		view.Signature = template.URL(data.SignatureDataURL)
	}

	for _, pkg := range data.Packages {
		view.Packages = append(view.Packages, receiptPackageView{
			Carrier:     strings.ToUpper(pkg.Carrier),
			Tracking:    trackingSuffix(pkg.TrackingNumber),
			PackageType: pkg.PackageType,
		})
	}

	for _, item := range data.LineItems {
		view.LineItems = append(view.LineItems, receiptLineView{
			Description: item.Description,
			Total:       item.Total.Format(),
		})
	}

	var buf strings.Builder
	// The template is a compile-time constant; execution over a plain view
	// struct cannot fail.
	_ = receiptTmpl.Execute(&buf, view)
	return buf.String()
}

// trackingSuffix returns the last 8 characters of a tracking number, or a
// placeholder dash when the package has none.
func trackingSuffix(tracking string) string {
	if tracking == "" {
		return "-"
	}
	if len(tracking) > 8 {
		return tracking[len(tracking)-8:]
	}
	return tracking
}

type receiptView struct {
	InvoiceNo    string
	StoreName    string
	StoreAddress string
	StorePhone   string
	CustomerName string
	PMBNumber    string
	StaffName    string
	DateTime     string
	Packages     []receiptPackageView
	LineItems    []receiptLineView
	Subtotal     string
	TaxLabel     string
	TaxAmount    string
	Total        string
	Payment      string
	Signature    template.URL
}

type receiptPackageView struct {
	Carrier     string
	Tracking    string
	PackageType string
}

type receiptLineView struct {
	Description string
	Total       string
}

var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.InvoiceNo}}</title>
<style>
body { font-family: 'Courier New', monospace; max-width: 380px; margin: 0 auto; padding: 16px; color: #111; }
h1 { font-size: 16px; text-align: center; margin: 0; }
.store { text-align: center; font-size: 12px; margin-bottom: 12px; }
.meta { font-size: 12px; border-top: 1px dashed #999; border-bottom: 1px dashed #999; padding: 6px 0; margin-bottom: 8px; }
table { width: 100%; border-collapse: collapse; font-size: 12px; }
td { padding: 2px 0; vertical-align: top; }
td.amount { text-align: right; white-space: nowrap; }
tr.total td { font-weight: bold; font-size: 14px; border-top: 1px solid #111; padding-top: 4px; }
.section { margin: 8px 0; }
.section h2 { font-size: 12px; text-transform: uppercase; margin: 0 0 4px; border-bottom: 1px dashed #999; }
.signature { margin-top: 12px; text-align: center; }
.signature img { max-width: 240px; }
.footer { text-align: center; font-size: 11px; margin-top: 16px; }
@media print { body { padding: 0; } }
</style>
</head>
<body>
<h1>{{.StoreName}}</h1>
<div class="store">
{{- if .StoreAddress}}
<div>{{.StoreAddress}}</div>
{{- end}}
{{- if .StorePhone}}
<div>{{.StorePhone}}</div>
{{- end}}
</div>
<div class="meta">
<div>Receipt #{{.InvoiceNo}}</div>
<div>{{.DateTime}}</div>
<div>Customer: {{.CustomerName}}{{if .PMBNumber}} (PMB {{.PMBNumber}}){{end}}</div>
{{- if .StaffName}}
<div>Served by: {{.StaffName}}</div>
{{- end}}
</div>
{{- if .Packages}}
<div class="section">
<h2>Packages Released</h2>
<table>
{{- range .Packages}}
<tr><td>{{.Carrier}}</td><td>{{.Tracking}}</td><td class="amount">{{.PackageType}}</td></tr>
{{- end}}
</table>
</div>
{{- end}}
<div class="section">
<h2>Charges</h2>
<table>
{{- range .LineItems}}
<tr><td>{{.Description}}</td><td class="amount">{{.Total}}</td></tr>
{{- end}}
<tr><td>Subtotal</td><td class="amount">{{.Subtotal}}</td></tr>
<tr><td>{{.TaxLabel}}</td><td class="amount">{{.TaxAmount}}</td></tr>
<tr class="total"><td>Total</td><td class="amount">{{.Total}}</td></tr>
</table>
</div>
<div class="section">
<div>Payment: {{.Payment}}</div>
</div>
{{- if .Signature}}
<div class="signature">
<img src="{{.Signature}}" alt="Customer signature">
<div>Customer signature</div>
</div>
{{- end}}
<div class="footer">Thank you for your business!</div>
</body>
</html>
`))
