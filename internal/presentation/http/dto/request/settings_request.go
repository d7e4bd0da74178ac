package request

// UpdateSettingsRequest replaces the store settings. Fee amounts are decimal
// dollars; the service converts to cents.
type UpdateSettingsRequest struct {
	LogoURL      string `json:"logo_url" binding:"omitempty,url"`
	PrimaryColor string `json:"primary_color" binding:"omitempty,max=20"`
	Currency     string `json:"currency" binding:"omitempty,len=3"`
	Timezone     string `json:"timezone" binding:"omitempty,max=64"`
	DateFormat   string `json:"date_format" binding:"omitempty,max=20"`

	StorageRate          float64 `json:"storage_rate" binding:"min=0"`
	StorageFreeDays      int     `json:"storage_free_days" binding:"min=0"`
	StorageCountWeekends bool    `json:"storage_count_weekends"`
	ReceivingFee         float64 `json:"receiving_fee" binding:"min=0"`
	PackageQuota         int     `json:"package_quota" binding:"min=0"`
	PackageQuotaOverage  float64 `json:"package_quota_overage" binding:"min=0"`
	TaxRate              float64 `json:"tax_rate" binding:"min=0,max=1"`

	InvoicePrefix string `json:"invoice_prefix" binding:"omitempty,max=20"`
	ReceiptFooter string `json:"receipt_footer" binding:"omitempty,max=500"`
	PrintOnPickup bool   `json:"print_on_pickup"`
	EmailOnPickup bool   `json:"email_on_pickup"`
	EmailArrivals bool   `json:"email_arrivals"`
	SMSArrivals   bool   `json:"sms_arrivals"`

	MorningBriefing bool `json:"morning_briefing"`
}
