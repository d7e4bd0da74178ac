package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/checkout"
	"github.com/shipos/shipos-api/pkg/money"
	"gorm.io/gorm"
)

// Tenant represents a store in the multitenant system. Each retail location
// is its own tenant with its own customers, packages and fee policy.
type Tenant struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Settings  StoreSettings  `gorm:"type:jsonb;serializer:json" json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Owner   User               `gorm:"foreignKey:OwnerID" json:"-"`
	Members []TenantMembership `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new tenant
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Tenant model
func (Tenant) TableName() string {
	return "tenants"
}

// MemberUser represents a subset of user fields for membership responses
type MemberUser struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// TenantMembership represents a staff member's membership in a store
type TenantMembership struct {
	TenantID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"tenant_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role      string    `gorm:"size:50;default:'member'" json:"role"` // owner, admin, member
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	// Computed field for JSON response
	MemberUser *MemberUser `gorm:"-" json:"user,omitempty"`
}

// PopulateUserDetails populates the MemberUser field from the User relationship
func (tm *TenantMembership) PopulateUserDetails() {
	if tm.User.ID != uuid.Nil {
		tm.MemberUser = &MemberUser{
			ID:        tm.User.ID,
			FirstName: tm.User.FirstName,
			LastName:  tm.User.LastName,
			Email:     tm.User.Email,
		}
	}
}

// TableName returns the table name for the TenantMembership model
func (TenantMembership) TableName() string {
	return "tenant_memberships"
}

// StoreSettings holds all customizable store configurations, stored as jsonb
// on the tenant row. Updates replace the whole value; the defaults returned
// by DefaultStoreSettings are never mutated in place.
type StoreSettings struct {
	// Branding & Appearance
	LogoURL      string `json:"logo_url,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`

	// Localization
	Currency   string `json:"currency,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	DateFormat string `json:"date_format,omitempty"`

	// Checkout fee policy
	Fees FeeSettings `json:"fees"`

	// Receipts & notifications
	InvoicePrefix string `json:"invoice_prefix,omitempty"`
	ReceiptFooter string `json:"receipt_footer,omitempty"`
	PrintOnPickup bool   `json:"print_on_pickup,omitempty"`
	EmailOnPickup bool   `json:"email_on_pickup,omitempty"`
	EmailArrivals bool   `json:"email_arrivals,omitempty"`
	SMSArrivals   bool   `json:"sms_arrivals,omitempty"`

	// AI assistant
	MorningBriefing bool `json:"morning_briefing,omitempty"`
}

// FeeSettings is the tenant-configurable checkout fee policy. Amount fields
// are cents internally and decimal in JSON, like every other money field in
// the API.
type FeeSettings struct {
	StorageRate          money.Cents `json:"storage_rate"`
	StorageFreeDays      int         `json:"storage_free_days"`
	StorageCountWeekends bool        `json:"storage_count_weekends"`
	ReceivingFee         money.Cents `json:"receiving_fee"`
	PackageQuota         int         `json:"package_quota"`
	PackageQuotaOverage  money.Cents `json:"package_quota_overage"`
	TaxRate              float64     `json:"tax_rate"`
}

// FeeConfig converts the stored fee policy into the calculator's input form.
func (f FeeSettings) FeeConfig() checkout.FeeConfig {
	return checkout.FeeConfig{
		StorageRateCents:     f.StorageRate,
		StorageFreeDays:      f.StorageFreeDays,
		StorageCountWeekends: f.StorageCountWeekends,
		ReceivingFeeCents:    f.ReceivingFee,
		PackageQuota:         f.PackageQuota,
		QuotaOverageCents:    f.PackageQuotaOverage,
		TaxRate:              f.TaxRate,
	}
}

// Scan implements the sql.Scanner interface for StoreSettings
func (ss *StoreSettings) Scan(value interface{}) error {
	if value == nil {
		*ss = StoreSettings{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan StoreSettings: unsupported type")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver.Valuer interface for StoreSettings
func (ss StoreSettings) Value() (driver.Value, error) {
	return json.Marshal(ss)
}

// DefaultStoreSettings returns default settings for new stores. The fee
// defaults mirror checkout.DefaultFeeConfig.
func DefaultStoreSettings() StoreSettings {
	feeDefaults := checkout.DefaultFeeConfig()
	return StoreSettings{
		Currency:   "USD",
		Timezone:   "America/Los_Angeles",
		DateFormat: "MM/DD/YYYY",
		Fees: FeeSettings{
			StorageRate:          feeDefaults.StorageRateCents,
			StorageFreeDays:      feeDefaults.StorageFreeDays,
			StorageCountWeekends: feeDefaults.StorageCountWeekends,
			ReceivingFee:         feeDefaults.ReceivingFeeCents,
			PackageQuota:         feeDefaults.PackageQuota,
			PackageQuotaOverage:  feeDefaults.QuotaOverageCents,
			TaxRate:              feeDefaults.TaxRate,
		},
		InvoicePrefix: "SHP-",
		PrintOnPickup: true,
		EmailOnPickup: true,
		EmailArrivals: true,
	}
}
