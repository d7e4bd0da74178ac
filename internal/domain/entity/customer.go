package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a mailbox holder at a store. The PMB (private mailbox)
// number is the customer's address suffix and is unique per tenant.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index:idx_customers_tenant_pmb,unique" json:"tenant_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PMBNumber string    `gorm:"size:20;not null;index:idx_customers_tenant_pmb,unique" json:"pmb_number"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     *string   `gorm:"size:255" json:"email,omitempty"`
	Phone     *string   `gorm:"size:50" json:"phone,omitempty"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	Photo     *string   `gorm:"size:255" json:"photo,omitempty"`

	// How the customer wants to hear about package arrivals: email, sms,
	// both, or none.
	NotifyBy string `gorm:"size:20;default:'email'" json:"notify_by"`

	// BoxExpiresAt is when the mailbox rental lapses; expired boxes still
	// accept packages but flag the dashboard.
	BoxExpiresAt *time.Time `json:"box_expires_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant   Tenant    `gorm:"foreignKey:TenantID" json:"-"`
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Packages []Package `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
