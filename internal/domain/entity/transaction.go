package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/pkg/money"
	"gorm.io/gorm"
)

// CheckoutTransaction is the persisted record of a package pickup checkout:
// which packages were released, what was charged, and how it was paid. All
// money fields are integer cents; money.Cents marshals them as decimals.
type CheckoutTransaction struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	TenantID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	InvoiceNo  string     `gorm:"size:100;unique;not null" json:"invoice_no"`

	PackageCount int `gorm:"default:0" json:"package_count"`

	StorageFeeTotal   money.Cents `gorm:"default:0" json:"storage_fee_total"`
	ReceivingFeeTotal money.Cents `gorm:"default:0" json:"receiving_fee_total"`
	QuotaFeeTotal     money.Cents `gorm:"default:0" json:"quota_fee_total"`
	AddOnTotal        money.Cents `gorm:"default:0" json:"add_on_total"`
	Subtotal          money.Cents `gorm:"default:0" json:"subtotal"`
	TaxRate           float64     `gorm:"default:0" json:"tax_rate"`
	TaxAmount         money.Cents `gorm:"default:0" json:"tax_amount"`
	Total             money.Cents `gorm:"default:0" json:"total"`

	PaymentMethod string `gorm:"size:50" json:"payment_method"`

	// ReceiptHTML is the rendered receipt as charged, kept so reprints and
	// email resends reproduce the original document byte for byte.
	ReceiptHTML string `gorm:"type:text" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User                  `gorm:"foreignKey:UserID" json:"-"`
	Customer Customer              `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []CheckoutLineItem    `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *CheckoutTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CheckoutTransaction model
func (CheckoutTransaction) TableName() string {
	return "checkout_transactions"
}

// CheckoutLineItem is one itemized charge row on a persisted checkout.
type CheckoutLineItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID      `gorm:"type:uuid;not null;index" json:"transaction_id"`
	Position      int            `gorm:"not null;default:0" json:"position"`
	Description   string         `gorm:"size:255;not null" json:"description"`
	Quantity      int            `gorm:"not null" json:"quantity"`
	UnitPrice     money.Cents    `gorm:"not null" json:"unit_price"`
	Total         money.Cents    `gorm:"not null" json:"total"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Transaction CheckoutTransaction `gorm:"foreignKey:TransactionID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *CheckoutLineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CheckoutLineItem model
func (CheckoutLineItem) TableName() string {
	return "checkout_line_items"
}
