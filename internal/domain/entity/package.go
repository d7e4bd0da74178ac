package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/checkout"
	"github.com/shipos/shipos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Package represents a package received at the store counter on behalf of a
// mailbox customer.
type Package struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	TenantID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CustomerID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	ReceivedByID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"received_by_id"`
	Carrier        string             `gorm:"size:50;not null" json:"carrier"` // ups, fedex, usps, dhl, amazon, other
	TrackingNumber *string            `gorm:"size:100;index" json:"tracking_number,omitempty"`
	PackageType    string             `gorm:"size:50;default:'box'" json:"package_type"` // box, envelope, tube, pallet, other
	Status         enum.PackageStatus `gorm:"default:0" json:"status"`
	ShelfLocation  *string            `gorm:"size:50" json:"shelf_location,omitempty"`
	Notes          *string            `gorm:"type:text" json:"notes,omitempty"`
	CheckedInAt    time.Time          `gorm:"not null;index" json:"checked_in_at"`
	PickedUpAt     *time.Time         `json:"picked_up_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	DeletedAt      gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Tenant     Tenant   `gorm:"foreignKey:TenantID" json:"-"`
	Customer   Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	ReceivedBy User     `gorm:"foreignKey:ReceivedByID" json:"-"`
}

// ForFees projects the package into the fee calculator's input form.
func (p *Package) ForFees() checkout.PackageForFees {
	tracking := ""
	if p.TrackingNumber != nil {
		tracking = *p.TrackingNumber
	}
	return checkout.PackageForFees{
		ID:             p.ID,
		CheckedInAt:    p.CheckedInAt,
		Carrier:        p.Carrier,
		TrackingNumber: tracking,
		PackageType:    p.PackageType,
	}
}

// BeforeCreate generates a UUID before creating a new package
func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Package model
func (Package) TableName() string {
	return "packages"
}
