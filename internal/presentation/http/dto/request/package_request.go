package request

import "github.com/google/uuid"

// CheckInPackageRequest represents a package check-in request
type CheckInPackageRequest struct {
	CustomerID     uuid.UUID `json:"customer_id" binding:"required"`
	Carrier        string    `json:"carrier" binding:"required,oneof=ups fedex usps dhl amazon other"`
	TrackingNumber *string   `json:"tracking_number" binding:"omitempty,max=100"`
	PackageType    string    `json:"package_type" binding:"omitempty,oneof=box envelope tube pallet other"`
	ShelfLocation  *string   `json:"shelf_location" binding:"omitempty,max=50"`
	Notes          *string   `json:"notes"`
	CheckedInAt    *string   `json:"checked_in_at" binding:"omitempty"` // RFC 3339, defaults to now
}

// UpdatePackageRequest represents a package update request
type UpdatePackageRequest struct {
	Carrier       *string `json:"carrier" binding:"omitempty,oneof=ups fedex usps dhl amazon other"`
	PackageType   *string `json:"package_type" binding:"omitempty,oneof=box envelope tube pallet other"`
	ShelfLocation *string `json:"shelf_location" binding:"omitempty,max=50"`
	Notes         *string `json:"notes"`
}

// PackageFilterRequest represents package list parameters
type PackageFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status" binding:"omitempty,oneof=pending picked_up returned"`
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	Carrier    string `form:"carrier"`
	StartDate  string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=checked_in_at carrier status"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
