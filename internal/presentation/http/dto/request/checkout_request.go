package request

import "github.com/google/uuid"

// QuoteCheckoutRequest prices a batch of packages without committing
type QuoteCheckoutRequest struct {
	CustomerID uuid.UUID   `json:"customer_id" binding:"required"`
	PackageIDs []uuid.UUID `json:"package_ids" binding:"required,min=1"`
	AddOnTotal float64     `json:"add_on_total" binding:"omitempty,min=0"`
}

// CommitCheckoutRequest commits a pickup and produces the receipt
type CommitCheckoutRequest struct {
	CustomerID       uuid.UUID   `json:"customer_id" binding:"required"`
	PackageIDs       []uuid.UUID `json:"package_ids" binding:"required,min=1"`
	AddOnTotal       float64     `json:"add_on_total" binding:"omitempty,min=0"`
	PaymentMethod    string      `json:"payment_method" binding:"required,oneof=cash card check post_to_account account_credit"`
	SignatureDataURL string      `json:"signature_data_url"`
}

// TransactionFilterRequest represents checkout history list parameters
type TransactionFilterRequest struct {
	Search     string `form:"search"`
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	StartDate  string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=created_at total invoice_no"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
