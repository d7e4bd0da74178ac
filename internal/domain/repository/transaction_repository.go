package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/pkg/pagination"
)

// TransactionFilterParams contains filtering parameters for checkout queries
type TransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// TransactionRepository defines the interface for checkout transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.CheckoutTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CheckoutTransaction, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.CheckoutTransaction, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.CheckoutTransaction, error)
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.CheckoutTransaction, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LineItemRepository defines the interface for checkout line item data operations
type LineItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.CheckoutLineItem) error
	GetByTransactionID(ctx context.Context, txnID uuid.UUID) ([]entity.CheckoutLineItem, error)
	DeleteByTransactionID(ctx context.Context, txnID uuid.UUID) error
}
