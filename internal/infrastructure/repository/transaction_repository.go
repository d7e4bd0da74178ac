package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
	domainRepo "github.com/shipos/shipos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new checkout transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.CheckoutTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CheckoutTransaction, error) {
	var txn entity.CheckoutTransaction
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Customer").
		First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.CheckoutTransaction, error) {
	var txn entity.CheckoutTransaction
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&txn, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.CheckoutTransaction, error) {
	var txn entity.CheckoutTransaction
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Customer").
		Preload("Items").
		First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.CheckoutTransaction, int64, error) {
	var txns []entity.CheckoutTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CheckoutTransaction{}).Scopes(TenantScope(ctx))

	if params.Search != "" {
		query = query.Where("invoice_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order(sortBy + " " + sortOrder).
		Find(&txns).Error

	return txns, total, err
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Delete(&entity.CheckoutTransaction{}, "id = ?", id).Error
}

type lineItemRepository struct {
	db *gorm.DB
}

// NewLineItemRepository creates a new checkout line item repository
func NewLineItemRepository(db *gorm.DB) domainRepo.LineItemRepository {
	return &lineItemRepository{db: db}
}

func (r *lineItemRepository) CreateBatch(ctx context.Context, items []entity.CheckoutLineItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *lineItemRepository) GetByTransactionID(ctx context.Context, txnID uuid.UUID) ([]entity.CheckoutLineItem, error) {
	var items []entity.CheckoutLineItem
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", txnID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

func (r *lineItemRepository) DeleteByTransactionID(ctx context.Context, txnID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.CheckoutLineItem{}, "transaction_id = ?", txnID).Error
}
