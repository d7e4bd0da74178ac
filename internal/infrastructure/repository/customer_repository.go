package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
	domainRepo "github.com/shipos/shipos-api/internal/domain/repository"
	"github.com/shipos/shipos-api/pkg/pagination"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) GetByPMB(ctx context.Context, pmbNumber string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&customer, "pmb_number = ?", pmbNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) PMBExists(ctx context.Context, pmbNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Scopes(TenantScope(ctx)).
		Where("pmb_number = ?", pmbNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{}).Scopes(TenantScope(ctx))

	if search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR pmb_number ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("pmb_number ASC").
		Find(&customers).Error

	return customers, total, err
}
