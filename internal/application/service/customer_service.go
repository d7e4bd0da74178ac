package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/internal/domain/repository"
	infraRepo "github.com/shipos/shipos-api/internal/infrastructure/repository"
	"github.com/shipos/shipos-api/pkg/apperror"
	"github.com/shipos/shipos-api/pkg/pagination"
)

// CustomerService handles mailbox customer operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	UserID       uuid.UUID
	PMBNumber    string
	Name         string
	Email        *string
	Phone        *string
	Address      *string
	NotifyBy     string
	BoxExpiresAt *time.Time
}

// CreateCustomer registers a new mailbox holder. PMB numbers are unique
// within a store.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	exists, err := s.customerRepo.PMBExists(ctx, input.PMBNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflictError("PMB number is already assigned")
	}

	notifyBy := input.NotifyBy
	if notifyBy == "" {
		notifyBy = "email"
	}

	customer := &entity.Customer{
		TenantID:     tenantID,
		UserID:       input.UserID,
		PMBNumber:    input.PMBNumber,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		NotifyBy:     notifyBy,
		BoxExpiresAt: input.BoxExpiresAt,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// GetCustomerByPMB retrieves a customer by mailbox number
func (s *CustomerService) GetCustomerByPMB(ctx context.Context, pmbNumber string) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByPMB(ctx, pmbNumber)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists the store's customers
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID           uuid.UUID
	PMBNumber    *string
	Name         *string
	Email        *string
	Phone        *string
	Address      *string
	NotifyBy     *string
	BoxExpiresAt *time.Time
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.PMBNumber != nil && *input.PMBNumber != customer.PMBNumber {
		exists, err := s.customerRepo.PMBExists(ctx, *input.PMBNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperror.NewConflictError("PMB number is already assigned")
		}
		customer.PMBNumber = *input.PMBNumber
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.NotifyBy != nil {
		customer.NotifyBy = *input.NotifyBy
	}
	if input.BoxExpiresAt != nil {
		customer.BoxExpiresAt = input.BoxExpiresAt
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, id)
}
