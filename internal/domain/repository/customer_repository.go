package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/pkg/pagination"
)

// CustomerRepository defines the interface for mailbox customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// GetByPMB retrieves a customer by mailbox number within the tenant in context.
	GetByPMB(ctx context.Context, pmbNumber string) (*entity.Customer, error)
	// PMBExists reports whether a mailbox number is already assigned in the tenant.
	PMBExists(ctx context.Context, pmbNumber string) (bool, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns customers with page-based pagination; search matches name,
	// email and PMB number.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
}
