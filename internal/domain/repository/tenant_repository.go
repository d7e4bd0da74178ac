package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/pkg/pagination"
)

// TenantRepository defines the interface for store tenant data operations
type TenantRepository interface {
	// Create creates a new store
	Create(ctx context.Context, tenant *entity.Tenant) error

	// GetByID retrieves a store by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// GetBySlug retrieves a store by slug (subdomain identifier)
	GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error)

	// Update updates an existing store
	Update(ctx context.Context, tenant *entity.Tenant) error

	// Delete soft-deletes a store
	Delete(ctx context.Context, id uuid.UUID) error

	// GetUserTenants retrieves all stores a user belongs to with pagination
	GetUserTenants(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Tenant, int64, error)

	// AddMember adds a user as a member of a store
	AddMember(ctx context.Context, membership *entity.TenantMembership) error

	// RemoveMember removes a user from a store
	RemoveMember(ctx context.Context, tenantID, userID uuid.UUID) error

	// GetMembers retrieves all members of a store
	GetMembers(ctx context.Context, tenantID uuid.UUID) ([]entity.TenantMembership, error)

	// IsMember checks if a user is a member of a store
	IsMember(ctx context.Context, tenantID, userID uuid.UUID) (bool, error)

	// UpdateMemberRole updates a member's role in a store
	UpdateMemberRole(ctx context.Context, tenantID, userID uuid.UUID, role string) error

	// SlugExists checks if a slug is already taken
	SlugExists(ctx context.Context, slug string) (bool, error)

	// ListAll retrieves all stores (for super admin use)
	ListAll(ctx context.Context, params *pagination.PaginationParams) ([]entity.Tenant, int64, error)
}
