package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/internal/domain/repository"
	"github.com/shipos/shipos-api/pkg/apperror"
	"github.com/shipos/shipos-api/pkg/pagination"
	"github.com/shipos/shipos-api/pkg/utils"
)

// TenantService handles store provisioning and staff membership
type TenantService struct {
	tenantRepo repository.TenantRepository
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo repository.TenantRepository) *TenantService {
	return &TenantService{tenantRepo: tenantRepo}
}

// CreateTenantInput represents input for opening a new store
type CreateTenantInput struct {
	Name    string
	Slug    string
	OwnerID uuid.UUID
	Address *string
	Phone   *string
}

// CreateTenant provisions a new store with default settings and enrolls the
// owner as a member.
func (s *TenantService) CreateTenant(ctx context.Context, input *CreateTenantInput) (*entity.Tenant, error) {
	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Name)
	}

	taken, err := s.tenantRepo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.NewConflictError("Store slug already exists")
	}

	tenant := &entity.Tenant{
		Name:     input.Name,
		Slug:     slug,
		OwnerID:  input.OwnerID,
		Address:  input.Address,
		Phone:    input.Phone,
		Settings: entity.DefaultStoreSettings(),
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	membership := &entity.TenantMembership{
		TenantID: tenant.ID,
		UserID:   input.OwnerID,
		Role:     "owner",
	}
	_ = s.tenantRepo.AddMember(ctx, membership)

	return tenant, nil
}

// GetTenant retrieves a store by ID
func (s *TenantService) GetTenant(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.ErrNotFound
	}
	return tenant, nil
}

// GetUserTenants retrieves the stores a staff member belongs to
func (s *TenantService) GetUserTenants(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Tenant], error) {
	tenants, total, err := s.tenantRepo.GetUserTenants(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(tenants, pag), nil
}

// UpdateTenantInput represents input for updating a store
type UpdateTenantInput struct {
	ID      uuid.UUID
	Name    string
	Address *string
	Phone   *string
}

// UpdateTenant updates store contact details. Settings have their own
// endpoint; they are not touched here.
func (s *TenantService) UpdateTenant(ctx context.Context, input *UpdateTenantInput) (*entity.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.ErrNotFound
	}

	if input.Name != "" {
		tenant.Name = input.Name
	}
	if input.Address != nil {
		tenant.Address = input.Address
	}
	if input.Phone != nil {
		tenant.Phone = input.Phone
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}

	return tenant, nil
}

// InviteMemberInput represents input for adding staff to a store
type InviteMemberInput struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
	Role     string
}

// InviteMember adds a staff member to a store
func (s *TenantService) InviteMember(ctx context.Context, input *InviteMemberInput) error {
	isMember, _ := s.tenantRepo.IsMember(ctx, input.TenantID, input.UserID)
	if isMember {
		return apperror.NewConflictError("User is already a member of this store")
	}

	role := input.Role
	if role == "" {
		role = "member"
	}

	membership := &entity.TenantMembership{
		TenantID: input.TenantID,
		UserID:   input.UserID,
		Role:     role,
	}

	return s.tenantRepo.AddMember(ctx, membership)
}

// RemoveMember removes a staff member from a store
func (s *TenantService) RemoveMember(ctx context.Context, tenantID, userID uuid.UUID) error {
	return s.tenantRepo.RemoveMember(ctx, tenantID, userID)
}

// GetTenantMembers retrieves the staff of a store
func (s *TenantService) GetTenantMembers(ctx context.Context, tenantID uuid.UUID) ([]entity.TenantMembership, error) {
	members, err := s.tenantRepo.GetMembers(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	for i := range members {
		members[i].PopulateUserDetails()
	}

	return members, nil
}

// UpdateMemberRole updates a staff member's role in a store
func (s *TenantService) UpdateMemberRole(ctx context.Context, tenantID, userID uuid.UUID, role string) error {
	return s.tenantRepo.UpdateMemberRole(ctx, tenantID, userID, role)
}

// ListAllTenants retrieves all stores (for super admin use)
func (s *TenantService) ListAllTenants(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Tenant], error) {
	tenants, total, err := s.tenantRepo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(tenants, pag), nil
}
