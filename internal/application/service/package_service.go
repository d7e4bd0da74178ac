package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/internal/domain/enum"
	"github.com/shipos/shipos-api/internal/domain/repository"
	infraRepo "github.com/shipos/shipos-api/internal/infrastructure/repository"
	"github.com/shipos/shipos-api/pkg/apperror"
	"github.com/shipos/shipos-api/pkg/email"
	"github.com/shipos/shipos-api/pkg/pagination"
)

// PackageService handles package check-in and shelf operations
type PackageService struct {
	packageRepo  repository.PackageRepository
	customerRepo repository.CustomerRepository
	emailService *email.EmailService
}

// NewPackageService creates a new package service
func NewPackageService(
	packageRepo repository.PackageRepository,
	customerRepo repository.CustomerRepository,
	emailService *email.EmailService,
) *PackageService {
	return &PackageService{
		packageRepo:  packageRepo,
		customerRepo: customerRepo,
		emailService: emailService,
	}
}

// CheckInPackageInput represents a package arriving at the counter
type CheckInPackageInput struct {
	CustomerID     uuid.UUID
	ReceivedByID   uuid.UUID
	Carrier        string
	TrackingNumber *string
	PackageType    string
	ShelfLocation  *string
	Notes          *string
	// CheckedInAt defaults to now when zero. Back-dating is allowed for
	// packages logged after the fact.
	CheckedInAt time.Time
}

// CheckInPackage records a received package and notifies the mailbox holder.
func (s *PackageService) CheckInPackage(ctx context.Context, input *CheckInPackageInput) (*entity.Package, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	checkedInAt := input.CheckedInAt
	if checkedInAt.IsZero() {
		checkedInAt = time.Now()
	}

	packageType := input.PackageType
	if packageType == "" {
		packageType = "box"
	}

	pkg := &entity.Package{
		TenantID:       tenantID,
		CustomerID:     input.CustomerID,
		ReceivedByID:   input.ReceivedByID,
		Carrier:        input.Carrier,
		TrackingNumber: input.TrackingNumber,
		PackageType:    packageType,
		ShelfLocation:  input.ShelfLocation,
		Notes:          input.Notes,
		CheckedInAt:    checkedInAt,
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	// Arrival notice is best effort, a dead SMTP server must not block check-in
	if s.emailService != nil && customer.NotifyBy == "email" && customer.Email != nil {
		if err := s.emailService.SendPackageArrivalEmail(*customer.Email, customer.Name, customer.PMBNumber, pkg.Carrier); err != nil {
			log.Printf("Failed to send arrival notice for package %s: %v", pkg.ID, err)
		}
	}

	return pkg, nil
}

// GetPackage retrieves a package by ID
func (s *PackageService) GetPackage(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Package")
	}
	return pkg, nil
}

// ListPackages lists packages with filters
func (s *PackageService) ListPackages(ctx context.Context, params *repository.PackageFilterParams) (*pagination.PaginatedResult[entity.Package], error) {
	pkgs, total, err := s.packageRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(pkgs, pag), nil
}

// GetPendingByCustomer returns a customer's packages still on the shelf,
// oldest first.
func (s *PackageService) GetPendingByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Package, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return s.packageRepo.GetPendingByCustomer(ctx, customerID)
}

// UpdatePackageInput represents the update package input
type UpdatePackageInput struct {
	ID            uuid.UUID
	Carrier       *string
	PackageType   *string
	ShelfLocation *string
	Notes         *string
}

// UpdatePackage updates shelf details on a pending package
func (s *PackageService) UpdatePackage(ctx context.Context, input *UpdatePackageInput) (*entity.Package, error) {
	pkg, err := s.packageRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Package")
	}

	if input.Carrier != nil {
		pkg.Carrier = *input.Carrier
	}
	if input.PackageType != nil {
		pkg.PackageType = *input.PackageType
	}
	if input.ShelfLocation != nil {
		pkg.ShelfLocation = input.ShelfLocation
	}
	if input.Notes != nil {
		pkg.Notes = input.Notes
	}

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// ReturnToSender marks a pending package as returned to the carrier.
func (s *PackageService) ReturnToSender(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Package")
	}
	if pkg.Status != enum.PackageStatusPending {
		return nil, apperror.NewBadRequestError("Only pending packages can be returned to sender")
	}

	pkg.Status = enum.PackageStatusReturned
	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// DeletePackage removes a mis-keyed package record
func (s *PackageService) DeletePackage(ctx context.Context, id uuid.UUID) error {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pkg == nil {
		return apperror.NewNotFoundError("Package")
	}

	return s.packageRepo.Delete(ctx, id)
}
