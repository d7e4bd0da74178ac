package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/internal/domain/enum"
	"github.com/shipos/shipos-api/pkg/pagination"
)

// PackageFilterParams contains filtering parameters for package queries
type PackageFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.PackageStatus
	CustomerID *uuid.UUID
	Carrier    string
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// PackageRepository defines the interface for package data operations
type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Package, error)
	Update(ctx context.Context, pkg *entity.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PackageFilterParams) ([]entity.Package, int64, error)

	// GetPendingByCustomer returns the customer's packages still on the shelf,
	// oldest check-in first.
	GetPendingByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Package, error)

	// CountReceivedInMonth counts the customer's packages checked in during
	// the calendar month containing ref and strictly before ref, excluding
	// the given IDs. This is the monthlyCount snapshot quota accounting
	// starts from; the batch being checked out must be excluded or its
	// packages would count against the quota twice.
	CountReceivedInMonth(ctx context.Context, customerID uuid.UUID, ref time.Time, excludeIDs []uuid.UUID) (int64, error)

	// MarkPickedUp transitions the given packages to picked up at the given
	// instant. Returns the IDs that could not be transitioned (already
	// picked up or missing).
	MarkPickedUp(ctx context.Context, ids []uuid.UUID, at time.Time) ([]uuid.UUID, error)
}
