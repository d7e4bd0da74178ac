package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/internal/domain/enum"
	domainRepo "github.com/shipos/shipos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository
func NewPackageRepository(db *gorm.DB) domainRepo.PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *packageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	var pkg entity.Package
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Preload("Customer").
		First(&pkg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pkg, err
}

func (r *packageRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Package, error) {
	var pkgs []entity.Package
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Where("id IN ?", ids).
		Order("checked_in_at ASC").
		Find(&pkgs).Error
	return pkgs, err
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Delete(&entity.Package{}, "id = ?", id).Error
}

func (r *packageRepository) List(ctx context.Context, params *domainRepo.PackageFilterParams) ([]entity.Package, int64, error) {
	var pkgs []entity.Package
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Package{}).Scopes(TenantScopeFor(ctx, "packages"))

	if params.Search != "" {
		query = query.Joins("JOIN customers ON customers.id = packages.customer_id").
			Where("packages.tracking_number ILIKE ? OR customers.name ILIKE ? OR customers.pmb_number ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.Carrier != "" {
		query = query.Where("carrier = ?", params.Carrier)
	}

	if params.StartDate != nil {
		query = query.Where("checked_in_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("checked_in_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "checked_in_at"
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
		Find(&pkgs).Error

	return pkgs, total, err
}

func (r *packageRepository) GetPendingByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Package, error) {
	var pkgs []entity.Package
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Where("customer_id = ? AND status = ?", customerID, enum.PackageStatusPending).
		Order("checked_in_at ASC").
		Find(&pkgs).Error
	return pkgs, err
}

func (r *packageRepository) CountReceivedInMonth(ctx context.Context, customerID uuid.UUID, ref time.Time, excludeIDs []uuid.UUID) (int64, error) {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	query := r.db.WithContext(ctx).
		Model(&entity.Package{}).
		Scopes(TenantScope(ctx)).
		Where("customer_id = ? AND checked_in_at >= ? AND checked_in_at < ?", customerID, monthStart, ref)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

// MarkPickedUp transitions pending packages to picked up. IDs that were not
// pending (or not found in the tenant) are returned so the caller can reject
// the batch.
func (r *packageRepository) MarkPickedUp(ctx context.Context, ids []uuid.UUID, at time.Time) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var eligible []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&entity.Package{}).
		Scopes(TenantScope(ctx)).
		Where("id IN ? AND status = ?", ids, enum.PackageStatusPending).
		Pluck("id", &eligible).Error
	if err != nil {
		return nil, err
	}

	if len(eligible) > 0 {
		err = r.db.WithContext(ctx).
			Model(&entity.Package{}).
			Scopes(TenantScope(ctx)).
			Where("id IN ? AND status = ?", eligible, enum.PackageStatusPending).
			Updates(map[string]interface{}{
				"status":       enum.PackageStatusPickedUp,
				"picked_up_at": at,
			}).Error
		if err != nil {
			return nil, err
		}
	}

	updatedSet := make(map[uuid.UUID]bool, len(eligible))
	for _, id := range eligible {
		updatedSet[id] = true
	}

	var failed []uuid.UUID
	for _, id := range ids {
		if !updatedSet[id] {
			failed = append(failed, id)
		}
	}
	return failed, nil
}
