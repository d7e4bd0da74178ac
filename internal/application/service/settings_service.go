package service

import (
	"context"

	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/internal/domain/repository"
	infraRepo "github.com/shipos/shipos-api/internal/infrastructure/repository"
	"github.com/shipos/shipos-api/pkg/apperror"
	"github.com/shipos/shipos-api/pkg/money"
)

// SettingsService manages the store settings blob on the tenant row,
// including the checkout fee policy.
type SettingsService struct {
	tenantRepo repository.TenantRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(tenantRepo repository.TenantRepository) *SettingsService {
	return &SettingsService{tenantRepo: tenantRepo}
}

// GetSettings returns the store settings for the tenant in context
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	tenant, err := s.currentTenant(ctx)
	if err != nil {
		return nil, err
	}
	return &tenant.Settings, nil
}

// UpdateSettingsInput carries the full settings payload. Fee amounts arrive
// as decimal dollars from the API and are converted to cents here, at the
// boundary.
type UpdateSettingsInput struct {
	LogoURL      string
	PrimaryColor string
	Currency     string
	Timezone     string
	DateFormat   string

	StorageRate          float64
	StorageFreeDays      int
	StorageCountWeekends bool
	ReceivingFee         float64
	PackageQuota         int
	PackageQuotaOverage  float64
	TaxRate              float64

	InvoicePrefix string
	ReceiptFooter string
	PrintOnPickup bool
	EmailOnPickup bool
	EmailArrivals bool
	SMSArrivals   bool

	MorningBriefing bool
}

// UpdateSettings replaces the store settings. The update is whole-value; the
// handler binds the full payload so unset fields reset to their zero values.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	if input.StorageRate < 0 || input.ReceivingFee < 0 || input.PackageQuotaOverage < 0 {
		return nil, apperror.NewBadRequestError("Fee amounts cannot be negative")
	}
	if input.StorageFreeDays < 0 || input.PackageQuota < 0 {
		return nil, apperror.NewBadRequestError("Day and quota limits cannot be negative")
	}
	if input.TaxRate < 0 || input.TaxRate > 1 {
		return nil, apperror.NewBadRequestError("Tax rate must be between 0 and 1")
	}

	tenant, err := s.currentTenant(ctx)
	if err != nil {
		return nil, err
	}

	tenant.Settings = entity.StoreSettings{
		LogoURL:      input.LogoURL,
		PrimaryColor: input.PrimaryColor,
		Currency:     input.Currency,
		Timezone:     input.Timezone,
		DateFormat:   input.DateFormat,
		Fees: entity.FeeSettings{
			StorageRate:          money.FromDecimal(input.StorageRate),
			StorageFreeDays:      input.StorageFreeDays,
			StorageCountWeekends: input.StorageCountWeekends,
			ReceivingFee:         money.FromDecimal(input.ReceivingFee),
			PackageQuota:         input.PackageQuota,
			PackageQuotaOverage:  money.FromDecimal(input.PackageQuotaOverage),
			TaxRate:              input.TaxRate,
		},
		InvoicePrefix:   input.InvoicePrefix,
		ReceiptFooter:   input.ReceiptFooter,
		PrintOnPickup:   input.PrintOnPickup,
		EmailOnPickup:   input.EmailOnPickup,
		EmailArrivals:   input.EmailArrivals,
		SMSArrivals:     input.SMSArrivals,
		MorningBriefing: input.MorningBriefing,
	}

	if tenant.Settings.InvoicePrefix == "" {
		tenant.Settings.InvoicePrefix = entity.DefaultStoreSettings().InvoicePrefix
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}

	return &tenant.Settings, nil
}

// ResetSettings restores the store defaults
func (s *SettingsService) ResetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	tenant, err := s.currentTenant(ctx)
	if err != nil {
		return nil, err
	}

	tenant.Settings = entity.DefaultStoreSettings()
	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}

	return &tenant.Settings, nil
}

func (s *SettingsService) currentTenant(ctx context.Context) (*entity.Tenant, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	return tenant, nil
}
