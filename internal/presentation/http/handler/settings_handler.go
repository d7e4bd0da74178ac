package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shipos/shipos-api/internal/application/service"
	"github.com/shipos/shipos-api/internal/presentation/http/dto/request"
	"github.com/shipos/shipos-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles store settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the current store's settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings replaces the current store's settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		LogoURL:      req.LogoURL,
		PrimaryColor: req.PrimaryColor,
		Currency:     req.Currency,
		Timezone:     req.Timezone,
		DateFormat:   req.DateFormat,

		StorageRate:          req.StorageRate,
		StorageFreeDays:      req.StorageFreeDays,
		StorageCountWeekends: req.StorageCountWeekends,
		ReceivingFee:         req.ReceivingFee,
		PackageQuota:         req.PackageQuota,
		PackageQuotaOverage:  req.PackageQuotaOverage,
		TaxRate:              req.TaxRate,

		InvoicePrefix: req.InvoicePrefix,
		ReceiptFooter: req.ReceiptFooter,
		PrintOnPickup: req.PrintOnPickup,
		EmailOnPickup: req.EmailOnPickup,
		EmailArrivals: req.EmailArrivals,
		SMSArrivals:   req.SMSArrivals,

		MorningBriefing: req.MorningBriefing,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}

// ResetSettings restores the store defaults
func (h *SettingsHandler) ResetSettings(c *gin.Context) {
	settings, err := h.settingsService.ResetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings reset to defaults", settings)
}
