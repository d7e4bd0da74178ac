package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/application/service"
	"github.com/shipos/shipos-api/internal/domain/enum"
	"github.com/shipos/shipos-api/internal/domain/repository"
	"github.com/shipos/shipos-api/internal/presentation/http/dto/request"
	"github.com/shipos/shipos-api/internal/presentation/http/dto/response"
	"github.com/shipos/shipos-api/pkg/pagination"
)

// PackageHandler handles package intake and shelf HTTP requests
type PackageHandler struct {
	packageService *service.PackageService
}

// NewPackageHandler creates a new package handler
func NewPackageHandler(packageService *service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// CheckIn handles receiving a package into the store
func (h *PackageHandler) CheckIn(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckInPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var checkedInAt time.Time
	if req.CheckedInAt != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckedInAt)
		if err != nil {
			response.BadRequest(c, "Invalid checked_in_at timestamp")
			return
		}
		checkedInAt = t
	}

	pkg, err := h.packageService.CheckInPackage(c.Request.Context(), &service.CheckInPackageInput{
		CustomerID:     req.CustomerID,
		ReceivedByID:   *userID,
		Carrier:        req.Carrier,
		TrackingNumber: req.TrackingNumber,
		PackageType:    req.PackageType,
		ShelfLocation:  req.ShelfLocation,
		Notes:          req.Notes,
		CheckedInAt:    checkedInAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Package checked in successfully", pkg)
}

// List handles listing packages with filters
func (h *PackageHandler) List(c *gin.Context) {
	var req request.PackageFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.PackageFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		Carrier:    req.Carrier,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}

	if req.Status != "" {
		status := enum.PackageStatus(req.Status)
		params.Status = &status
	}
	if req.CustomerID != "" {
		customerID, err := uuid.Parse(req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &customerID
	}
	if req.StartDate != "" {
		t, _ := time.Parse("2006-01-02", req.StartDate)
		params.StartDate = &t
	}
	if req.EndDate != "" {
		t, _ := time.Parse("2006-01-02", req.EndDate)
		// Inclusive of the end date
		end := t.AddDate(0, 0, 1)
		params.EndDate = &end
	}

	result, err := h.packageService.ListPackages(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Packages retrieved successfully", result)
}

// Get handles getting a single package
func (h *PackageHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	pkg, err := h.packageService.GetPackage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Package retrieved successfully", pkg)
}

// PendingByCustomer returns the customer's packages still on the shelf. The
// counter screen loads this when a customer is selected for pickup.
func (h *PackageHandler) PendingByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	pkgs, err := h.packageService.GetPendingByCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pending packages retrieved successfully", pkgs)
}

// Update handles updating shelf details on a package
func (h *PackageHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	var req request.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	pkg, err := h.packageService.UpdatePackage(c.Request.Context(), &service.UpdatePackageInput{
		ID:            id,
		Carrier:       req.Carrier,
		PackageType:   req.PackageType,
		ShelfLocation: req.ShelfLocation,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Package updated successfully", pkg)
}

// ReturnToSender handles marking a pending package as returned
func (h *PackageHandler) ReturnToSender(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	pkg, err := h.packageService.ReturnToSender(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Package marked as returned to sender", pkg)
}

// Delete handles deleting a package record
func (h *PackageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	if err := h.packageService.DeletePackage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
