package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/application/service"
	infraRepo "github.com/shipos/shipos-api/internal/infrastructure/repository"
	"github.com/shipos/shipos-api/internal/presentation/http/dto/request"
	"github.com/shipos/shipos-api/internal/presentation/http/dto/response"
	"github.com/shipos/shipos-api/pkg/pagination"
)

// CustomerHandler handles mailbox customer HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	// Super admins can see across stores, or narrow to one with ?tenant_id
	ctx := c.Request.Context()
	if IsSuperAdmin(c) {
		ctx = infraRepo.WithSkipTenantScope(ctx, true)
		if tenantIDStr := c.Query("tenant_id"); tenantIDStr != "" {
			if tenantID, err := uuid.Parse(tenantIDStr); err == nil {
				ctx = infraRepo.WithTenant(ctx, tenantID)
				ctx = infraRepo.WithSkipTenantScope(ctx, false)
			}
		}
	}

	result, err := h.customerService.ListCustomers(ctx, params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Create handles registering a new mailbox holder
func (h *CustomerHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var boxExpiresAt *time.Time
	if req.BoxExpiresAt != nil {
		t, err := time.Parse("2006-01-02", *req.BoxExpiresAt)
		if err != nil {
			response.BadRequest(c, "Invalid box_expires_at date")
			return
		}
		boxExpiresAt = &t
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		UserID:       *userID,
		PMBNumber:    req.PMBNumber,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		NotifyBy:     req.NotifyBy,
		BoxExpiresAt: boxExpiresAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// GetByPMB looks up a customer by mailbox number, the fastest path at the
// counter when someone walks in and says their box number.
func (h *CustomerHandler) GetByPMB(c *gin.Context) {
	pmb := c.Param("pmb")
	if pmb == "" {
		response.BadRequest(c, "PMB number is required")
		return
	}

	customer, err := h.customerService.GetCustomerByPMB(c.Request.Context(), pmb)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var boxExpiresAt *time.Time
	if req.BoxExpiresAt != nil {
		t, err := time.Parse("2006-01-02", *req.BoxExpiresAt)
		if err != nil {
			response.BadRequest(c, "Invalid box_expires_at date")
			return
		}
		boxExpiresAt = &t
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		ID:           id,
		PMBNumber:    req.PMBNumber,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		NotifyBy:     req.NotifyBy,
		BoxExpiresAt: boxExpiresAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
