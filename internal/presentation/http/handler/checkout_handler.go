package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/application/service"
	"github.com/shipos/shipos-api/internal/domain/repository"
	"github.com/shipos/shipos-api/internal/presentation/http/dto/request"
	"github.com/shipos/shipos-api/internal/presentation/http/dto/response"
	"github.com/shipos/shipos-api/pkg/money"
	"github.com/shipos/shipos-api/pkg/pagination"
)

// CheckoutHandler handles pickup checkout HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Quote prices a batch of packages without committing anything. The counter
// screen calls this as the clerk toggles packages on and off.
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req request.QuoteCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quote, err := h.checkoutService.QuoteCheckout(c.Request.Context(), &service.QuoteInput{
		CustomerID: req.CustomerID,
		PackageIDs: req.PackageIDs,
		AddOnTotal: money.FromDecimal(req.AddOnTotal),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote calculated successfully", quote)
}

// Commit finalizes a pickup: charges the batch, stores the transaction and
// receipt, and marks the packages picked up.
func (h *CheckoutHandler) Commit(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CommitCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.checkoutService.CommitCheckout(c.Request.Context(), &service.CommitCheckoutInput{
		CustomerID:       req.CustomerID,
		PackageIDs:       req.PackageIDs,
		AddOnTotal:       money.FromDecimal(req.AddOnTotal),
		PaymentMethod:    req.PaymentMethod,
		SignatureDataURL: req.SignatureDataURL,
		StaffID:          *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checkout completed successfully", result)
}

// List handles listing checkout transactions
func (h *CheckoutHandler) List(c *gin.Context) {
	var req request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.TransactionFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
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
		end := t.AddDate(0, 0, 1)
		params.EndDate = &end
	}

	result, err := h.checkoutService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Get handles getting a transaction with its line items
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	txn, err := h.checkoutService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", txn)
}

// Receipt serves the stored receipt HTML for a transaction. Reprints are
// byte-identical to the original because the HTML is stored at commit time.
func (h *CheckoutHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	html, err := h.checkoutService.GetReceiptHTML(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "text/html; charset=utf-8", []byte(html))
}
