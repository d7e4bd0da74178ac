package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/checkout"
	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/shipos/shipos-api/internal/domain/enum"
	"github.com/shipos/shipos-api/internal/domain/repository"
	infraRepo "github.com/shipos/shipos-api/internal/infrastructure/repository"
	"github.com/shipos/shipos-api/pkg/apperror"
	"github.com/shipos/shipos-api/pkg/email"
	"github.com/shipos/shipos-api/pkg/money"
	"github.com/shipos/shipos-api/pkg/pagination"
	"github.com/shipos/shipos-api/pkg/utils"
)

// CheckoutService runs the pickup counter: it quotes fees for a batch of
// packages, commits the checkout, and produces the receipt.
type CheckoutService struct {
	packageRepo    repository.PackageRepository
	customerRepo   repository.CustomerRepository
	tenantRepo     repository.TenantRepository
	txnRepo        repository.TransactionRepository
	lineItemRepo   repository.LineItemRepository
	userRepo       repository.UserRepository
	printerService *PrinterService
	emailService   *email.EmailService
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	packageRepo repository.PackageRepository,
	customerRepo repository.CustomerRepository,
	tenantRepo repository.TenantRepository,
	txnRepo repository.TransactionRepository,
	lineItemRepo repository.LineItemRepository,
	userRepo repository.UserRepository,
	printerService *PrinterService,
	emailService *email.EmailService,
) *CheckoutService {
	return &CheckoutService{
		packageRepo:    packageRepo,
		customerRepo:   customerRepo,
		tenantRepo:     tenantRepo,
		txnRepo:        txnRepo,
		lineItemRepo:   lineItemRepo,
		userRepo:       userRepo,
		printerService: printerService,
		emailService:   emailService,
	}
}

// QuoteInput identifies the batch being priced at the counter
type QuoteInput struct {
	CustomerID uuid.UUID
	PackageIDs []uuid.UUID
	AddOnTotal money.Cents
}

// Quote represents a priced checkout that has not been committed
type Quote struct {
	Fees      checkout.FeeCalculationResult `json:"fees"`
	LineItems []checkout.LineItem           `json:"line_items"`
}

// QuoteCheckout prices a batch of packages without changing anything. The
// counter screen calls this repeatedly as the clerk toggles packages on and
// off.
func (s *CheckoutService) QuoteCheckout(ctx context.Context, input *QuoteInput) (*Quote, error) {
	_, cfg, err := s.storeConfig(ctx)
	if err != nil {
		return nil, err
	}

	pkgs, _, err := s.loadBatch(ctx, input.CustomerID, input.PackageIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthlyCount, err := s.packageRepo.CountReceivedInMonth(ctx, input.CustomerID, now, input.PackageIDs)
	if err != nil {
		return nil, err
	}

	fees := checkout.CalculateFees(toFeeInputs(pkgs), cfg, int(monthlyCount), input.AddOnTotal, now)
	return &Quote{Fees: fees, LineItems: checkout.BuildLineItems(fees)}, nil
}

// CommitCheckoutInput represents a confirmed pickup
type CommitCheckoutInput struct {
	CustomerID       uuid.UUID
	PackageIDs       []uuid.UUID
	AddOnTotal       money.Cents
	PaymentMethod    string
	SignatureDataURL string
	StaffID          uuid.UUID
}

// CheckoutResult is the outcome of a committed checkout
type CheckoutResult struct {
	Transaction *entity.CheckoutTransaction `json:"transaction"`
	LineItems   []checkout.LineItem         `json:"line_items"`
	ReceiptHTML string                      `json:"receipt_html"`
}

// CommitCheckout charges the batch, stores the transaction with its rendered
// receipt, and marks the packages picked up. Printing and email delivery are
// best effort; the stored transaction is the source of truth.
func (s *CheckoutService) CommitCheckout(ctx context.Context, input *CommitCheckoutInput) (*CheckoutResult, error) {
	tenant, cfg, err := s.storeConfig(ctx)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	pkgs, feeInputs, err := s.loadBatch(ctx, input.CustomerID, input.PackageIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthlyCount, err := s.packageRepo.CountReceivedInMonth(ctx, input.CustomerID, now, input.PackageIDs)
	if err != nil {
		return nil, err
	}

	fees := checkout.CalculateFees(feeInputs, cfg, int(monthlyCount), input.AddOnTotal, now)
	lineItems := checkout.BuildLineItems(fees)

	var staffName string
	if staff, err := s.userRepo.GetByID(ctx, input.StaffID); err == nil && staff != nil {
		staffName = staff.FullName()
	}

	var storeAddress, storePhone string
	if tenant.Address != nil {
		storeAddress = *tenant.Address
	}
	if tenant.Phone != nil {
		storePhone = *tenant.Phone
	}

	invoiceNo := utils.GenerateInvoiceNo(tenant.Settings.InvoicePrefix)
	receipt := checkout.BuildReceiptData(fees, lineItems, checkout.ReceiptContext{
		InvoiceNo:        invoiceNo,
		StoreName:        tenant.Name,
		StoreAddress:     storeAddress,
		StorePhone:       storePhone,
		CustomerName:     customer.Name,
		PMBNumber:        customer.PMBNumber,
		StaffName:        staffName,
		PaymentMethod:    input.PaymentMethod,
		SignatureDataURL: input.SignatureDataURL,
		Packages:         feeInputs,
	})
	receiptHTML := checkout.RenderReceipt(receipt)

	txn := &entity.CheckoutTransaction{
		TenantID:          tenant.ID,
		UserID:            input.StaffID,
		CustomerID:        customer.ID,
		InvoiceNo:         invoiceNo,
		PackageCount:      len(pkgs),
		StorageFeeTotal:   fees.StorageFeeTotal,
		ReceivingFeeTotal: fees.ReceivingFeeTotal,
		QuotaFeeTotal:     fees.QuotaFeeTotal,
		AddOnTotal:        fees.AddOnTotal,
		Subtotal:          fees.Subtotal,
		TaxRate:           fees.TaxRate,
		TaxAmount:         fees.TaxAmount,
		Total:             fees.Total,
		PaymentMethod:     input.PaymentMethod,
		ReceiptHTML:       receiptHTML,
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	items := make([]entity.CheckoutLineItem, 0, len(lineItems))
	for i, li := range lineItems {
		items = append(items, entity.CheckoutLineItem{
			TransactionID: txn.ID,
			Position:      i,
			Description:   li.Description,
			Quantity:      li.Quantity,
			UnitPrice:     li.UnitPrice,
			Total:         li.Total,
		})
	}
	if err := s.lineItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	failed, err := s.packageRepo.MarkPickedUp(ctx, input.PackageIDs, now)
	if err != nil {
		return nil, err
	}
	if len(failed) > 0 {
		// The batch was validated as pending before charging, so a failure
		// here means a concurrent pickup won the race.
		return nil, apperror.NewConflictError(fmt.Sprintf("%d package(s) were already picked up", len(failed)))
	}

	if s.printerService != nil && tenant.Settings.PrintOnPickup {
		if err := s.printerService.PrintCheckoutReceipt(&receipt); err != nil {
			log.Printf("Failed to print receipt %s: %v", invoiceNo, err)
		}
	}

	if s.emailService != nil && tenant.Settings.EmailOnPickup && customer.Email != nil {
		if err := s.emailService.SendReceiptEmail(*customer.Email, invoiceNo, receiptHTML); err != nil {
			log.Printf("Failed to email receipt %s: %v", invoiceNo, err)
		}
	}

	return &CheckoutResult{
		Transaction: txn,
		LineItems:   lineItems,
		ReceiptHTML: receiptHTML,
	}, nil
}

// GetTransaction retrieves a checkout with its line items
func (s *CheckoutService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.CheckoutTransaction, error) {
	txn, err := s.txnRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return txn, nil
}

// GetReceiptHTML returns the stored receipt for reprints. Receipts are
// rendered once at commit; reprints are byte-identical to the original.
func (s *CheckoutService) GetReceiptHTML(ctx context.Context, id uuid.UUID) (string, error) {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if txn == nil {
		return "", apperror.NewNotFoundError("Transaction")
	}
	return txn.ReceiptHTML, nil
}

// ReprintReceipt sends a stored transaction back to the thermal printer. The
// printable data is rebuilt from the persisted transaction and line items so
// the reprint matches what was charged.
func (s *CheckoutService) ReprintReceipt(ctx context.Context, id uuid.UUID) error {
	if s.printerService == nil {
		return apperror.NewBadRequestError("No printer configured")
	}

	txn, err := s.txnRepo.GetWithItems(ctx, id)
	if err != nil {
		return err
	}
	if txn == nil {
		return apperror.NewNotFoundError("Transaction")
	}

	tenant, _, err := s.storeConfig(ctx)
	if err != nil {
		return err
	}

	var staffName string
	if staff, err := s.userRepo.GetByID(ctx, txn.UserID); err == nil && staff != nil {
		staffName = staff.FullName()
	}

	var storeAddress, storePhone string
	if tenant.Address != nil {
		storeAddress = *tenant.Address
	}
	if tenant.Phone != nil {
		storePhone = *tenant.Phone
	}

	items := make([]checkout.LineItem, 0, len(txn.Items))
	for _, li := range txn.Items {
		items = append(items, checkout.LineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Total:       li.Total,
		})
	}

	receipt := checkout.ReceiptData{
		InvoiceNo:    txn.InvoiceNo,
		StoreName:    tenant.Name,
		StoreAddress: storeAddress,
		StorePhone:   storePhone,
		CustomerName: txn.Customer.Name,
		PMBNumber:    txn.Customer.PMBNumber,
		StaffName:    staffName,
		// Only the count survives a reprint; per-package details live in the
		// line items.
		Packages:      make([]checkout.PackageForFees, txn.PackageCount),
		LineItems:     items,
		Subtotal:      txn.Subtotal,
		TaxRate:       txn.TaxRate,
		TaxAmount:     txn.TaxAmount,
		Total:         txn.Total,
		PaymentMethod: txn.PaymentMethod,
		DateTime:      txn.CreatedAt,
	}

	return s.printerService.PrintCheckoutReceipt(&receipt)
}

// ListTransactions lists checkouts with filters
func (s *CheckoutService) ListTransactions(ctx context.Context, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.CheckoutTransaction], error) {
	txns, total, err := s.txnRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(txns, pag), nil
}

// storeConfig resolves the tenant in context and its fee policy
func (s *CheckoutService) storeConfig(ctx context.Context) (*entity.Tenant, checkout.FeeConfig, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, checkout.FeeConfig{}, apperror.NewBadRequestError("Tenant context required")
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, checkout.FeeConfig{}, err
	}
	if tenant == nil {
		return nil, checkout.FeeConfig{}, apperror.NewNotFoundError("Store")
	}

	return tenant, tenant.Settings.Fees.FeeConfig(), nil
}

// loadBatch fetches the requested packages and checks every one is a pending
// package belonging to the customer.
func (s *CheckoutService) loadBatch(ctx context.Context, customerID uuid.UUID, ids []uuid.UUID) ([]entity.Package, []checkout.PackageForFees, error) {
	if len(ids) == 0 {
		return nil, nil, apperror.NewBadRequestError("At least one package is required")
	}

	pkgs, err := s.packageRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(pkgs) != len(ids) {
		return nil, nil, apperror.NewNotFoundError("Package")
	}

	for _, pkg := range pkgs {
		if pkg.CustomerID != customerID {
			return nil, nil, apperror.NewBadRequestError("Package does not belong to this customer")
		}
		if pkg.Status != enum.PackageStatusPending {
			return nil, nil, apperror.NewConflictError("Package has already been picked up or returned")
		}
	}

	return pkgs, toFeeInputs(pkgs), nil
}

func toFeeInputs(pkgs []entity.Package) []checkout.PackageForFees {
	inputs := make([]checkout.PackageForFees, 0, len(pkgs))
	for _, pkg := range pkgs {
		inputs = append(inputs, pkg.ForFees())
	}
	return inputs
}
