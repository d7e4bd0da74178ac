package request

// PrintReceiptRequest is the request body for reprinting a checkout receipt.
type PrintReceiptRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
}
