package request

// CreateCustomerRequest represents a mailbox customer creation request
type CreateCustomerRequest struct {
	PMBNumber    string  `json:"pmb_number" binding:"required,min=1,max=20"`
	Name         string  `json:"name" binding:"required,min=2,max=255"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	Address      *string `json:"address"`
	NotifyBy     string  `json:"notify_by" binding:"omitempty,oneof=email sms none"`
	BoxExpiresAt *string `json:"box_expires_at" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateCustomerRequest represents a mailbox customer update request
type UpdateCustomerRequest struct {
	PMBNumber    *string `json:"pmb_number" binding:"omitempty,min=1,max=20"`
	Name         *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	Address      *string `json:"address"`
	NotifyBy     *string `json:"notify_by" binding:"omitempty,oneof=email sms none"`
	BoxExpiresAt *string `json:"box_expires_at" binding:"omitempty,datetime=2006-01-02"`
}

// CustomerFilterRequest represents customer list parameters
type CustomerFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
