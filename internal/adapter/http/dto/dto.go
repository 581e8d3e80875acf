package dto

// CreateSupportRequest is the request body for initiating a donation.
// The idempotency key travels in the X-Idempotency-Key header, not the body.
type CreateSupportRequest struct {
	ContributorUsername string  `json:"contributor_username" binding:"required,min=3,max=50,safe_id"`
	Amount              int64   `json:"amount" binding:"required,gt=0"`
	Message             string  `json:"message" binding:"max=500"`
	IsAnonymous         bool    `json:"is_anonymous"`
	SupporterName       *string `json:"supporter_name,omitempty" binding:"omitempty,max=100"`
	SupporterEmail      *string `json:"supporter_email,omitempty" binding:"omitempty,email"`
	SuccessRedirectURL  *string `json:"success_redirect_url,omitempty" binding:"omitempty,safe_url"`
	FailureRedirectURL  *string `json:"failure_redirect_url,omitempty" binding:"omitempty,safe_url"`
}

// SupportResponse is the response body for a support transaction.
type SupportResponse struct {
	ID                string  `json:"id"`
	ContributorID     string  `json:"contributor_id"`
	AmountGross       int64   `json:"amount_gross"`
	Currency          string  `json:"currency"`
	Message           string  `json:"message"`
	IsAnonymous       bool    `json:"is_anonymous"`
	SupporterName     *string `json:"supporter_name,omitempty"`
	Status            string  `json:"status"`
	ExternalInvoiceID *string `json:"external_invoice_id,omitempty"`
	PaidAt            *string `json:"paid_at,omitempty"`
	ExpiredAt         *string `json:"expired_at,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

// CreateSupportResponse pairs the created support with the gateway checkout
// URL. InvoiceURL is empty when an existing support was returned.
type CreateSupportResponse struct {
	Support    SupportResponse `json:"support"`
	InvoiceURL string          `json:"invoice_url,omitempty"`
}

// ReleaseSupportResponse confirms a pending-to-available release.
type ReleaseSupportResponse struct {
	SupportID string `json:"support_id"`
	Released  bool   `json:"released"`
}

// CreateWithdrawalRequest is the request body for requesting a payout.
type CreateWithdrawalRequest struct {
	DestinationID string `json:"destination_id" binding:"required,uuid"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

// WithdrawalResponse is the response body for a withdrawal request.
type WithdrawalResponse struct {
	ID                     string  `json:"id"`
	DestinationID          string  `json:"destination_id"`
	AmountToUser           int64   `json:"amount_to_user"`
	FeeFlat                int64   `json:"fee_flat"`
	TotalDebit             int64   `json:"total_debit"`
	Currency               string  `json:"currency"`
	Status                 string  `json:"status"`
	ExternalDisbursementID *string `json:"external_disbursement_id,omitempty"`
	GatewayFeeActual       int64   `json:"gateway_fee_actual"`
	RequestedAt            string  `json:"requested_at"`
	ProcessedAt            *string `json:"processed_at,omitempty"`
	CompletedAt            *string `json:"completed_at,omitempty"`
}

// WithdrawalListResponse wraps the authenticated user's withdrawal history.
type WithdrawalListResponse struct {
	Items []WithdrawalResponse `json:"items"`
}

// BalancesResponse is the response for a per-bucket balance query.
type BalancesResponse struct {
	Available int64  `json:"available"`
	Pending   int64  `json:"pending"`
	Reserved  int64  `json:"reserved"`
	Currency  string `json:"currency"`
}

// RevenueResponse is the response for the founder revenue query.
type RevenueResponse struct {
	TotalRevenue int64  `json:"total_revenue"`
	Currency     string `json:"currency"`
}
