package xendit

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"kontribo-backend/config"
	"kontribo-backend/internal/core/domain"
	"kontribo-backend/internal/core/ports"
	"kontribo-backend/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient abstracts the underlying HTTP transport for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.GatewayClient against the Xendit REST API.
// Every mutating call carries an X-IDEMPOTENCY-KEY header so gateway-side
// retries collapse onto one invoice or disbursement.
type Client struct {
	baseURL    string
	authHeader string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a gateway client from configuration.
func NewClient(cfg config.GatewayConfig, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(cfg.SecretKey+":")),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "xendit_client").Logger(),
	}
}

// WithHTTPClient swaps the transport. Used in tests.
func (c *Client) WithHTTPClient(hc HTTPClient) *Client {
	c.httpClient = hc
	return c
}

type invoicePayload struct {
	ExternalID         string  `json:"external_id"`
	Amount             int64   `json:"amount"`
	Description        string  `json:"description"`
	PayerEmail         *string `json:"payer_email,omitempty"`
	SuccessRedirectURL *string `json:"success_redirect_url,omitempty"`
	FailureRedirectURL *string `json:"failure_redirect_url,omitempty"`
}

type invoiceResponse struct {
	ID         string     `json:"id"`
	InvoiceURL string     `json:"invoice_url"`
	Status     string     `json:"status"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

// CreateInvoice creates a hosted payment invoice.
func (c *Client) CreateInvoice(ctx context.Context, req ports.GatewayInvoiceRequest) (*ports.GatewayInvoice, error) {
	payload := invoicePayload{
		ExternalID:         req.ExternalID,
		Amount:             req.Amount,
		Description:        req.Description,
		PayerEmail:         req.PayerEmail,
		SuccessRedirectURL: req.SuccessRedirectURL,
		FailureRedirectURL: req.FailureRedirectURL,
	}

	var resp invoiceResponse
	if err := c.post(ctx, "/v2/invoices", req.IdempotencyKey, payload, &resp); err != nil {
		return nil, err
	}

	c.log.Info().
		Str("external_id", req.ExternalID).
		Str("invoice_id", resp.ID).
		Int64("amount", req.Amount).
		Msg("invoice created")

	return &ports.GatewayInvoice{
		ID:         resp.ID,
		InvoiceURL: resp.InvoiceURL,
		Status:     resp.Status,
		ExpiryDate: resp.ExpiryDate,
	}, nil
}

type disbursementPayload struct {
	ExternalID        string `json:"external_id"`
	Amount            int64  `json:"amount"`
	Description       string `json:"description"`
	BankCode          string `json:"bank_code"`
	AccountHolderName string `json:"account_holder_name"`
	AccountNumber     string `json:"account_number"`
}

type disbursementResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Fee    int64  `json:"fee"`
}

// CreateDisbursement sends a payout to the destination's bank account or
// e-wallet. E-wallets ride the same disbursement API with the provider code
// in place of a bank code.
func (c *Client) CreateDisbursement(ctx context.Context, req ports.GatewayDisbursementRequest) (*ports.GatewayDisbursement, error) {
	payload := disbursementPayload{
		ExternalID:  req.ExternalID,
		Amount:      req.Amount,
		Description: req.Description,
	}

	dest := req.Destination
	switch dest.Channel {
	case domain.PayoutChannelBank:
		if dest.BankCode == nil || dest.BankAccountNumber == nil || dest.BankAccountName == nil {
			return nil, apperror.Validation("Bank destination is missing account details")
		}
		payload.BankCode = *dest.BankCode
		payload.AccountHolderName = *dest.BankAccountName
		payload.AccountNumber = *dest.BankAccountNumber
	case domain.PayoutChannelEwallet:
		if dest.EwalletType == nil || dest.EwalletNumber == nil {
			return nil, apperror.Validation("E-wallet destination is missing account details")
		}
		payload.BankCode = *dest.EwalletType
		payload.AccountHolderName = dest.Label
		payload.AccountNumber = *dest.EwalletNumber
	default:
		return nil, apperror.Validation(fmt.Sprintf("Unsupported payout channel: %s", dest.Channel))
	}

	var resp disbursementResponse
	if err := c.post(ctx, "/disbursements", req.IdempotencyKey, payload, &resp); err != nil {
		return nil, err
	}

	c.log.Info().
		Str("external_id", req.ExternalID).
		Str("disbursement_id", resp.ID).
		Int64("amount", req.Amount).
		Msg("disbursement created")

	return &ports.GatewayDisbursement{
		ID:     resp.ID,
		Status: resp.Status,
		Fee:    resp.Fee,
	}, nil
}

func (c *Client) post(ctx context.Context, path, idempotencyKey string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal gateway payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return apperror.InternalError(fmt.Errorf("build gateway request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("X-IDEMPOTENCY-KEY", idempotencyKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.ErrGateway(fmt.Errorf("POST %s: %w", path, err))
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apperror.ErrGateway(fmt.Errorf("read gateway response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("gateway request rejected")
		return apperror.ErrGateway(fmt.Errorf("POST %s: status %d", path, resp.StatusCode))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return apperror.ErrGateway(fmt.Errorf("decode gateway response: %w", err))
	}
	return nil
}
