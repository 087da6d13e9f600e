// Package ledger is the client for the remote ledger service, which owns the
// authoritative vendors, accounts, payments and balances. The client does
// request/response marshalling, bearer authentication and error
// normalization; all business decisions live in the engine.
package ledger

import (
	"context"
	"net/http"
	"time"

	"github.com/jordanwest/ledgerpane/pkg/models"
	"github.com/shopspring/decimal"
)

// TokenSource supplies the opaque bearer credential attached to every
// request. Session management (login, refresh) is an external collaborator;
// the client never inspects the credential.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed credential.
type StaticToken string

// Token returns the fixed credential.
func (t StaticToken) Token(ctx context.Context) (string, error) { return string(t), nil }

// VendorPatch describes a partial vendor update.
type VendorPatch struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// CreatePaymentRequest is the payload for scheduling a new payment.
type CreatePaymentRequest struct {
	VendorID    string          `json:"vendor_id"`
	AccountID   string          `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
}

// ConfirmResult is the outcome of a successful confirmation: the payment as
// the server now sees it (status completed, with the account balance
// snapshot attached) plus the balance delta.
type ConfirmResult struct {
	Payment models.Payment
	Detail  models.TransactionDetail
}

// Snapshot is the point-in-time report data returned by the service.
type Snapshot struct {
	Accounts []models.Account
	Payments []models.Payment
}

// Client defines the operations the engine needs from the ledger service.
type Client interface {
	ListVendors(ctx context.Context) ([]models.Vendor, error)
	CreateVendor(ctx context.Context, name string, schedule models.PaymentSchedule) (*models.Vendor, error)
	UpdateVendor(ctx context.Context, id string, patch VendorPatch) error
	DeleteVendor(ctx context.Context, id string) error

	ListAccounts(ctx context.Context) ([]models.Account, error)

	ListPayments(ctx context.Context) ([]models.Payment, error)
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error)
	ConfirmPayment(ctx context.Context, id string) (*ConfirmResult, error)
	DeletePayment(ctx context.Context, id string) error

	GenerateReportSnapshot(ctx context.Context) (*Snapshot, error)
}

// HTTPClient implements Client against the service's REST binding.
type HTTPClient struct {
	BaseURL string
	Tokens  TokenSource
	HTTP    *http.Client
}

// NewHTTPClient creates an HTTPClient with a sane default timeout.
func NewHTTPClient(baseURL string, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		Tokens:  tokens,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Make sure we conform to the interface
var _ Client = (*HTTPClient)(nil)
