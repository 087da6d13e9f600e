package ledger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jordanwest/ledgerpane/pkg/models"
)

// ListAccounts retrieves all cash accounts.
func (c *HTTPClient) ListAccounts(ctx context.Context) ([]models.Account, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/accounts", nil)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, &NetworkError{Op: "GET /api/accounts", Err: fmt.Errorf("response missing account data")}
	}
	return env.Data.Accounts, nil
}

// ListPayments retrieves all payments with their joined display fields.
func (c *HTTPClient) ListPayments(ctx context.Context) ([]models.Payment, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/payments", nil)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, &NetworkError{Op: "GET /api/payments", Err: fmt.Errorf("response missing payment data")}
	}
	return toModelPayments(env.Data.Payments), nil
}

// CreatePayment schedules a new pending payment. A business rejection (e.g.
// insufficient funds) comes back as a RejectionError carrying the balance
// context the service reported.
func (c *HTTPClient) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/payments", req)
	if err != nil {
		return nil, err
	}
	if env.Data == nil || env.Data.Payment == nil {
		return nil, &NetworkError{Op: "POST /api/payments", Err: fmt.Errorf("response missing created payment")}
	}
	p := env.Data.Payment.toModel()
	return &p, nil
}

// ConfirmPayment asks the service to complete a pending payment and deduct
// its amount from the account. The service is authoritative and idempotent
// here: confirming an already-completed payment is rejected server-side
// without a second deduction.
func (c *HTTPClient) ConfirmPayment(ctx context.Context, id string) (*ConfirmResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/payments/"+id+"/confirm", nil)
	if err != nil {
		return nil, err
	}
	if env.Data == nil || env.Data.Payment == nil {
		return nil, &NetworkError{Op: "POST /api/payments/" + id + "/confirm", Err: fmt.Errorf("response missing confirmed payment")}
	}

	result := &ConfirmResult{Payment: env.Data.Payment.toModel()}
	if d := env.Data.detail(); d != nil {
		result.Detail = *d
	}
	return result, nil
}

// DeletePayment removes a pending payment on the service.
func (c *HTTPClient) DeletePayment(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/payments/"+id, nil)
	return err
}

// GenerateReportSnapshot fetches the point-in-time accounts and payments the
// service assembles for reporting.
func (c *HTTPClient) GenerateReportSnapshot(ctx context.Context) (*Snapshot, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/report", nil)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, &NetworkError{Op: "GET /api/report", Err: fmt.Errorf("response missing report data")}
	}
	return &Snapshot{
		Accounts: env.Data.Accounts,
		Payments: toModelPayments(env.Data.Payments),
	}, nil
}
