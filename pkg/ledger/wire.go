package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jordanwest/ledgerpane/pkg/models"
	"github.com/shopspring/decimal"
)

// envelope is the uniform response shape of the ledger service.
type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Error   string   `json:"error,omitempty"`
	Data    *payload `json:"data,omitempty"`
}

// payload carries whichever resources and balance context a response has.
type payload struct {
	Vendor   *models.Vendor   `json:"vendor,omitempty"`
	Vendors  []models.Vendor  `json:"vendors,omitempty"`
	Accounts []models.Account `json:"accounts,omitempty"`
	Payment  *wirePayment     `json:"payment,omitempty"`
	Payments []wirePayment    `json:"payments,omitempty"`

	PreviousBalance *decimal.Decimal `json:"previous_balance,omitempty"`
	NewBalance      *decimal.Decimal `json:"new_balance,omitempty"`
	AmountDeducted  *decimal.Decimal `json:"amount_deducted,omitempty"`
	CurrentBalance  *decimal.Decimal `json:"current_balance,omitempty"`
	PaymentAmount   *decimal.Decimal `json:"payment_amount,omitempty"`
}

// wirePayment is a payment as the service serializes it, with the joined
// vendor/account relationship objects nested under plural keys.
type wirePayment struct {
	models.Payment
	Vendors  *wireVendorRef  `json:"vendors,omitempty"`
	Accounts *wireAccountRef `json:"accounts,omitempty"`
}

type wireVendorRef struct {
	Name string `json:"name"`
}

type wireAccountRef struct {
	Name    string           `json:"name,omitempty"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

// toModel flattens the nested relationship objects into the payment's
// denormalized display fields.
func (w wirePayment) toModel() models.Payment {
	p := w.Payment
	if w.Vendors != nil {
		p.VendorName = w.Vendors.Name
	}
	if w.Accounts != nil {
		p.AccountName = w.Accounts.Name
		p.AccountBalance = w.Accounts.Balance
	}
	return p
}

func toModelPayments(wire []wirePayment) []models.Payment {
	out := make([]models.Payment, len(wire))
	for i, w := range wire {
		out[i] = w.toModel()
	}
	return out
}

// detail extracts whatever balance context the payload carries, or nil if it
// has none.
func (p *payload) detail() *models.TransactionDetail {
	if p == nil {
		return nil
	}
	if p.PreviousBalance == nil && p.NewBalance == nil && p.AmountDeducted == nil &&
		p.CurrentBalance == nil && p.PaymentAmount == nil {
		return nil
	}
	return &models.TransactionDetail{
		PreviousBalance: p.PreviousBalance,
		NewBalance:      p.NewBalance,
		AmountDeducted:  p.AmountDeducted,
		CurrentBalance:  p.CurrentBalance,
		PaymentAmount:   p.PaymentAmount,
	}
}

// reject converts a success=false envelope into a RejectionError.
func (e *envelope) reject() error {
	msg := e.Error
	if msg == "" {
		msg = e.Message
	}
	return &RejectionError{Message: msg, Detail: e.Data.detail()}
}

// do issues one authenticated request and decodes the envelope. Transport
// failures and undecodable responses come back as NetworkError; GET requests
// are retried once on transport failure since they are idempotent.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	op := fmt.Sprintf("%s %s", method, path)

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	resp, err := c.send(ctx, method, path, reqBody)
	if err != nil && method == http.MethodGet {
		resp, err = c.send(ctx, method, path, reqBody)
	}
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &NetworkError{Op: op, Err: fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)}
	}

	if !env.Success {
		return nil, (&env).reject()
	}
	return &env, nil
}

func (c *HTTPClient) send(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}

	token, err := c.Tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get bearer token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.HTTP.Do(req)
}
