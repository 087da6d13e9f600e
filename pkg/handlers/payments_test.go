package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jordanwest/ledgerpane/pkg/cache"
	"github.com/jordanwest/ledgerpane/pkg/engine"
	"github.com/jordanwest/ledgerpane/pkg/handlers"
	"github.com/jordanwest/ledgerpane/pkg/ledger"
	"github.com/jordanwest/ledgerpane/pkg/ledger/mocks"
	"github.com/jordanwest/ledgerpane/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (chi.Router, *mocks.Client, *cache.Cache) {
	t.Helper()
	client := mocks.NewClient(t)
	c := cache.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := engine.New(client, c, logger)

	router := chi.NewRouter()
	handlers.Routes(router, e, nil)
	return router, client, c
}

func TestCreatePaymentHandler(t *testing.T) {
	body := `{"vendor_id":"v1","account_id":"a1","amount":"150","payment_date":"2026-09-15"}`

	t.Run("Created", func(t *testing.T) {
		router, client, c := newRouter(t)
		c.ReplaceVendors([]models.Vendor{{ID: "v1", Name: "Acme"}})
		c.ReplaceAccounts([]models.Account{{ID: "a1", Name: "Checking"}})

		client.On("CreatePayment", mock.Anything, mock.Anything).Once().Return(&models.Payment{
			ID: "p1", VendorID: "v1", AccountID: "a1",
			Amount: decimal.NewFromInt(150), Status: models.PENDING,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp handlers.Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("Validation Failure Is A 400 With The Field", func(t *testing.T) {
		router, _, _ := newRouter(t)

		bad := `{"vendor_id":"v1","account_id":"a1","amount":"0","payment_date":"2026-09-15"}`
		req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(bad))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp handlers.Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, rr.Body.String(), "Amount")
	})

	t.Run("Business Rejection Is A 422 With Detail", func(t *testing.T) {
		router, client, c := newRouter(t)
		c.ReplaceVendors([]models.Vendor{{ID: "v1"}})
		c.ReplaceAccounts([]models.Account{{ID: "a1"}})

		balance := decimal.NewFromInt(100)
		client.On("CreatePayment", mock.Anything, mock.Anything).Once().Return(nil, &ledger.RejectionError{
			Message: "insufficient balance",
			Detail:  &models.TransactionDetail{CurrentBalance: &balance},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), "current_balance")
	})

	t.Run("Transport Failure Is A 502", func(t *testing.T) {
		router, client, c := newRouter(t)
		c.ReplaceVendors([]models.Vendor{{ID: "v1"}})
		c.ReplaceAccounts([]models.Account{{ID: "a1"}})

		client.On("CreatePayment", mock.Anything, mock.Anything).Once().
			Return(nil, &ledger.NetworkError{Op: "POST /api/payments", Err: assert.AnError})

		req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestConfirmPaymentHandler(t *testing.T) {
	t.Run("Applies Balance And Reports The Delta", func(t *testing.T) {
		router, client, c := newRouter(t)
		c.ReplaceAccounts([]models.Account{{ID: "a1", Balance: decimal.NewFromInt(500)}})
		c.ReplacePayments([]models.Payment{{ID: "p1", AccountID: "a1", Status: models.PENDING}})

		prev, next, deducted := decimal.NewFromInt(500), decimal.NewFromInt(300), decimal.NewFromInt(200)
		client.On("ConfirmPayment", mock.Anything, "p1").Once().Return(&ledger.ConfirmResult{
			Payment: models.Payment{ID: "p1", AccountID: "a1", Status: models.COMPLETED, AccountBalance: &next},
			Detail:  models.TransactionDetail{PreviousBalance: &prev, NewBalance: &next, AmountDeducted: &deducted},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/payments/p1/confirm", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "new_balance")

		account, _ := c.Account("a1")
		assert.True(t, account.Balance.Equal(next))
	})

	t.Run("Absent From Cache Returns The Server Copy", func(t *testing.T) {
		router, client, _ := newRouter(t)

		next := decimal.NewFromInt(300)
		client.On("ConfirmPayment", mock.Anything, "p9").Once().Return(&ledger.ConfirmResult{
			Payment: models.Payment{ID: "p9", AccountID: "a9", Status: models.COMPLETED, AccountBalance: &next},
			Detail:  models.TransactionDetail{NewBalance: &next},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/payments/p9/confirm", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Data struct {
				Payment models.Payment `json:"payment"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		// The serialized payment is the server's confirmed record, not a
		// zero value from the stale cache.
		assert.Equal(t, "p9", resp.Data.Payment.ID)
		assert.Equal(t, models.COMPLETED, resp.Data.Payment.Status)
	})
}

func TestDeletePaymentHandler(t *testing.T) {
	t.Run("Deletes Pending", func(t *testing.T) {
		router, client, c := newRouter(t)
		c.ReplacePayments([]models.Payment{{ID: "p1", Status: models.PENDING}})

		client.On("DeletePayment", mock.Anything, "p1").Once().Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/payments/p1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, c.Payments())
	})

	t.Run("Rejects Completed", func(t *testing.T) {
		router, _, c := newRouter(t)
		c.ReplacePayments([]models.Payment{{ID: "p1", Status: models.COMPLETED}})

		req := httptest.NewRequest(http.MethodDelete, "/api/payments/p1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Len(t, c.Payments(), 1)
	})
}

func TestGenerateReportHandler(t *testing.T) {
	router, client, _ := newRouter(t)

	client.On("GenerateReportSnapshot", mock.Anything).Once().Return(&ledger.Snapshot{
		Accounts: []models.Account{{ID: "a1", Name: "Checking", Balance: decimal.NewFromInt(750)}},
		Payments: []models.Payment{{ID: "p1", Status: models.PENDING}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "generated_at")
	assert.Contains(t, rr.Body.String(), "plan")
}
