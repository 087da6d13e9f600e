package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jordanwest/ledgerpane/pkg/engine"
	"github.com/shopspring/decimal"
)

// PaymentsHandler holds the dependencies for payment-related handlers.
type PaymentsHandler struct {
	Engine *engine.Engine
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(e *engine.Engine) *PaymentsHandler {
	return &PaymentsHandler{Engine: e}
}

type createPaymentBody struct {
	VendorID    string          `json:"vendor_id"`
	AccountID   string          `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
}

// ListPayments returns the cached payment collection.
func (h *PaymentsHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.FetchPayments(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{"payments": h.Engine.Cache().Payments()})
}

// CreatePayment schedules a new pending payment.
func (h *PaymentsHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var body createPaymentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	created, err := h.Engine.CreatePayment(r.Context(), engine.CreatePaymentInput{
		VendorID:    body.VendorID,
		AccountID:   body.AccountID,
		Amount:      body.Amount,
		PaymentDate: body.PaymentDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, map[string]any{"payment": created})
}

// ConfirmPayment completes a pending payment and reports the balance delta.
func (h *PaymentsHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "paymentID")

	payment, detail, err := h.Engine.ConfirmPayment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, map[string]any{
		"payment":          payment,
		"previous_balance": detail.PreviousBalance,
		"new_balance":      detail.NewBalance,
		"amount_deducted":  detail.AmountDeducted,
	})
}

// DeletePayment removes a pending payment.
func (h *PaymentsHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "paymentID")

	if err := h.Engine.DeletePayment(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "payment deleted"})
}
