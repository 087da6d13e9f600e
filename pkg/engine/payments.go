package engine

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jordanwest/ledgerpane/pkg/ledger"
	"github.com/jordanwest/ledgerpane/pkg/models"
	"github.com/shopspring/decimal"
)

// CreatePaymentInput is a request to schedule a payment.
type CreatePaymentInput struct {
	VendorID    string          `validate:"required"`
	AccountID   string          `validate:"required"`
	Amount      decimal.Decimal `validate:"required"`
	PaymentDate string          `validate:"required"`
}

// CreatePayment validates the request locally, schedules the payment on the
// service, and on success inserts the new pending payment into the cache
// with its display fields joined from the current vendor/account snapshot.
//
// Local validation never contacts the service. A service rejection records
// the balance context the service reported (e.g. insufficient funds) and
// leaves the cache untouched.
func (e *Engine) CreatePayment(ctx context.Context, input CreatePaymentInput) (*models.Payment, error) {
	if err := e.begin(); err != nil {
		return nil, err
	}
	defer e.end()

	if err := e.validateCreate(input); err != nil {
		return nil, err
	}

	created, err := e.client.CreatePayment(ctx, ledger.CreatePaymentRequest{
		VendorID:    input.VendorID,
		AccountID:   input.AccountID,
		Amount:      input.Amount,
		PaymentDate: input.PaymentDate,
	})
	if err != nil {
		e.recordFailure("create payment", err)
		return nil, err
	}

	payment := models.WithDisplayFields(*created, e.cache.VendorIndex(), e.cache.AccountIndex())
	if payment.Status == "" {
		payment.Status = models.PENDING
	}
	e.cache.InsertPayment(payment)

	e.lastDetail = nil
	e.log.Info("payment created", "payment_id", payment.ID, "amount", payment.Amount)
	return &payment, nil
}

// ConfirmPayment asks the service to complete a pending payment. The call is
// issued even if the local copy is stale or missing, because the service is
// authoritative; its idempotent rejection of an already-completed payment
// must not mutate the cached balance a second time.
//
// On success the server's payment and account balance snapshot are applied
// to the cache, and the balance delta is recorded in the transaction slot.
// The returned payment is the server's confirmed record, with display fields
// joined, whether or not a local copy existed to update.
func (e *Engine) ConfirmPayment(ctx context.Context, id string) (*models.Payment, *models.TransactionDetail, error) {
	if err := e.begin(); err != nil {
		return nil, nil, err
	}
	defer e.end()

	if id == "" {
		return nil, nil, &ValidationError{Field: "id", Message: "payment id is required"}
	}

	result, err := e.client.ConfirmPayment(ctx, id)
	if err != nil {
		e.recordFailure("confirm payment", err)
		return nil, nil, err
	}

	confirmed := result.Payment
	e.cache.UpdatePayment(id, func(p *models.Payment) {
		p.Status = confirmed.Status
		p.UpdatedAt = confirmed.UpdatedAt
		if confirmed.AccountBalance != nil {
			p.AccountBalance = confirmed.AccountBalance
		}
	})

	// Fold the authoritative balance into the cached account as well, so
	// reports built before the next refresh already show it.
	if newBalance := confirmedBalance(result); newBalance != nil {
		e.cache.UpdateAccount(confirmed.AccountID, func(a *models.Account) {
			a.Balance = *newBalance
		})
	}

	applied, ok := e.cache.Payment(id)
	if !ok {
		// Stale or missing local copy: answer with the server's record.
		applied = models.WithDisplayFields(confirmed, e.cache.VendorIndex(), e.cache.AccountIndex())
	}

	detail := result.Detail
	e.lastDetail = &detail
	e.log.Info("payment confirmed", "payment_id", id)
	return &applied, &detail, nil
}

// DeletePayment removes a pending payment. Payments in any other state are
// rejected locally without contacting the service.
func (e *Engine) DeletePayment(ctx context.Context, id string) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	if local, ok := e.cache.Payment(id); ok && local.Status != models.PENDING {
		return &ValidationError{Field: "status", Message: "only pending payments can be deleted"}
	}

	if err := e.client.DeletePayment(ctx, id); err != nil {
		e.recordFailure("delete payment", err)
		return err
	}

	e.cache.RemovePayment(id)
	e.log.Info("payment deleted", "payment_id", id)
	return nil
}

// validateCreate enforces the local preconditions for a create request.
// Reference checks run against the cache only for collections that have been
// loaded; an un-hydrated collection defers to the service, and the display
// join falls back to its placeholder.
func (e *Engine) validateCreate(input CreatePaymentInput) error {
	if err := e.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ValidationError{Field: verrs[0].Field(), Message: "is required"}
		}
		return &ValidationError{Field: "request", Message: err.Error()}
	}

	if !input.Amount.IsPositive() {
		return &ValidationError{Field: "Amount", Message: "must be greater than zero"}
	}

	if vendors := e.cache.Vendors(); len(vendors) > 0 {
		if _, ok := e.cache.Vendor(input.VendorID); !ok {
			return &ValidationError{Field: "VendorID", Message: "unknown vendor"}
		}
	}
	if accounts := e.cache.Accounts(); len(accounts) > 0 {
		if _, ok := e.cache.Account(input.AccountID); !ok {
			return &ValidationError{Field: "AccountID", Message: "unknown account"}
		}
	}

	return nil
}

// recordFailure populates the error slot and, for business rejections, the
// transaction slot with whatever balance context the service attached. A
// transport failure clears the transaction slot so the two remain
// distinguishable.
func (e *Engine) recordFailure(op string, err error) {
	var rejection *ledger.RejectionError
	if errors.As(err, &rejection) {
		e.lastDetail = rejection.Detail
		e.log.Warn(op+" rejected", "reason", rejection.Message)
	} else {
		e.lastDetail = nil
		e.log.Error(op+" failed", "error", err)
	}
	e.fail(err)
}

// confirmedBalance picks the post-confirmation account balance: the explicit
// new_balance if the service sent one, otherwise the balance snapshot nested
// on the returned payment.
func confirmedBalance(result *ledger.ConfirmResult) *decimal.Decimal {
	if result.Detail.NewBalance != nil {
		return result.Detail.NewBalance
	}
	return result.Payment.AccountBalance
}
