package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus defines the possible states of a scheduled payment.
type PaymentStatus string

const (
	PENDING   PaymentStatus = "pending"
	COMPLETED PaymentStatus = "completed"
	CANCELLED PaymentStatus = "cancelled"
)

// PaymentSchedule defines how often a vendor expects to be paid.
type PaymentSchedule string

const (
	ScheduleWeekly   PaymentSchedule = "weekly"
	ScheduleBiweekly PaymentSchedule = "biweekly"
	ScheduleOnDemand PaymentSchedule = "on-demand"
)

// Vendor represents a payee tracked by the bookkeeping user.
// The schedule is fixed at creation; vendors referenced by a payment are
// deactivated rather than removed.
type Vendor struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	PaymentSchedule PaymentSchedule `json:"payment_schedule"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Account represents a cash account. Balance is authoritative on the ledger
// service; the cached value is the last one the service reported and must be
// treated as stale after any mutating operation until refreshed.
type Account struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Payment represents a scheduled payment against an account.
// VendorName, AccountName and AccountBalance are denormalized display fields
// joined in at read time; they are never the record of truth.
type Payment struct {
	ID          string          `json:"id"`
	VendorID    string          `json:"vendor_id"`
	AccountID   string          `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
	Status      PaymentStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	VendorName     string           `json:"vendor_name,omitempty"`
	AccountName    string           `json:"account_name,omitempty"`
	AccountBalance *decimal.Decimal `json:"account_balance,omitempty"`
}

// TransactionDetail is the ephemeral outcome (or failure context) of the most
// recent balance-affecting operation. Each attempt overwrites the previous
// one; nothing is accumulated.
type TransactionDetail struct {
	PreviousBalance *decimal.Decimal `json:"previous_balance,omitempty"`
	NewBalance      *decimal.Decimal `json:"new_balance,omitempty"`
	AmountDeducted  *decimal.Decimal `json:"amount_deducted,omitempty"`
	CurrentBalance  *decimal.Decimal `json:"current_balance,omitempty"`
	PaymentAmount   *decimal.Decimal `json:"payment_amount,omitempty"`
}

// Report is a point-in-time snapshot of accounts and payments. It is
// immutable once produced; regenerating yields a new Report.
type Report struct {
	Accounts    []Account `json:"accounts"`
	Payments    []Payment `json:"payments"`
	GeneratedAt time.Time `json:"generated_at"`
}
