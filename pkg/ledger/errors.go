package ledger

import (
	"fmt"

	"github.com/jordanwest/ledgerpane/pkg/models"
)

// NetworkError wraps a transport-level failure: the service was unreachable,
// timed out, or returned something that was not a ledger envelope. The engine
// treats these as opaque and never retries them itself.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("ledger: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RejectionError is an explicit business rejection reported by the ledger
// service, e.g. insufficient funds. Detail carries whatever balance context
// the service attached; it is nil when the service sent none.
type RejectionError struct {
	Message string
	Detail  *models.TransactionDetail
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("ledger: rejected: %s", e.Message)
}
