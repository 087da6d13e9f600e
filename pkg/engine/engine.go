// Package engine drives the payment lifecycle (pending -> completed, or
// pending -> removed) and keeps the ledger cache consistent with the remote
// service across optimistic mutations. The remote service is the sole
// arbiter of balances and payment status; the engine's job is to validate
// locally, to call the service, and to fold the service's answers into the
// cache.
//
// The engine is single-threaded by contract: every operation runs to
// completion (suspending only at the service call) before the next is
// issued, guarded by the busy flag. It therefore carries no locks.
package engine

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/jordanwest/ledgerpane/pkg/cache"
	"github.com/jordanwest/ledgerpane/pkg/ledger"
	"github.com/jordanwest/ledgerpane/pkg/models"
)

// Engine orchestrates payment and vendor operations against the ledger
// service and the local cache.
type Engine struct {
	client   ledger.Client
	cache    *cache.Cache
	log      *slog.Logger
	validate *validator.Validate

	busy       bool
	lastErr    error
	lastDetail *models.TransactionDetail
}

// New creates an Engine around a ledger client and a cache.
func New(client ledger.Client, c *cache.Cache, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		client:   client,
		cache:    c,
		log:      log,
		validate: validator.New(),
	}
}

// Cache exposes the engine's cache for read-side collaborators such as the
// report projector. Callers must not retain aliases into it.
func (e *Engine) Cache() *cache.Cache { return e.cache }

// Busy reports whether an operation is currently in flight.
func (e *Engine) Busy() bool { return e.busy }

// Err returns the current error slot: the failure of the most recent
// operation, or nil. Each operation overwrites it; errors are not queued.
func (e *Engine) Err() error { return e.lastErr }

// LastTransaction returns the transaction detail recorded by the most
// recent balance-affecting operation, or nil. A detail alongside an error
// distinguishes a business rejection from a transport failure.
func (e *Engine) LastTransaction() *models.TransactionDetail { return e.lastDetail }

// ClearErr resets the error slot, e.g. after the UI has shown the message.
func (e *Engine) ClearErr() { e.lastErr = nil }

// begin claims the busy flag and clears the error slot for a new attempt.
func (e *Engine) begin() error {
	if e.busy {
		return ErrBusy
	}
	e.busy = true
	e.lastErr = nil
	return nil
}

func (e *Engine) end() { e.busy = false }

// fail records err in the error slot and returns it.
func (e *Engine) fail(err error) error {
	e.lastErr = err
	return err
}
