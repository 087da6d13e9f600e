package engine

import (
	"context"
	"time"

	"github.com/jordanwest/ledgerpane/pkg/models"
	"github.com/jordanwest/ledgerpane/pkg/report"
)

// FetchVendors replaces the cached vendor collection with a full fetch.
func (e *Engine) FetchVendors(ctx context.Context) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	vendors, err := e.client.ListVendors(ctx)
	if err != nil {
		e.recordFailure("fetch vendors", err)
		return err
	}
	e.cache.ReplaceVendors(vendors)
	return nil
}

// FetchAccounts replaces the cached account collection with a full fetch.
func (e *Engine) FetchAccounts(ctx context.Context) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	accounts, err := e.client.ListAccounts(ctx)
	if err != nil {
		e.recordFailure("fetch accounts", err)
		return err
	}
	e.cache.ReplaceAccounts(accounts)
	return nil
}

// FetchPayments replaces the cached payment collection with a full fetch.
func (e *Engine) FetchPayments(ctx context.Context) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	payments, err := e.client.ListPayments(ctx)
	if err != nil {
		e.recordFailure("fetch payments", err)
		return err
	}
	e.cache.ReplacePayments(payments)
	return nil
}

// RefreshAll refetches vendors, accounts and payments in that order. The
// optimistic merges applied by create/confirm are already usable before this
// runs; a refresh simply converges the cache on the service's view.
func (e *Engine) RefreshAll(ctx context.Context) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	vendors, err := e.client.ListVendors(ctx)
	if err != nil {
		e.recordFailure("refresh vendors", err)
		return err
	}
	accounts, err := e.client.ListAccounts(ctx)
	if err != nil {
		e.recordFailure("refresh accounts", err)
		return err
	}
	payments, err := e.client.ListPayments(ctx)
	if err != nil {
		e.recordFailure("refresh payments", err)
		return err
	}

	e.cache.ReplaceVendors(vendors)
	e.cache.ReplaceAccounts(accounts)
	e.cache.ReplacePayments(payments)
	return nil
}

// GenerateReport fetches a point-in-time snapshot from the service, folds it
// into the cache, and builds an immutable Report from it. Rendering the
// report onto a grid surface is the caller's job; a later render failure
// does not invalidate the Report returned here.
func (e *Engine) GenerateReport(ctx context.Context) (*models.Report, error) {
	if err := e.begin(); err != nil {
		return nil, err
	}
	defer e.end()

	snapshot, err := e.client.GenerateReportSnapshot(ctx)
	if err != nil {
		e.recordFailure("generate report", err)
		return nil, err
	}

	e.cache.ReplaceAccounts(snapshot.Accounts)
	e.cache.ReplacePayments(snapshot.Payments)

	r := report.Build(snapshot.Accounts, snapshot.Payments, time.Now())
	e.log.Info("report generated", "accounts", len(r.Accounts), "payments", len(r.Payments))
	return &r, nil
}

// ProjectReport builds a Report from the cache as it stands, without
// contacting the service. Useful when the caller trusts the optimistic
// merge over an eager refetch.
func (e *Engine) ProjectReport(now time.Time) models.Report {
	return report.Build(e.cache.Accounts(), e.cache.Payments(), now)
}
