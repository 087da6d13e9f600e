// Package report projects ledger snapshots into renderable reports in two
// stages. Build assembles a Report document from account and payment data
// and knows nothing about layout; PlanGrid turns a Report into a set of
// non-overlapping cell ranges and knows nothing about where the data came
// from. Both stages are pure: no I/O, no side effects.
package report

import (
	"time"

	"github.com/jordanwest/ledgerpane/pkg/models"
)

// Build assembles an immutable Report from the given account and payment
// snapshots. Input slices are copied so later cache mutations cannot reach
// into a report that was already produced.
func Build(accounts []models.Account, payments []models.Payment, generatedAt time.Time) models.Report {
	r := models.Report{
		Accounts:    make([]models.Account, len(accounts)),
		Payments:    make([]models.Payment, len(payments)),
		GeneratedAt: generatedAt,
	}
	copy(r.Accounts, accounts)
	copy(r.Payments, payments)
	return r
}
