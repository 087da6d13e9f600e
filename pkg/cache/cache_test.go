package cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jordanwest/ledgerpane/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReplaceIsTotal(t *testing.T) {
	c := New()
	c.ReplaceVendors([]models.Vendor{
		{ID: "v1", Name: "Acme"},
		{ID: "v2", Name: "Globex"},
	})

	c.ReplaceVendors([]models.Vendor{{ID: "v3", Name: "Initech"}})

	vendors := c.Vendors()
	assert.Len(t, vendors, 1)
	assert.Equal(t, "v3", vendors[0].ID)

	// Stale entries are purged, not merged.
	_, ok := c.Vendor("v1")
	assert.False(t, ok)
}

func TestInsertAppends(t *testing.T) {
	c := New()
	c.ReplacePayments([]models.Payment{{ID: "p1"}})

	c.InsertPayment(models.Payment{ID: "p2", Status: models.PENDING})

	payments := c.Payments()
	assert.Len(t, payments, 2)
	assert.Equal(t, "p2", payments[1].ID)
	assert.Equal(t, models.PENDING, payments[1].Status)
}

func TestUpdateMergesByIdentity(t *testing.T) {
	c := New()
	c.ReplaceAccounts([]models.Account{
		{ID: "a1", Name: "Checking", Balance: decimal.NewFromInt(500)},
	})

	applied := c.UpdateAccount("a1", func(a *models.Account) {
		a.Balance = decimal.NewFromInt(300)
	})

	assert.True(t, applied)
	account, ok := c.Account("a1")
	assert.True(t, ok)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "Checking", account.Name)
}

func TestUpdateAbsentIDIsNoOp(t *testing.T) {
	c := New()
	c.ReplacePayments([]models.Payment{{ID: "p1"}})
	before := c.Version()

	applied := c.UpdatePayment(uuid.New().String(), func(p *models.Payment) {
		p.Status = models.COMPLETED
	})

	// A concurrent delete may already have removed the record; that is not
	// an error and must not bump the version.
	assert.False(t, applied)
	assert.Equal(t, before, c.Version())
	assert.Len(t, c.Payments(), 1)
}

func TestRemove(t *testing.T) {
	c := New()
	c.ReplacePayments([]models.Payment{{ID: "p1"}, {ID: "p2"}})

	assert.True(t, c.RemovePayment("p1"))
	assert.False(t, c.RemovePayment("p1"))

	payments := c.Payments()
	assert.Len(t, payments, 1)
	assert.Equal(t, "p2", payments[0].ID)
}

func TestVersionBumpsOnEveryMutation(t *testing.T) {
	c := New()
	assert.Equal(t, uint64(0), c.Version())

	c.ReplaceVendors(nil)
	c.InsertAccount(models.Account{ID: "a1"})
	c.InsertPayment(models.Payment{ID: "p1"})
	c.UpdatePayment("p1", func(p *models.Payment) { p.Status = models.COMPLETED })
	c.RemovePayment("p1")

	assert.Equal(t, uint64(5), c.Version())
}

func TestListReturnsCopies(t *testing.T) {
	c := New()
	c.ReplaceAccounts([]models.Account{{ID: "a1", Name: "Checking"}})

	accounts := c.Accounts()
	accounts[0].Name = "mutated"

	fresh, _ := c.Account("a1")
	assert.Equal(t, "Checking", fresh.Name)
}
