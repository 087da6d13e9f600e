// Package cache holds the in-memory mirror of the remote ledger: vendors,
// accounts and payments. It is the only shared mutable state in the engine
// and is mutated exclusively through its entry points.
//
// All mutation entry points are synchronous and sequenced by the engine's
// busy flag, so the cache carries no internal locking. Every mutation bumps
// a version counter that renderers can poll to decide whether to redraw.
package cache

import (
	"github.com/jordanwest/ledgerpane/pkg/models"
)

// Cache owns the local vendor, account and payment collections.
type Cache struct {
	version  uint64
	vendors  collection[models.Vendor]
	accounts collection[models.Account]
	payments collection[models.Payment]
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		vendors:  collection[models.Vendor]{id: func(v models.Vendor) string { return v.ID }},
		accounts: collection[models.Account]{id: func(a models.Account) string { return a.ID }},
		payments: collection[models.Payment]{id: func(p models.Payment) string { return p.ID }},
	}
}

// Version returns the current cache version. It increases by one on every
// mutation, across all collections.
func (c *Cache) Version() uint64 { return c.version }

func (c *Cache) bump() { c.version++ }

// ReplaceVendors bulk-replaces the vendor collection after a full fetch.
// Replacement is total, so entries deleted on the server are purged locally.
func (c *Cache) ReplaceVendors(vendors []models.Vendor) {
	c.vendors.replaceAll(vendors)
	c.bump()
}

// ReplaceAccounts bulk-replaces the account collection.
func (c *Cache) ReplaceAccounts(accounts []models.Account) {
	c.accounts.replaceAll(accounts)
	c.bump()
}

// ReplacePayments bulk-replaces the payment collection.
func (c *Cache) ReplacePayments(payments []models.Payment) {
	c.payments.replaceAll(payments)
	c.bump()
}

// InsertVendor appends a vendor after a successful create.
func (c *Cache) InsertVendor(v models.Vendor) {
	c.vendors.insert(v)
	c.bump()
}

// InsertAccount appends an account after a successful create.
func (c *Cache) InsertAccount(a models.Account) {
	c.accounts.insert(a)
	c.bump()
}

// InsertPayment appends a payment after a successful create. The caller
// supplies a fully-formed record including denormalized display fields.
func (c *Cache) InsertPayment(p models.Payment) {
	c.payments.insert(p)
	c.bump()
}

// UpdateVendor applies patch to the vendor with the given id. A missing id
// is a no-op, not an error: a concurrent delete may have already removed the
// record. Returns whether the patch was applied.
func (c *Cache) UpdateVendor(id string, patch func(*models.Vendor)) bool {
	ok := c.vendors.update(id, patch)
	if ok {
		c.bump()
	}
	return ok
}

// UpdateAccount applies patch to the account with the given id.
func (c *Cache) UpdateAccount(id string, patch func(*models.Account)) bool {
	ok := c.accounts.update(id, patch)
	if ok {
		c.bump()
	}
	return ok
}

// UpdatePayment applies patch to the payment with the given id.
func (c *Cache) UpdatePayment(id string, patch func(*models.Payment)) bool {
	ok := c.payments.update(id, patch)
	if ok {
		c.bump()
	}
	return ok
}

// RemoveVendor removes a vendor by id.
func (c *Cache) RemoveVendor(id string) bool {
	ok := c.vendors.remove(id)
	if ok {
		c.bump()
	}
	return ok
}

// RemovePayment removes a payment by id.
func (c *Cache) RemovePayment(id string) bool {
	ok := c.payments.remove(id)
	if ok {
		c.bump()
	}
	return ok
}

// Vendors returns a copy of the vendor collection in insertion order.
func (c *Cache) Vendors() []models.Vendor { return c.vendors.list() }

// Accounts returns a copy of the account collection in insertion order.
func (c *Cache) Accounts() []models.Account { return c.accounts.list() }

// Payments returns a copy of the payment collection in insertion order.
func (c *Cache) Payments() []models.Payment { return c.payments.list() }

// Vendor looks up a vendor by id.
func (c *Cache) Vendor(id string) (models.Vendor, bool) { return c.vendors.get(id) }

// Account looks up an account by id.
func (c *Cache) Account(id string) (models.Account, bool) { return c.accounts.get(id) }

// Payment looks up a payment by id.
func (c *Cache) Payment(id string) (models.Payment, bool) { return c.payments.get(id) }

// VendorIndex returns the vendors keyed by id, for display-field joins.
func (c *Cache) VendorIndex() map[string]models.Vendor { return c.vendors.index() }

// AccountIndex returns the accounts keyed by id, for display-field joins.
func (c *Cache) AccountIndex() map[string]models.Account { return c.accounts.index() }
