package models

// Placeholders shown when a payment references a vendor or account that is
// missing from the local cache. The row is still rendered; it must never be
// silently dropped.
const (
	UnknownVendor  = "Unknown Vendor"
	UnknownAccount = "Unknown Account"
)

// WithDisplayFields joins a payment against vendor and account indexes and
// returns a copy carrying the denormalized display fields. It is a pure
// projection: the stored payment is not modified, and the result is
// recomputed on every fetch or optimistic insert.
func WithDisplayFields(p Payment, vendors map[string]Vendor, accounts map[string]Account) Payment {
	if v, ok := vendors[p.VendorID]; ok {
		p.VendorName = v.Name
	} else {
		p.VendorName = UnknownVendor
	}

	if a, ok := accounts[p.AccountID]; ok {
		p.AccountName = a.Name
		balance := a.Balance
		p.AccountBalance = &balance
	} else {
		p.AccountName = UnknownAccount
		p.AccountBalance = nil
	}

	return p
}
