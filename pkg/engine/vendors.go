package engine

import (
	"context"

	"github.com/jordanwest/ledgerpane/pkg/ledger"
	"github.com/jordanwest/ledgerpane/pkg/models"
)

// CreateVendor registers a new vendor and inserts it into the cache. The
// payment schedule is fixed at creation.
func (e *Engine) CreateVendor(ctx context.Context, name string, schedule models.PaymentSchedule) (*models.Vendor, error) {
	if err := e.begin(); err != nil {
		return nil, err
	}
	defer e.end()

	if name == "" {
		return nil, &ValidationError{Field: "Name", Message: "is required"}
	}
	switch schedule {
	case models.ScheduleWeekly, models.ScheduleBiweekly, models.ScheduleOnDemand:
	default:
		return nil, &ValidationError{Field: "PaymentSchedule", Message: "must be weekly, biweekly or on-demand"}
	}

	created, err := e.client.CreateVendor(ctx, name, schedule)
	if err != nil {
		e.recordFailure("create vendor", err)
		return nil, err
	}

	e.cache.InsertVendor(*created)
	e.log.Info("vendor created", "vendor_id", created.ID, "name", created.Name)
	return created, nil
}

// RenameVendor updates a vendor's name on the service and in the cache.
func (e *Engine) RenameVendor(ctx context.Context, id, name string) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	if name == "" {
		return &ValidationError{Field: "Name", Message: "is required"}
	}

	if err := e.client.UpdateVendor(ctx, id, ledger.VendorPatch{Name: &name}); err != nil {
		e.recordFailure("rename vendor", err)
		return err
	}

	e.cache.UpdateVendor(id, func(v *models.Vendor) { v.Name = name })
	return nil
}

// DeleteVendor removes a vendor, unless a cached payment still references
// it; referenced vendors are deactivated instead so their payments keep a
// resolvable display name.
func (e *Engine) DeleteVendor(ctx context.Context, id string) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	if e.vendorReferenced(id) {
		inactive := false
		if err := e.client.UpdateVendor(ctx, id, ledger.VendorPatch{IsActive: &inactive}); err != nil {
			e.recordFailure("deactivate vendor", err)
			return err
		}
		e.cache.UpdateVendor(id, func(v *models.Vendor) { v.IsActive = false })
		e.log.Info("vendor deactivated", "vendor_id", id)
		return nil
	}

	if err := e.client.DeleteVendor(ctx, id); err != nil {
		e.recordFailure("delete vendor", err)
		return err
	}

	e.cache.RemoveVendor(id)
	e.log.Info("vendor deleted", "vendor_id", id)
	return nil
}

func (e *Engine) vendorReferenced(id string) bool {
	for _, p := range e.cache.Payments() {
		if p.VendorID == id {
			return true
		}
	}
	return false
}
