package ledger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jordanwest/ledgerpane/pkg/models"
)

// ListVendors retrieves all vendors from the ledger service.
func (c *HTTPClient) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/vendors", nil)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, &NetworkError{Op: "GET /api/vendors", Err: fmt.Errorf("response missing vendor data")}
	}
	return env.Data.Vendors, nil
}

// CreateVendor registers a new vendor with the given payment schedule.
func (c *HTTPClient) CreateVendor(ctx context.Context, name string, schedule models.PaymentSchedule) (*models.Vendor, error) {
	body := map[string]string{
		"name":             name,
		"payment_schedule": string(schedule),
	}
	env, err := c.do(ctx, http.MethodPost, "/api/vendors", body)
	if err != nil {
		return nil, err
	}
	if env.Data == nil || env.Data.Vendor == nil {
		return nil, &NetworkError{Op: "POST /api/vendors", Err: fmt.Errorf("response missing created vendor")}
	}
	return env.Data.Vendor, nil
}

// UpdateVendor applies a partial update to a vendor.
func (c *HTTPClient) UpdateVendor(ctx context.Context, id string, patch VendorPatch) error {
	_, err := c.do(ctx, http.MethodPut, "/api/vendors/"+id, patch)
	return err
}

// DeleteVendor deletes a vendor on the service.
func (c *HTTPClient) DeleteVendor(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/vendors/"+id, nil)
	return err
}
