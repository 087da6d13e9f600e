package engine_test

import (
	"context"
	"testing"

	"github.com/jordanwest/ledgerpane/pkg/engine"
	"github.com/jordanwest/ledgerpane/pkg/ledger"
	"github.com/jordanwest/ledgerpane/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateVendor(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		e, client, c := newEngine(t)

		client.On("CreateVendor", mock.Anything, "Acme Supplies", models.ScheduleWeekly).Once().
			Return(&models.Vendor{ID: "v1", Name: "Acme Supplies", PaymentSchedule: models.ScheduleWeekly, IsActive: true}, nil)

		created, err := e.CreateVendor(context.Background(), "Acme Supplies", models.ScheduleWeekly)

		require.NoError(t, err)
		assert.Equal(t, "v1", created.ID)
		assert.Len(t, c.Vendors(), 1)
	})

	t.Run("Invalid Schedule", func(t *testing.T) {
		e, _, _ := newEngine(t)

		_, err := e.CreateVendor(context.Background(), "Acme", models.PaymentSchedule("monthly"))

		var verr *engine.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "PaymentSchedule", verr.Field)
	})

	t.Run("Empty Name", func(t *testing.T) {
		e, _, _ := newEngine(t)

		_, err := e.CreateVendor(context.Background(), "", models.ScheduleOnDemand)

		var verr *engine.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestDeleteVendor(t *testing.T) {
	t.Run("Unreferenced Vendor Is Removed", func(t *testing.T) {
		e, client, c := newEngine(t)
		c.ReplaceVendors([]models.Vendor{{ID: "v1", Name: "Acme", IsActive: true}})

		client.On("DeleteVendor", mock.Anything, "v1").Once().Return(nil)

		require.NoError(t, e.DeleteVendor(context.Background(), "v1"))
		assert.Empty(t, c.Vendors())
	})

	t.Run("Referenced Vendor Is Deactivated Instead", func(t *testing.T) {
		e, client, c := newEngine(t)
		c.ReplaceVendors([]models.Vendor{{ID: "v1", Name: "Acme", IsActive: true}})
		c.ReplacePayments([]models.Payment{{ID: "p1", VendorID: "v1", Status: models.COMPLETED}})

		client.On("UpdateVendor", mock.Anything, "v1", mock.MatchedBy(func(patch ledger.VendorPatch) bool {
			return patch.IsActive != nil && !*patch.IsActive
		})).Once().Return(nil)

		require.NoError(t, e.DeleteVendor(context.Background(), "v1"))

		vendor, ok := c.Vendor("v1")
		require.True(t, ok)
		assert.False(t, vendor.IsActive)
	})
}
