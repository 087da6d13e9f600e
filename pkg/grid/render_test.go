package grid_test

import (
	"testing"
	"time"

	"github.com/jordanwest/ledgerpane/pkg/grid"
	"github.com/jordanwest/ledgerpane/pkg/grid/mocks"
	"github.com/jordanwest/ledgerpane/pkg/models"
	"github.com/jordanwest/ledgerpane/pkg/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixturePlan() report.GridPlan {
	r := report.Build(
		[]models.Account{{ID: "a1", Name: "Checking", Balance: decimal.NewFromInt(500)}},
		[]models.Payment{{ID: "p1", VendorName: "Acme", AccountName: "Checking", Amount: decimal.NewFromInt(50), Status: models.PENDING}},
		time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC),
	)
	return report.PlanGrid(r)
}

func TestRender(t *testing.T) {
	t.Run("Clears Once Then Writes Two Cells And Two Ranges", func(t *testing.T) {
		surface := mocks.NewSurface(t)
		plan := fixturePlan()

		surface.On("ClearUsedRegion").Once().Return(nil)
		surface.On("WriteCell", plan.Title.Cell, plan.Title.Value).Once().Return(nil)
		surface.On("WriteCell", plan.Timestamp.Cell, plan.Timestamp.Value).Once().Return(nil)
		surface.On("WriteRange", plan.Accounts.Table, plan.Accounts.Values).Once().Return(nil)
		surface.On("WriteRange", plan.Payments.Table, plan.Payments.Values).Once().Return(nil)

		require.NoError(t, grid.Render(surface, plan))
	})

	t.Run("Surface Failure Becomes RenderError", func(t *testing.T) {
		surface := mocks.NewSurface(t)
		plan := fixturePlan()

		surface.On("ClearUsedRegion").Once().Return(nil)
		surface.On("WriteCell", plan.Title.Cell, plan.Title.Value).Once().Return(assert.AnError)

		err := grid.Render(surface, plan)

		var rerr *grid.RenderError
		require.ErrorAs(t, err, &rerr)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Clear Failure Stops Before Any Write", func(t *testing.T) {
		surface := mocks.NewSurface(t)

		surface.On("ClearUsedRegion").Once().Return(assert.AnError)

		err := grid.Render(surface, fixturePlan())

		var rerr *grid.RenderError
		require.ErrorAs(t, err, &rerr)
		surface.AssertNotCalled(t, "WriteCell", mock.Anything, mock.Anything)
		surface.AssertNotCalled(t, "WriteRange", mock.Anything, mock.Anything)
	})
}
