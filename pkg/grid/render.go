package grid

import (
	"github.com/jordanwest/ledgerpane/pkg/report"
)

// Render plays a grid plan onto the surface: one clear, the title and
// timestamp cells, then exactly one range write per section. Any surface
// failure is wrapped in a RenderError; nothing is rolled back because the
// plan and its Report remain valid regardless.
func Render(surface Surface, plan report.GridPlan) error {
	if err := surface.ClearUsedRegion(); err != nil {
		return &RenderError{Err: err}
	}

	if err := surface.WriteCell(plan.Title.Cell, plan.Title.Value); err != nil {
		return &RenderError{Err: err}
	}
	if err := surface.WriteCell(plan.Timestamp.Cell, plan.Timestamp.Value); err != nil {
		return &RenderError{Err: err}
	}

	for _, section := range []report.SectionPlan{plan.Accounts, plan.Payments} {
		if err := surface.WriteRange(section.Table, section.Values); err != nil {
			return &RenderError{Err: err}
		}
	}

	return nil
}
