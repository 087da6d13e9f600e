// Package grid renders a computed grid plan onto a two-dimensional document
// surface. The surface itself (a spreadsheet, a terminal table, a test
// recorder) is a collaborator behind the Surface interface.
package grid

import (
	"fmt"

	"github.com/jordanwest/ledgerpane/pkg/report"
)

// Surface is the host document's grid-writing primitive.
type Surface interface {
	// WriteCell writes a single value at the given cell.
	WriteCell(cell report.CellRef, value any) error

	// WriteRange writes a rectangular block of values whose top-left corner
	// is at rng.TopLeft. Values must match the range's dimensions.
	WriteRange(rng report.Range, values [][]any) error

	// ClearUsedRegion clears everything previously written to the surface.
	ClearUsedRegion() error
}

// RenderError reports that writing a report to the surface failed. The
// underlying Report stays valid and retrievable; rendering can simply be
// retried by the user.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("report display failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
