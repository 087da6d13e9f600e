// Package xlsx binds the grid surface to an Excel workbook via excelize.
package xlsx

import (
	"fmt"

	"github.com/jordanwest/ledgerpane/pkg/grid"
	"github.com/jordanwest/ledgerpane/pkg/report"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Workbook is a grid.Surface writing into one sheet of an xlsx workbook.
type Workbook struct {
	file  *excelize.File
	sheet string
}

// New creates a workbook with a single sheet of the given name.
func New(sheet string) (*Workbook, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	if defaultSheet != sheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return nil, fmt.Errorf("failed to name sheet: %w", err)
		}
	}
	return &Workbook{file: f, sheet: sheet}, nil
}

// Make sure we conform to the interface
var _ grid.Surface = (*Workbook)(nil)

// WriteCell writes a single value.
func (w *Workbook) WriteCell(cell report.CellRef, value any) error {
	name, err := excelize.CoordinatesToCellName(cell.Col, cell.Row)
	if err != nil {
		return fmt.Errorf("invalid cell reference %+v: %w", cell, err)
	}
	return w.file.SetCellValue(w.sheet, name, cellValue(value))
}

// WriteRange writes a rectangular block of values row by row.
func (w *Workbook) WriteRange(rng report.Range, values [][]any) error {
	for i, row := range values {
		for j, value := range row {
			name, err := excelize.CoordinatesToCellName(rng.TopLeft.Col+j, rng.TopLeft.Row+i)
			if err != nil {
				return fmt.Errorf("invalid cell in range %+v: %w", rng, err)
			}
			if err := w.file.SetCellValue(w.sheet, name, cellValue(value)); err != nil {
				return err
			}
		}
	}
	return nil
}

// ClearUsedRegion recreates the sheet, which is cheaper than scanning for
// previously written cells.
func (w *Workbook) ClearUsedRegion() error {
	const scratch = "__clear__"
	if _, err := w.file.NewSheet(scratch); err != nil {
		return err
	}
	if err := w.file.DeleteSheet(w.sheet); err != nil {
		return err
	}
	if _, err := w.file.NewSheet(w.sheet); err != nil {
		return err
	}
	return w.file.DeleteSheet(scratch)
}

// Save writes the workbook to disk.
func (w *Workbook) Save(path string) error {
	return w.file.SaveAs(path)
}

// cellValue converts engine values into types excelize stores natively.
// Decimals become numbers so spreadsheet formulas keep working.
func cellValue(value any) any {
	if d, ok := value.(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return value
}
