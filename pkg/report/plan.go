package report

import (
	"github.com/jordanwest/ledgerpane/pkg/models"
)

// Fixed layout rows. The accounts section always starts at the same place;
// the payments section is offset by the number of account rows plus a
// one-row gap, so the two tables can never collide.
const (
	titleRow        = 1
	timestampRow    = 2
	accountsTopRow  = 3
	sectionGap      = 1
	accountsColumns = 2
	paymentsColumns = 5
)

const (
	reportTitle   = "Financial Report"
	accountsLabel = "Account Status"
	paymentsLabel = "Recent Payments"
)

// CellRef identifies a single cell by 1-based row and column.
type CellRef struct {
	Row int
	Col int
}

// Range is a rectangular region of cells, inclusive on both corners.
type Range struct {
	TopLeft     CellRef
	BottomRight CellRef
}

// Rows returns the number of rows the range spans.
func (r Range) Rows() int { return r.BottomRight.Row - r.TopLeft.Row + 1 }

// Overlaps reports whether two ranges share any cell.
func (r Range) Overlaps(other Range) bool {
	if r.BottomRight.Row < other.TopLeft.Row || other.BottomRight.Row < r.TopLeft.Row {
		return false
	}
	if r.BottomRight.Col < other.TopLeft.Col || other.BottomRight.Col < r.TopLeft.Col {
		return false
	}
	return true
}

// CellWrite is a single-cell write with its content.
type CellWrite struct {
	Cell  CellRef
	Value string
}

// SectionPlan is one table on the surface: a single rectangular range whose
// first row is the section label, second row the column headers, and the
// rest the data. Label and header rows are emitted even when the section
// has zero data rows, so an empty section still renders recognizably.
type SectionPlan struct {
	Table  Range
	Values [][]any
}

// GridPlan is the complete write plan for one report: two single-cell
// writes and one range write per section. It is a pure function of the
// Report and is consumed by a grid surface collaborator; it performs no
// I/O itself.
type GridPlan struct {
	Title     CellWrite
	Timestamp CellWrite
	Accounts  SectionPlan
	Payments  SectionPlan
}

// padRow returns a row of the given width whose first cell is label.
func padRow(label string, width int) []any {
	row := make([]any, width)
	row[0] = label
	for i := 1; i < width; i++ {
		row[i] = ""
	}
	return row
}

// PlanGrid computes the grid-range plan for a report. The same Report always
// yields the same plan.
func PlanGrid(r models.Report) GridPlan {
	accountValues := make([][]any, 0, len(r.Accounts)+2)
	accountValues = append(accountValues, padRow(accountsLabel, accountsColumns))
	accountValues = append(accountValues, []any{"Account Name", "Balance"})
	for _, a := range r.Accounts {
		accountValues = append(accountValues, []any{a.Name, a.Balance})
	}

	accountsTable := Range{
		TopLeft:     CellRef{Row: accountsTopRow, Col: 1},
		BottomRight: CellRef{Row: accountsTopRow + len(accountValues) - 1, Col: accountsColumns},
	}

	// Payments start strictly below the last accounts row, after a blank row.
	paymentsTopRow := accountsTable.BottomRight.Row + sectionGap + 1

	paymentValues := make([][]any, 0, len(r.Payments)+2)
	paymentValues = append(paymentValues, padRow(paymentsLabel, paymentsColumns))
	paymentValues = append(paymentValues, []any{"Vendor", "Account", "Amount", "Date", "Status"})
	for _, p := range r.Payments {
		vendorName := p.VendorName
		if vendorName == "" {
			vendorName = models.UnknownVendor
		}
		accountName := p.AccountName
		if accountName == "" {
			accountName = models.UnknownAccount
		}
		paymentValues = append(paymentValues, []any{vendorName, accountName, p.Amount, p.PaymentDate, string(p.Status)})
	}

	paymentsTable := Range{
		TopLeft:     CellRef{Row: paymentsTopRow, Col: 1},
		BottomRight: CellRef{Row: paymentsTopRow + len(paymentValues) - 1, Col: paymentsColumns},
	}

	return GridPlan{
		Title: CellWrite{
			Cell:  CellRef{Row: titleRow, Col: 1},
			Value: reportTitle,
		},
		Timestamp: CellWrite{
			Cell:  CellRef{Row: timestampRow, Col: 1},
			Value: "Report Generated at: " + r.GeneratedAt.Format("2006-01-02 15:04:05"),
		},
		Accounts: SectionPlan{Table: accountsTable, Values: accountValues},
		Payments: SectionPlan{Table: paymentsTable, Values: paymentValues},
	}
}
