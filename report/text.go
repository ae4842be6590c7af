/*
Package report renders payroll reports for people and spreadsheets.

FORMATS:
  text: The six summary lines printed by the CLI
  csv:  One row per payslip (gocsv)
  pdf:  Monthly statement with summary and payslip table (gofpdf)

Amounts are shown with two decimals. No rounding is applied to the
underlying values; this is display only.

SEE ALSO:
  - payroll/report.go: Report and Payslip types
  - cmd/payroll: CLI that picks a format
  - api/handlers.go: Download endpoints
*/
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// NoResult is printed when a "highest" query has no winner.
const NoResult = "none"

// Format names accepted by Write.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// Amount formats a value for display.
func Amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// WinnerName returns the standing's name or NoResult.
func WinnerName(s *payroll.Standing) string {
	if s == nil {
		return NoResult
	}
	return s.Name
}

// Lines returns the six summary lines for r.
func Lines(r payroll.Report) []string {
	label := r.Period.Label()
	return []string{
		fmt.Sprintf("Total paid in %s: %s", label, Amount(r.TotalPaid)),
		fmt.Sprintf("Total paid in salaries in %s: %s", label, Amount(r.TotalSalaries)),
		fmt.Sprintf("Total paid in benefits in %s: %s", label, Amount(r.TotalBenefits)),
		fmt.Sprintf("Employee with highest payment in %s: %s", label, WinnerName(r.HighestPayment)),
		fmt.Sprintf("Employee with highest benefit in %s: %s", label, WinnerName(r.HighestBenefit)),
		fmt.Sprintf("Sales person with highest sale in %s: %s", label, WinnerName(r.HighestSale)),
	}
}

// WriteText writes the summary lines, one per line.
func WriteText(w io.Writer, r payroll.Report) error {
	for _, line := range Lines(r) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Write renders the company's report for p in the given format.
func Write(w io.Writer, format string, c *payroll.Company, p payroll.Period) error {
	switch format {
	case FormatText, "":
		return WriteText(w, c.Report(p))
	case FormatCSV:
		return WriteCSV(w, c.Payroll(p))
	case FormatPDF:
		return WritePDF(w, c.Report(p), c.Payroll(p))
	default:
		return fmt.Errorf("%w: unknown format %q", payroll.ErrInvalidArgument, format)
	}
}
