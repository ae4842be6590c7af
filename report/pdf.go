package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/warp/payroll-engine/payroll"
)

var payslipColumns = []struct {
	title string
	width float64
	align string
}{
	{"Name", 60, "L"},
	{"Role", 35, "L"},
	{"Salary", 30, "R"},
	{"Benefit", 30, "R"},
	{"Total", 35, "R"},
}

// WritePDF renders a one-page monthly statement.
func WritePDF(w io.Writer, r payroll.Report, slips []payroll.Payslip) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; names like "João" need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Payroll statement - %s", r.Period.Label())))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Company: %s (%d employees)", r.Company, r.Headcount)))
	pdf.Ln(10)

	for _, line := range Lines(r) {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 11)
	for _, col := range payslipColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, col.align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, s := range slips {
		values := []string{s.Name, s.Role.Title(), Amount(s.Salary), Amount(s.Benefit), Amount(s.Total)}
		for i, col := range payslipColumns {
			pdf.CellFormat(col.width, 7, tr(values[i]), "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render statement PDF: %w", err)
	}
	return nil
}
