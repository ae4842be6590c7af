package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/warp/payroll-engine/payroll"
)

// PayslipRow is the CSV layout of a payslip.
type PayslipRow struct {
	EmployeeID string `csv:"employee_id"`
	Name       string `csv:"name"`
	Role       string `csv:"role"`
	Period     string `csv:"period"`
	Salary     string `csv:"salary"`
	Benefit    string `csv:"benefit"`
	Total      string `csv:"total"`
}

type PayslipRows []PayslipRow

func NewPayslipRows(slips []payroll.Payslip) PayslipRows {
	rows := make(PayslipRows, 0, len(slips))
	for _, s := range slips {
		rows = append(rows, PayslipRow{
			EmployeeID: s.EmployeeID,
			Name:       s.Name,
			Role:       string(s.Role),
			Period:     s.Period.String(),
			Salary:     Amount(s.Salary),
			Benefit:    Amount(s.Benefit),
			Total:      Amount(s.Total),
		})
	}
	return rows
}

// WriteCSV writes a header plus one row per payslip.
func WriteCSV(w io.Writer, slips []payroll.Payslip) error {
	if err := gocsv.Marshal(NewPayslipRows(slips), w); err != nil {
		return fmt.Errorf("failed to write payslip CSV: %w", err)
	}
	return nil
}
