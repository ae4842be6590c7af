package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// PAYSLIP - Per-employee breakdown for a period
// =============================================================================

type Payslip struct {
	EmployeeID string
	Name       string
	Role       Role
	Period     Period
	Salary     decimal.Decimal
	Benefit    decimal.Decimal
	Total      decimal.Decimal
}

func NewPayslip(e Employee, p Period) Payslip {
	salary := e.ComputeSalary(p)
	benefit := e.ComputeBenefit(p)
	return Payslip{
		EmployeeID: e.ID(),
		Name:       e.Name(),
		Role:       e.Role(),
		Period:     p,
		Salary:     salary,
		Benefit:    benefit,
		Total:      salary.Add(benefit),
	}
}

// Payroll returns one payslip per employee, in company order.
func (c *Company) Payroll(p Period) []Payslip {
	slips := make([]Payslip, 0, len(c.employees))
	for _, e := range c.employees {
		slips = append(slips, NewPayslip(e, p))
	}
	return slips
}

// =============================================================================
// REPORT - The six reporting queries for a period
// =============================================================================

// Standing identifies the winner of a "highest" query and the value it won
// with.
type Standing struct {
	EmployeeID string
	Name       string
	Role       Role
	Value      decimal.Decimal
}

// Report bundles the company queries for one period. A nil Standing means
// the query had no result.
type Report struct {
	Company        string
	Period         Period
	Headcount      int
	TotalPaid      decimal.Decimal
	TotalSalaries  decimal.Decimal
	TotalBenefits  decimal.Decimal
	HighestPayment *Standing
	HighestBenefit *Standing
	HighestSale    *Standing
}

func (c *Company) Report(p Period) Report {
	r := Report{
		Company:       c.name,
		Period:        p,
		Headcount:     len(c.employees),
		TotalPaid:     c.TotalPaid(p),
		TotalSalaries: c.TotalSalaries(p),
		TotalBenefits: c.TotalBenefits(p),
	}
	if e, ok := c.EmployeeWithHighestPayment(p); ok {
		r.HighestPayment = standing(e, TotalPayment(e, p))
	}
	if e, ok := c.EmployeeWithHighestBenefit(p); ok {
		r.HighestBenefit = standing(e, e.ComputeBenefit(p))
	}
	if s, ok := c.SalesPersonWithHighestSale(p); ok {
		r.HighestSale = standing(s, c.HighestSale(p))
	}
	return r
}

func standing(e Employee, v decimal.Decimal) *Standing {
	return &Standing{EmployeeID: e.ID(), Name: e.Name(), Role: e.Role(), Value: v}
}
