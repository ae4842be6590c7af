/*
Package payroll provides the core compensation engine.

PURPOSE:
  Employees of different categories accrue a salary and a benefit for a
  payroll period. A Company aggregates employees and answers reporting
  queries (totals and "who earned the most") for a period.

KEY CONCEPTS IN THIS FILE (types.go):
  - Role: Tag identifying an employee variant
  - Grade: Per-variant compensation constants (base salary, annual raise)
  - Money helpers around decimal.Decimal

COMPENSATION MODEL:
  salary  = baseSalary + annualRaise * (year - hireYear)
  benefit = variant specific:
    secretary:    20% of salary
    sales_person: 30% of the sale recorded for the period (first match)
    manager:      0

  The month of the period never changes the salary; raises are annual.
  Tenure is not clamped, so querying a year before the hire year yields a
  salary below base (possibly negative).

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal everywhere, no rounding applied
  2. Pure reads: compute functions and company queries never mutate
  3. Single owner: collections grow only through explicit add calls

USAGE:
  company := payroll.NewCompany("Acme")
  sec, _ := payroll.NewSecretary("Jorge", hired)
  company.AddEmployee(sec)
  total := company.TotalPaid(payroll.NewPeriod(time.April, 2022))

SEE ALSO:
  - employee.go: Employee interface and shared state
  - variants.go: Secretary, SalesPerson, Manager
  - company.go: Aggregate queries
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// ROLE - Variant tag
// =============================================================================

type Role string

const (
	RoleSecretary   Role = "secretary"
	RoleSalesPerson Role = "sales_person"
	RoleManager     Role = "manager"
)

// Title is the display label for the role.
func (r Role) Title() string {
	switch r {
	case RoleSecretary:
		return "Secretary"
	case RoleSalesPerson:
		return "Sales Person"
	case RoleManager:
		return "Manager"
	default:
		return string(r)
	}
}

func (r Role) Valid() bool {
	_, ok := grades[r]
	return ok
}

// Roles lists every known role in a stable order.
func Roles() []Role {
	return []Role{RoleSecretary, RoleSalesPerson, RoleManager}
}

// =============================================================================
// GRADE - Compensation constants per variant
// =============================================================================

// Grade holds the constants shared by every employee of a role.
type Grade struct {
	Role        Role
	BaseSalary  decimal.Decimal
	AnnualRaise decimal.Decimal
}

var (
	GradeSecretary   = Grade{Role: RoleSecretary, BaseSalary: decimal.NewFromInt(7000), AnnualRaise: decimal.NewFromInt(1000)}
	GradeSalesPerson = Grade{Role: RoleSalesPerson, BaseSalary: decimal.NewFromInt(12000), AnnualRaise: decimal.NewFromInt(1800)}
	GradeManager     = Grade{Role: RoleManager, BaseSalary: decimal.NewFromInt(20000), AnnualRaise: decimal.NewFromInt(3000)}
)

var grades = map[Role]Grade{
	RoleSecretary:   GradeSecretary,
	RoleSalesPerson: GradeSalesPerson,
	RoleManager:     GradeManager,
}

// GradeFor returns the grade for a role.
func GradeFor(r Role) (Grade, bool) {
	g, ok := grades[r]
	return g, ok
}

// Salary applies the tenure formula. yearsOfService may be negative.
func (g Grade) Salary(yearsOfService int) decimal.Decimal {
	return g.BaseSalary.Add(g.AnnualRaise.Mul(decimal.NewFromInt(int64(yearsOfService))))
}

// Benefit rates
var (
	SecretaryBenefitRate = decimal.RequireFromString("0.20")
	SalesCommissionRate  = decimal.RequireFromString("0.30")
)

// =============================================================================
// MONEY HELPERS
// =============================================================================

// MustParseMoney parses a decimal literal, panicking on malformed input.
// Intended for constants and tests.
func MustParseMoney(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
