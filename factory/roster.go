/*
Package factory provides JSON to Go roster conversion.

PURPOSE:
  Converts JSON roster definitions into a payroll.Company populated with
  employees and their sales. This lets a company be described as data
  (demo scenarios, the CLI's -roster flag, the API's create endpoints)
  without writing construction code.

JSON SCHEMA:
  {
    "company": "Acme",
    "employees": [
      {"id": "jorge", "name": "Jorge Carvalho", "role": "secretary", "hire_date": "2018-01-01"},
      {
        "name": "Ana Silva",
        "role": "sales_person",
        "hire_date": "2021-12-01",
        "sales": [{"month": 4, "year": 2022, "amount": 7000}]
      }
    ]
  }

KEY FEATURES:
  - Struct validation (required fields, role names, month range)
  - Employee IDs are generated when omitted
  - Sales are only accepted on sales_person entries
  - Array order is kept as company order

USAGE:
  f := factory.NewRosterFactory()
  company, err := f.ParseRoster(data)

SEE ALSO:
  - payroll/employee.go: Constructors used here
  - scenarios/: Embedded rosters
*/
package factory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// HireDateLayout is the date format for hire dates in rosters.
const HireDateLayout = "2006-01-02"

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// RosterJSON is the JSON representation of a company.
type RosterJSON struct {
	Company   string         `json:"company" validate:"required"`
	Employees []EmployeeJSON `json:"employees" validate:"dive"`
}

// EmployeeJSON represents one employee.
type EmployeeJSON struct {
	ID       string     `json:"id,omitempty"`
	Name     string     `json:"name" validate:"required"`
	Role     string     `json:"role" validate:"required,oneof=secretary sales_person manager"`
	HireDate string     `json:"hire_date" validate:"required,datetime=2006-01-02"`
	Sales    []SaleJSON `json:"sales,omitempty" validate:"dive"`
}

// SaleJSON represents a recorded sale.
type SaleJSON struct {
	Month  int             `json:"month" validate:"required,gte=1,lte=12"`
	Year   int             `json:"year" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// =============================================================================
// ROSTER FACTORY
// =============================================================================

// RosterFactory converts JSON rosters to companies.
type RosterFactory struct {
	validate *validator.Validate
}

// NewRosterFactory creates a new roster factory.
func NewRosterFactory() *RosterFactory {
	return &RosterFactory{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// ParseRoster parses a JSON document into a Company.
func (f *RosterFactory) ParseRoster(data []byte) (*payroll.Company, error) {
	var rj RosterJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return nil, fmt.Errorf("failed to parse roster JSON: %w", err)
	}
	return f.FromJSON(rj)
}

// FromJSON validates rj and builds the company.
func (f *RosterFactory) FromJSON(rj RosterJSON) (*payroll.Company, error) {
	if err := f.Validate(rj); err != nil {
		return nil, err
	}

	company := payroll.NewCompany(rj.Company)
	for i, ej := range rj.Employees {
		e, err := f.BuildEmployee(ej)
		if err != nil {
			return nil, fmt.Errorf("employee %d: %w", i, err)
		}
		if err := company.AddEmployee(e); err != nil {
			return nil, fmt.Errorf("employee %d: %w", i, err)
		}
	}
	return company, nil
}

// BuildEmployee converts a single entry, recording its sales.
func (f *RosterFactory) BuildEmployee(ej EmployeeJSON) (payroll.Employee, error) {
	if err := f.Validate(ej); err != nil {
		return nil, err
	}

	hireDate, err := time.Parse(HireDateLayout, ej.HireDate)
	if err != nil {
		return nil, &payroll.ValidationError{Field: "hire_date", Reason: err.Error()}
	}

	var opts []payroll.Option
	if ej.ID != "" {
		opts = append(opts, payroll.WithID(ej.ID))
	}
	e, err := payroll.New(payroll.Role(ej.Role), ej.Name, hireDate, opts...)
	if err != nil {
		return nil, err
	}

	if len(ej.Sales) == 0 {
		return e, nil
	}
	sp, ok := e.(*payroll.SalesPerson)
	if !ok {
		return nil, &payroll.ValidationError{Field: "sales", Reason: fmt.Sprintf("role %s does not record sales", ej.Role)}
	}
	for _, s := range ej.Sales {
		if err := RecordSale(sp, s); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// RecordSale validates s and records it on sp.
func RecordSale(sp *payroll.SalesPerson, s SaleJSON) error {
	return sp.RecordSale(payroll.NewPeriod(time.Month(s.Month), s.Year), s.Amount)
}

// Validate runs struct validation and maps failures to payroll errors.
func (f *RosterFactory) Validate(v any) error {
	err := f.validate.Struct(v)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	reasons := make([]string, 0, len(vErrs))
	fields := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, fe.Namespace())
		reasons = append(reasons, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return &payroll.ValidationError{
		Field:  strings.Join(fields, ","),
		Reason: strings.Join(reasons, "; "),
	}
}

// ToJSON converts a Company back to its roster form.
func (f *RosterFactory) ToJSON(c *payroll.Company) RosterJSON {
	rj := RosterJSON{Company: c.Name(), Employees: []EmployeeJSON{}}
	for _, e := range c.Employees() {
		ej := EmployeeJSON{
			ID:       e.ID(),
			Name:     e.Name(),
			Role:     string(e.Role()),
			HireDate: e.HireDate().Format(HireDateLayout),
		}
		if sp, ok := e.(*payroll.SalesPerson); ok {
			for _, rec := range sp.Sales() {
				ej.Sales = append(ej.Sales, SaleJSON{Month: rec.Month(), Year: rec.Year(), Amount: rec.Amount()})
			}
		}
		rj.Employees = append(rj.Employees, ej)
	}
	return rj
}
