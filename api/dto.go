/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the payroll domain model (unexported fields, interfaces) from the
  external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Query: Query-string parameters

MONEY:
  Amounts are decimal.Decimal and serialize as JSON strings ("140650")
  so no precision is lost on the way to the client.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/roster.go: EmployeeJSON/SaleJSON request bodies
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/scenarios"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// PeriodQuery is the ?month=&year= pair accepted by reporting endpoints.
type PeriodQuery struct {
	Month int `validate:"gte=1,lte=12"`
	Year  int `validate:"gte=1"`
}

func (q PeriodQuery) Period() payroll.Period {
	return payroll.NewPeriod(time.Month(q.Month), q.Year)
}

// LoadScenarioRequest swaps the served company for a scenario.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id" validate:"required"`
}

// CreateEmployeeRequest reuses the roster entry format.
type CreateEmployeeRequest = factory.EmployeeJSON

// RecordSaleRequest reuses the roster sale format.
type RecordSaleRequest = factory.SaleJSON

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// CompanyDTO summarizes the served company.
type CompanyDTO struct {
	Name      string `json:"name"`
	Headcount int    `json:"headcount"`
	Scenario  string `json:"scenario,omitempty"`
}

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	RoleTitle   string          `json:"role_title"`
	HireDate    string          `json:"hire_date"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	AnnualRaise decimal.Decimal `json:"annual_raise"`
	Sales       []SaleDTO       `json:"sales,omitempty"`
}

// SaleDTO represents a recorded sale.
type SaleDTO struct {
	Period string          `json:"period"`
	Month  int             `json:"month"`
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
}

// PayslipDTO is one employee's pay for a period.
type PayslipDTO struct {
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Period     string          `json:"period"`
	Salary     decimal.Decimal `json:"salary"`
	Benefit    decimal.Decimal `json:"benefit"`
	Total      decimal.Decimal `json:"total"`
}

// StandingDTO is the winner of a "highest" query.
type StandingDTO struct {
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Value      decimal.Decimal `json:"value"`
}

// ReportDTO carries the six reporting queries. Missing winners are null.
type ReportDTO struct {
	Company        string          `json:"company"`
	Period         string          `json:"period"`
	PeriodLabel    string          `json:"period_label"`
	Headcount      int             `json:"headcount"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalSalaries  decimal.Decimal `json:"total_salaries"`
	TotalBenefits  decimal.Decimal `json:"total_benefits"`
	HighestPayment *StandingDTO    `json:"highest_payment"`
	HighestBenefit *StandingDTO    `json:"highest_benefit"`
	HighestSale    *StandingDTO    `json:"highest_sale"`
	Payslips       []PayslipDTO    `json:"payslips,omitempty"`
}

// ScenarioDTO represents a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Period      string `json:"period"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERTERS
// =============================================================================

func toEmployeeDTO(e payroll.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:          e.ID(),
		Name:        e.Name(),
		Role:        string(e.Role()),
		RoleTitle:   e.Role().Title(),
		HireDate:    e.HireDate().Format(factory.HireDateLayout),
		BaseSalary:  e.BaseSalary(),
		AnnualRaise: e.AnnualRaise(),
	}
	if sp, ok := e.(*payroll.SalesPerson); ok {
		for _, rec := range sp.Sales() {
			dto.Sales = append(dto.Sales, SaleDTO{
				Period: rec.Period().String(),
				Month:  rec.Month(),
				Year:   rec.Year(),
				Amount: rec.Amount(),
			})
		}
	}
	return dto
}

func toPayslipDTO(s payroll.Payslip) PayslipDTO {
	return PayslipDTO{
		EmployeeID: s.EmployeeID,
		Name:       s.Name,
		Role:       string(s.Role),
		Period:     s.Period.String(),
		Salary:     s.Salary,
		Benefit:    s.Benefit,
		Total:      s.Total,
	}
}

func toStandingDTO(s *payroll.Standing) *StandingDTO {
	if s == nil {
		return nil
	}
	return &StandingDTO{EmployeeID: s.EmployeeID, Name: s.Name, Role: string(s.Role), Value: s.Value}
}

func toReportDTO(r payroll.Report, slips []payroll.Payslip) ReportDTO {
	dto := ReportDTO{
		Company:        r.Company,
		Period:         r.Period.String(),
		PeriodLabel:    r.Period.Label(),
		Headcount:      r.Headcount,
		TotalPaid:      r.TotalPaid,
		TotalSalaries:  r.TotalSalaries,
		TotalBenefits:  r.TotalBenefits,
		HighestPayment: toStandingDTO(r.HighestPayment),
		HighestBenefit: toStandingDTO(r.HighestBenefit),
		HighestSale:    toStandingDTO(r.HighestSale),
	}
	for _, s := range slips {
		dto.Payslips = append(dto.Payslips, toPayslipDTO(s))
	}
	return dto
}

func toScenarioDTO(s scenarios.Scenario) ScenarioDTO {
	return ScenarioDTO{ID: s.ID, Name: s.Name, Description: s.Description, Period: s.Period.String()}
}
