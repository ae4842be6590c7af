package payroll

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// EMPLOYEE - Polymorphic compensation capability
// =============================================================================

// Employee is implemented by every variant. Compute methods are total
// functions: they never fail and never mutate the employee.
type Employee interface {
	ID() string
	Name() string
	Role() Role
	HireDate() time.Time
	BaseSalary() decimal.Decimal
	AnnualRaise() decimal.Decimal

	// YearsOfService is year minus the hire year. May be negative.
	YearsOfService(year int) int

	// ComputeSalary ignores the month; raises are annual.
	ComputeSalary(p Period) decimal.Decimal

	ComputeBenefit(p Period) decimal.Decimal
}

// Seller is the capability of employees that record sales. Company uses it
// to restrict sales queries without inspecting concrete types.
type Seller interface {
	Employee

	// SalesIn returns every record for the period, in insertion order.
	SalesIn(p Period) []SalesRecord
}

// Compile-time checks
var (
	_ Employee = (*Secretary)(nil)
	_ Employee = (*Manager)(nil)
	_ Seller   = (*SalesPerson)(nil)
)

// =============================================================================
// SHARED STATE
// =============================================================================

// staff carries the fields common to all variants.
type staff struct {
	id       string
	name     string
	hireDate time.Time
	grade    Grade
}

func (s *staff) ID() string                   { return s.id }
func (s *staff) Name() string                 { return s.name }
func (s *staff) Role() Role                   { return s.grade.Role }
func (s *staff) HireDate() time.Time          { return s.hireDate }
func (s *staff) BaseSalary() decimal.Decimal  { return s.grade.BaseSalary }
func (s *staff) AnnualRaise() decimal.Decimal { return s.grade.AnnualRaise }

func (s *staff) YearsOfService(year int) int {
	return year - s.hireDate.Year()
}

func (s *staff) ComputeSalary(p Period) decimal.Decimal {
	return s.grade.Salary(s.YearsOfService(p.Year))
}

// Option customizes employee construction.
type Option func(*staff)

// WithID sets an explicit identifier instead of a generated one.
func WithID(id string) Option {
	return func(s *staff) { s.id = id }
}

func newStaff(grade Grade, name string, hireDate time.Time, opts []Option) (staff, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return staff{}, invalid("name", "must not be empty")
	}
	if hireDate.IsZero() {
		return staff{}, invalid("hire_date", "must be set")
	}

	s := staff{name: name, hireDate: hireDate, grade: grade}
	for _, opt := range opts {
		opt(&s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	return s, nil
}

// New builds the variant matching role.
func New(role Role, name string, hireDate time.Time, opts ...Option) (Employee, error) {
	grade, ok := GradeFor(role)
	if !ok {
		return nil, ErrUnknownRole
	}
	s, err := newStaff(grade, name, hireDate, opts)
	if err != nil {
		return nil, err
	}

	switch role {
	case RoleSalesPerson:
		return &SalesPerson{staff: s}, nil
	case RoleManager:
		return &Manager{staff: s}, nil
	default:
		return &Secretary{staff: s}, nil
	}
}

// TotalPayment is salary plus benefit for the period.
func TotalPayment(e Employee, p Period) decimal.Decimal {
	return e.ComputeSalary(p).Add(e.ComputeBenefit(p))
}
