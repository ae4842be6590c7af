package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// COMPANY - Ordered collection of employees
// =============================================================================

// Company owns its employees. Iteration order is insertion order and acts
// as the tie-break for every "highest" query.
//
// A Company is not safe for concurrent mutation; build it, then read it.
type Company struct {
	name      string
	employees []Employee
	byID      map[string]int
}

func NewCompany(name string) *Company {
	return &Company{name: name, byID: make(map[string]int)}
}

func (c *Company) Name() string { return c.name }
func (c *Company) Len() int     { return len(c.employees) }

// AddEmployee appends e. Employees are never removed.
func (c *Company) AddEmployee(e Employee) error {
	if e == nil {
		return invalid("employee", "must not be nil")
	}
	if _, ok := c.byID[e.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEmployee, e.ID())
	}
	c.byID[e.ID()] = len(c.employees)
	c.employees = append(c.employees, e)
	return nil
}

// Employees returns a copy of the collection in insertion order.
func (c *Company) Employees() []Employee {
	out := make([]Employee, len(c.employees))
	copy(out, c.employees)
	return out
}

func (c *Company) Employee(id string) (Employee, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
	}
	return c.employees[i], nil
}

// =============================================================================
// TOTALS
// =============================================================================

// TotalPaid sums salary plus benefit over all employees.
func (c *Company) TotalPaid(p Period) decimal.Decimal {
	return c.sum(func(e Employee) decimal.Decimal { return TotalPayment(e, p) })
}

func (c *Company) TotalSalaries(p Period) decimal.Decimal {
	return c.sum(func(e Employee) decimal.Decimal { return e.ComputeSalary(p) })
}

func (c *Company) TotalBenefits(p Period) decimal.Decimal {
	return c.sum(func(e Employee) decimal.Decimal { return e.ComputeBenefit(p) })
}

func (c *Company) sum(value func(Employee) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.employees {
		total = total.Add(value(e))
	}
	return total
}

// =============================================================================
// HIGHEST-VALUE QUERIES
// =============================================================================
//
// All searches start from a baseline of zero and only replace the current
// winner on a strictly greater value. Consequences:
//   - ties keep the employee encountered first
//   - an employee whose value is zero or negative never wins
//   - an empty company, or one where nobody beats zero, has no result

// EmployeeWithHighestPayment returns the employee with the greatest
// salary plus benefit.
func (c *Company) EmployeeWithHighestPayment(p Period) (Employee, bool) {
	return c.highest(func(e Employee) decimal.Decimal { return TotalPayment(e, p) })
}

// EmployeeWithHighestBenefit returns the employee with the greatest benefit.
func (c *Company) EmployeeWithHighestBenefit(p Period) (Employee, bool) {
	return c.highest(func(e Employee) decimal.Decimal { return e.ComputeBenefit(p) })
}

func (c *Company) highest(value func(Employee) decimal.Decimal) (Employee, bool) {
	var winner Employee
	best := decimal.Zero
	for _, e := range c.employees {
		if v := value(e); v.GreaterThan(best) {
			best = v
			winner = e
		}
	}
	return winner, winner != nil
}

// SalesPersonWithHighestSale considers every record for the period across
// all sellers, not only the first one per seller, and returns the owner of
// the largest.
func (c *Company) SalesPersonWithHighestSale(p Period) (Seller, bool) {
	var winner Seller
	best := decimal.Zero
	for _, e := range c.employees {
		seller, ok := e.(Seller)
		if !ok {
			continue
		}
		for _, rec := range seller.SalesIn(p) {
			if rec.Amount().GreaterThan(best) {
				best = rec.Amount()
				winner = seller
			}
		}
	}
	return winner, winner != nil
}

// HighestSale returns the largest amount for the period, zero if none.
func (c *Company) HighestSale(p Period) decimal.Decimal {
	best := decimal.Zero
	for _, e := range c.employees {
		if seller, ok := e.(Seller); ok {
			for _, rec := range seller.SalesIn(p) {
				best = decimal.Max(best, rec.Amount())
			}
		}
	}
	return best
}
