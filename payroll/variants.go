package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SECRETARY
// =============================================================================

// Secretary earns a benefit of 20% of the computed salary.
type Secretary struct {
	staff
}

func NewSecretary(name string, hireDate time.Time, opts ...Option) (*Secretary, error) {
	s, err := newStaff(GradeSecretary, name, hireDate, opts)
	if err != nil {
		return nil, err
	}
	return &Secretary{staff: s}, nil
}

func (s *Secretary) ComputeBenefit(p Period) decimal.Decimal {
	return s.ComputeSalary(p).Mul(SecretaryBenefitRate)
}

// =============================================================================
// SALES PERSON
// =============================================================================

// SalesPerson earns a 30% commission on the sale recorded for the period.
type SalesPerson struct {
	staff
	sales []SalesRecord
}

func NewSalesPerson(name string, hireDate time.Time, opts ...Option) (*SalesPerson, error) {
	s, err := newStaff(GradeSalesPerson, name, hireDate, opts)
	if err != nil {
		return nil, err
	}
	return &SalesPerson{staff: s}, nil
}

// RecordSale appends a sale. Recording order is kept.
func (sp *SalesPerson) RecordSale(p Period, amount decimal.Decimal) error {
	rec, err := NewSalesRecord(p, amount)
	if err != nil {
		return err
	}
	sp.sales = append(sp.sales, rec)
	return nil
}

// Sales returns a copy of all records in recording order.
func (sp *SalesPerson) Sales() []SalesRecord {
	out := make([]SalesRecord, len(sp.sales))
	copy(out, sp.sales)
	return out
}

func (sp *SalesPerson) SalesIn(p Period) []SalesRecord {
	var out []SalesRecord
	for _, rec := range sp.sales {
		if rec.period.Matches(p) {
			out = append(out, rec)
		}
	}
	return out
}

// ComputeBenefit uses the first record for the period; later records for
// the same period are ignored. No record means no commission.
func (sp *SalesPerson) ComputeBenefit(p Period) decimal.Decimal {
	for _, rec := range sp.sales {
		if rec.period.Matches(p) {
			return rec.amount.Mul(SalesCommissionRate)
		}
	}
	return decimal.Zero
}

// =============================================================================
// MANAGER
// =============================================================================

// Manager has no benefit.
type Manager struct {
	staff
}

func NewManager(name string, hireDate time.Time, opts ...Option) (*Manager, error) {
	s, err := newStaff(GradeManager, name, hireDate, opts)
	if err != nil {
		return nil, err
	}
	return &Manager{staff: s}, nil
}

func (m *Manager) ComputeBenefit(Period) decimal.Decimal {
	return decimal.Zero
}
