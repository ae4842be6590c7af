package payroll

import (
	"github.com/shopspring/decimal"
)

// SalesRecord is an immutable sale amount tagged with the period it
// occurred in. Records are owned by the SalesPerson that recorded them.
type SalesRecord struct {
	period Period
	amount decimal.Decimal
}

// NewSalesRecord validates and builds a record. The amount must not be
// negative.
func NewSalesRecord(period Period, amount decimal.Decimal) (SalesRecord, error) {
	if err := period.Validate(); err != nil {
		return SalesRecord{}, err
	}
	if amount.IsNegative() {
		return SalesRecord{}, invalid("amount", "sale amount must not be negative")
	}
	return SalesRecord{period: period, amount: amount}, nil
}

func (r SalesRecord) Period() Period          { return r.period }
func (r SalesRecord) Month() int              { return int(r.period.Month) }
func (r SalesRecord) Year() int               { return r.period.Year }
func (r SalesRecord) Amount() decimal.Decimal { return r.amount }
