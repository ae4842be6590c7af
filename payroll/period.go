package payroll

import (
	"fmt"
	"time"
)

// =============================================================================
// PERIOD - A single payroll cycle (month + year)
// =============================================================================

// Period identifies one payroll cycle.
type Period struct {
	Month time.Month
	Year  int
}

func NewPeriod(month time.Month, year int) Period {
	return Period{Month: month, Year: year}
}

// CurrentPeriod returns the period containing now, in UTC.
func CurrentPeriod() Period {
	now := time.Now().UTC()
	return NewPeriod(now.Month(), now.Year())
}

// ParsePeriod parses "YYYY-MM".
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, invalid("period", fmt.Sprintf("%q is not YYYY-MM", s))
	}
	return NewPeriod(t.Month(), t.Year()), nil
}

// Validate checks the month is in 1..12. The year is not range-checked.
func (p Period) Validate() error {
	if p.Month < time.January || p.Month > time.December {
		return invalid("month", fmt.Sprintf("%d is outside 1..12", int(p.Month)))
	}
	return nil
}

func (p Period) Matches(other Period) bool {
	return p.Month == other.Month && p.Year == other.Year
}

// Arithmetic
func (p Period) Start() time.Time { return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC) }
func (p Period) End() time.Time   { return p.Start().AddDate(0, 1, -1) }
func (p Period) Next() Period     { t := p.Start().AddDate(0, 1, 0); return NewPeriod(t.Month(), t.Year()) }
func (p Period) Prev() Period     { t := p.Start().AddDate(0, -1, 0); return NewPeriod(t.Month(), t.Year()) }

func (p Period) String() string { return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month)) }

// Label is the human form used in reports, e.g. "April 2022".
func (p Period) Label() string { return fmt.Sprintf("%s %d", p.Month, p.Year) }
