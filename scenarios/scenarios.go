/*
Package scenarios provides pre-built companies for demos and tests.

AVAILABLE SCENARIOS:

	reference: Six employees (two of each role) with monthly sales from
	           December 2021 to April 2022. Queried for April 2022 it pays
	           140650 in total.
	empty:     A company with no employees. Every total is zero and every
	           "highest" query has no result.

ADDING NEW SCENARIOS:
 1. Add a roster JSON file next to this one and embed it
 2. Register it in the 'registry' slice

SEE ALSO:
  - factory/roster.go: Roster JSON format
  - api/handlers.go: LoadScenario, ListScenarios handlers
*/
package scenarios

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

//go:embed reference.json
var referenceRoster []byte

// ReferencePeriod is the period the reference scenario is reported for.
var ReferencePeriod = payroll.NewPeriod(time.April, 2022)

const (
	Reference = "reference"
	Empty     = "empty"
)

// Scenario describes a loadable company.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Period      payroll.Period
	load        func(*factory.RosterFactory) (*payroll.Company, error)
}

var registry = []Scenario{
	{
		ID:          Reference,
		Name:        "Reference company",
		Description: "Two secretaries, two sales people and two managers with sales through April 2022",
		Period:      ReferencePeriod,
		load: func(f *factory.RosterFactory) (*payroll.Company, error) {
			return f.ParseRoster(referenceRoster)
		},
	},
	{
		ID:          Empty,
		Name:        "Empty company",
		Description: "No employees",
		Period:      ReferencePeriod,
		load: func(*factory.RosterFactory) (*payroll.Company, error) {
			return payroll.NewCompany("Empty Company"), nil
		},
	},
}

// List returns every scenario in registration order.
func List() []Scenario {
	out := make([]Scenario, len(registry))
	copy(out, registry)
	return out
}

// Get looks up a scenario by ID.
func Get(id string) (Scenario, bool) {
	for _, s := range registry {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// Load builds a fresh company for the scenario. Each call returns a new
// company, so callers may add to it freely.
func Load(id string) (*payroll.Company, error) {
	s, ok := Get(id)
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", id)
	}
	return s.load(factory.NewRosterFactory())
}

// RosterJSON returns the raw reference roster.
func RosterJSON() []byte {
	out := make([]byte, len(referenceRoster))
	copy(out, referenceRoster)
	return out
}
