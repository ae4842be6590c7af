/*
main.go - Payroll report CLI

PURPOSE:
  Builds a company from a scenario or roster file, queries one period and
  writes the report to standard output.

COMMAND-LINE FLAGS:
  -scenario  Scenario to report (default: "reference")
  -roster    Roster JSON file; takes precedence over -scenario
  -month     Month 1..12 (default: 4)
  -year      Year (default: 2022)
  -format    text | csv | pdf (default: text)

EXAMPLES:
  # Six summary lines for April 2022
  ./payroll

  # Payslips as CSV
  ./payroll -format=csv -month=3

  # Statement PDF for a custom roster
  ./payroll -roster=./acme.json -format=pdf > statement.pdf
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/report"
	"github.com/warp/payroll-engine/scenarios"
)

func main() {
	scenario := flag.String("scenario", scenarios.Reference, "scenario to report")
	rosterPath := flag.String("roster", "", "roster JSON file")
	month := flag.Int("month", int(scenarios.ReferencePeriod.Month), "month (1-12)")
	year := flag.Int("year", scenarios.ReferencePeriod.Year, "year")
	format := flag.String("format", report.FormatText, "output format: text, csv or pdf")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	company, err := loadCompany(*scenario, *rosterPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load company")
	}

	period := payroll.NewPeriod(time.Month(*month), *year)
	if err := period.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid period")
	}

	if err := report.Write(os.Stdout, *format, company, period); err != nil {
		logger.Fatal().Err(err).Str("format", *format).Msg("failed to write report")
	}
}

func loadCompany(scenario, rosterPath string) (*payroll.Company, error) {
	if rosterPath == "" {
		return scenarios.Load(scenario)
	}
	data, err := os.ReadFile(rosterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return factory.NewRosterFactory().ParseRoster(data)
}
