package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/report"
	"github.com/warp/payroll-engine/scenarios"
)

func loadReference(t *testing.T) *payroll.Company {
	t.Helper()
	c, err := scenarios.Load(scenarios.Reference)
	require.NoError(t, err)
	return c
}

func TestWriteText_Reference(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, loadReference(t).Report(scenarios.ReferencePeriod)))

	want := []string{
		"Total paid in April 2022: 140650.00",
		"Total paid in salaries in April 2022: 131600.00",
		"Total paid in benefits in April 2022: 9050.00",
		"Employee with highest payment in April 2022: Bento Albino",
		"Employee with highest benefit in April 2022: Maria Souza",
		"Sales person with highest sale in April 2022: Ana Silva",
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", buf.String())
}

func TestWriteText_NoResults(t *testing.T) {
	c := payroll.NewCompany("Empty")

	lines := report.Lines(c.Report(scenarios.ReferencePeriod))
	require.Len(t, lines, 6)
	assert.Equal(t, "Total paid in April 2022: 0.00", lines[0])
	for _, line := range lines[3:] {
		assert.True(t, strings.HasSuffix(line, ": "+report.NoResult), line)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, loadReference(t).Payroll(scenarios.ReferencePeriod)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "employee_id,name,role,period,salary,benefit,total", lines[0])
	assert.Equal(t, "jorge-carvalho,Jorge Carvalho,secretary,2022-04,11000.00,2200.00,13200.00", lines[1])
	assert.Equal(t, "bento-albino,Bento Albino,manager,2022-04,44000.00,0.00,44000.00", lines[6])
}

func TestWritePDF(t *testing.T) {
	c := loadReference(t)

	var buf bytes.Buffer
	require.NoError(t, report.WritePDF(&buf, c.Report(scenarios.ReferencePeriod), c.Payroll(scenarios.ReferencePeriod)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWrite_Formats(t *testing.T) {
	c := loadReference(t)

	for _, format := range []string{report.FormatText, report.FormatCSV, report.FormatPDF} {
		var buf bytes.Buffer
		assert.NoError(t, report.Write(&buf, format, c, scenarios.ReferencePeriod), format)
		assert.NotZero(t, buf.Len(), format)
	}

	err := report.Write(&bytes.Buffer{}, "xml", c, scenarios.ReferencePeriod)
	assert.ErrorIs(t, err, payroll.ErrInvalidArgument)
}
