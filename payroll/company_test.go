package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/payroll"
)

// referenceCompany builds the six-employee sample company.
func referenceCompany(t *testing.T) *payroll.Company {
	t.Helper()
	c := payroll.NewCompany("Reference")

	date := func(y int, m time.Month) time.Time { return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC) }
	add := func(e payroll.Employee, err error) {
		require.NoError(t, err)
		require.NoError(t, c.AddEmployee(e))
	}

	jorge, err := payroll.NewSecretary("Jorge Carvalho", date(2018, time.January))
	add(jorge, err)
	maria, err := payroll.NewSecretary("Maria Souza", date(2015, time.December))
	add(maria, err)

	ana, err := payroll.NewSalesPerson("Ana Silva", date(2021, time.December))
	require.NoError(t, err)
	for _, s := range []struct {
		m      time.Month
		y      int
		amount string
	}{
		{time.December, 2021, "5200"}, {time.January, 2022, "4000"}, {time.February, 2022, "4200"},
		{time.March, 2022, "5850"}, {time.April, 2022, "7000"},
	} {
		require.NoError(t, ana.RecordSale(payroll.NewPeriod(s.m, s.y), money(s.amount)))
	}
	add(ana, nil)

	joao, err := payroll.NewSalesPerson("João Mendes", date(2021, time.December))
	require.NoError(t, err)
	for _, s := range []struct {
		m      time.Month
		y      int
		amount string
	}{
		{time.December, 2021, "3400"}, {time.January, 2022, "7700"}, {time.February, 2022, "5000"},
		{time.March, 2022, "5900"}, {time.April, 2022, "6500"},
	} {
		require.NoError(t, joao.RecordSale(payroll.NewPeriod(s.m, s.y), money(s.amount)))
	}
	add(joao, nil)

	juliana, err := payroll.NewManager("Juliana Alves", date(2017, time.July))
	add(juliana, err)
	bento, err := payroll.NewManager("Bento Albino", date(2014, time.March))
	add(bento, err)

	return c
}

// =============================================================================
// EMPTY COMPANY
// =============================================================================

func TestCompany_Empty(t *testing.T) {
	c := payroll.NewCompany("Empty")
	p := april2022()

	assert.True(t, c.TotalPaid(p).IsZero())
	assert.True(t, c.TotalSalaries(p).IsZero())
	assert.True(t, c.TotalBenefits(p).IsZero())

	_, ok := c.EmployeeWithHighestPayment(p)
	assert.False(t, ok)
	_, ok = c.EmployeeWithHighestBenefit(p)
	assert.False(t, ok)
	_, ok = c.SalesPersonWithHighestSale(p)
	assert.False(t, ok)

	r := c.Report(p)
	assert.Nil(t, r.HighestPayment)
	assert.Nil(t, r.HighestBenefit)
	assert.Nil(t, r.HighestSale)
	assert.Empty(t, c.Payroll(p))
}

// =============================================================================
// REFERENCE SCENARIO - April 2022
// =============================================================================

func TestCompany_ReferenceTotals(t *testing.T) {
	c := referenceCompany(t)
	p := april2022()

	assertMoney(t, "140650", c.TotalPaid(p))
	assertMoney(t, "131600", c.TotalSalaries(p))
	assertMoney(t, "9050", c.TotalBenefits(p))
}

func TestCompany_ReferencePayslips(t *testing.T) {
	c := referenceCompany(t)

	want := []struct {
		name            string
		salary, benefit string
	}{
		{"Jorge Carvalho", "11000", "2200"},
		{"Maria Souza", "14000", "2800"},
		{"Ana Silva", "13800", "2100"},
		{"João Mendes", "13800", "1950"},
		{"Juliana Alves", "35000", "0"},
		{"Bento Albino", "44000", "0"},
	}

	slips := c.Payroll(april2022())
	require.Len(t, slips, len(want))
	for i, w := range want {
		assert.Equal(t, w.name, slips[i].Name)
		assertMoney(t, w.salary, slips[i].Salary, w.name)
		assertMoney(t, w.benefit, slips[i].Benefit, w.name)
		assert.True(t, slips[i].Salary.Add(slips[i].Benefit).Equal(slips[i].Total))
	}
}

func TestCompany_ReferenceHighest(t *testing.T) {
	c := referenceCompany(t)
	p := april2022()

	top, ok := c.EmployeeWithHighestPayment(p)
	require.True(t, ok)
	assert.Equal(t, "Bento Albino", top.Name())

	topBenefit, ok := c.EmployeeWithHighestBenefit(p)
	require.True(t, ok)
	assert.Equal(t, "Maria Souza", topBenefit.Name())

	seller, ok := c.SalesPersonWithHighestSale(p)
	require.True(t, ok)
	assert.Equal(t, "Ana Silva", seller.Name())
	assertMoney(t, "7000", c.HighestSale(p))

	// January: João sold 7700 against Ana's 4000
	seller, ok = c.SalesPersonWithHighestSale(payroll.NewPeriod(time.January, 2022))
	require.True(t, ok)
	assert.Equal(t, "João Mendes", seller.Name())
}

func TestCompany_Report(t *testing.T) {
	c := referenceCompany(t)
	r := c.Report(april2022())

	assert.Equal(t, "Reference", r.Company)
	assert.Equal(t, 6, r.Headcount)
	assertMoney(t, "140650", r.TotalPaid)
	require.NotNil(t, r.HighestPayment)
	assert.Equal(t, "Bento Albino", r.HighestPayment.Name)
	assertMoney(t, "44000", r.HighestPayment.Value)
	require.NotNil(t, r.HighestBenefit)
	assert.Equal(t, "Maria Souza", r.HighestBenefit.Name)
	assertMoney(t, "2800", r.HighestBenefit.Value)
	require.NotNil(t, r.HighestSale)
	assert.Equal(t, payroll.RoleSalesPerson, r.HighestSale.Role)
	assertMoney(t, "7000", r.HighestSale.Value)
}

func TestCompany_QueriesAreIdempotent(t *testing.T) {
	c := referenceCompany(t)
	p := april2022()

	first := c.Report(p)
	second := c.Report(p)
	assert.True(t, first.TotalPaid.Equal(second.TotalPaid))
	assert.Equal(t, first.HighestPayment.EmployeeID, second.HighestPayment.EmployeeID)
	assert.Equal(t, 6, c.Len())
}

func TestCompany_TotalsEqualSumOfPayslips(t *testing.T) {
	c := referenceCompany(t)

	for _, p := range []payroll.Period{april2022(), payroll.NewPeriod(time.December, 2021), payroll.NewPeriod(time.May, 2030)} {
		paid, salaries, benefits := money("0"), money("0"), money("0")
		for _, e := range c.Employees() {
			paid = paid.Add(payroll.TotalPayment(e, p))
			salaries = salaries.Add(e.ComputeSalary(p))
			benefits = benefits.Add(e.ComputeBenefit(p))
		}
		assert.True(t, paid.Equal(c.TotalPaid(p)), p.String())
		assert.True(t, salaries.Equal(c.TotalSalaries(p)), p.String())
		assert.True(t, benefits.Equal(c.TotalBenefits(p)), p.String())
	}
}

// =============================================================================
// ZERO BASELINE AND TIE-BREAKS
// =============================================================================

func TestCompany_TiesKeepFirst(t *testing.T) {
	c := payroll.NewCompany("Twins")
	a, err := payroll.NewManager("First", hired(2014))
	require.NoError(t, err)
	b, err := payroll.NewManager("Second", hired(2014))
	require.NoError(t, err)
	require.NoError(t, c.AddEmployee(a))
	require.NoError(t, c.AddEmployee(b))

	top, ok := c.EmployeeWithHighestPayment(april2022())
	require.True(t, ok)
	assert.Equal(t, "First", top.Name())
}

func TestCompany_ZeroBaselineExcludesNonPositive(t *testing.T) {
	// GIVEN: Only managers (benefit always 0)
	// WHEN: Asking for the highest benefit
	// THEN: No result, since nobody beats the zero baseline

	c := payroll.NewCompany("Managers")
	mgr, err := payroll.NewManager("Bento", hired(2014))
	require.NoError(t, err)
	require.NoError(t, c.AddEmployee(mgr))

	_, ok := c.EmployeeWithHighestBenefit(april2022())
	assert.False(t, ok)

	// A salesperson without a sale for the period is not a result either
	sp, err := payroll.NewSalesPerson("Ana", hired(2021))
	require.NoError(t, err)
	require.NoError(t, sp.RecordSale(april2022(), money("0")))
	require.NoError(t, c.AddEmployee(sp))

	_, ok = c.SalesPersonWithHighestSale(april2022())
	assert.False(t, ok)

	// Querying decades before hire makes every payment negative
	sec, err := payroll.NewSecretary("Late", hired(2020))
	require.NoError(t, err)
	only := payroll.NewCompany("Negative")
	require.NoError(t, only.AddEmployee(sec))
	_, ok = only.EmployeeWithHighestPayment(payroll.NewPeriod(time.January, 2000))
	assert.False(t, ok)
}

func TestCompany_HighestSaleScansEveryRecord(t *testing.T) {
	// The benefit uses the first record, but the sales query considers all.
	c := payroll.NewCompany("Sales")
	a, err := payroll.NewSalesPerson("A", hired(2021))
	require.NoError(t, err)
	require.NoError(t, a.RecordSale(april2022(), money("100")))
	require.NoError(t, a.RecordSale(april2022(), money("900")))
	b, err := payroll.NewSalesPerson("B", hired(2021))
	require.NoError(t, err)
	require.NoError(t, b.RecordSale(april2022(), money("500")))
	require.NoError(t, c.AddEmployee(a))
	require.NoError(t, c.AddEmployee(b))

	seller, ok := c.SalesPersonWithHighestSale(april2022())
	require.True(t, ok)
	assert.Equal(t, "A", seller.Name())

	topBenefit, ok := c.EmployeeWithHighestBenefit(april2022())
	require.True(t, ok)
	assert.Equal(t, "B", topBenefit.Name())
}

// =============================================================================
// MEMBERSHIP
// =============================================================================

func TestCompany_AddAndLookup(t *testing.T) {
	c := payroll.NewCompany("Acme")
	assert.ErrorIs(t, c.AddEmployee(nil), payroll.ErrInvalidArgument)

	mgr, err := payroll.NewManager("Bento", hired(2014), payroll.WithID("bento"))
	require.NoError(t, err)
	require.NoError(t, c.AddEmployee(mgr))

	err = c.AddEmployee(mgr)
	assert.ErrorIs(t, err, payroll.ErrDuplicateEmployee)
	assert.True(t, payroll.IsClientError(err))

	got, err := c.Employee("bento")
	require.NoError(t, err)
	assert.Equal(t, "Bento", got.Name())

	_, err = c.Employee("nobody")
	assert.True(t, payroll.IsNotFound(err))

	employees := c.Employees()
	employees[0] = nil
	assert.NotNil(t, c.Employees()[0])
}
