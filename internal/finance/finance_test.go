package finance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonthlyMortgagePayment(t *testing.T) {
	// 720k over 30 years at 4%
	require.InDelta(t, 3437.39, MonthlyMortgagePayment(720_000, 0.04, 30), 0.01)
	require.InDelta(t, 2000.0, MonthlyMortgagePayment(720_000, 0, 30), 1e-9)
}

func TestFutureValues(t *testing.T) {
	require.InDelta(t, 1102.5, FVLumpSum(1000, 0.05, 2), 1e-9)
	require.InDelta(t, 1000.0, FVLumpSum(1000, 0.05, 0), 1e-9)

	require.InDelta(t, 1200.0, FVMonthlyAnnuity(100, 0, 1), 1e-9)
	require.InDelta(t, 1233.56, FVMonthlyAnnuity(100, 0.06, 1), 0.01)
}

func TestBuyVsRent(t *testing.T) {
	out := BuyVsRent(DefaultInputs())

	require.InDelta(t, 720_000, out.Loan, 1e-6)
	require.InDelta(t, 80_000, out.DownPayment, 1e-6)
	require.InDelta(t, 3000, out.MonthlyRent, 1e-6)
	require.InDelta(t, out.MonthlyMortgage-out.MonthlyRent, out.MonthlyContribution, 1e-9)
	require.InDelta(t, 800_000*1.8113615841033, out.BuyWealth, 0.01)
	require.InDelta(t, out.BuyWealth-out.RentWealth, out.Diff, 1e-6)
	require.Equal(t, "buy", out.Leader)

	in := DefaultInputs()
	in.InvestReturn = 0.12
	in.HomeAppreciation = 0
	require.Equal(t, "rent", BuyVsRent(in).Leader)
}

func TestInputsValidate(t *testing.T) {
	require.NoError(t, DefaultInputs().Validate())

	in := DefaultInputs()
	in.TermYears = 45
	require.Error(t, in.Validate())

	in = DefaultInputs()
	in.HousePrice = 50_000
	require.Error(t, in.Validate())

	in = DefaultInputs()
	in.DownPct = 0.95
	require.Error(t, in.Validate())
}

func TestScenarios(t *testing.T) {
	table, err := Scenarios(DefaultStartYear, DefaultEndYear, DefaultScenarios)
	require.NoError(t, err)

	require.Len(t, table.Years, 21)
	require.Equal(t, []string{"Baseline (5%)", "Optimistic (8%)", "Pessimistic (3%)"}, table.Order)
	require.InDelta(t, 105.0, table.Series["Baseline (5%)"][0], 1e-9)
	require.InDelta(t, 110.25, table.Series["Baseline (5%)"][1], 1e-9)
	require.InDelta(t, 103.0, table.Series["Pessimistic (3%)"][0], 1e-9)

	_, err = Scenarios(2030, 2025, DefaultScenarios)
	require.Error(t, err)
}

func TestSensitivity(t *testing.T) {
	rows, err := Sensitivity(DefaultContributions, DefaultReturns, 2025, 2027)
	require.NoError(t, err)
	require.Len(t, rows, 3*3*3)

	first := rows[:3]
	require.Equal(t, 200.0, first[0].Contribution)
	require.Equal(t, 0.05, first[0].Return)
	require.InDelta(t, 200.0, first[0].Value, 1e-9)
	require.InDelta(t, 410.0, first[1].Value, 1e-9)
	require.InDelta(t, 630.5, first[2].Value, 1e-9)
	require.Equal(t, 2027, first[2].Year)

	_, err = Sensitivity(DefaultContributions, DefaultReturns, 2026, 2025)
	require.Error(t, err)
}

func TestComparison(t *testing.T) {
	rows := Comparison(2025, 2045)
	require.Len(t, rows, 21)
	require.Equal(t, ComparisonRow{Year: 2025}, rows[0])
	require.Equal(t, ComparisonRow{Year: 2045, BuyEquity: 400_000, RentAndInvest: 500_000}, rows[20])
}

func TestOutcomes(t *testing.T) {
	o := Outcomes()
	require.Len(t, o.Sources, 7)
	require.NotEmpty(t, o.Cues.BuyingWins)
	require.NotEmpty(t, o.Cues.RentingWins)
}
