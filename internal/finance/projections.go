package finance

import (
	"fmt"
	"math"
	"strconv"
)

const (
	DefaultStartYear = 2025
	DefaultEndYear   = 2045
	IndexBase        = 100.0
)

type Scenario struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

var DefaultScenarios = []Scenario{
	{Name: "Baseline", Rate: 0.05},
	{Name: "Optimistic", Rate: 0.08},
	{Name: "Pessimistic", Rate: 0.03},
}

func (s Scenario) Label() string {
	return fmt.Sprintf("%s (%s%%)", s.Name, strconv.FormatFloat(math.Round(s.Rate*10000)/100, 'f', -1, 64))
}

type ScenarioTable struct {
	Years  []int                `json:"years"`
	Series map[string][]float64 `json:"series"`
	Order  []string             `json:"order"`
}

// Scenarios grows an index from IndexBase at each scenario rate. The first
// year already carries one period of growth.
func Scenarios(startYear, endYear int, scenarios []Scenario) (*ScenarioTable, error) {
	if endYear < startYear {
		return nil, fmt.Errorf("end year %d before start year %d", endYear, startYear)
	}

	t := &ScenarioTable{Series: make(map[string][]float64)}
	for y := startYear; y <= endYear; y++ {
		t.Years = append(t.Years, y)
	}

	for _, s := range scenarios {
		label := s.Label()
		values := make([]float64, len(t.Years))
		level := IndexBase
		for i := range values {
			level *= 1 + s.Rate
			values[i] = level
		}
		t.Series[label] = values
		t.Order = append(t.Order, label)
	}

	return t, nil
}

type SensitivityRow struct {
	Year         int     `json:"year"`
	Contribution float64 `json:"contribution"`
	Return       float64 `json:"return"`
	Value        float64 `json:"value"`
}

var (
	DefaultContributions = []float64{200, 400, 600}
	DefaultReturns       = []float64{0.05, 0.07, 0.09}
)

// Sensitivity accumulates contribution*(1+r)^i over the years for every
// contribution and return pair.
func Sensitivity(contributions, returns []float64, startYear, endYear int) ([]SensitivityRow, error) {
	if endYear < startYear {
		return nil, fmt.Errorf("end year %d before start year %d", endYear, startYear)
	}

	var rows []SensitivityRow
	for _, c := range contributions {
		for _, r := range returns {
			total := 0.0
			growth := 1.0
			for y := startYear; y <= endYear; y++ {
				total += c * growth
				growth *= 1 + r
				rows = append(rows, SensitivityRow{Year: y, Contribution: c, Return: r, Value: total})
			}
		}
	}
	return rows, nil
}

type ComparisonRow struct {
	Year          int     `json:"year"`
	BuyEquity     float64 `json:"buy_equity"`
	RentAndInvest float64 `json:"rent_and_invest"`
}

const (
	buyEquityStep     = 20_000
	rentAndInvestStep = 25_000
)

// Comparison is the illustrative linear wealth path shown on the results page.
func Comparison(startYear, endYear int) []ComparisonRow {
	var rows []ComparisonRow
	for i, y := 0, startYear; y <= endYear; i, y = i+1, y+1 {
		rows = append(rows, ComparisonRow{
			Year:          y,
			BuyEquity:     float64(i * buyEquityStep),
			RentAndInvest: float64(i * rentAndInvestStep),
		})
	}
	return rows
}
