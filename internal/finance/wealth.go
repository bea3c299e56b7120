package finance

import "fmt"

type Inputs struct {
	HousePrice       float64 `json:"house_price"`
	DownPct          float64 `json:"down_pct"`
	MortgageRate     float64 `json:"mortgage_rate"`
	TermYears        int     `json:"term_years"`
	RentYield        float64 `json:"rent_yield"`
	InvestReturn     float64 `json:"invest_return"`
	HomeAppreciation float64 `json:"home_appreciation"`
}

func DefaultInputs() Inputs {
	return Inputs{
		HousePrice:       800_000,
		DownPct:          0.10,
		MortgageRate:     0.04,
		TermYears:        30,
		RentYield:        0.045,
		InvestReturn:     0.06,
		HomeAppreciation: 0.02,
	}
}

type bound struct {
	name     string
	value    float64
	min, max float64
}

// Validate enforces the ranges offered by the dashboard inputs.
func (in Inputs) Validate() error {
	bounds := []bound{
		{"house_price", in.HousePrice, 100_000, 5_000_000},
		{"down_pct", in.DownPct, 0, 0.9},
		{"mortgage_rate", in.MortgageRate, 0, 0.10},
		{"term_years", float64(in.TermYears), 5, 40},
		{"rent_yield", in.RentYield, 0, 0.10},
		{"invest_return", in.InvestReturn, 0, 0.15},
		{"home_appreciation", in.HomeAppreciation, 0, 0.10},
	}

	for _, b := range bounds {
		if b.value < b.min || b.value > b.max {
			return fmt.Errorf("%s must be between %g and %g, got %g", b.name, b.min, b.max, b.value)
		}
	}
	return nil
}

type Outcome struct {
	BuyWealth           float64 `json:"buy_wealth"`
	RentWealth          float64 `json:"rent_wealth"`
	Diff                float64 `json:"diff"`
	Loan                float64 `json:"loan"`
	DownPayment         float64 `json:"down_payment"`
	MonthlyMortgage     float64 `json:"monthly_mortgage"`
	MonthlyRent         float64 `json:"monthly_rent"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	Leader              string  `json:"leader"`
}

// BuyVsRent compares owning the house at the end of the term against renting
// and investing both the down payment and the monthly mortgage-minus-rent gap.
// A positive Diff means buying leads.
func BuyVsRent(in Inputs) Outcome {
	loan := in.HousePrice * (1 - in.DownPct)
	down := in.HousePrice * in.DownPct

	mortgage := MonthlyMortgagePayment(loan, in.MortgageRate, in.TermYears)
	rent := (in.HousePrice * in.RentYield) / 12.0
	contribution := mortgage - rent

	buy := FVLumpSum(in.HousePrice, in.HomeAppreciation, in.TermYears)
	rentWealth := FVLumpSum(down, in.InvestReturn, in.TermYears) +
		FVMonthlyAnnuity(contribution, in.InvestReturn, in.TermYears)

	out := Outcome{
		BuyWealth:           buy,
		RentWealth:          rentWealth,
		Diff:                buy - rentWealth,
		Loan:                loan,
		DownPayment:         down,
		MonthlyMortgage:     mortgage,
		MonthlyRent:         rent,
		MonthlyContribution: contribution,
		Leader:              "rent",
	}
	if out.Diff > 0 {
		out.Leader = "buy"
	}
	return out
}
