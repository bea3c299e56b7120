package finance

type Source struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type DecisionCues struct {
	BuyingWins  []string `json:"buying_wins"`
	RentingWins []string `json:"renting_wins"`
}

type ExpectedOutcomes struct {
	Deliverables []string     `json:"deliverables"`
	Cues         DecisionCues `json:"cues"`
	Sources      []Source     `json:"sources"`
}

func Outcomes() ExpectedOutcomes {
	return ExpectedOutcomes{
		Deliverables: []string{
			"Insights on financial performance under multiple conditions",
			"Visualization of scenario-based growth trends",
			"Identification of potential risks and opportunities",
			"Structured reporting for decision-making",
		},
		Cues: DecisionCues{
			BuyingWins: []string{
				"Mortgage rates are low (<= 4%)",
				"Property appreciation is steady (>= 2%/yr)",
				"Rent is expensive (>= 4.5% of price)",
				"Over long horizons (~30 yrs)",
			},
			RentingWins: []string{
				"Mortgage rates are high (>= 5.5%)",
				"Property prices stagnate (~0%)",
				"Investments return >= 7-8%",
				"Rent is cheap (<= 3.5% of price)",
			},
		},
		Sources: []Source{
			{"Malaysia's Residential Property Market Analysis 2025 - Global Property Guide", "https://www.globalpropertyguide.com/asia/malaysia/price-history"},
			{"Rental Yields in Malaysia in 2025, Q1 - Global Property Guide", "https://www.globalpropertyguide.com/asia/malaysia/rental-yields"},
			{"Base Lending Rates - Maybank Malaysia", "https://www.maybank2u.com.my/maybank2u/malaysia/en/personal/rates/blr_rates.page"},
			{"Malaysia c.bank lowers key rate to 2.75% - Reuters", "https://www.reuters.com/world/asia-pacific/malaysia-cbank-lowers-key-rate-275-2025-07-09/"},
			{"Malaysia Inflation (CPI) - FocusEconomics", "https://www.focus-economics.com/country-indicator/malaysia/inflation/"},
			{"EPF Dividend 2024 - KWSP Malaysia", "https://www.kwsp.gov.my/en/others/resource-centre/dividend"},
			{"Buy vs Rent in Malaysia - KWSP Malaysia", "https://www.kwsp.gov.my/en/w/article/buy-vs-rent-malaysia"},
		},
	}
}
