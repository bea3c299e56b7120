package api

// pages mirrors the dashboard navigation.
var pages = []Page{
	{
		Title:   "Buying vs Renting in Kuala Lumpur: 30-Year Wealth Simulation",
		Summary: "Compare owning a home against renting and investing the difference.",
		Routes:  []string{"POST /api/wealth"},
	},
	{
		Title:   "Expected Outcomes",
		Summary: "What the project delivers, when each choice tends to win, and data sources.",
		Routes:  []string{"GET /api/outcomes"},
	},
	{
		Title:   "Analysis",
		Summary: "Property growth index under baseline, optimistic and pessimistic rates.",
		Routes:  []string{"GET /api/scenarios", "GET /api/scenarios.csv"},
	},
	{
		Title:   "Exploratory Data Analysis",
		Summary: "Preview the yearly indicator dataset, its statistics and correlations.",
		Routes:  []string{"GET /api/dataset", "GET /api/dataset.csv", "GET /api/dataset/summary", "GET /api/dataset/correlation"},
	},
	{
		Title:   "Rent vs Buy Forum Discussions (Malaysia)",
		Summary: "Search a subreddit and rank the most frequent words and phrases.",
		Routes:  []string{"POST /api/forum/scrape"},
	},
	{
		Title:   "Data Processing",
		Summary: "Cleaning report and indicator trends over a chosen year range.",
		Routes:  []string{"GET /api/dataset/summary", "GET /api/dataset/series"},
	},
	{
		Title:   "Modelling",
		Summary: "Sensitivity of accumulated savings to monthly contribution and return.",
		Routes:  []string{"GET /api/sensitivity", "GET /api/sensitivity.csv"},
	},
	{
		Title:   "Results & Interpretation",
		Summary: "Buy equity against rent-and-invest wealth over time.",
		Routes:  []string{"GET /api/results", "GET /api/results.csv"},
	},
}
