package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.HandleHealth)
	mux.Handle("GET /metrics", handler.metrics.Handler())

	mux.HandleFunc("GET /api/pages", handler.HandlePages)
	mux.HandleFunc("GET /api/outcomes", handler.HandleOutcomes)
	mux.HandleFunc("POST /api/wealth", handler.HandleWealth)

	mux.HandleFunc("GET /api/scenarios", handler.HandleScenarios)
	mux.HandleFunc("GET /api/scenarios.csv", handler.HandleScenariosCSV)
	mux.HandleFunc("GET /api/sensitivity", handler.HandleSensitivity)
	mux.HandleFunc("GET /api/sensitivity.csv", handler.HandleSensitivityCSV)
	mux.HandleFunc("GET /api/results", handler.HandleResults)
	mux.HandleFunc("GET /api/results.csv", handler.HandleResultsCSV)

	mux.HandleFunc("GET /api/dataset", handler.HandleDataset)
	mux.HandleFunc("GET /api/dataset.csv", handler.HandleDatasetCSV)
	mux.HandleFunc("GET /api/dataset/summary", handler.HandleDatasetSummary)
	mux.HandleFunc("GET /api/dataset/correlation", handler.HandleDatasetCorrelation)
	mux.HandleFunc("GET /api/dataset/series", handler.HandleDatasetSeries)

	mux.HandleFunc("POST /api/forum/scrape", handler.HandleScrape)
}
