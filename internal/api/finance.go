package api

import (
	"net/http"
	"strconv"

	"github.com/wgomg/klhousing/internal/finance"
	"github.com/wgomg/klhousing/internal/utils/httputils"
)

func (h *Handler) HandleOutcomes(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	if err := httputils.SuccessResponse(w, "Expected outcomes", finance.Outcomes()); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

// HandleWealth runs the buy vs rent simulation. Omitted inputs keep their
// dashboard defaults.
func (h *Handler) HandleWealth(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	in := finance.DefaultInputs()
	if err := httputils.DecodeJSON(r, &in); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	if err := in.Validate(); err != nil {
		h.logger.Error(&reqID, "Invalid wealth inputs: %v", err)
		httputils.HandleError(w, httputils.BadRequest(err.Error()))
		return
	}

	out := finance.BuyVsRent(in)
	h.logger.Info(&reqID, "Wealth simulation: buy=%.2f rent=%.2f leader=%s", out.BuyWealth, out.RentWealth, out.Leader)

	if err := httputils.SuccessResponse(w, "Wealth simulation completed", out); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func yearRange(r *http.Request) (int, int, error) {
	start, err := httputils.QueryInt(r, "start", finance.DefaultStartYear)
	if err != nil {
		return 0, 0, err
	}
	end, err := httputils.QueryInt(r, "end", finance.DefaultEndYear)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, httputils.BadRequest("end year must not be before start year")
	}
	return start, end, nil
}

func (h *Handler) scenarios(r *http.Request) (*finance.ScenarioTable, error) {
	start, end, err := yearRange(r)
	if err != nil {
		return nil, err
	}
	return finance.Scenarios(start, end, finance.DefaultScenarios)
}

func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	table, err := h.scenarios(r)
	if err != nil {
		h.logger.Error(&reqID, "Failed to build scenarios: %v", err)
		httputils.HandleError(w, err)
		return
	}

	if err := httputils.SuccessResponse(w, "Property growth scenarios", table); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleScenariosCSV(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	table, err := h.scenarios(r)
	if err != nil {
		h.logger.Error(&reqID, "Failed to build scenarios: %v", err)
		httputils.HandleError(w, err)
		return
	}

	header := append([]string{"Year"}, table.Order...)
	rows := make([][]string, len(table.Years))
	for i, y := range table.Years {
		row := []string{strconv.Itoa(y)}
		for _, label := range table.Order {
			row = append(row, formatFloat(table.Series[label][i]))
		}
		rows[i] = row
	}

	if err := httputils.CSVResponse(w, "scenarios.csv", header, rows); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) sensitivity(r *http.Request) ([]finance.SensitivityRow, error) {
	start, end, err := yearRange(r)
	if err != nil {
		return nil, err
	}
	return finance.Sensitivity(finance.DefaultContributions, finance.DefaultReturns, start, end)
}

func (h *Handler) HandleSensitivity(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	rows, err := h.sensitivity(r)
	if err != nil {
		h.logger.Error(&reqID, "Failed to run sensitivity analysis: %v", err)
		httputils.HandleError(w, err)
		return
	}

	if err := httputils.SuccessResponse(w, "Sensitivity analysis", rows); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleSensitivityCSV(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	rows, err := h.sensitivity(r)
	if err != nil {
		h.logger.Error(&reqID, "Failed to run sensitivity analysis: %v", err)
		httputils.HandleError(w, err)
		return
	}

	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{
			strconv.Itoa(row.Year),
			formatFloat(row.Contribution),
			formatFloat(row.Return),
			formatFloat(row.Value),
		}
	}

	header := []string{"Year", "Contribution", "Return", "Value"}
	if err := httputils.CSVResponse(w, "sensitivity.csv", header, records); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleResults(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	start, end, err := yearRange(r)
	if err != nil {
		httputils.HandleError(w, err)
		return
	}

	if err := httputils.SuccessResponse(w, "Comparative results", finance.Comparison(start, end)); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleResultsCSV(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	start, end, err := yearRange(r)
	if err != nil {
		httputils.HandleError(w, err)
		return
	}

	rows := finance.Comparison(start, end)
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = []string{strconv.Itoa(row.Year), formatFloat(row.BuyEquity), formatFloat(row.RentAndInvest)}
	}

	header := []string{"Year", "Buy_Equity", "Rent_Invest"}
	if err := httputils.CSVResponse(w, "results.csv", header, records); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
