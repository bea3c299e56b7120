package api

import (
	"net/http"
	"slices"

	"github.com/wgomg/klhousing/internal/dataset"
	"github.com/wgomg/klhousing/internal/utils/httputils"
)

func (h *Handler) HandleDataset(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	ds, err := h.loadDataset(reqID)
	if err != nil {
		httputils.HandleError(w, err)
		return
	}

	response := DatasetResponse{
		Columns: ds.Columns(),
		Rows:    ds.Rows(),
		Years:   ds.Years(),
	}
	if err := httputils.SuccessResponse(w, "Dataset preview", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleDatasetCSV(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	ds, err := h.loadDataset(reqID)
	if err != nil {
		httputils.HandleError(w, err)
		return
	}

	if err := httputils.CSVResponse(w, "data.csv", ds.Columns(), ds.Rows()); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleDatasetSummary(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	ds, err := h.loadDataset(reqID)
	if err != nil {
		httputils.HandleError(w, err)
		return
	}

	cleaned, report := ds.Clean()
	h.logger.Info(&reqID, "Dataset cleaned: %d of %d rows kept", report.Remaining, report.Initial)

	response := SummaryResponse{
		Cleaning: report,
		Columns:  cleaned.Describe(),
	}
	if err := httputils.SuccessResponse(w, "Summary statistics", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleDatasetCorrelation(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	ds, err := h.loadDataset(reqID)
	if err != nil {
		httputils.HandleError(w, err)
		return
	}

	cleaned, _ := ds.Clean()
	if err := httputils.SuccessResponse(w, "Correlation matrix", cleaned.Correlation()); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

// HandleDatasetSeries returns one indicator over a year range. The range
// defaults to every year in the cleaned dataset.
func (h *Handler) HandleDatasetSeries(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	column := r.URL.Query().Get("column")
	indicator, ok := dataset.LookupIndicator(column)
	if !ok {
		httputils.HandleError(w, httputils.BadRequest("unknown indicator column '"+column+"'"))
		return
	}

	ds, err := h.loadDataset(reqID)
	if err != nil {
		httputils.HandleError(w, err)
		return
	}

	cleaned, _ := ds.Clean()
	years := cleaned.Years()
	if len(years) == 0 {
		httputils.HandleError(w, &httputils.HTTPError{
			Code:    http.StatusUnprocessableEntity,
			Message: "Dataset has no complete rows",
		})
		return
	}

	from, err := httputils.QueryInt(r, "from", slices.Min(years))
	if err != nil {
		httputils.HandleError(w, err)
		return
	}
	to, err := httputils.QueryInt(r, "to", slices.Max(years))
	if err != nil {
		httputils.HandleError(w, err)
		return
	}
	if to < from {
		httputils.HandleError(w, httputils.BadRequest("'to' must not be before 'from'"))
		return
	}

	filtered, err := cleaned.FilterYears(from, to)
	if err != nil {
		httputils.HandleError(w, err)
		return
	}

	points, err := filtered.Series(column)
	if err != nil {
		h.logger.Error(&reqID, "Failed to build series for %s: %v", column, err)
		httputils.HandleError(w, httputils.BadRequest(err.Error()))
		return
	}

	response := SeriesResponse{Indicator: indicator, From: from, To: to, Points: points}
	if err := httputils.SuccessResponse(w, indicator.Title, response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}
