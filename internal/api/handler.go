package api

import (
	"errors"
	"net/http"

	"github.com/wgomg/klhousing/internal/config"
	"github.com/wgomg/klhousing/internal/dataset"
	"github.com/wgomg/klhousing/internal/metrics"
	"github.com/wgomg/klhousing/internal/reddit"
	"github.com/wgomg/klhousing/internal/textfreq"
	"github.com/wgomg/klhousing/internal/utils"
	"github.com/wgomg/klhousing/internal/utils/httputils"
)

type Handler struct {
	logger    *utils.Logger
	searcher  reddit.Searcher
	extractor *textfreq.Extractor
	metrics   *metrics.Metrics
	cfg       *config.Config
}

func NewHandler(
	logger *utils.Logger,
	searcher reddit.Searcher,
	extractor *textfreq.Extractor,
	metrics *metrics.Metrics,
	cfg *config.Config,
) *Handler {
	return &Handler{
		logger:    logger,
		searcher:  searcher,
		extractor: extractor,
		metrics:   metrics,
		cfg:       cfg,
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	if err := httputils.SuccessResponse(w, "KL housing dashboard is running", nil); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandlePages(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	if err := httputils.SuccessResponse(w, "Dashboard pages", pages); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

// loadDataset reads the configured CSV and maps load failures onto HTTP errors.
func (h *Handler) loadDataset(reqID string) (*dataset.Dataset, error) {
	ds, err := dataset.Load(h.cfg.Dataset.Path, dataset.DefaultSchema)
	if err == nil {
		return ds, nil
	}

	h.logger.Error(&reqID, "Failed to load dataset: %v", err)

	var missing *dataset.MissingFieldError
	switch {
	case errors.Is(err, dataset.ErrDatasetNotFound):
		return nil, &httputils.HTTPError{
			Code:    http.StatusNotFound,
			Message: "data.csv not found. Please make sure it's in the same folder.",
		}
	case errors.As(err, &missing):
		return nil, &httputils.HTTPError{
			Code:    http.StatusUnprocessableEntity,
			Message: "Dataset is " + missing.Error(),
		}
	default:
		return nil, err
	}
}
