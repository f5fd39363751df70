package http

import (
	"context"
	"net/http"

	"payout-analytics/internal/aggregators"
	"payout-analytics/internal/queries"
)

// seriesHandler serves the sales and earnings time series endpoints.
type seriesHandler struct {
	fetch func(ctx context.Context, callerID string, granularity string) ([]aggregators.SeriesPoint, error)
}

func NewSalesSeriesHandler(queryService queries.QueryService) AppHttpHandler {
	return &seriesHandler{fetch: queryService.SalesSeries}
}

func NewEarningsSeriesHandler(queryService queries.QueryService) AppHttpHandler {
	return &seriesHandler{fetch: queryService.EarningsSeries}
}

// SeriesResponse is a gap-filled, chronologically ordered time series.
type SeriesResponse struct {
	Points []aggregators.SeriesPoint `json:"points"`
}

func (h *seriesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	points, err := h.fetch(r.Context(), callerID(r), r.URL.Query().Get("granularity"))
	if err != nil {
		return err
	}

	return writeJSON(w, SeriesResponse{Points: points})
}
