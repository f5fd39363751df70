package http

import (
	"net/http"

	"payout-analytics/internal/queries"
)

type earningsSummaryHandler struct {
	queryService queries.QueryService
}

func NewEarningsSummaryHandler(queryService queries.QueryService) AppHttpHandler {
	return &earningsSummaryHandler{
		queryService: queryService,
	}
}

// Handle processes GET /insights/earnings requests.
func (h *earningsSummaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	summary, err := h.queryService.EarningsSummary(r.Context(), callerID(r))
	if err != nil {
		return err
	}

	return writeJSON(w, summary)
}
