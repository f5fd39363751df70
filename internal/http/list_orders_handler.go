package http

import (
	"net/http"

	"payout-analytics/internal/queries"
)

type listOrdersHandler struct {
	queryService queries.QueryService
}

func NewListOrdersHandler(queryService queries.QueryService) AppHttpHandler {
	return &listOrdersHandler{
		queryService: queryService,
	}
}

// Handle processes GET /orders requests.
func (h *listOrdersHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	listing, err := h.queryService.ListOrders(r.Context(), callerID(r), r.URL.Query().Get("time_scale"))
	if err != nil {
		return err
	}

	return writeJSON(w, listing)
}
