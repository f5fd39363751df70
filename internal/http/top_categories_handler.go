package http

import (
	"context"
	"net/http"

	"payout-analytics/internal/aggregators"
	"payout-analytics/internal/queries"
)

// topCategoriesHandler serves both top-products and top-designs, which differ
// only in the query service method they call.
type topCategoriesHandler struct {
	fetch func(ctx context.Context, callerID string, window string, limit string) ([]aggregators.CategoryCount, error)
}

func NewTopProductsHandler(queryService queries.QueryService) AppHttpHandler {
	return &topCategoriesHandler{fetch: queryService.TopProducts}
}

func NewTopDesignsHandler(queryService queries.QueryService) AppHttpHandler {
	return &topCategoriesHandler{fetch: queryService.TopDesigns}
}

// TopCategoriesResponse lists categories ranked by order count.
type TopCategoriesResponse struct {
	Categories []aggregators.CategoryCount `json:"categories"`
}

func (h *topCategoriesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	categories, err := h.fetch(r.Context(), callerID(r), query.Get("window"), query.Get("limit"))
	if err != nil {
		return err
	}

	return writeJSON(w, TopCategoriesResponse{Categories: categories})
}
