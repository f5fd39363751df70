package http

import (
	"net/http"

	"payout-analytics/internal/ingestors"
	"payout-analytics/internal/queries"
	"payout-analytics/internal/shared/loggers"
	"payout-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, queryService queries.QueryService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Routes
	router.Post("/reports", errorHandlingAdapter(NewIngestReportHandler(ingestionService)))
	router.Get("/orders", errorHandlingAdapter(NewListOrdersHandler(queryService)))
	router.Route("/insights", func(r chi.Router) {
		r.Get("/top-products", errorHandlingAdapter(NewTopProductsHandler(queryService)))
		r.Get("/top-designs", errorHandlingAdapter(NewTopDesignsHandler(queryService)))
		r.Get("/earnings", errorHandlingAdapter(NewEarningsSummaryHandler(queryService)))
		r.Get("/series/sales", errorHandlingAdapter(NewSalesSeriesHandler(queryService)))
		r.Get("/series/earnings", errorHandlingAdapter(NewEarningsSeriesHandler(queryService)))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
