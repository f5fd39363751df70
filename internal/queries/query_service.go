package queries

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"payout-analytics/internal/aggregators"
	"payout-analytics/internal/models"
	"payout-analytics/internal/periods"
	"payout-analytics/internal/shared/loggers"
	"payout-analytics/internal/shared/metrics"
	"payout-analytics/internal/stores"
)

const maxTopN = 100

// OrderListing is the full-row projection of a caller's orders in a window.
type OrderListing struct {
	Columns []string        `json:"columns"`
	Orders  []*models.Order `json:"orders"`
}

// QueryService answers analytical queries against a caller's stored record
// set. Every parameter is validated strictly: an unrecognized window,
// time scale, or granularity is an InvalidParameter error, never a silent
// default. An absent parameter falls back to alltime (windows) or day
// (granularity). Queries never mutate the stored record set.
//
//go:generate mockgen -source=query_service.go -destination=./mocks/query_service_mock.go -package=mocks
type QueryService interface {
	// ListOrders returns the caller's orders with order_date >= the bound of
	// timeScale, preserving source order and passthrough columns.
	ListOrders(ctx context.Context, callerID string, timeScale string) (*OrderListing, error)
	// TopProducts returns up to limit products by order count. An absent
	// limit selects the configured default.
	TopProducts(ctx context.Context, callerID string, window string, limit string) ([]aggregators.CategoryCount, error)
	// TopDesigns returns up to limit designs (titles) by order count.
	TopDesigns(ctx context.Context, callerID string, window string, limit string) ([]aggregators.CategoryCount, error)
	// EarningsSummary returns totals for all five windows plus all-time
	// per-day/per-week/per-month averages.
	EarningsSummary(ctx context.Context, callerID string) (*aggregators.EarningsSummary, error)
	// SalesSeries returns the gap-filled per-period order counts.
	SalesSeries(ctx context.Context, callerID string, granularity string) ([]aggregators.SeriesPoint, error)
	// EarningsSeries returns the gap-filled per-period total-earnings sums.
	EarningsSeries(ctx context.Context, callerID string, granularity string) ([]aggregators.SeriesPoint, error)
}

type queryService struct {
	recordSetStore stores.RecordSetStore
	defaultTopN    int
	now            func() time.Time
}

// NewQueryService creates a QueryService. now supplies the reference time for
// window resolution; pass time.Now outside tests.
func NewQueryService(recordSetStore stores.RecordSetStore, defaultTopN int, now func() time.Time) QueryService {
	return &queryService{
		recordSetStore: recordSetStore,
		defaultTopN:    defaultTopN,
		now:            now,
	}
}

func (s *queryService) ListOrders(ctx context.Context, callerID string, timeScale string) (*OrderListing, error) {
	window, err := s.parseWindowParam("time_scale", timeScale)
	if err != nil {
		return nil, s.counted(opListOrders, err)
	}
	recordSet, err := s.loadRecordSet(ctx, callerID)
	if err != nil {
		return nil, s.counted(opListOrders, err)
	}

	listing := &OrderListing{
		Columns: recordSet.Columns,
		Orders:  recordSet.OrdersSince(periods.Resolve(s.now(), window)),
	}
	s.logQuery(ctx, opListOrders, callerID, string(window))
	metricQueriesTotal.WithLabelValues(opListOrders, metrics.ValueNoError).Inc()
	return listing, nil
}

func (s *queryService) TopProducts(ctx context.Context, callerID string, window string, limit string) ([]aggregators.CategoryCount, error) {
	return s.topCategories(ctx, opTopProducts, callerID, window, limit, aggregators.CategoryProduct)
}

func (s *queryService) TopDesigns(ctx context.Context, callerID string, window string, limit string) ([]aggregators.CategoryCount, error) {
	return s.topCategories(ctx, opTopDesigns, callerID, window, limit, aggregators.CategoryTitle)
}

func (s *queryService) topCategories(ctx context.Context, operation string, callerID string, windowParam string, limitParam string, field aggregators.CategoryField) ([]aggregators.CategoryCount, error) {
	window, err := s.parseWindowParam("window", windowParam)
	if err != nil {
		return nil, s.counted(operation, err)
	}
	limit, err := s.parseLimitParam(limitParam)
	if err != nil {
		return nil, s.counted(operation, err)
	}

	recordSet, err := s.loadRecordSet(ctx, callerID)
	if err != nil {
		return nil, s.counted(operation, err)
	}
	if err := requireColumn(recordSet, field.Column()); err != nil {
		return nil, s.counted(operation, err)
	}

	orders := recordSet.OrdersSince(periods.Resolve(s.now(), window))
	s.logQuery(ctx, operation, callerID, string(window))
	metricQueriesTotal.WithLabelValues(operation, metrics.ValueNoError).Inc()
	return aggregators.TopCategories(orders, field, limit), nil
}

func (s *queryService) EarningsSummary(ctx context.Context, callerID string) (*aggregators.EarningsSummary, error) {
	recordSet, err := s.loadRecordSet(ctx, callerID)
	if err != nil {
		return nil, s.counted(opEarningsSummary, err)
	}
	// Totals and averages silently summing zeros would be misleading: the
	// earnings column must actually exist.
	if err := requireColumn(recordSet, models.ColumnTotalEarnings); err != nil {
		return nil, s.counted(opEarningsSummary, err)
	}

	s.logQuery(ctx, opEarningsSummary, callerID, "")
	metricQueriesTotal.WithLabelValues(opEarningsSummary, metrics.ValueNoError).Inc()
	return aggregators.SummarizeEarnings(recordSet, s.now()), nil
}

func (s *queryService) SalesSeries(ctx context.Context, callerID string, granularity string) ([]aggregators.SeriesPoint, error) {
	return s.series(ctx, opSalesSeries, callerID, granularity, aggregators.MetricSales)
}

func (s *queryService) EarningsSeries(ctx context.Context, callerID string, granularity string) ([]aggregators.SeriesPoint, error) {
	return s.series(ctx, opEarningsSeries, callerID, granularity, aggregators.MetricEarnings)
}

func (s *queryService) series(ctx context.Context, operation string, callerID string, granularityParam string, metric aggregators.SeriesMetric) ([]aggregators.SeriesPoint, error) {
	granularity, err := s.parseGranularityParam(granularityParam)
	if err != nil {
		return nil, s.counted(operation, err)
	}
	recordSet, err := s.loadRecordSet(ctx, callerID)
	if err != nil {
		return nil, s.counted(operation, err)
	}
	if metric == aggregators.MetricEarnings {
		if err := requireColumn(recordSet, models.ColumnTotalEarnings); err != nil {
			return nil, s.counted(operation, err)
		}
	}

	s.logQuery(ctx, operation, callerID, string(granularity))
	metricQueriesTotal.WithLabelValues(operation, metrics.ValueNoError).Inc()
	return aggregators.BuildSeries(recordSet.Orders, granularity, metric), nil
}

func (s *queryService) loadRecordSet(ctx context.Context, callerID string) (*models.RecordSet, error) {
	if strings.TrimSpace(callerID) == "" {
		return nil, errInvalidParameter("callerID", "is required")
	}
	recordSet, err := s.recordSetStore.Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, stores.ErrRecordSetNotFound) {
			return nil, errNoReportUploaded()
		}
		return nil, errInternalRecordSetStoreFailed(err)
	}
	return recordSet, nil
}

// parseWindowParam validates a window-valued query parameter. An absent
// parameter means alltime; anything present must parse.
func (s *queryService) parseWindowParam(param string, value string) (models.Window, error) {
	if strings.TrimSpace(value) == "" {
		return models.WindowAllTime, nil
	}
	window, err := models.ParseWindow(value)
	if err != nil {
		return "", errInvalidParameter(param, err.Error())
	}
	return window, nil
}

// parseLimitParam validates a top-N limit, defaulting an absent one to the
// configured default.
func (s *queryService) parseLimitParam(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return s.defaultTopN, nil
	}
	limit, err := strconv.Atoi(trimmed)
	if err != nil || limit < 1 {
		return 0, errInvalidParameter("limit", "must be a positive integer")
	}
	if limit > maxTopN {
		return 0, errInvalidParameter("limit", fmt.Sprintf("must be at most %d", maxTopN))
	}
	return limit, nil
}

// parseGranularityParam validates a granularity parameter, defaulting an
// absent one to day.
func (s *queryService) parseGranularityParam(value string) (models.Granularity, error) {
	if strings.TrimSpace(value) == "" {
		return models.GranularityDay, nil
	}
	granularity, err := models.ParseGranularity(value)
	if err != nil {
		return "", errInvalidParameter("granularity", err.Error())
	}
	return granularity, nil
}

func requireColumn(recordSet *models.RecordSet, column string) error {
	if !recordSet.HasColumn(column) {
		return errMissingColumn(column)
	}
	return nil
}

// counted increments the per-operation error metric and passes err through.
func (s *queryService) counted(operation string, err error) error {
	code := ""
	if svcErr, ok := asServiceError(err); ok {
		code = svcErr.Code
	}
	metricQueriesTotal.WithLabelValues(operation, code).Inc()
	return err
}

func (s *queryService) logQuery(ctx context.Context, operation string, callerID string, scope string) {
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldCallerID, callerID).
		Str("operation", operation).
		Str("scope", scope).
		Msg("query served")
}
