package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"payout-analytics/internal/aggregators"
	"payout-analytics/internal/models"
	"payout-analytics/internal/queries"
	querymocks "payout-analytics/internal/queries/mocks"
	"payout-analytics/internal/shared/svcerrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQueryRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(headerCallerID, "caller-1")
	return req
}

func TestListOrdersHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueryService := querymocks.NewMockQueryService(ctrl)
	handler := NewListOrdersHandler(mockQueryService)

	listing := &queries.OrderListing{
		Columns: []string{models.ColumnOrderDate, models.ColumnProduct},
		Orders:  []*models.Order{},
	}
	mockQueryService.EXPECT().
		ListOrders(gomock.Any(), "caller-1", "month").
		Return(listing, nil)

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newQueryRequest("/orders?time_scale=month"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var response queries.OrderListing
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, listing.Columns, response.Columns)
}

func TestListOrdersHandler_Handle_NoTimeScale(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueryService := querymocks.NewMockQueryService(ctrl)
	handler := NewListOrdersHandler(mockQueryService)

	mockQueryService.EXPECT().
		ListOrders(gomock.Any(), "caller-1", "").
		Return(&queries.OrderListing{}, nil)

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newQueryRequest("/orders"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestTopProductsHandler_Handle_PassesParams(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueryService := querymocks.NewMockQueryService(ctrl)
	handler := NewTopProductsHandler(mockQueryService)

	counts := []aggregators.CategoryCount{
		{Category: "Mug", Count: 7},
		{Category: "Shirt", Count: 2},
	}
	mockQueryService.EXPECT().
		TopProducts(gomock.Any(), "caller-1", "week", "5").
		Return(counts, nil)

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newQueryRequest("/insights/top-products?window=week&limit=5"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var response TopCategoriesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, counts, response.Categories)
}

func TestTopDesignsHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueryService := querymocks.NewMockQueryService(ctrl)
	handler := NewTopDesignsHandler(mockQueryService)

	expectedErr := svcerrors.NewFailedPreconditionError("QRY_1002", "column Title is not present", nil)
	mockQueryService.EXPECT().
		TopDesigns(gomock.Any(), "caller-1", "", "").
		Return(nil, expectedErr)

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newQueryRequest("/insights/top-designs"))

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "QRY_1002", svcErr.Code)
}

func TestEarningsSummaryHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueryService := querymocks.NewMockQueryService(ctrl)
	handler := NewEarningsSummaryHandler(mockQueryService)

	summary := &aggregators.EarningsSummary{}
	mockQueryService.EXPECT().
		EarningsSummary(gomock.Any(), "caller-1").
		Return(summary, nil)

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newQueryRequest("/insights/earnings"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestSalesSeriesHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueryService := querymocks.NewMockQueryService(ctrl)
	handler := NewSalesSeriesHandler(mockQueryService)

	points := []aggregators.SeriesPoint{
		{Period: "2024-03", Value: decimal.NewFromInt(2)},
		{Period: "2024-04", Value: decimal.Zero},
	}
	mockQueryService.EXPECT().
		SalesSeries(gomock.Any(), "caller-1", "month").
		Return(points, nil)

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newQueryRequest("/insights/series/sales?granularity=month"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestEarningsSeriesHandler_Handle_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueryService := querymocks.NewMockQueryService(ctrl)
	handler := NewEarningsSeriesHandler(mockQueryService)

	expectedErr := svcerrors.NewNotFoundError("QRY_1001", "no report uploaded for caller", nil)
	mockQueryService.EXPECT().
		EarningsSeries(gomock.Any(), "caller-1", "").
		Return(nil, expectedErr)

	rr := httptest.NewRecorder()
	err := handler.Handle(rr, newQueryRequest("/insights/series/earnings"))

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "QRY_1001", svcErr.Code)
}
