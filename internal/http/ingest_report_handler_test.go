package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payout-analytics/internal/ingestors"
	ingestormocks "payout-analytics/internal/ingestors/mocks"
	"payout-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestReportHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestReportHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader("Order Date\n"))
	req.Header.Set(headerCallerID, "caller-1")
	req.Header.Set(headerContentType, "text/csv")
	rr := httptest.NewRecorder()

	mockIngestionService.EXPECT().
		IngestReport(
			gomock.Any(),
			"caller-1",
			"text/csv",
			gomock.Any(),
		).
		Return(&ingestors.IngestResult{RecordCount: 42, CoercedMissing: 3, Replaced: true}, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response IngestReportResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 42, response.RecordCount)
	assert.Equal(t, 3, response.CoercedMissing)
	assert.True(t, response.Replaced)
}

func TestIngestReportHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestReportHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader("not a report"))
	req.Header.Set(headerCallerID, "caller-1")
	req.Header.Set(headerContentType, "text/plain")
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("ING_1001", "unsupported content type", nil)
	mockIngestionService.EXPECT().
		IngestReport(
			gomock.Any(),
			"caller-1",
			"text/plain",
			gomock.Any(),
		).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1001", svcErr.Code)
	// Status should not be set when error occurs
	assert.Equal(t, http.StatusOK, rr.Code)
}
