package ingestors

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"payout-analytics/internal/normalizers"
	"payout-analytics/internal/shared/loggers"
	"payout-analytics/internal/shared/metrics"
	"payout-analytics/internal/shared/svcerrors"
	"payout-analytics/internal/stores"
)

const FormatCSV = "csv"

// IngestResult reports what a successful upload produced.
type IngestResult struct {
	// RecordCount is the number of normalized orders stored.
	RecordCount int
	// CoercedMissing counts earnings cells recorded as missing (data quality).
	CoercedMissing int
	// Replaced is true when the upload displaced a prior snapshot.
	Replaced bool
}

// IngestionService normalizes an uploaded payout report and stores the
// resulting record set for the caller, fully replacing any prior set. A
// normalization failure aborts ingestion entirely: no partial record set is
// ever stored.
//
//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	IngestReport(ctx context.Context, callerID string, contentType string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	normalizer     normalizers.ReportNormalizer
	recordSetStore stores.RecordSetStore
	maxUploadBytes int64
}

func NewIngestionService(normalizer normalizers.ReportNormalizer, recordSetStore stores.RecordSetStore, maxUploadBytes int64) IngestionService {
	return &ingestionService{
		normalizer:     normalizer,
		recordSetStore: recordSetStore,
		maxUploadBytes: maxUploadBytes,
	}
}

func (s *ingestionService) IngestReport(ctx context.Context, callerID string, contentType string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldCallerID, callerID).Msg("started ingesting payout report")

	body, err := s.validateUpload(callerID, contentType, r)
	if err != nil {
		return nil, err
	}

	normalized, err := s.normalizer.Normalize(bytes.NewReader(body))
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricReportIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	replaced, err := s.hasPriorSnapshot(ctx, callerID)
	if err != nil {
		return nil, errInternalRecordSetStoreFailed(err)
	}

	if err := s.recordSetStore.Put(ctx, callerID, normalized.RecordSet); err != nil {
		return nil, errInternalRecordSetStoreFailed(err)
	}

	logger.Info().
		Str(loggers.FieldCallerID, callerID).
		Int(loggers.FieldRecordCount, len(normalized.RecordSet.Orders)).
		Int("coerced_missing", normalized.CoercedMissing).
		Bool("replaced", replaced).
		Msg("payout report ingested")

	metricReportIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &IngestResult{
		RecordCount:    len(normalized.RecordSet.Orders),
		CoercedMissing: normalized.CoercedMissing,
		Replaced:       replaced,
	}, nil
}

func (s *ingestionService) validateUpload(callerID string, contentType string, r io.Reader) ([]byte, error) {
	if strings.TrimSpace(callerID) == "" {
		return nil, errValidationFailed("callerID is required", nil)
	}
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}
	if !strings.Contains(strings.ToLower(contentType), FormatCSV) {
		return nil, errUnsupportedContentType(contentType)
	}

	// Read with a limit; one extra byte detects oversize.
	buf, err := io.ReadAll(io.LimitReader(r, s.maxUploadBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if int64(len(buf)) > s.maxUploadBytes {
		return nil, errReportTooLarge(s.maxUploadBytes)
	}
	return buf, nil
}

func (s *ingestionService) hasPriorSnapshot(ctx context.Context, callerID string) (bool, error) {
	_, err := s.recordSetStore.Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, stores.ErrRecordSetNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
