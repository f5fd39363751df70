package ingestors

import (
	"fmt"

	"payout-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed       = "ING_1000"
	codeUnsupportedContentType = "ING_1001"
	codeReportTooLarge         = "ING_1002"

	codeInternalRecordSetStoreFailed = "ING_9000"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errUnsupportedContentType returns an error when the upload is not a CSV report.
func errUnsupportedContentType(contentType string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedContentType,
		fmt.Sprintf("unsupported content type %q: upload a CSV payout report", contentType), nil)
}

// errReportTooLarge returns an error when the upload exceeds the size limit.
func errReportTooLarge(maxBytes int64) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeReportTooLarge,
		fmt.Sprintf("report too large: must be <= %d bytes", maxBytes), nil)
}

// errInternalRecordSetStoreFailed returns an error when a record set store operation fails.
func errInternalRecordSetStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordSetStoreFailed, fmt.Errorf("recordSetStoreFailed: %w", cause))
}
