package queries

import (
	"fmt"

	"payout-analytics/internal/shared/svcerrors"
)

// QueryService errors
const (
	codeInvalidParameter = "QRY_1000"
	codeNoReportUploaded = "QRY_1001"
	codeMissingColumn    = "QRY_1002"

	codeInternalRecordSetStoreFailed = "QRY_9000"
)

// errInvalidParameter names the offending parameter so the caller can correct
// the request.
func errInvalidParameter(param string, detail string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidParameter,
		fmt.Sprintf("parameter %s: %s", param, detail), nil)
}

// errNoReportUploaded returns an error when no record set is stored for the caller.
func errNoReportUploaded() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoReportUploaded, "no payout report uploaded", nil)
}

// errMissingColumn returns an error when the stored report lacks a column the
// query needs.
func errMissingColumn(column string) *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeMissingColumn,
		fmt.Sprintf("uploaded report has no %q column", column), nil)
}

// errInternalRecordSetStoreFailed returns an error when a record set store operation fails.
func errInternalRecordSetStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordSetStoreFailed, fmt.Errorf("recordSetStoreFailed: %w", cause))
}

func asServiceError(err error) (*svcerrors.ServiceError, bool) {
	return svcerrors.AsServiceError(err)
}
