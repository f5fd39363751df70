package normalizers

import (
	"fmt"

	"payout-analytics/internal/shared/svcerrors"
)

// ReportNormalizer errors
const (
	codeInvalidInput         = "NRM_1000"
	codeMissingColumn        = "NRM_1001"
	codeUnparseableOrderDate = "NRM_1002"
)

// errInvalidInput returns an error for input that cannot be read as CSV at all.
func errInvalidInput(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidInput, msg, cause)
}

// errMissingColumn returns an error when a column the normalizer requires is
// absent from the report header.
func errMissingColumn(column string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingColumn, fmt.Sprintf("report is missing required column %q", column), nil)
}

// errUnparseableOrderDate returns an error identifying the offending data row
// (1-based, counted from the first data row).
func errUnparseableOrderDate(row int, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnparseableOrderDate,
		fmt.Sprintf("data row %d: cannot parse order date %q", row, value), cause)
}
