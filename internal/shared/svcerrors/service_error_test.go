package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("QRY_1000", "validation failed", nil),
			wantErr: NewInvalidArgumentError("QRY_1000", "validation failed", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("QRY_9000", nil)),
			wantErr: NewInternalError("QRY_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_StatusCodes(t *testing.T) {
	assert.Equal(t, 400, NewInvalidArgumentError("QRY_1000", "bad window", nil).HttpStatusCode)
	assert.Equal(t, 404, NewNotFoundError("QRY_1001", "no report", nil).HttpStatusCode)
	assert.Equal(t, 422, NewFailedPreconditionError("QRY_1002", "missing column", nil).HttpStatusCode)
	assert.Equal(t, 500, NewInternalErrorUndefined(errors.New("boom")).HttpStatusCode)
	assert.True(t, NewInternalErrorUndefined(nil).IsInternalError())
	assert.False(t, NewNotFoundError("QRY_1001", "no report", nil).IsInternalError())
}
