package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "validation", err: ErrValidation, expectedStatus: http.StatusBadRequest, expectedCode: "VALIDATION_ERROR"},
		{name: "duplicate email", err: ErrDuplicateEmail, expectedStatus: http.StatusConflict, expectedCode: "DUPLICATE_EMAIL"},
		{name: "invalid credentials", err: ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedCode: "INVALID_CREDENTIALS"},
		{name: "unauthorized", err: ErrUnauthorized, expectedStatus: http.StatusUnauthorized, expectedCode: "UNAUTHORIZED"},
		{name: "wrapped sentinel", err: fmt.Errorf("check: %w", ErrDuplicateEmail), expectedStatus: http.StatusConflict, expectedCode: "DUPLICATE_EMAIL"},
		{name: "unknown error", err: assert.AnError, expectedStatus: http.StatusInternalServerError, expectedCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, he.StatusCode)
			assert.Equal(t, tt.expectedCode, he.Code)

			resp := he.ToErrorResponse()
			assert.Equal(t, tt.expectedCode, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}
