package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/adapters/http/dto"
	"notekeeper/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        domain.NewNotFoundError("item", "abc"),
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeNotFound,
		},
		{
			name:       "conflict",
			err:        domain.NewConflictError("item", "duplicate id"),
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeConflict,
		},
		{
			name:       "validation",
			err:        domain.NewValidationError("message", "must not be empty"),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name:       "unavailable",
			err:        domain.NewUnavailableError("mongodb", "connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   dto.ErrorCodeUnavailable,
		},
		{
			name:       "unknown",
			err:        errors.New("something odd"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestMapDomainError_Nil(t *testing.T) {
	status, resp := MapDomainError(nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

func TestMapDomainError_ValidationDetails(t *testing.T) {
	_, resp := MapDomainError(domain.NewValidationError("message", "must not be empty"))

	require.NotNil(t, resp)
	assert.Equal(t, "must not be empty", resp.Error.Details["message"])
}

func TestMapDomainError_UnknownErrorHidesDetails(t *testing.T) {
	_, resp := MapDomainError(errors.New("secret database path leaked"))

	require.NotNil(t, resp)
	assert.NotContains(t, resp.Error.Message, "secret")
}
