package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation",
			err:        Validation("minutes must be positive"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_error",
		},
		{
			name:       "store unavailable",
			err:        Unavailable("load topic", errors.New("connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "store_unavailable",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("load plan: %w", ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "not found helper",
			err:        NotFound("user %s not found", "u1"),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "external service",
			err:        fmt.Errorf("generate: %w", ErrExternalService),
			wantStatus: http.StatusBadGateway,
			wantCode:   "external_service_error",
		},
		{
			name:       "explicit api error",
			err:        New(http.StatusTooManyRequests, "rate_limited", errors.New("slow down")),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "rate_limited",
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestUnavailable_KeepsCause(t *testing.T) {
	cause := errors.New("i/o timeout")
	err := Unavailable("save streak", cause)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "save streak")
}
