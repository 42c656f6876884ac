package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stayloop/hotel-bookings/internal/domain"
	"github.com/stayloop/hotel-bookings/internal/http/response"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation",
			err:      domain.Validationf("email is required"),
			wantCode: http.StatusBadRequest,
			wantBody: "email is required",
		},
		{
			name:     "invalid credentials",
			err:      domain.ErrInvalidCredentials,
			wantCode: http.StatusUnauthorized,
			wantBody: domain.ErrInvalidCredentials.Error(),
		},
		{
			name:     "conflict",
			err:      fmt.Errorf("%w: email or phone already registered", domain.ErrConflict),
			wantCode: http.StatusConflict,
			wantBody: "already exists: email or phone already registered",
		},
		{
			name:     "not found",
			err:      fmt.Errorf("%w: hotel", domain.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantBody: "not found: hotel",
		},
		{
			name:     "unexpected errors stay opaque",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: "internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.FromError(rec, tt.err)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			var body response.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tt.wantBody {
				t.Errorf("error = %q, want %q", body.Error, tt.wantBody)
			}
		})
	}
}
