package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-api-stub/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-api-stub/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
		wantDetail string
	}{
		{
			name:       "fetch failure maps to 502",
			err:        domain.ErrFetchFailed,
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Bad Gateway",
			wantDetail: "failed to fetch todos",
		},
		{
			name:       "save failure maps to 502",
			err:        domain.ErrSaveFailed,
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Bad Gateway",
			wantDetail: "failed to save todos",
		},
		{
			name:       "delete failure maps to 502",
			err:        domain.ErrDeleteFailed,
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Bad Gateway",
			wantDetail: "failed to delete todo",
		},
		{
			name:       "validation maps to 400",
			err:        &domain.ValidationError{Fields: map[string]string{"todos": "must be a JSON array of todos"}},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
			wantDetail: "validation error: todos: must be a JSON array of todos",
		},
		{
			name:       "unknown error maps to 500 and hides its text",
			err:        errors.New("nil pointer somewhere"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
			wantDetail: "an unexpected error occurred",
		},
		{
			name:       "wrapped sentinel keeps its mapping",
			err:        fmt.Errorf("handler: %w", domain.ErrSaveFailed),
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Bad Gateway",
			wantDetail: "handler: failed to save todos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodDelete, "/api/v1/todos/42", nil)
			got := dto.NewErrorResponse(r, tt.err)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantDetail, got.Detail)
			assert.Equal(t, "about:blank", got.Type)
			assert.Equal(t, "/api/v1/todos/42", got.Instance)
		})
	}
}

func TestNewErrorResponse_ValidationDetails(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/todos", nil)
	err := &domain.ValidationError{Fields: map[string]string{
		"todos": "must be a JSON array of todos",
		"body":  "invalid JSON",
	}}

	got := dto.NewErrorResponse(r, err)

	want := []dto.ErrorDetail{
		{Location: "body", Message: "invalid JSON"},
		{Location: "body.todos", Message: "must be a JSON array of todos"},
	}
	if diff := cmp.Diff(want, got.Errors); diff != "" {
		t.Errorf("Errors mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil)

	dto.WriteErrorResponse(rec, r, domain.ErrFetchFailed)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusBadGateway, body.Status)
	assert.Equal(t, "failed to fetch todos", body.Detail)
	assert.Empty(t, body.Errors)
}

func TestWriteProblem(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil)

	dto.WriteProblem(rec, r, http.StatusGatewayTimeout, "request timed out")

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"type": "about:blank",
		"title": "Gateway Timeout",
		"status": 504,
		"detail": "request timed out",
		"instance": "/api/v1/todos"
	}`, rec.Body.String())
}
