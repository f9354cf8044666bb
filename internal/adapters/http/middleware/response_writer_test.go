package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_DefaultsToOK(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())
	if rw.statusCode != http.StatusOK {
		t.Errorf("statusCode = %d, want %d", rw.statusCode, http.StatusOK)
	}
	if rw.headerWritten {
		t.Error("headerWritten = true before any write")
	}
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusBadGateway)
	rw.WriteHeader(http.StatusOK)

	if rw.statusCode != http.StatusBadGateway {
		t.Errorf("statusCode = %d, want %d", rw.statusCode, http.StatusBadGateway)
	}
	if rec.Code != http.StatusBadGateway {
		t.Errorf("recorder code = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}

func TestResponseWriter_CountsBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	_, _ = rw.Write([]byte(`{"todos":[],`))
	_, _ = rw.Write([]byte(`"count":0}`))

	if !rw.headerWritten {
		t.Error("headerWritten = false after Write")
	}
	if rw.written != 22 {
		t.Errorf("written = %d, want 22", rw.written)
	}
	if got := rec.Body.String(); got != `{"todos":[],"count":0}` {
		t.Errorf("body = %q", got)
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if newResponseWriter(rec).Unwrap() != rec {
		t.Error("Unwrap did not return the wrapped writer")
	}
}
