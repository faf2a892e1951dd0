package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
}

func TestJSONNilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		err      error
		wantBody string
	}{
		{
			"validation error passes through",
			http.StatusBadRequest,
			errors.New("invalid query parameter: page must be a positive integer"),
			`{"error":"invalid query parameter: page must be a positive integer"}`,
		},
		{
			"not found passes through",
			http.StatusNotFound,
			errors.New("article not found"),
			`{"error":"article not found"}`,
		},
		{
			"database detail masked",
			http.StatusInternalServerError,
			errors.New("pq: connection refused host=10.0.0.5"),
			`{"error":"internal server error"}`,
		},
		{
			"5xx always masked even if message looks safe",
			http.StatusInternalServerError,
			errors.New("invalid memory address"),
			`{"error":"internal server error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SafeError(rec, tt.code, tt.err)
			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestSafeErrorNil(t *testing.T) {
	rec := httptest.NewRecorder()
	SafeError(rec, http.StatusInternalServerError, nil)
	assert.Empty(t, rec.Body.String())
}
