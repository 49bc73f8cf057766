package helpers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"communityhub/internal/domain"
)

type stubRequest struct {
	Name string `json:"name"`
}

func (s stubRequest) Validate() []string {
	if s.Name == "" {
		return []string{"Name is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantOK   bool
		wantCode int
	}{
		{name: "valid body", body: `{"name":"Alice"}`, wantOK: true},
		{name: "malformed body falls through to validation", body: `{{{`, wantOK: false, wantCode: http.StatusBadRequest},
		{name: "empty body falls through to validation", body: ``, wantOK: false, wantCode: http.StatusBadRequest},
		{name: "valid json missing fields", body: `{}`, wantOK: false, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			var dest stubRequest
			ok := DecodeAndValidate(rec, req, &dest)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, tt.wantCode, rec.Code)
				assert.Contains(t, rec.Body.String(), "Name is required")
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.PaginationParams
	}{
		{name: "defaults", query: "", want: domain.PaginationParams{Page: 1, PerPage: 20}},
		{name: "explicit values", query: "page=3&per_page=50", want: domain.PaginationParams{Page: 3, PerPage: 50}},
		{name: "per_page capped", query: "per_page=500", want: domain.PaginationParams{Page: 1, PerPage: 100}},
		{name: "invalid values fall back", query: "page=zero&per_page=-2", want: domain.PaginationParams{Page: 1, PerPage: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x?"+tt.query, nil)
			assert.Equal(t, tt.want, ParsePagination(req))
		})
	}
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusNotFound, "Survey not found")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Survey not found"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
