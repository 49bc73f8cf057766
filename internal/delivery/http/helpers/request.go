package helpers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"communityhub/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate leniently decodes the request body into dest and, if dest
// implements Validator, runs Validate(). A malformed or empty body is treated
// as "no body supplied" and leaves dest zero-valued, so required-field
// validation produces the 400 rather than a decode error. On validation
// failure it writes a 400 envelope and returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(dest)
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteError(w, http.StatusBadRequest, strings.Join(errs, "; "))
			return false
		}
	}
	return true
}

// Query returns the named query parameter, or "" when absent.
func Query(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}

// ParsePagination reads page and per_page from the query string, clamping
// them to valid ranges. Invalid or missing values fall back to defaults.
func ParsePagination(r *http.Request) domain.PaginationParams {
	page := DefaultPage
	if s := Query(r, "page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			page = v
		}
	}
	perPage := DefaultPerPage
	if s := Query(r, "per_page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			perPage = v
			if perPage > MaxPerPage {
				perPage = MaxPerPage
			}
		}
	}
	return domain.PaginationParams{Page: page, PerPage: perPage}
}
