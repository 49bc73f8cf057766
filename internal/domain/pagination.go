package domain

// PaginationParams carries normalized page/page-size values parsed from a
// request query string.
type PaginationParams struct {
	Page    int
	PerPage int
}

// Offset returns the row offset for the current page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}
