package listview

import "strings"

// Direction is the sort order applied to SortField.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection maps "desc" (any case) to Desc and everything else to Asc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// Params describes one view over a collection. It is rebuilt on every request.
type Params struct {
	// Search is matched case-insensitively as a substring of any SearchFields value.
	Search       string
	SearchFields []string

	// Filters requires exact equality between the field's text form and the value.
	// Empty values are wildcards.
	Filters map[string]string

	SortField string
	SortDir   Direction

	// Page is 1-based. PageSize <= 0 puts the whole result on a single page.
	Page     int
	PageSize int
}

// Result is the visible slice of a collection plus pagination metadata.
type Result[T any] struct {
	Items       []T `json:"items"`
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// ClampPage bounds page to [1, totalPages]. Zero pages still clamps to page 1.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
