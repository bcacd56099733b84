package models

// Pagination defaults shared by list and search operations
const (
	DefaultPage    = 1
	DefaultPerPage = 25
)

// PaginatedResponse contains one page of a list endpoint. Page numbers are 1-based.
type PaginatedResponse[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`

	FirstPageURL string `json:"first_page_url,omitempty"`
	LastPageURL  string `json:"last_page_url,omitempty"`
	NextPageURL  string `json:"next_page_url,omitempty"`
	PrevPageURL  string `json:"prev_page_url,omitempty"`
}

// HasMore reports whether a page follows this one
func (p PaginatedResponse[T]) HasMore() bool {
	return p.CurrentPage < p.LastPage
}
