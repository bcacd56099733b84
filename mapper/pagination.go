package mapper

import (
	"github.com/ONSdigital/dp-healthdata-discovery/models"
)

// ParseAll maps every raw item. The result is never nil.
func ParseAll[T any](items []map[string]interface{}, parse func(map[string]interface{}) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, parse(item))
	}
	return out
}

// Items maps the list held under the "data" key of a response envelope,
// skipping empty or non-object entries.
func Items[T any](body map[string]interface{}, parse func(map[string]interface{}) T) []T {
	return ParseAll(objects(body, "data"), parse)
}

// Unwrap returns the object held under "data", or the body itself when the
// response is not enveloped.
func Unwrap(body map[string]interface{}) map[string]interface{} {
	if data := object(body, "data"); data != nil {
		return data
	}
	return body
}

// ParsePaginated maps a paginated list envelope. The requested page and
// page size stand in for any the envelope leaves out.
func ParsePaginated[T any](body map[string]interface{}, page, perPage int, parse func(map[string]interface{}) T) models.PaginatedResponse[T] {
	p := models.PaginatedResponse[T]{
		Data:         Items(body, parse),
		CurrentPage:  integer(body, "current_page", "currentPage"),
		PerPage:      integer(body, "per_page", "perPage"),
		Total:        count(body, "total"),
		LastPage:     integer(body, "last_page", "lastPage"),
		FirstPageURL: str(body, "first_page_url", "firstPageUrl"),
		LastPageURL:  str(body, "last_page_url", "lastPageUrl"),
		NextPageURL:  str(body, "next_page_url", "nextPageUrl"),
		PrevPageURL:  str(body, "prev_page_url", "prevPageUrl"),
	}

	if p.CurrentPage < 1 {
		p.CurrentPage = max(page, models.DefaultPage)
	}
	if p.PerPage < 1 {
		p.PerPage = perPage
		if p.PerPage < 1 {
			p.PerPage = models.DefaultPerPage
		}
	}
	if p.LastPage < 1 {
		p.LastPage = max(p.CurrentPage, (p.Total+p.PerPage-1)/p.PerPage)
	}

	return p
}
