package domain

import "errors"

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrUnauthorized = errors.New("authentication required")
)

// Pagination describes the slice of a filtered result set that a list
// endpoint returned. PerPage == 0 means the whole set came back in one page.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int64 `json:"total_pages"`
}

// NewPagination computes total_pages from the post-filter row count.
func NewPagination(page, perPage int, total int64) Pagination {
	pages := int64(1)
	if perPage > 0 {
		pages = (total + int64(perPage) - 1) / int64(perPage)
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: pages,
	}
}
