package entity

// Pagination is a normalized page request.
type Pagination struct {
	Page  int
	Limit int
}

// Offset is the number of rows to skip.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one page of results plus the total row count.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// NewPage assembles a page, computing the page count.
func NewPage[T any](items []T, total int64, p Pagination) *Page[T] {
	pages := 0
	if p.Limit > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	if items == nil {
		items = []T{}
	}

	return &Page[T]{Items: items, Total: total, Page: p.Page, Limit: p.Limit, Pages: pages}
}
