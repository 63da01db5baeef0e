package models

import "math"

// MaxPageSize caps the page size a client may request.
const MaxPageSize = 100

// Page is a normalized 1-indexed page request.
type Page struct {
	Number int
	Size   int
}

// NewPage normalizes a client-supplied page request. Numbers below one
// become one and sizes below one become defaultSize. Sizes above
// [MaxPageSize] are capped, and numbers are capped so that the row offset
// fits a signed 64-bit integer.
func NewPage(number, size, defaultSize int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	number = min(number, math.MaxInt64/size)
	return Page{Number: number, Size: size}
}

// Offset returns how many rows precede the page.
func (p Page) Offset() uint64 {
	return uint64((p.Number - 1) * p.Size)
}

// Limit returns the page size as a query limit.
func (p Page) Limit() uint64 {
	return uint64(p.Size)
}

// Pagination describes the position of a page within the full result.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// PageResult is one page of a listing.
type PageResult[T any] struct {
	List       []T        `json:"list"`
	Pagination Pagination `json:"pagination"`
}

// NewPageResult builds a page with totalPages = ceil(total/size).
func NewPageResult[T any](list []T, total int, page Page) PageResult[T] {
	if list == nil {
		list = []T{}
	}

	totalPages := 0
	if page.Size > 0 {
		totalPages = (total + page.Size - 1) / page.Size
	}

	return PageResult[T]{
		List: list,
		Pagination: Pagination{
			Total:      total,
			Page:       page.Number,
			PageSize:   page.Size,
			TotalPages: totalPages,
		},
	}
}
