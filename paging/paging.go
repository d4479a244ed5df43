package paging

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Params selects one page of a listing. Page is 1-indexed.
type Params struct {
	Page     int
	PageSize int
}

// FromRequest reads "page" and "pageSize" query parameters. Absent
// parameters fall back to the defaults; supplied parameters must be
// positive integers.
func FromRequest(r *http.Request) (Params, error) {
	p := Params{Page: DefaultPage, PageSize: DefaultPageSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Params{}, newErrInvalidPagingParam("page", raw)
		}
		p.Page = page
	}
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			return Params{}, newErrInvalidPagingParam("pageSize", raw)
		}
		p.PageSize = pageSize
	}

	return p, nil
}

func (p Params) Validate() error {
	if p.Page < 1 {
		return newErrInvalidPagingParam("page", fmt.Sprintf("%d", p.Page))
	}
	if p.PageSize < 1 {
		return newErrInvalidPagingParam("pageSize", fmt.Sprintf("%d", p.PageSize))
	}
	return nil
}

// Slice returns the requested page of items. A page past the end of the
// listing yields an empty slice, not an error. The page bound is checked
// before the offset is computed, so page numbers near MaxInt cannot wrap
// the multiplication into a negative index.
func Slice[T any](items []T, p Params) []T {
	if p.Page > TotalPages(len(items), p.PageSize) {
		return []T{}
	}
	offset := (p.Page - 1) * p.PageSize
	end := offset + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// TotalPages is ceil(total/pageSize), computed without the usual
// total+pageSize-1 trick so a huge page size cannot overflow.
func TotalPages(total int, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total-1)/pageSize + 1
}
