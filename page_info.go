package gqlpager

import (
	"context"

	"github.com/samber/lo"
)

// PageInfo describes where a page sits within the dataset.
type PageInfo struct {
	// Page echoes the requested page.
	Page int `json:"page"`
	// NextPage is nil when Page is the last page.
	NextPage *int `json:"nextPage"`
	// TotalPages number of pages in the dataset.
	TotalPages int `json:"totalPages"`
}

// HasNextPage reports whether a page follows the current one.
func (p PageInfo) HasNextPage() bool {
	return p.NextPage != nil
}

// CalculatePageInfo computes page metadata for a dataset of count elements:
//
//	TotalPages = ceil(count / pageSize)
//	NextPage   = page + 1, if page + 1 <= TotalPages
//
// Negative counts are treated as an empty dataset. A non-positive pageSize
// yields zero pages.
func CalculatePageInfo(page, pageSize int, count int64) PageInfo {
	totalPages := 0
	if pageSize > 0 && count > 0 {
		size := int64(pageSize)
		totalPages = int((count + size - 1) / size)
	}

	var nextPage *int
	if page+1 <= totalPages {
		nextPage = lo.ToPtr(page + 1)
	}

	return PageInfo{
		Page:       page,
		NextPage:   nextPage,
		TotalPages: totalPages,
	}
}

// Page is the value a paginated field resolves to. Its json tags match the
// fields of the generated wrapper type.
type Page[T any] struct {
	// Results elements of the page.
	Results []T `json:"results"`
	// PageInfo page metadata.
	PageInfo PageInfo `json:"pageInfo"`
}

// NewPage builds a Page from the pagination stored in ctx.
func NewPage[T any](ctx context.Context, results []T, count int64) (Page[T], error) {
	pagination, ok := FromContext(ctx)
	if !ok {
		return Page[T]{}, ErrNoPagination
	}

	return Page[T]{
		Results:  lo.Ternary(results == nil, []T{}, results),
		PageInfo: pagination.CalculatePageInfo(count),
	}, nil
}
