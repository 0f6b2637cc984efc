package gqlpager

import (
	"fmt"
	"math"

	"gorm.io/gorm"
)

// Params is the offset/limit form of a requested page.
//
// Skip and Take are derived from Page and PageSize:
//
//	Skip = (Page - 1) * PageSize
//	Take = PageSize
type Params struct {
	// Page 1-based page number as requested.
	Page int
	// PageSize number of elements per page.
	PageSize int
	// Skip number of elements preceding the page.
	Skip int
	// Take number of elements in the page.
	Take int
	// Sort orderings requested for the page. May be empty.
	Sort Orderings
}

// NewParams converts a page number and a page size into Params.
func NewParams(page, pageSize int) (Params, error) {
	if page < 1 {
		return Params{}, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	if pageSize < 1 {
		return Params{}, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}
	if page-1 > math.MaxInt/pageSize {
		return Params{}, fmt.Errorf("%w: page=%d pageSize=%d", ErrOffsetOverflow, page, pageSize)
	}

	return Params{
		Page:     page,
		PageSize: pageSize,
		Skip:     (page - 1) * pageSize,
		Take:     pageSize,
	}, nil
}

// WithSort replaces the orderings of the page and returns the result.
func (p Params) WithSort(orderBy ...OrderBy) Params {
	p.Sort = append(Orderings(nil), orderBy...)
	return p
}

// CalculatePageInfo computes page metadata from the total number of elements.
func (p Params) CalculatePageInfo(count int64) PageInfo {
	return CalculatePageInfo(p.Page, p.PageSize, count)
}

// Apply applies ordering, offset and limit to a gorm query.
//
// Usage:
//
//	var users []User
//	err := params.Apply(db.Model(&User{})).Find(&users).Error
func (p Params) Apply(db *gorm.DB) *gorm.DB {
	if len(p.Sort) > 0 {
		db = p.Sort.Apply(db)
	}
	if p.Skip > 0 {
		db = db.Offset(p.Skip)
	}

	return db.Limit(p.Take)
}

// Scope returns Apply in the form accepted by gorm.DB.Scopes.
func (p Params) Scope() func(*gorm.DB) *gorm.DB {
	return p.Apply
}

// ToSQL returns the LIMIT/OFFSET suffix of an SQL query.
//
// Usage:
//
//	query := fmt.Sprintf("SELECT * FROM table ORDER BY id %s", p.ToSQL())
func (p Params) ToSQL() string {
	if p.Skip == 0 {
		return fmt.Sprintf("LIMIT %d", p.Take)
	}

	return fmt.Sprintf("LIMIT %d OFFSET %d", p.Take, p.Skip)
}
