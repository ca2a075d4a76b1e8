package service

import (
	"errors"

	"github.com/mverdier/coinsplit/internal/storage"
)

var (
	ErrInvalidPage     = errors.New("page must be between 1 and 1000")
	ErrInvalidPageSize = errors.New("page size must be between 1 and 1000")
)

const (
	maxPage     = 1000
	maxPageSize = 1000

	defaultPage     = 1
	defaultPageSize = 10
)

// Pagination is a validated 1-indexed page window shared by all list
// queries. Out-of-bound values are rejected up front, never clamped.
type Pagination struct {
	page     int
	pageSize int
}

// NewPagination validates page and pageSize against [1, 1000].
func NewPagination(page, pageSize int) (Pagination, error) {
	if page < 1 || page > maxPage {
		return Pagination{}, ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return Pagination{}, ErrInvalidPageSize
	}
	return Pagination{page: page, pageSize: pageSize}, nil
}

// NewPaginationFromOptional substitutes defaults (page 1, size 10) for zero
// values, then validates like NewPagination.
func NewPaginationFromOptional(page, pageSize int) (Pagination, error) {
	if page == 0 {
		page = defaultPage
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	return NewPagination(page, pageSize)
}

func (p Pagination) Page() int     { return p.page }
func (p Pagination) PageSize() int { return p.pageSize }

// ToPage converts to the zero-based offset/limit pair the persistence
// boundary consumes.
func (p Pagination) ToPage() storage.Page {
	return storage.Page{
		Limit:  p.pageSize,
		Offset: (p.page - 1) * p.pageSize,
	}
}
