package queries

import (
	"errors"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

const (
	minPage     = 1
	minPageSize = 1
	maxPageSize = 100

	// DefaultPageSize applies when the caller does not specify a page size.
	DefaultPageSize = 20
)

var (
	ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
		"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
	)
)

// GetAllShipmentsQuery retrieves a page of shipments, newest first.
// Pages are one-based.
type GetAllShipmentsQuery struct {
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetAllShipmentsQuery creates a paged listing query.
// page must be at least 1; pageSize must be between 1 and 100. Pass
// DefaultPageSize when the caller has no preference.
func NewGetAllShipmentsQuery(page, pageSize int) (GetAllShipmentsQuery, error) {
	if page < minPage {
		return GetAllShipmentsQuery{}, errs.NewValueIsInvalidError("page")
	}
	if pageSize < minPageSize || pageSize > maxPageSize {
		return GetAllShipmentsQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, minPageSize, maxPageSize)
	}

	return GetAllShipmentsQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllShipmentsQueryIsNotConstructed if validation fails.
func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}

// Page returns the one-based page number.
func (q GetAllShipmentsQuery) Page() int {
	return q.page
}

// PageSize returns the number of shipments per page.
func (q GetAllShipmentsQuery) PageSize() int {
	return q.pageSize
}

// Offset returns the number of rows to skip for the requested page.
func (q GetAllShipmentsQuery) Offset() int {
	return (q.page - 1) * q.pageSize
}
