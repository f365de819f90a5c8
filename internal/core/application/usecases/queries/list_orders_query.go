package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves a page of a user's orders, newest first.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	ownerID  string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the owner's order history. Zero
// page and pageSize select the defaults.
func NewListOrdersQuery(ownerID string, page, pageSize int) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOwnerID(ownerID),
		query.setPage(page),
		query.setPageSize(pageSize),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OwnerID returns the user whose orders are listed.
func (q ListOrdersQuery) OwnerID() string { return q.ownerID }

// Page returns the 1-based page index.
func (q ListOrdersQuery) Page() int { return q.page }

// PageSize returns the page length.
func (q ListOrdersQuery) PageSize() int { return q.pageSize }

func (q *ListOrdersQuery) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("ownerID")
	}

	q.ownerID = ownerID
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	normalized, err := normalizePage(page)
	if err != nil {
		return err
	}

	q.page = normalized
	return nil
}

func (q *ListOrdersQuery) setPageSize(pageSize int) error {
	normalized, err := normalizePageSize(pageSize)
	if err != nil {
		return err
	}

	q.pageSize = normalized
	return nil
}

// OrderSummaryResponse is one row of a user's order history.
type OrderSummaryResponse struct {
	ID          kernel.UUID
	Number      string
	Status      string
	ItemCount   int
	TotalAmount kernel.Money
	CreatedAt   time.Time
}

// ListOrdersQueryResponse is one page of a user's order history.
type ListOrdersQueryResponse struct {
	Orders   []OrderSummaryResponse
	Total    int64
	Page     int
	PageSize int
}
