package queries

import (
	"errors"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery retrieves a single order by its human-facing number.
type GetOrderByNumberQuery struct { //nolint:recvcheck //using for validation
	number order.Number

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for the given order number.
func NewGetOrderByNumberQuery(number order.Number) (GetOrderByNumberQuery, error) {
	query := GetOrderByNumberQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setNumber(number); err != nil {
		return GetOrderByNumberQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// Number returns the order number to fetch.
func (q GetOrderByNumberQuery) Number() order.Number { return q.number }

func (q *GetOrderByNumberQuery) setNumber(number order.Number) error {
	if err := number.Validate(); err != nil {
		return err
	}

	q.number = number
	return nil
}
