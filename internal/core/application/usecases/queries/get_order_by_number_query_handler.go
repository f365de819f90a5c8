package queries

import (
	"context"

	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler reads one order with its items by order
// number.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for order-number lookups.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound when no order carries
// the number.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+orderSelectColumns+` FROM orders WHERE number = ?`,
		query.Number().String(),
	).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("number", query.Number().String())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	rows.Close()

	items, err := loadOrderItems(ctx, h.db, resp.ID)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Items = items

	return resp, nil
}
