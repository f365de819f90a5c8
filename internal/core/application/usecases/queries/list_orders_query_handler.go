package queries

import (
	"context"

	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler pages through a user's order history.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order history queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first; the total
// counts all of the owner's orders regardless of the page.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	resp := ListOrdersQueryResponse{
		Orders:   make([]OrderSummaryResponse, 0),
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}

	err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM orders WHERE owner_id = ?`,
		query.OwnerID(),
	).Scan(&resp.Total).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.status,
			(SELECT COALESCE(SUM(i.quantity), 0) FROM order_items i WHERE i.order_id = o.id),
			o.total_amount,
			o.created_at
		FROM orders o
		WHERE o.owner_id = ?
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ? OFFSET ?
	`, query.OwnerID(), query.PageSize(), (query.Page()-1)*query.PageSize()).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			summary OrderSummaryResponse
			id      uuid.UUID
			total   decimal.Decimal
		)

		err = rows.Scan(
			&id,
			&summary.Number,
			&summary.Status,
			&summary.ItemCount,
			&total,
			&summary.CreatedAt,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		summary.ID = orderID
		summary.TotalAmount = kernel.NewMoneyFromDecimal(total)
		resp.Orders = append(resp.Orders, summary)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return resp, nil
}
