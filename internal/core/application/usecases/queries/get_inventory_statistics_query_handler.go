package queries

import (
	"context"
	"database/sql"

	"commerce/internal/core/domain/model/inventory"

	"gorm.io/gorm"
)

// GetInventoryStatisticsQueryHandler folds one key's ledger into movement
// totals.
type GetInventoryStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryStatisticsQueryHandler creates a handler for ledger
// statistics queries.
func NewGetInventoryStatisticsQueryHandler(db *gorm.DB) GetInventoryStatisticsQueryHandler {
	return GetInventoryStatisticsQueryHandler{db: db}
}

// Handle executes the query. A key without ledger entries reports zeroes
// and no last transaction time. The movement totals honor the query's
// period bounds; current stock is always the latest ledger level.
func (h GetInventoryStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryStatisticsQuery,
) (GetInventoryStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInventoryStatisticsQueryResponse{}, err
	}

	resp := GetInventoryStatisticsQueryResponse{
		ProductID: query.ProductID(),
		VariantID: query.VariantID(),
	}

	where := "WHERE product_id = ? AND variant_id = ?"
	args := []any{
		inventory.TypeSale.String(),
		inventory.TypeReturn.String(),
		inventory.TypeAdjustment.String(),
		query.ProductID(),
		query.VariantID(),
	}
	if query.From() != nil {
		where += " AND created_at >= ?"
		args = append(args, *query.From())
	}
	if query.To() != nil {
		where += " AND created_at <= ?"
		args = append(args, *query.To())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(-SUM(quantity_change) FILTER (WHERE type = ?), 0),
			COALESCE(SUM(quantity_change) FILTER (WHERE type = ?), 0),
			COALESCE(SUM(quantity_change) FILTER (WHERE type = ?), 0),
			COUNT(*),
			MAX(created_at)
		FROM inventory_transactions
		`+where, args...).Rows()
	if err != nil {
		return GetInventoryStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	if rows.Next() {
		var lastAt sql.NullTime
		err = rows.Scan(
			&resp.TotalSales,
			&resp.TotalReturns,
			&resp.TotalAdjustments,
			&resp.TransactionCount,
			&lastAt,
		)
		if err != nil {
			return GetInventoryStatisticsQueryResponse{}, err
		}
		resp.LastTransactionAt = nullableTime(lastAt)
	}

	if err = rows.Err(); err != nil {
		return GetInventoryStatisticsQueryResponse{}, err
	}
	rows.Close()

	stockQuery, err := NewGetCurrentStockQuery(query.ProductID(), query.VariantID())
	if err != nil {
		return GetInventoryStatisticsQueryResponse{}, err
	}
	stock, err := NewGetCurrentStockQueryHandler(h.db).Handle(ctx, stockQuery)
	if err != nil {
		return GetInventoryStatisticsQueryResponse{}, err
	}
	resp.CurrentStock = stock.CurrentStock

	return resp, nil
}
