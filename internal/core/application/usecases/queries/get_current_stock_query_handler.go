package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCurrentStockQueryHandler reads the stock level of one key from the
// latest ledger entry. The ledger is the single source of truth for stock;
// no separate counter is maintained.
type GetCurrentStockQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentStockQueryHandler creates a handler for stock level queries.
func NewGetCurrentStockQueryHandler(db *gorm.DB) GetCurrentStockQueryHandler {
	return GetCurrentStockQueryHandler{db: db}
}

// Handle executes the query. A key without ledger entries reports zero
// stock rather than an error.
func (h GetCurrentStockQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentStockQuery,
) (GetCurrentStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentStockQueryResponse{}, err
	}

	resp := GetCurrentStockQueryResponse{
		ProductID: query.ProductID(),
		VariantID: query.VariantID(),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT after_quantity
		FROM inventory_transactions
		WHERE product_id = ? AND variant_id = ?
		ORDER BY seq DESC
		LIMIT 1
	`, query.ProductID(), query.VariantID()).Rows()
	if err != nil {
		return GetCurrentStockQueryResponse{}, err
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&resp.CurrentStock); err != nil {
			return GetCurrentStockQueryResponse{}, err
		}
	}

	if err = rows.Err(); err != nil {
		return GetCurrentStockQueryResponse{}, err
	}

	return resp, nil
}
