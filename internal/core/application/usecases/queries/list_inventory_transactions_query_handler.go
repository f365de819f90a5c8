package queries

import (
	"context"
	"strings"

	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListInventoryTransactionsQueryHandler pages through the inventory ledger.
type ListInventoryTransactionsQueryHandler struct {
	db *gorm.DB
}

// NewListInventoryTransactionsQueryHandler creates a handler for ledger log
// queries.
func NewListInventoryTransactionsQueryHandler(db *gorm.DB) ListInventoryTransactionsQueryHandler {
	return ListInventoryTransactionsQueryHandler{db: db}
}

// Handle executes the query. The sort column comes from a whitelist fixed
// at query construction; filter values are always bound as parameters.
func (h ListInventoryTransactionsQueryHandler) Handle(
	ctx context.Context,
	query ListInventoryTransactionsQuery,
) (ListInventoryTransactionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListInventoryTransactionsQueryResponse{}, err
	}

	where, args := buildInventoryFilter(query)

	resp := ListInventoryTransactionsQueryResponse{
		Transactions: make([]InventoryTransactionResponse, 0),
		Page:         query.Page(),
		PageSize:     query.PageSize(),
	}

	err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM inventory_transactions`+where, args...,
	).Scan(&resp.Total).Error
	if err != nil {
		return ListInventoryTransactionsQueryResponse{}, err
	}

	orderBy := inventorySortColumns[query.SortBy()]
	direction := "DESC"
	if query.SortDir() == SortAsc {
		direction = "ASC"
	}

	pageArgs := append(args, query.PageSize(), (query.Page()-1)*query.PageSize())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			variant_id,
			type,
			quantity_change,
			before_quantity,
			after_quantity,
			reference_type,
			reference_id,
			note,
			created_at
		FROM inventory_transactions`+where+`
		ORDER BY `+orderBy+` `+direction+`, seq `+direction+`
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListInventoryTransactionsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			tx InventoryTransactionResponse
			id uuid.UUID
		)

		err = rows.Scan(
			&id,
			&tx.ProductID,
			&tx.VariantID,
			&tx.Type,
			&tx.QuantityChange,
			&tx.BeforeQuantity,
			&tx.AfterQuantity,
			&tx.ReferenceType,
			&tx.ReferenceID,
			&tx.Note,
			&tx.CreatedAt,
		)
		if err != nil {
			return ListInventoryTransactionsQueryResponse{}, err
		}

		txID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListInventoryTransactionsQueryResponse{}, idErr
		}
		tx.ID = txID
		resp.Transactions = append(resp.Transactions, tx)
	}

	if err = rows.Err(); err != nil {
		return ListInventoryTransactionsQueryResponse{}, err
	}

	return resp, nil
}

// buildInventoryFilter renders the WHERE clause for the active filters with
// positional placeholders.
func buildInventoryFilter(query ListInventoryTransactionsQuery) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)

	if query.ProductID() != "" {
		conditions = append(conditions, "product_id = ?")
		args = append(args, query.ProductID())
	}
	if query.VariantID() != "" {
		conditions = append(conditions, "variant_id = ?")
		args = append(args, query.VariantID())
	}
	if query.Type() != nil {
		conditions = append(conditions, "type = ?")
		args = append(args, query.Type().String())
	}
	if query.From() != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *query.From())
	}
	if query.To() != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *query.To())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
