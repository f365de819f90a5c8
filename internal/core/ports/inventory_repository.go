package ports

import (
	"context"

	"commerce/internal/core/domain/model/inventory"
)

// InventoryRepository defines the persistence contract for the append-only
// stock ledger. Entries are never updated or deleted.
type InventoryRepository interface {
	// LockKey serializes writers of one (product, variant) key for the
	// duration of the surrounding transaction. Callers must lock before
	// reading the latest entry so the before-quantity they chain onto can
	// never be stale.
	LockKey(ctx context.Context, productID, variantID string) error

	// Append persists a new ledger entry.
	Append(ctx context.Context, transaction *inventory.Transaction) error

	// GetLatest retrieves the most recent ledger entry for the key.
	// Returns an ObjectNotFoundError for a key with no history yet.
	GetLatest(ctx context.Context, productID, variantID string) (*inventory.Transaction, error)
}
