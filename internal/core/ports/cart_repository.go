package ports

import (
	"context"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart, replacing its line item
	// collection with the aggregate's current one.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Get retrieves a cart aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such cart exists.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// GetByOwner retrieves the cart of a user or anonymous session.
	// Returns an ObjectNotFoundError when the owner has no cart yet.
	GetByOwner(ctx context.Context, ownerID string) (*cart.Cart, error)
}
