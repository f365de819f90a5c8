// Package ports defines the persistence and collaborator interfaces of the
// commerce core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its item snapshots.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate under
	// optimistic concurrency control: the write carries the version the
	// aggregate was loaded with and fails with a ConcurrencyConflictError
	// when the stored version has advanced in the meantime.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its order number.
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)

	// GetAllInDeliveredStatusBefore retrieves orders that were delivered
	// before the cutoff and have not moved on since. Used by the completion
	// job to auto-complete stale deliveries.
	GetAllInDeliveredStatusBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
