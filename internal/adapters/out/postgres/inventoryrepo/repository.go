package inventoryrepo

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/inventory"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM. The
// ledger is append-only; there is no update or delete path.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// LockKey serializes writers of one (product, variant) key via a
// transaction-scoped advisory lock on the key hash. The lock is released
// when the surrounding transaction commits or rolls back.
func (r *GormInventoryRepository) LockKey(ctx context.Context, productID, variantID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", productID+"/"+variantID).
		Error
}

// Append persists a new ledger entry.
func (r *GormInventoryRepository) Append(ctx context.Context, transaction *inventory.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	dto := fromDomain(transaction)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(transaction.ID(), transaction)
	return nil
}

// GetLatest retrieves the most recent ledger entry for the key.
func (r *GormInventoryRepository) GetLatest(
	ctx context.Context,
	productID, variantID string,
) (*inventory.Transaction, error) {
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productID")
	}

	var dto TransactionDTO
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND variant_id = ?", productID, variantID).
		Order("seq DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productID", productID)
		}
		return nil, err
	}

	return toDomain(dto)
}
