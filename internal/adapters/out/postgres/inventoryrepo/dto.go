// Package inventoryrepo provides data transfer objects and mapping
// functions for the append-only inventory ledger.
package inventoryrepo

import (
	"time"

	"commerce/internal/core/domain/model/inventory"
	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TransactionDTO represents one ledger entry. The seq column is a
// monotonically increasing append order, used to pick the latest entry of a
// key without relying on timestamp resolution. Rows are never updated or
// deleted.
type TransactionDTO struct {
	Seq            int64     `gorm:"primaryKey;autoIncrement"`
	ID             uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ProductID      string    `gorm:"index:idx_inventory_key"`
	VariantID      string    `gorm:"index:idx_inventory_key"`
	Type           string    `gorm:"size:16"`
	QuantityChange int
	BeforeQuantity int
	AfterQuantity  int
	ReferenceType  string `gorm:"size:16"`
	ReferenceID    string
	Note           string
	CreatedAt      time.Time
}

// TableName specifies the database table name for ledger rows.
func (TransactionDTO) TableName() string {
	return "inventory_transactions"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(transaction *inventory.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:             transaction.ID().Bytes(),
		ProductID:      transaction.ProductID(),
		VariantID:      transaction.VariantID(),
		Type:           transaction.Type().String(),
		QuantityChange: transaction.QuantityChange(),
		BeforeQuantity: transaction.BeforeQuantity(),
		AfterQuantity:  transaction.AfterQuantity(),
		ReferenceType:  transaction.Reference().Type().String(),
		ReferenceID:    transaction.Reference().ID(),
		Note:           transaction.Note(),
		CreatedAt:      transaction.CreatedAt(),
	}
}

// toDomain converts a database row to a ledger entry. RestoreTransaction
// re-checks the before/after chain, so a corrupted row is rejected here.
func toDomain(dto TransactionDTO) (*inventory.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	refType, err := inventory.ReferenceTypeFromString(dto.ReferenceType)
	if err != nil {
		return nil, err
	}
	reference, err := inventory.NewReference(refType, dto.ReferenceID)
	if err != nil {
		return nil, err
	}

	txType, err := inventory.TransactionTypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreTransaction(
		id,
		dto.ProductID,
		dto.VariantID,
		txType,
		dto.QuantityChange,
		dto.BeforeQuantity,
		dto.AfterQuantity,
		reference,
		dto.Note,
		dto.CreatedAt,
	)
}
