// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence.
package cartrepo

import (
	"time"

	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO represents the database structure for persisting cart aggregates.
// One cart per owner; the version column carries the optimistic concurrency
// token.
type CartDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   string    `gorm:"uniqueIndex"`
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for cart rows.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one line of a cart. Lines are keyed by the
// (cart, product, variant) triple and rewritten wholesale on cart updates.
type CartItemDTO struct {
	CartID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID    string          `gorm:"primaryKey"`
	VariantID    string          `gorm:"primaryKey"`
	ProductName  string
	ProductSKU   string
	ProductImage string
	Quantity     int
	UnitPrice    decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for cart line rows.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) (CartDTO, []CartItemDTO) {
	dto := CartDTO{
		ID:        aggregate.ID().Bytes(),
		OwnerID:   aggregate.OwnerID(),
		Version:   aggregate.Version(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}

	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			CartID:       dto.ID,
			ProductID:    item.ProductID(),
			VariantID:    item.VariantID(),
			ProductName:  item.ProductName(),
			ProductSKU:   item.ProductSKU(),
			ProductImage: item.ProductImage(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice().Decimal(),
		})
	}

	return dto, items
}

// toDomain converts database rows to a cart aggregate.
func toDomain(dto CartDTO, itemDTOs []CartItemDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*cart.LineItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := cart.NewLineItem(
			itemDTO.ProductID,
			itemDTO.VariantID,
			itemDTO.ProductName,
			itemDTO.ProductSKU,
			itemDTO.ProductImage,
			itemDTO.Quantity,
			kernel.NewMoneyFromDecimal(itemDTO.UnitPrice),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return cart.RestoreCart(id, dto.OwnerID, items, dto.Version, dto.CreatedAt, dto.UpdatedAt)
}
