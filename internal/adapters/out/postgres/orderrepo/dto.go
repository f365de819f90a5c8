// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database rows.
package orderrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The status is stored as its string form so the read side and
// ad-hoc SQL stay legible; the version column carries the optimistic
// concurrency token.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number         string          `gorm:"uniqueIndex;size:18"`
	OwnerID        string          `gorm:"index"`
	Status         string          `gorm:"index;size:16"`
	Subtotal       decimal.Decimal `gorm:"type:numeric"`
	ShippingFee    decimal.Decimal `gorm:"type:numeric"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric"`
	Recipient      string
	Phone          string
	AddressLine1   string
	AddressLine2   string
	City           string
	PostalCode     string
	Country        string
	PromotionCodes pq.StringArray `gorm:"type:text[]"`
	Note           string
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	PaidAt         *time.Time
	ConfirmedAt    *time.Time
	ShippedAt      *time.Time
	DeliveredAt    *time.Time `gorm:"index"`
	CompletedAt    *time.Time
	CancelledAt    *time.Time
	RefundedAt     *time.Time
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one purchased line of an order. Item rows are
// written with the order and only their shipment flags change afterwards.
type OrderItemDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID       `gorm:"type:uuid;index"`
	ProductID      string          `gorm:"index"`
	VariantID      string          `gorm:"index"`
	ProductName    string
	ProductSKU     string
	ProductImage   string
	Quantity       int
	UnitPrice      decimal.Decimal `gorm:"type:numeric"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric"`
	FinalAmount    decimal.Decimal `gorm:"type:numeric"`
	IsShipped      bool
	IsReturned     bool
}

// TableName specifies the database table name for order item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO) {
	totals := aggregate.Totals()
	address := aggregate.Address()

	dto := OrderDTO{
		ID:             aggregate.ID().Bytes(),
		Number:         aggregate.Number().String(),
		OwnerID:        aggregate.OwnerID(),
		Status:         aggregate.Status().String(),
		Subtotal:       totals.Subtotal().Decimal(),
		ShippingFee:    totals.ShippingFee().Decimal(),
		TaxAmount:      totals.TaxAmount().Decimal(),
		DiscountAmount: totals.DiscountAmount().Decimal(),
		TotalAmount:    totals.TotalAmount().Decimal(),
		Recipient:      address.Recipient(),
		Phone:          address.Phone(),
		AddressLine1:   address.Line1(),
		AddressLine2:   address.Line2(),
		City:           address.City(),
		PostalCode:     address.PostalCode(),
		Country:        address.Country(),
		PromotionCodes: aggregate.PromotionCodes(),
		Note:           aggregate.Note(),
		Version:        aggregate.Version(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		PaidAt:         aggregate.PaidAt(),
		ConfirmedAt:    aggregate.ConfirmedAt(),
		ShippedAt:      aggregate.ShippedAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
		CompletedAt:    aggregate.CompletedAt(),
		CancelledAt:    aggregate.CancelledAt(),
		RefundedAt:     aggregate.RefundedAt(),
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:             item.ID().Bytes(),
			OrderID:        item.OrderID().Bytes(),
			ProductID:      item.ProductID(),
			VariantID:      item.VariantID(),
			ProductName:    item.ProductName(),
			ProductSKU:     item.ProductSKU(),
			ProductImage:   item.ProductImage(),
			Quantity:       item.Quantity(),
			UnitPrice:      item.UnitPrice().Decimal(),
			DiscountAmount: item.DiscountAmount().Decimal(),
			FinalAmount:    item.FinalAmount().Decimal(),
			IsShipped:      item.IsShipped(),
			IsReturned:     item.IsReturned(),
		})
	}

	return dto, items
}

// toDomain converts database rows to an order aggregate using RestoreOrder,
// so corrupt rows fail the same validation as fresh input.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	totals, err := order.RestoreTotals(
		kernel.NewMoneyFromDecimal(dto.Subtotal),
		kernel.NewMoneyFromDecimal(dto.ShippingFee),
		kernel.NewMoneyFromDecimal(dto.TaxAmount),
		kernel.NewMoneyFromDecimal(dto.DiscountAmount),
		kernel.NewMoneyFromDecimal(dto.TotalAmount),
	)
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(
		dto.Recipient, dto.Phone, dto.AddressLine1, dto.AddressLine2,
		dto.City, dto.PostalCode, dto.Country,
	)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:             id,
		Number:         number,
		OwnerID:        dto.OwnerID,
		Status:         status,
		Items:          items,
		Totals:         totals,
		Address:        address,
		PromotionCodes: dto.PromotionCodes,
		Note:           dto.Note,
		Version:        dto.Version,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
		PaidAt:         dto.PaidAt,
		ConfirmedAt:    dto.ConfirmedAt,
		ShippedAt:      dto.ShippedAt,
		DeliveredAt:    dto.DeliveredAt,
		CompletedAt:    dto.CompletedAt,
		CancelledAt:    dto.CancelledAt,
		RefundedAt:     dto.RefundedAt,
	})
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id, orderID,
		dto.ProductID, dto.VariantID, dto.ProductName, dto.ProductSKU, dto.ProductImage,
		dto.Quantity,
		kernel.NewMoneyFromDecimal(dto.UnitPrice),
		kernel.NewMoneyFromDecimal(dto.DiscountAmount),
		kernel.NewMoneyFromDecimal(dto.FinalAmount),
		dto.IsShipped,
		dto.IsReturned,
	)
}
