package http

import (
	"strconv"
	"time"

	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/inventory"
	"commerce/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// pagingParams reads the page and pageSize query parameters. Absent
// parameters come back as zero and the query layer applies its defaults.
func pagingParams(ctx echo.Context) (page, pageSize int, err error) {
	if raw := ctx.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}
	return page, pageSize, nil
}

// timeParam reads an optional RFC 3339 query parameter.
func timeParam(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// orderToResponse maps an order aggregate, as returned by the command
// handlers, onto the wire shape.
func orderToResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ID:             item.ID().String(),
			ProductID:      item.ProductID(),
			VariantID:      item.VariantID(),
			ProductName:    item.ProductName(),
			Quantity:       item.Quantity(),
			UnitPrice:      item.UnitPrice().String(),
			DiscountAmount: item.DiscountAmount().String(),
			FinalAmount:    item.FinalAmount().String(),
			IsShipped:      item.IsShipped(),
			IsReturned:     item.IsReturned(),
		})
	}

	totals := aggregate.Totals()
	return OrderResponse{
		ID:             aggregate.ID().String(),
		Number:         aggregate.Number().String(),
		OwnerID:        aggregate.OwnerID(),
		Status:         aggregate.Status().String(),
		Items:          items,
		Subtotal:       totals.Subtotal().String(),
		ShippingFee:    totals.ShippingFee().String(),
		TaxAmount:      totals.TaxAmount().String(),
		DiscountAmount: totals.DiscountAmount().String(),
		TotalAmount:    totals.TotalAmount().String(),
		Note:           aggregate.Note(),
		Version:        aggregate.Version(),
		CreatedAt:      aggregate.CreatedAt().Format(time.RFC3339),
		PaidAt:         formatOptionalTime(aggregate.PaidAt()),
		ShippedAt:      formatOptionalTime(aggregate.ShippedAt()),
		DeliveredAt:    formatOptionalTime(aggregate.DeliveredAt()),
		CancelledAt:    formatOptionalTime(aggregate.CancelledAt()),
	}
}

// orderReadModelToResponse maps the single-order read model onto the wire
// shape.
func orderReadModelToResponse(model queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, OrderItemResponse{
			ID:             item.ID.String(),
			ProductID:      item.ProductID,
			VariantID:      item.VariantID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice.String(),
			DiscountAmount: item.DiscountAmount.String(),
			FinalAmount:    item.FinalAmount.String(),
			IsShipped:      item.IsShipped,
			IsReturned:     item.IsReturned,
		})
	}

	return OrderResponse{
		ID:             model.ID.String(),
		Number:         model.Number,
		OwnerID:        model.OwnerID,
		Status:         model.Status,
		Items:          items,
		Subtotal:       model.Subtotal.String(),
		ShippingFee:    model.ShippingFee.String(),
		TaxAmount:      model.TaxAmount.String(),
		DiscountAmount: model.DiscountAmount.String(),
		TotalAmount:    model.TotalAmount.String(),
		Note:           model.Note,
		Version:        model.Version,
		CreatedAt:      model.CreatedAt.Format(time.RFC3339),
		PaidAt:         formatOptionalTime(model.PaidAt),
		ShippedAt:      formatOptionalTime(model.ShippedAt),
		DeliveredAt:    formatOptionalTime(model.DeliveredAt),
		CancelledAt:    formatOptionalTime(model.CancelledAt),
	}
}

// cartToResponse maps a cart aggregate onto the wire shape.
func cartToResponse(aggregate *cart.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, CartItemResponse{
			ProductID:   item.ProductID(),
			VariantID:   item.VariantID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			Subtotal:    item.Subtotal().String(),
		})
	}

	return CartResponse{
		ID:            aggregate.ID().String(),
		OwnerID:       aggregate.OwnerID(),
		Items:         items,
		TotalQuantity: aggregate.TotalQuantity(),
		Subtotal:      aggregate.Subtotal().String(),
	}
}

// transactionToResponse maps a ledger entry onto the wire shape.
func transactionToResponse(tx *inventory.Transaction) InventoryTransactionResponse {
	return InventoryTransactionResponse{
		ID:             tx.ID().String(),
		ProductID:      tx.ProductID(),
		VariantID:      tx.VariantID(),
		Type:           tx.Type().String(),
		QuantityChange: tx.QuantityChange(),
		BeforeQuantity: tx.BeforeQuantity(),
		AfterQuantity:  tx.AfterQuantity(),
		ReferenceType:  tx.Reference().Type().String(),
		ReferenceID:    tx.Reference().ID(),
		Note:           tx.Note(),
		CreatedAt:      tx.CreatedAt().Format(time.RFC3339),
	}
}
