// Package http exposes the commerce core under /api/v1. It coordinates
// between HTTP handlers and application use cases; authentication and page
// rendering live outside this service.
package http

import (
	"net/http"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/inventory"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/notification"
	"commerce/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder     commands.CreateOrderCommandHandler
	TransitionOrder commands.TransitionOrderCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	PayOrder        commands.PayOrderCommandHandler

	AddCartItem            commands.AddCartItemCommandHandler
	UpdateCartItemQuantity commands.UpdateCartItemQuantityCommandHandler
	RemoveCartItem         commands.RemoveCartItemCommandHandler
	ClearCart              commands.ClearCartCommandHandler

	AppendInventory commands.AppendInventoryCommandHandler

	MarkNotificationRead     commands.MarkNotificationReadCommandHandler
	MarkAllNotificationsRead commands.MarkAllNotificationsReadCommandHandler
	DeleteNotification       commands.DeleteNotificationCommandHandler

	GetOrder                  queries.GetOrderQueryHandler
	GetOrderByNumber          queries.GetOrderByNumberQueryHandler
	ListOrders                queries.ListOrdersQueryHandler
	GetCart                   queries.GetCartQueryHandler
	GetCurrentStock           queries.GetCurrentStockQueryHandler
	GetInventoryStatistics    queries.GetInventoryStatisticsQueryHandler
	ListInventoryTransactions queries.ListInventoryTransactionsQueryHandler
	ListNotifications         queries.ListNotificationsQueryHandler
	GetNotificationStatistics queries.GetNotificationStatisticsQueryHandler
}

// Server dispatches the /api/v1 routes to the use case handlers.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes binds the API surface onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.createOrder)
	v1.GET("/orders", s.listOrders)
	v1.GET("/orders/:orderId", s.getOrder)
	v1.GET("/orders/number/:number", s.getOrderByNumber)
	v1.POST("/orders/:orderId/transition", s.transitionOrder)
	v1.POST("/orders/:orderId/cancel", s.cancelOrder)
	v1.POST("/orders/:orderId/pay", s.payOrder)

	v1.GET("/cart", s.getCart)
	v1.POST("/cart/items", s.addCartItem)
	v1.PUT("/cart/items", s.updateCartItem)
	v1.DELETE("/cart/items", s.removeCartItem)
	v1.DELETE("/cart", s.clearCart)

	v1.POST("/inventory/transactions", s.appendInventory)
	v1.GET("/inventory/transactions", s.listInventoryTransactions)
	v1.GET("/inventory/stock", s.getCurrentStock)
	v1.GET("/inventory/statistics", s.getInventoryStatistics)

	v1.GET("/notifications", s.listNotifications)
	v1.GET("/notifications/statistics", s.getNotificationStatistics)
	v1.POST("/notifications/:notificationId/read", s.markNotificationRead)
	v1.POST("/notifications/read-all", s.markAllNotificationsRead)
	v1.DELETE("/notifications/:notificationId", s.deleteNotification)
}

func (s *Server) createOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cartID, err := kernel.UUIDFromString(req.CartID)
	if err != nil {
		return respondError(ctx, err)
	}

	address, err := order.NewAddress(
		req.Address.Recipient, req.Address.Phone, req.Address.Line1, req.Address.Line2,
		req.Address.City, req.Address.PostalCode, req.Address.Country,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), cartID, address, req.PaymentMethodID, req.PromotionCodes, req.Note,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if req.OrderNumber != "" {
		number, numberErr := order.NumberFromString(req.OrderNumber)
		if numberErr != nil {
			return respondError(ctx, numberErr)
		}
		if cmd, err = cmd.WithExplicitNumber(number); err != nil {
			return respondError(ctx, err)
		}
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

func (s *Server) getOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderReadModelToResponse(resp))
}

func (s *Server) getOrderByNumber(ctx echo.Context) error {
	number, err := order.NumberFromString(ctx.Param("number"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderByNumberQuery(number)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetOrderByNumber.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderReadModelToResponse(resp))
}

func (s *Server) listOrders(ctx echo.Context) error {
	page, pageSize, err := pagingParams(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid paging parameters")
	}

	query, err := queries.NewListOrdersQuery(ctx.QueryParam("ownerId"), page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]OrderSummaryResponse, 0, len(resp.Orders))
	for _, summary := range resp.Orders {
		items = append(items, OrderSummaryResponse{
			ID:          summary.ID.String(),
			Number:      summary.Number,
			Status:      summary.Status,
			ItemCount:   summary.ItemCount,
			TotalAmount: summary.TotalAmount.String(),
			CreatedAt:   summary.CreatedAt.Format(time.RFC3339),
		})
	}

	return ctx.JSON(http.StatusOK, PageResponse[OrderSummaryResponse]{
		Items:    items,
		Total:    resp.Total,
		Page:     resp.Page,
		PageSize: resp.PageSize,
	})
}

func (s *Server) transitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req TransitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

func (s *Server) cancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

func (s *Server) payOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req PayOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewPayOrderCommand(orderID, req.PaymentMethodID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.PayOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

func (s *Server) getCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(ctx.QueryParam("ownerId"))
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]CartItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, CartItemResponse{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			Subtotal:    item.Subtotal.String(),
		})
	}

	body := CartResponse{
		OwnerID:       resp.OwnerID,
		Items:         items,
		TotalQuantity: resp.TotalQuantity,
		Subtotal:      resp.Subtotal.String(),
	}
	if resp.ID.Validate() == nil {
		body.ID = resp.ID.String()
	}

	return ctx.JSON(http.StatusOK, body)
}

func (s *Server) addCartItem(ctx echo.Context) error {
	var req AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddCartItemCommand(
		req.OwnerID, req.ProductID, req.VariantID, req.ProductName,
		req.ProductSKU, req.ProductImage, req.Quantity,
		kernel.NewMoneyFromInt(req.UnitPrice),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartToResponse(updated))
}

func (s *Server) updateCartItem(ctx echo.Context) error {
	var req UpdateCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cartID, err := kernel.UUIDFromString(req.CartID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateCartItemQuantityCommand(cartID, req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateCartItemQuantity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartToResponse(updated))
}

func (s *Server) removeCartItem(ctx echo.Context) error {
	var req RemoveCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cartID, err := kernel.UUIDFromString(req.CartID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(cartID, req.ProductID, req.VariantID)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.RemoveCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartToResponse(updated))
}

func (s *Server) clearCart(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.QueryParam("cartId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(cartID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) appendInventory(ctx echo.Context) error {
	var req AppendInventoryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	txType, err := inventory.TransactionTypeFromString(req.Type)
	if err != nil {
		return respondError(ctx, err)
	}

	refType, err := inventory.ReferenceTypeFromString(req.ReferenceType)
	if err != nil {
		return respondError(ctx, err)
	}
	reference, err := inventory.NewReference(refType, req.ReferenceID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAppendInventoryCommand(
		req.ProductID, req.VariantID, txType, req.QuantityChange,
		reference, req.Note, req.AllowNegative,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	appended, err := s.handlers.AppendInventory.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, transactionToResponse(appended))
}

func (s *Server) listInventoryTransactions(ctx echo.Context) error {
	page, pageSize, err := pagingParams(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid paging parameters")
	}

	filter := queries.ListInventoryTransactionsFilter{
		ProductID: ctx.QueryParam("productId"),
		VariantID: ctx.QueryParam("variantId"),
		SortBy:    ctx.QueryParam("sortBy"),
		SortDir:   ctx.QueryParam("sortDir"),
		Page:      page,
		PageSize:  pageSize,
	}

	if raw := ctx.QueryParam("type"); raw != "" {
		txType, typeErr := inventory.TransactionTypeFromString(raw)
		if typeErr != nil {
			return respondError(ctx, typeErr)
		}
		filter.Type = &txType
	}
	if filter.From, err = timeParam(ctx, "from"); err != nil {
		return respondBadRequest(ctx, "invalid from timestamp")
	}
	if filter.To, err = timeParam(ctx, "to"); err != nil {
		return respondBadRequest(ctx, "invalid to timestamp")
	}

	query, err := queries.NewListInventoryTransactionsQuery(filter)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.ListInventoryTransactions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]InventoryTransactionResponse, 0, len(resp.Transactions))
	for _, tx := range resp.Transactions {
		items = append(items, InventoryTransactionResponse{
			ID:             tx.ID.String(),
			ProductID:      tx.ProductID,
			VariantID:      tx.VariantID,
			Type:           tx.Type,
			QuantityChange: tx.QuantityChange,
			BeforeQuantity: tx.BeforeQuantity,
			AfterQuantity:  tx.AfterQuantity,
			ReferenceType:  tx.ReferenceType,
			ReferenceID:    tx.ReferenceID,
			Note:           tx.Note,
			CreatedAt:      tx.CreatedAt.Format(time.RFC3339),
		})
	}

	return ctx.JSON(http.StatusOK, PageResponse[InventoryTransactionResponse]{
		Items:    items,
		Total:    resp.Total,
		Page:     resp.Page,
		PageSize: resp.PageSize,
	})
}

func (s *Server) getCurrentStock(ctx echo.Context) error {
	query, err := queries.NewGetCurrentStockQuery(ctx.QueryParam("productId"), ctx.QueryParam("variantId"))
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetCurrentStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CurrentStockResponse{
		ProductID:    resp.ProductID,
		VariantID:    resp.VariantID,
		CurrentStock: resp.CurrentStock,
	})
}

func (s *Server) getInventoryStatistics(ctx echo.Context) error {
	from, err := timeParam(ctx, "from")
	if err != nil {
		return respondBadRequest(ctx, "invalid from timestamp")
	}
	to, err := timeParam(ctx, "to")
	if err != nil {
		return respondBadRequest(ctx, "invalid to timestamp")
	}

	query, err := queries.NewGetInventoryStatisticsQuery(
		ctx.QueryParam("productId"), ctx.QueryParam("variantId"), from, to,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetInventoryStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	body := InventoryStatisticsResponse{
		ProductID:        resp.ProductID,
		VariantID:        resp.VariantID,
		CurrentStock:     resp.CurrentStock,
		TotalSales:       resp.TotalSales,
		TotalReturns:     resp.TotalReturns,
		TotalAdjustments: resp.TotalAdjustments,
		TransactionCount: resp.TransactionCount,
	}
	if resp.LastTransactionAt != nil {
		body.LastTransactionAt = resp.LastTransactionAt.Format(time.RFC3339)
	}

	return ctx.JSON(http.StatusOK, body)
}

func (s *Server) listNotifications(ctx echo.Context) error {
	page, pageSize, err := pagingParams(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid paging parameters")
	}

	var notifType *notification.Type
	if raw := ctx.QueryParam("type"); raw != "" {
		parsed, typeErr := notification.TypeFromString(raw)
		if typeErr != nil {
			return respondError(ctx, typeErr)
		}
		notifType = &parsed
	}

	query, err := queries.NewListNotificationsQuery(
		ctx.QueryParam("userId"), notifType,
		ctx.QueryParam("unreadOnly") == "true",
		page, pageSize,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]NotificationResponse, 0, len(resp.Notifications))
	for _, n := range resp.Notifications {
		item := NotificationResponse{
			ID:        n.ID.String(),
			Type:      n.Type,
			Priority:  n.Priority,
			Title:     n.Title,
			Message:   n.Message,
			ActionURL: n.ActionURL,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		}
		if n.ReadAt != nil {
			item.ReadAt = n.ReadAt.Format(time.RFC3339)
		}
		items = append(items, item)
	}

	return ctx.JSON(http.StatusOK, PageResponse[NotificationResponse]{
		Items:    items,
		Total:    resp.Total,
		Page:     resp.Page,
		PageSize: resp.PageSize,
	})
}

func (s *Server) getNotificationStatistics(ctx echo.Context) error {
	query, err := queries.NewGetNotificationStatisticsQuery(ctx.QueryParam("userId"))
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetNotificationStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, NotificationStatisticsResponse{
		Total:  resp.Total,
		Unread: resp.Unread,
		ByType: resp.ByType,
	})
}

func (s *Server) markNotificationRead(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("notificationId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, ctx.QueryParam("userId"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) markAllNotificationsRead(ctx echo.Context) error {
	cmd, err := commands.NewMarkAllNotificationsReadCommand(ctx.QueryParam("userId"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.MarkAllNotificationsRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) deleteNotification(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("notificationId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteNotificationCommand(notificationID, ctx.QueryParam("userId"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteNotification.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
