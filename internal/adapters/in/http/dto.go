package http

// Request and response bodies of the /api/v1 surface. Declared by hand; the
// wire shapes belong to this adapter, not to the domain.

// ErrorResponse is the uniform error body: a machine-readable code plus a
// human-readable message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AddressRequest carries a shipping address.
type AddressRequest struct {
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CreateOrderRequest creates an order from a cart.
type CreateOrderRequest struct {
	CartID          string         `json:"cartId"`
	Address         AddressRequest `json:"address"`
	PaymentMethodID string         `json:"paymentMethodId"`
	PromotionCodes  []string       `json:"promotionCodes,omitempty"`
	Note            string         `json:"note,omitempty"`
	// OrderNumber is set by administrative imports only; regular checkout
	// leaves it empty and the numbering authority assigns one.
	OrderNumber string `json:"orderNumber,omitempty"`
}

// TransitionOrderRequest moves an order to a new status.
type TransitionOrderRequest struct {
	Status string `json:"status"`
}

// CancelOrderRequest cancels an order with an optional reason.
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// PayOrderRequest authorizes payment for an order.
type PayOrderRequest struct {
	PaymentMethodID string `json:"paymentMethodId"`
}

// AddCartItemRequest puts a product into the caller's cart.
type AddCartItemRequest struct {
	OwnerID      string `json:"ownerId"`
	ProductID    string `json:"productId"`
	VariantID    string `json:"variantId,omitempty"`
	ProductName  string `json:"productName"`
	ProductSKU   string `json:"productSku,omitempty"`
	ProductImage string `json:"productImage,omitempty"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unitPrice"`
}

// UpdateCartItemRequest changes the quantity of a cart line.
type UpdateCartItemRequest struct {
	CartID    string `json:"cartId"`
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

// RemoveCartItemRequest removes a cart line.
type RemoveCartItemRequest struct {
	CartID    string `json:"cartId"`
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
}

// AppendInventoryRequest appends a manual ledger entry.
type AppendInventoryRequest struct {
	ProductID      string `json:"productId"`
	VariantID      string `json:"variantId,omitempty"`
	Type           string `json:"type"`
	QuantityChange int    `json:"quantityChange"`
	ReferenceType  string `json:"referenceType"`
	ReferenceID    string `json:"referenceId,omitempty"`
	Note           string `json:"note,omitempty"`
	AllowNegative  bool   `json:"allowNegative,omitempty"`
}

// OrderItemResponse is one purchased line of an order.
type OrderItemResponse struct {
	ID             string `json:"id"`
	ProductID      string `json:"productId"`
	VariantID      string `json:"variantId,omitempty"`
	ProductName    string `json:"productName"`
	Quantity       int    `json:"quantity"`
	UnitPrice      string `json:"unitPrice"`
	DiscountAmount string `json:"discountAmount"`
	FinalAmount    string `json:"finalAmount"`
	IsShipped      bool   `json:"isShipped"`
	IsReturned     bool   `json:"isReturned"`
}

// OrderResponse is the full order representation.
type OrderResponse struct {
	ID             string              `json:"id"`
	Number         string              `json:"number"`
	OwnerID        string              `json:"ownerId"`
	Status         string              `json:"status"`
	Items          []OrderItemResponse `json:"items"`
	Subtotal       string              `json:"subtotal"`
	ShippingFee    string              `json:"shippingFee"`
	TaxAmount      string              `json:"taxAmount"`
	DiscountAmount string              `json:"discountAmount"`
	TotalAmount    string              `json:"totalAmount"`
	Note           string              `json:"note,omitempty"`
	Version        int                 `json:"version"`
	CreatedAt      string              `json:"createdAt"`
	PaidAt         string              `json:"paidAt,omitempty"`
	ShippedAt      string              `json:"shippedAt,omitempty"`
	DeliveredAt    string              `json:"deliveredAt,omitempty"`
	CancelledAt    string              `json:"cancelledAt,omitempty"`
}

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Status      string `json:"status"`
	ItemCount   int    `json:"itemCount"`
	TotalAmount string `json:"totalAmount"`
	CreatedAt   string `json:"createdAt"`
}

// PageResponse wraps a listing with its pagination envelope.
type PageResponse[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// CartItemResponse is one line of the cart representation.
type CartItemResponse struct {
	ProductID   string `json:"productId"`
	VariantID   string `json:"variantId,omitempty"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Subtotal    string `json:"subtotal"`
}

// CartResponse is the cart representation.
type CartResponse struct {
	ID            string             `json:"id,omitempty"`
	OwnerID       string             `json:"ownerId"`
	Items         []CartItemResponse `json:"items"`
	TotalQuantity int                `json:"totalQuantity"`
	Subtotal      string             `json:"subtotal"`
}

// InventoryTransactionResponse is one ledger entry.
type InventoryTransactionResponse struct {
	ID             string `json:"id"`
	ProductID      string `json:"productId"`
	VariantID      string `json:"variantId,omitempty"`
	Type           string `json:"type"`
	QuantityChange int    `json:"quantityChange"`
	BeforeQuantity int    `json:"beforeQuantity"`
	AfterQuantity  int    `json:"afterQuantity"`
	ReferenceType  string `json:"referenceType"`
	ReferenceID    string `json:"referenceId,omitempty"`
	Note           string `json:"note,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

// CurrentStockResponse reports the stock level of one key.
type CurrentStockResponse struct {
	ProductID    string `json:"productId"`
	VariantID    string `json:"variantId,omitempty"`
	CurrentStock int    `json:"currentStock"`
}

// InventoryStatisticsResponse summarizes one key's ledger.
type InventoryStatisticsResponse struct {
	ProductID         string `json:"productId"`
	VariantID         string `json:"variantId,omitempty"`
	CurrentStock      int    `json:"currentStock"`
	TotalSales        int    `json:"totalSales"`
	TotalReturns      int    `json:"totalReturns"`
	TotalAdjustments  int    `json:"totalAdjustments"`
	TransactionCount  int64  `json:"transactionCount"`
	LastTransactionAt string `json:"lastTransactionAt,omitempty"`
}

// NotificationResponse is one notification of a user's feed.
type NotificationResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	ActionURL string `json:"actionUrl,omitempty"`
	IsRead    bool   `json:"isRead"`
	ReadAt    string `json:"readAt,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// NotificationStatisticsResponse summarizes one user's feed.
type NotificationStatisticsResponse struct {
	Total  int64            `json:"total"`
	Unread int64            `json:"unread"`
	ByType map[string]int64 `json:"byType"`
}
