package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/inventory"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrListInventoryTransactionsQueryIsNotConstructed = errors.New(
	"ListInventoryTransactionsQuery must be created via NewListInventoryTransactionsQuery constructor",
)

// Sort keys accepted by the transaction log query. The ledger carries no
// denormalized product name, so SortByProductName orders by the product
// identifier the ledger is keyed on.
const (
	SortByCreatedAt      = "createdAt"
	SortByQuantityChange = "quantityChange"
	SortByProductName    = "productName"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// inventorySortColumns whitelists the ORDER BY targets; anything else is
// rejected at construction.
var inventorySortColumns = map[string]string{
	SortByCreatedAt:      "created_at",
	SortByQuantityChange: "quantity_change",
	SortByProductName:    "product_id",
}

// ListInventoryTransactionsQuery pages through the inventory ledger with
// optional key, type and date-range filters.
type ListInventoryTransactionsQuery struct { //nolint:recvcheck //using for validation
	productID string
	variantID string
	txType    *inventory.TransactionType
	from      *time.Time
	to        *time.Time
	sortBy    string
	sortDir   string
	page      int
	pageSize  int

	guard guard.ConstructorGuard
}

// ListInventoryTransactionsFilter carries the optional filters of the
// transaction log query. Zero values mean "no filter"; zero sort fields
// select createdAt descending.
type ListInventoryTransactionsFilter struct {
	ProductID string
	VariantID string
	Type      *inventory.TransactionType
	From      *time.Time
	To        *time.Time
	SortBy    string
	SortDir   string
	Page      int
	PageSize  int
}

// NewListInventoryTransactionsQuery creates a transaction log query from
// the filter.
func NewListInventoryTransactionsQuery(
	filter ListInventoryTransactionsFilter,
) (ListInventoryTransactionsQuery, error) {
	query := ListInventoryTransactionsQuery{
		productID: filter.ProductID,
		variantID: filter.VariantID,
		from:      filter.From,
		to:        filter.To,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setType(filter.Type),
		query.setSort(filter.SortBy, filter.SortDir),
		query.setPage(filter.Page),
		query.setPageSize(filter.PageSize),
	); err != nil {
		return ListInventoryTransactionsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListInventoryTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrListInventoryTransactionsQueryIsNotConstructed)
}

// ProductID returns the product filter, empty when unfiltered.
func (q ListInventoryTransactionsQuery) ProductID() string { return q.productID }

// VariantID returns the variant filter, empty when unfiltered.
func (q ListInventoryTransactionsQuery) VariantID() string { return q.variantID }

// Type returns the transaction type filter, nil when unfiltered.
func (q ListInventoryTransactionsQuery) Type() *inventory.TransactionType { return q.txType }

// From returns the inclusive lower bound of the date range, nil when open.
func (q ListInventoryTransactionsQuery) From() *time.Time { return q.from }

// To returns the inclusive upper bound of the date range, nil when open.
func (q ListInventoryTransactionsQuery) To() *time.Time { return q.to }

// SortBy returns the sort key.
func (q ListInventoryTransactionsQuery) SortBy() string { return q.sortBy }

// SortDir returns the sort direction.
func (q ListInventoryTransactionsQuery) SortDir() string { return q.sortDir }

// Page returns the 1-based page index.
func (q ListInventoryTransactionsQuery) Page() int { return q.page }

// PageSize returns the page length.
func (q ListInventoryTransactionsQuery) PageSize() int { return q.pageSize }

func (q *ListInventoryTransactionsQuery) setType(txType *inventory.TransactionType) error {
	if txType == nil {
		return nil
	}
	if err := txType.Validate(); err != nil {
		return err
	}

	q.txType = txType
	return nil
}

func (q *ListInventoryTransactionsQuery) setSort(sortBy, sortDir string) error {
	if sortBy == "" {
		sortBy = SortByCreatedAt
	}
	if _, ok := inventorySortColumns[sortBy]; !ok {
		return errs.NewValueIsInvalidError("sortBy")
	}

	switch sortDir {
	case "":
		sortDir = SortDesc
	case SortAsc, SortDesc:
	default:
		return errs.NewValueIsInvalidError("sortDir")
	}

	q.sortBy = sortBy
	q.sortDir = sortDir
	return nil
}

func (q *ListInventoryTransactionsQuery) setPage(page int) error {
	normalized, err := normalizePage(page)
	if err != nil {
		return err
	}

	q.page = normalized
	return nil
}

func (q *ListInventoryTransactionsQuery) setPageSize(pageSize int) error {
	normalized, err := normalizePageSize(pageSize)
	if err != nil {
		return err
	}

	q.pageSize = normalized
	return nil
}

// InventoryTransactionResponse is one ledger entry in the read model.
type InventoryTransactionResponse struct {
	ID             kernel.UUID
	ProductID      string
	VariantID      string
	Type           string
	QuantityChange int
	BeforeQuantity int
	AfterQuantity  int
	ReferenceType  string
	ReferenceID    string
	Note           string
	CreatedAt      time.Time
}

// ListInventoryTransactionsQueryResponse is one page of the ledger.
type ListInventoryTransactionsQueryResponse struct {
	Transactions []InventoryTransactionResponse
	Total        int64
	Page         int
	PageSize     int
}
