package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/inventory"
	"commerce/internal/core/domain/model/kernel"
)

// AppendInventoryCommandHandler appends an entry to the stock ledger. The
// (product, variant) key is locked for the duration of the transaction so
// the entry always chains onto the latest prior one.
type AppendInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
	timeout    time.Duration
}

// NewAppendInventoryCommandHandler creates a handler for ledger appends.
func NewAppendInventoryCommandHandler(uowFactory InventoryUoWFactory) AppendInventoryCommandHandler {
	return AppendInventoryCommandHandler{
		uowFactory: uowFactory,
		timeout:    defaultCommandTimeout,
	}
}

// Handle processes the command and returns the appended transaction.
func (h AppendInventoryCommandHandler) Handle(ctx context.Context, command AppendInventoryCommand) (*inventory.Transaction, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	uow := h.uowFactory.Create()
	if err := uow.Begin(opCtx); err != nil {
		return nil, classifyDependencyErr(opCtx, "inventory ledger", err)
	}

	defer func() {
		_ = uow.Rollback(opCtx)
	}()

	inventoryRepo := uow.InventoryRepository()
	if err := inventoryRepo.LockKey(opCtx, command.ProductID(), command.VariantID()); err != nil {
		return nil, classifyDependencyErr(opCtx, "inventory ledger", err)
	}

	stock, err := currentStock(opCtx, inventoryRepo, command.ProductID(), command.VariantID())
	if err != nil {
		return nil, classifyDependencyErr(opCtx, "inventory ledger", err)
	}

	transaction, err := inventory.NewTransaction(inventory.NewTransactionParams{
		ID:             kernel.NewUUID(),
		ProductID:      command.ProductID(),
		VariantID:      command.VariantID(),
		Type:           command.TxType(),
		QuantityChange: command.QuantityChange(),
		BeforeQuantity: stock,
		Reference:      command.Reference(),
		Note:           command.Note(),
		AllowNegative:  command.AllowNegative(),
	}, time.Now())
	if err != nil {
		return nil, err
	}

	if err = inventoryRepo.Append(opCtx, transaction); err != nil {
		return nil, classifyDependencyErr(opCtx, "inventory ledger", err)
	}

	if err = uow.Commit(opCtx); err != nil {
		return nil, classifyDependencyErr(opCtx, "inventory ledger", err)
	}

	return transaction, nil
}
