package commands

import (
	"context"

	"purchase/internal/core/domain/model/purchase"
	"purchase/internal/pkg/errs"
)

// ChangePaymentMethodCommandHandler replaces the payment method of a purchase.
//
// Like the status update, the aggregate is re-read immediately before mutating
// and persisting; concurrent changes against the same purchase id are not
// serialized by this layer.
type ChangePaymentMethodCommandHandler struct {
	headers   HeaderStore
	assembler AggregateAssembler
}

// NewChangePaymentMethodCommandHandler creates a handler for payment method changes.
func NewChangePaymentMethodCommandHandler(
	headers HeaderStore,
	assembler AggregateAssembler,
) ChangePaymentMethodCommandHandler {
	return ChangePaymentMethodCommandHandler{
		headers:   headers,
		assembler: assembler,
	}
}

// Handle loads the purchase, changes its payment method, and persists the
// header only. Fails with an errs.ObjectNotFoundError when no purchase exists
// for the id, and propagates purchase.ErrPaymentMethodLocked verbatim when the
// purchase has already left the IN_PROGRESS status.
func (h *ChangePaymentMethodCommandHandler) Handle(
	ctx context.Context,
	cmd ChangePaymentMethodCommand,
) (*purchase.Purchase, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.assembler.Assemble(ctx, cmd.PurchaseID())
	if err != nil {
		return nil, err
	}
	if aggregate == nil {
		return nil, errs.NewObjectNotFoundError("purchase", cmd.PurchaseID().String())
	}

	if err = aggregate.ChangePaymentMethod(cmd.Method()); err != nil {
		return nil, err
	}

	if err = h.headers.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
