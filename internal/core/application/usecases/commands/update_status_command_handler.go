package commands

import (
	"context"

	"purchase/internal/core/domain/model/purchase"
	"purchase/internal/pkg/errs"
)

// UpdateStatusCommandHandler advances the payment status of a purchase.
//
// The aggregate is re-read immediately before mutating and persisting, rather
// than trusting a caller-supplied prior state. Two concurrent updates against
// the same purchase id are not serialized: both may read the same status and
// both may succeed in writing the identical successor value.
type UpdateStatusCommandHandler struct {
	headers   HeaderStore
	assembler AggregateAssembler
}

// NewUpdateStatusCommandHandler creates a handler for status updates.
func NewUpdateStatusCommandHandler(headers HeaderStore, assembler AggregateAssembler) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		headers:   headers,
		assembler: assembler,
	}
}

// Handle loads the purchase, advances its status, and persists the header.
// Line items are immutable and are not re-persisted. Fails with an
// errs.ObjectNotFoundError when no purchase exists for the id, and propagates
// the aggregate's transition error verbatim when the change is illegal.
func (h *UpdateStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateStatusCommand,
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

	if err = aggregate.AdvanceStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = h.headers.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
