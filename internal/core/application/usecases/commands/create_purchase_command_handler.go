package commands

import (
	"context"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"
)

// CreatePurchaseCommandHandler handles the business logic for purchase creation.
// Initializes the aggregate (derived amount, IN_PROGRESS status), persists the
// header, then stamps and persists the line items under the header's id.
//
// The two writes are independent storage operations. When item persistence
// fails after the header has been saved, the header is left behind with no
// items. This is an accepted, observable failure mode that the orphan sweep
// surfaces; no rollback is attempted.
type CreatePurchaseCommandHandler struct {
	headers   HeaderStore
	products  ProductStore
	assembler AggregateAssembler
}

// NewCreatePurchaseCommandHandler creates a handler for purchase creation.
func NewCreatePurchaseCommandHandler(
	headers HeaderStore,
	products ProductStore,
	assembler AggregateAssembler,
) CreatePurchaseCommandHandler {
	return CreatePurchaseCommandHandler{
		headers:   headers,
		products:  products,
		assembler: assembler,
	}
}

// Handle processes the purchase creation command and returns the fully
// assembled result: the persisted header joined with the persisted, stamped
// line items.
func (h *CreatePurchaseCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePurchaseCommand,
) (*purchase.Purchase, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	products := make([]*purchase.Product, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		product, err := purchase.NewProduct(
			kernel.NewUUID(),
			line.Name(),
			line.Reference(),
			line.Quantity(),
			line.Price(),
		)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	aggregate, err := purchase.NewPurchase(kernel.NewUUID(), cmd.Currency(), cmd.Method(), products)
	if err != nil {
		return nil, err
	}

	header, items := h.assembler.Disassemble(aggregate)
	if err = h.headers.Add(ctx, header); err != nil {
		return nil, err
	}

	stamped, err := h.assembler.StampProducts(header.ID(), items)
	if err != nil {
		return nil, err
	}

	// Second phase of the non-atomic write: a failure here orphans the header.
	if err = h.products.AddAll(ctx, stamped); err != nil {
		return nil, err
	}

	return aggregate.WithProducts(stamped), nil
}
