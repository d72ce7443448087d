package queries

import (
	"context"

	"purchase/internal/core/domain/model/purchase"
)

// GetPurchaseQueryHandler retrieves a single composed purchase aggregate.
//
// Absence is an empty result at this layer, not an error: a missing purchase
// yields (nil, nil). Only write-intent operations translate absence into a
// not-found failure.
type GetPurchaseQueryHandler struct {
	reader AggregateReader
}

// NewGetPurchaseQueryHandler creates a handler for single-purchase reads.
func NewGetPurchaseQueryHandler(reader AggregateReader) GetPurchaseQueryHandler {
	return GetPurchaseQueryHandler{reader: reader}
}

// Handle executes the query. The header and its line items are fetched
// concurrently by the assembly layer.
func (h GetPurchaseQueryHandler) Handle(ctx context.Context, query GetPurchaseQuery) (*purchase.Purchase, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.reader.Assemble(ctx, query.PurchaseID())
}
