package queries

import (
	"context"

	"purchase/internal/core/domain/model/purchase"
)

// GetAllPurchasesQueryHandler retrieves every composed purchase aggregate,
// in ascending header-id order.
type GetAllPurchasesQueryHandler struct {
	reader AggregateReader
}

// NewGetAllPurchasesQueryHandler creates a handler for listing purchases.
func NewGetAllPurchasesQueryHandler(reader AggregateReader) GetAllPurchasesQueryHandler {
	return GetAllPurchasesQueryHandler{reader: reader}
}

// Handle executes the query.
func (h GetAllPurchasesQueryHandler) Handle(
	ctx context.Context,
	query GetAllPurchasesQuery,
) ([]*purchase.Purchase, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.reader.AssembleAll(ctx)
}
