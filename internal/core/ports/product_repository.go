package ports

import (
	"context"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"
)

// ProductRepository defines the persistence contract for purchased line items.
// Items are stored in their own table and associated to a purchase header
// through the purchase-id back-reference; an item whose back-reference is not
// set cannot be persisted.
type ProductRepository interface {
	// AddAll persists a batch of line items.
	// Every item must be valid and already stamped with its owning purchase id.
	AddAll(ctx context.Context, products []*purchase.Product) error

	// GetAllByPurchaseID retrieves all line items whose back-reference equals
	// the given purchase id, ordered by ascending item identifier.
	GetAllByPurchaseID(ctx context.Context, purchaseID kernel.UUID) ([]*purchase.Product, error)
}
