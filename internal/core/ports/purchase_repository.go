// Package ports defines repository interfaces for the purchase domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"
)

// PurchaseRepository defines the persistence contract for purchase headers.
// Only the header fields (id, amount, currency, payment method, status) are
// stored through this interface; line items live behind ProductRepository.
// Identity and referential linkage must be preserved by any implementation.
type PurchaseRepository interface {
	// Add persists a new purchase header to storage.
	// The aggregate must be valid and not already exist in the repository.
	// Line items carried by the aggregate are ignored here.
	Add(ctx context.Context, aggregate *purchase.Purchase) error

	// Update persists changes to an existing purchase header.
	// The header must exist in the repository and the aggregate must be valid.
	Update(ctx context.Context, aggregate *purchase.Purchase) error

	// Get retrieves a purchase header by its unique identifier.
	// The returned aggregate carries no line items; absence is reported as an
	// errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error)

	// GetAll retrieves every purchase header ordered by ascending identifier.
	// The ordering is not a domain requirement but keeps reads deterministic.
	GetAll(ctx context.Context) ([]*purchase.Purchase, error)
}
