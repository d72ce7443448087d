package queries

import (
	"errors"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"
	"purchase/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrphanedPurchasesQueryIsNotConstructed = errors.New(
	"GetOrphanedPurchasesQuery must be created via NewGetOrphanedPurchasesQuery constructor",
)

// GetOrphanedPurchasesQuery retrieves purchase headers that have no line items.
// Such headers are the documented outcome of the non-atomic two-phase create:
// the header write succeeded and the item write did not. This query feeds the
// reconciliation sweep.
type GetOrphanedPurchasesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrphanedPurchasesQuery creates a query to retrieve orphaned headers.
func NewGetOrphanedPurchasesQuery() GetOrphanedPurchasesQuery {
	return GetOrphanedPurchasesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrphanedPurchasesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrphanedPurchasesQueryIsNotConstructed)
}

// GetOrphanedPurchasesQueryResponse describes one orphaned purchase header.
type GetOrphanedPurchasesQueryResponse struct {
	ID       kernel.UUID
	Amount   decimal.Decimal
	Currency string
	Status   purchase.Status
}
