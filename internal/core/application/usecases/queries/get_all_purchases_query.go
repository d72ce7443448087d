package queries

import (
	"errors"

	"purchase/internal/pkg/guard"
)

var ErrGetAllPurchasesQueryIsNotConstructed = errors.New(
	"GetAllPurchasesQuery must be created via NewGetAllPurchasesQuery constructor",
)

// GetAllPurchasesQuery retrieves every stored purchase with its line items.
// This is a parameterless query.
type GetAllPurchasesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPurchasesQuery creates a query to retrieve all purchases.
func NewGetAllPurchasesQuery() GetAllPurchasesQuery {
	return GetAllPurchasesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPurchasesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPurchasesQueryIsNotConstructed)
}
