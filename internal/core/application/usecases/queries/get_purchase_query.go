// Package queries contains read operations in the CQRS architecture.
// Aggregate reads go through the assembly layer; reporting reads use direct
// SQL for optimal read performance.
package queries

import (
	"context"
	"errors"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"
	"purchase/internal/pkg/guard"
)

var ErrGetPurchaseQueryIsNotConstructed = errors.New(
	"GetPurchaseQuery must be created via NewGetPurchaseQuery constructor",
)

// AggregateReader loads composed purchase aggregates for read operations.
type AggregateReader interface {
	// Assemble returns the composed aggregate, or (nil, nil) when no header
	// exists for the id.
	Assemble(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error)

	// AssembleAll returns every composed aggregate in ascending header-id order.
	AssembleAll(ctx context.Context) ([]*purchase.Purchase, error)
}

// GetPurchaseQuery retrieves a single purchase with its line items.
type GetPurchaseQuery struct {
	purchaseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPurchaseQuery creates a query for the purchase with the given id.
func NewGetPurchaseQuery(purchaseID kernel.UUID) (GetPurchaseQuery, error) {
	if err := purchaseID.Validate(); err != nil {
		return GetPurchaseQuery{}, err
	}

	return GetPurchaseQuery{
		purchaseID: purchaseID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPurchaseQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseQueryIsNotConstructed)
}

// PurchaseID returns the identifier of the purchase to read.
func (q GetPurchaseQuery) PurchaseID() kernel.UUID {
	return q.purchaseID
}
