// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, load-then-mutate on a
// freshly read aggregate, and persistence.
//
// The header and its line items are written through two independent storage
// operations with no atomicity guarantee; handlers document the partial-failure
// outcome this implies. Concurrent commands against the same purchase id are
// not serialized by this layer.
package commands

import (
	"context"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"
)

// Dependency contracts for command handlers. Handlers never read storage
// directly: every mutation re-reads the aggregate through the assembler
// immediately before mutating, rather than trusting caller-supplied prior
// state.
type (
	// AggregateAssembler composes and splits the purchase aggregate across the
	// header and line-item storage shapes.
	AggregateAssembler interface {
		// Assemble returns the composed aggregate, or (nil, nil) when no
		// header exists for the id.
		Assemble(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error)

		// Disassemble splits an aggregate into its header and line items.
		Disassemble(aggregate *purchase.Purchase) (*purchase.Purchase, []*purchase.Product)

		// StampProducts returns new line items carrying the header id.
		StampProducts(headerID kernel.UUID, products []*purchase.Product) ([]*purchase.Product, error)
	}

	// HeaderStore persists purchase headers.
	HeaderStore interface {
		Add(ctx context.Context, aggregate *purchase.Purchase) error
		Update(ctx context.Context, aggregate *purchase.Purchase) error
	}

	// ProductStore persists purchased line items.
	ProductStore interface {
		AddAll(ctx context.Context, products []*purchase.Product) error
	}
)
