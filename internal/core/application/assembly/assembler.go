// Package assembly bridges the two-table storage shape and the in-memory
// purchase aggregate. It composes a purchase header with its line items for
// reads, and splits and stamps them for writes.
package assembly

import (
	"context"
	"errors"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"
	"purchase/internal/core/ports"
	"purchase/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// Assembler joins purchase headers with their line items and prepares
// aggregates for the two-phase write. It is the only component that knows the
// aggregate is stored as a header row plus an item collection keyed by the
// header id.
type Assembler struct {
	purchases ports.PurchaseRepository
	products  ports.ProductRepository
}

// NewAssembler creates an Assembler over the two storage contracts.
func NewAssembler(purchases ports.PurchaseRepository, products ports.ProductRepository) *Assembler {
	return &Assembler{
		purchases: purchases,
		products:  products,
	}
}

// Assemble fetches the header with the given id and all line items whose
// back-reference equals that id, and returns the composed aggregate.
//
// The header and item fetches are independent reads with no ordering
// dependency, so they run concurrently. When no header exists for the id the
// result is (nil, nil): absence is an empty result here, not an error.
// Callers with write intent translate it themselves.
func (a *Assembler) Assemble(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error) {
	var (
		header   *purchase.Purchase
		products []*purchase.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		header, err = a.purchases.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = a.products.GetAllByPurchaseID(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return header.WithProducts(products), nil
}

// AssembleAll composes every stored header with its matching line items,
// in ascending header-id order.
func (a *Assembler) AssembleAll(ctx context.Context) ([]*purchase.Purchase, error) {
	headers, err := a.purchases.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	aggregates := make([]*purchase.Purchase, 0, len(headers))
	for _, header := range headers {
		products, productsErr := a.products.GetAllByPurchaseID(ctx, header.ID())
		if productsErr != nil {
			return nil, productsErr
		}
		aggregates = append(aggregates, header.WithProducts(products))
	}

	return aggregates, nil
}

// Disassemble splits an aggregate into the header part stored through
// PurchaseRepository and the line items stored through ProductRepository.
// The returned header carries no products.
func (a *Assembler) Disassemble(aggregate *purchase.Purchase) (*purchase.Purchase, []*purchase.Product) {
	return aggregate.WithProducts(nil), aggregate.Products()
}

// StampProducts returns a new item collection with the owning header's id set
// on every element. Used after the header has been persisted under a known id,
// before the items themselves are written.
func (a *Assembler) StampProducts(
	headerID kernel.UUID,
	products []*purchase.Product,
) ([]*purchase.Product, error) {
	stamped := make([]*purchase.Product, 0, len(products))
	for _, product := range products {
		s, err := product.WithPurchaseID(headerID)
		if err != nil {
			return nil, err
		}
		stamped = append(stamped, s)
	}

	return stamped, nil
}
