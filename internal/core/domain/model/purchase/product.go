package purchase

import (
	"errors"
	"fmt"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product represents a purchased line item belonging to exactly one purchase.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Name and reference must be non-empty and are immutable
//   - Quantity must be positive
//   - Unit price must be positive
//   - The purchase back-reference is set at most once, when the owning
//     header's identifier becomes known
//
// The storage layer keeps products in their own table keyed by the owning
// purchase id; the back-reference is a non-owning pointer used only for that
// association.
type Product struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// name is the descriptive product name
	name string

	// reference is the product catalogue reference
	reference string

	// quantity is the number of units purchased (must be positive)
	quantity int

	// price is the unit price (must be positive)
	price decimal.Decimal

	// purchaseID is the owning purchase header's id (zero until stamped)
	purchaseID kernel.UUID

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new Product instance with validation. The product has no
// purchase back-reference yet; it is stamped once the owning header is persisted.
//
// Parameters:
//   - id: Unique identifier for the line item (must be a valid UUID)
//   - name: Product name (must be non-empty)
//   - reference: Product catalogue reference (must be non-empty)
//   - quantity: Number of units (must be positive)
//   - price: Unit price (must be positive)
func NewProduct(id kernel.UUID, name, reference string, quantity int, price decimal.Decimal) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setReference(reference),
		product.setQuantity(quantity),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from its persisted representation,
// including the purchase back-reference assigned at creation time.
func RestoreProduct(
	id kernel.UUID,
	name, reference string,
	quantity int,
	price decimal.Decimal,
	purchaseID kernel.UUID,
) (*Product, error) {
	product, err := NewProduct(id, name, reference, quantity, price)
	if err != nil {
		return nil, err
	}

	if err = purchaseID.Validate(); err != nil {
		return nil, err
	}
	product.purchaseID = purchaseID

	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the line item's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Reference returns the product catalogue reference.
func (p *Product) Reference() string {
	return p.reference
}

// Quantity returns the number of units purchased.
func (p *Product) Quantity() int {
	return p.quantity
}

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// PurchaseID returns the owning purchase header's identifier.
// The zero UUID means the product has not been stamped yet.
func (p *Product) PurchaseID() kernel.UUID {
	return p.purchaseID
}

// TotalCost returns the derived line total: price * quantity.
func (p *Product) TotalCost() decimal.Decimal {
	return p.price.Mul(decimal.NewFromInt(int64(p.quantity)))
}

// WithPurchaseID returns a copy of the product carrying the owning header's
// identifier. The receiver is not modified; stamping derives new values rather
// than mutating items that may already be referenced elsewhere.
func (p *Product) WithPurchaseID(purchaseID kernel.UUID) (*Product, error) {
	if err := purchaseID.Validate(); err != nil {
		return nil, err
	}

	stamped := *p
	stamped.purchaseID = purchaseID
	return &stamped, nil
}

// setID validates and sets the line item's unique identifier.
// This is a private method used only during construction.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the product name.
// This is a private method used only during construction.
func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setReference validates and sets the product reference.
// This is a private method used only during construction.
func (p *Product) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	p.reference = reference
	return nil
}

// setQuantity validates and sets the quantity.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (p *Product) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	p.quantity = quantity
	return nil
}

// setPrice validates and sets the unit price.
// Price must be positive (greater than 0).
// This is a private method used only during construction.
func (p *Product) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%s is not greater than 0", price))
	}
	p.price = price
	return nil
}
