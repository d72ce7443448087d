package purchase

import (
	"errors"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPurchaseIsNotConstructed is returned when a Purchase instance was not created
	// through the NewPurchase or RestorePurchase factory methods.
	ErrPurchaseIsNotConstructed = errors.New("Purchase must be created via NewPurchase or RestorePurchase constructor")

	// ErrEmptyPurchase is returned when a purchase is created with no line items.
	// The amount is derived from the items, so an empty purchase has no valid amount.
	ErrEmptyPurchase = errors.New("purchase must contain at least one purchased product")

	// ErrPaymentMethodLocked is returned when a payment method change is attempted
	// after the purchase has left the InProgress status.
	ErrPaymentMethodLocked = errors.New("payment is too advanced to change payment method")
)

// Purchase represents a purchase record in the system. It is the aggregate root
// composing a header (amount, currency, payment method, status) with its
// purchased line items.
//
// Purchase follows these invariants:
//   - Must have a valid unique identifier
//   - Amount always equals the sum of each line item's total cost; it is
//     computed once at creation and never independently re-derived
//   - Currency is caller-supplied and immutable after creation
//   - Status only ever advances forward through the fixed payment order
//   - The payment method is mutable only while the status is InProgress
//   - Can only be created through NewPurchase or RestorePurchase
//
// The Purchase struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Purchase struct {
	// id is the unique identifier for the purchase header
	id kernel.UUID

	// amount is the monetary total, always derived from the line items
	amount decimal.Decimal

	// currency is the ISO-style currency code
	currency string

	// method is the selected payment method
	method PaymentMethod

	// status is the current payment lifecycle state
	status Status

	// products are the purchased line items (fixed at creation)
	products []*Product

	// isConstructed ensures the purchase was created via a constructor
	isConstructed bool
}

// NewPurchase creates a new Purchase instance with validation. This is the only
// way to create a purchase, ensuring all business invariants are maintained.
//
// The products list must be non-empty; the total amount is computed as the sum
// of each product's total cost and the status starts at InProgress. The
// products need not carry a purchase back-reference yet; they are stamped
// once the header is persisted.
//
// Parameters:
//   - id: Unique identifier for the purchase (must be a valid UUID)
//   - currency: ISO-style currency code (must be non-empty)
//   - method: Payment method (must be a valid PaymentMethod)
//   - products: Purchased line items (must be non-empty and valid)
//
// Returns:
//   - *Purchase: The created purchase if all validations pass
//   - error: ErrEmptyPurchase when products is empty, a validation error otherwise
//
// Example:
//
//	id := kernel.NewUUID()
//	product, _ := purchase.NewProduct(kernel.NewUUID(), "name", "ref", 4, decimal.RequireFromString("3.1"))
//	p, err := purchase.NewPurchase(id, "EUR", purchase.CreditCard, []*purchase.Product{product})
//	if err != nil {
//	    // Handle validation error
//	}
//	p.Amount() // 12.4
func NewPurchase(id kernel.UUID, currency string, method PaymentMethod, products []*Product) (*Purchase, error) {
	p := &Purchase{
		status:        InProgress,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCurrency(currency),
		p.setMethod(method),
		p.setProducts(products),
	); err != nil {
		return nil, err
	}

	amount := decimal.Zero
	for _, product := range p.products {
		amount = amount.Add(product.TotalCost())
	}
	p.amount = amount

	return p, nil
}

// RestorePurchase reconstructs a Purchase from its persisted representation.
// Unlike NewPurchase it does not derive the amount or reset the status; both
// are restored exactly as stored. The products slice may be nil when only the
// header has been loaded; attach items with WithProducts.
func RestorePurchase(
	id kernel.UUID,
	amount decimal.Decimal,
	currency string,
	method PaymentMethod,
	status Status,
	products []*Product,
) (*Purchase, error) {
	p := &Purchase{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCurrency(currency),
		p.setMethod(method),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	p.amount = amount
	p.status = status
	p.products = products

	return p, nil
}

// Validate ensures the Purchase instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct and should be called when persisting or rendering an aggregate.
func (p *Purchase) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPurchaseIsNotConstructed
	}

	return nil
}

// IsEqual compares two purchases by their unique identifiers.
func (p *Purchase) IsEqual(other *Purchase) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the purchase's unique identifier.
func (p *Purchase) ID() kernel.UUID {
	return p.id
}

// Amount returns the monetary total derived from the line items.
func (p *Purchase) Amount() decimal.Decimal {
	return p.amount
}

// Currency returns the ISO-style currency code.
func (p *Purchase) Currency() string {
	return p.currency
}

// Method returns the selected payment method.
func (p *Purchase) Method() PaymentMethod {
	return p.method
}

// Status returns the current payment lifecycle state.
func (p *Purchase) Status() Status {
	return p.status
}

// Products returns the purchased line items.
// Returns nil when only the header has been loaded.
func (p *Purchase) Products() []*Product {
	return p.products
}

// WithProducts returns a copy of the purchase carrying the given line items.
// The receiver is not modified. Used by the assembly layer to join a loaded
// header with the items fetched from their own table.
func (p *Purchase) WithProducts(products []*Product) *Purchase {
	assembled := *p
	assembled.products = products
	return &assembled
}

// AdvanceStatus moves the purchase to the requested payment status.
//
// The change succeeds only when requested is the single legal successor of the
// current status (InProgress -> Authorized -> Captured). Any other target
// (the same status, a state behind, a multi-step jump, or any move out of the
// terminal Captured state) fails with a StatusTransitionError carrying both
// statuses. On success only the status changes; amount, currency, method and
// products are untouched.
func (p *Purchase) AdvanceStatus(requested Status) error {
	newStatus, err := p.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// ChangePaymentMethod replaces the payment method of the purchase.
//
// The change succeeds only while the status is InProgress; otherwise it fails
// with ErrPaymentMethodLocked regardless of the requested method. On success
// only the payment method changes.
func (p *Purchase) ChangePaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	if p.status != InProgress {
		return ErrPaymentMethodLocked
	}

	p.method = method
	return nil
}

// setID validates and sets the purchase's unique identifier.
// This is a private method used only during construction.
func (p *Purchase) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setCurrency validates and sets the currency code.
// This is a private method used only during construction.
func (p *Purchase) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	p.currency = currency
	return nil
}

// setMethod validates and sets the payment method.
// This is a private method used only during construction.
func (p *Purchase) setMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

// setProducts validates and sets the line items.
// The list must be non-empty and every product must be valid.
// This is a private method used only during construction.
func (p *Purchase) setProducts(products []*Product) error {
	if len(products) == 0 {
		return ErrEmptyPurchase
	}

	for _, product := range products {
		if err := product.Validate(); err != nil {
			return err
		}
	}

	p.products = products
	return nil
}
