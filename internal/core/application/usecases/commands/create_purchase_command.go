package commands

import (
	"errors"

	"purchase/internal/core/domain/model/purchase"
	"purchase/internal/pkg/errs"
	"purchase/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreatePurchaseCommandIsNotConstructed = errors.New(
		"CreatePurchaseCommand must be created via NewCreatePurchaseCommand constructor",
	)
	ErrProductLineIsNotConstructed = errors.New(
		"ProductLine must be created via NewProductLine constructor",
	)
)

// ProductLine carries the caller-supplied description of one line item of a
// purchase to be created: name, reference, quantity, and unit price. Ids and
// the purchase back-reference are assigned later, by the creation operation.
type ProductLine struct { //nolint:recvcheck //using for validation
	name      string
	reference string
	quantity  int
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewProductLine creates a validated line-item description.
// Name and reference must be non-empty; quantity and price must be positive.
func NewProductLine(name, reference string, quantity int, price decimal.Decimal) (ProductLine, error) {
	line := ProductLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setName(name),
		line.setReference(reference),
		line.setQuantity(quantity),
		line.setPrice(price),
	); err != nil {
		return ProductLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l ProductLine) Validate() error {
	return l.guard.Validate(ErrProductLineIsNotConstructed)
}

// Name returns the product name.
func (l ProductLine) Name() string {
	return l.name
}

// Reference returns the product catalogue reference.
func (l ProductLine) Reference() string {
	return l.reference
}

// Quantity returns the number of units.
func (l ProductLine) Quantity() int {
	return l.quantity
}

// Price returns the unit price.
func (l ProductLine) Price() decimal.Decimal {
	return l.price
}

func (l *ProductLine) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	l.name = name
	return nil
}

func (l *ProductLine) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}

	l.reference = reference
	return nil
}

func (l *ProductLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	l.quantity = quantity
	return nil
}

func (l *ProductLine) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price")
	}

	l.price = price
	return nil
}

// CreatePurchaseCommand represents a request to create a new purchase from
// caller-supplied currency, payment method, and line items. The amount is
// never supplied: it is derived from the lines by the aggregate.
//
// An empty line list is deliberately not rejected here; the aggregate itself
// refuses it with purchase.ErrEmptyPurchase, which is the error callers must
// observe.
type CreatePurchaseCommand struct { //nolint:recvcheck //using for validation
	currency string
	method   purchase.PaymentMethod
	lines    []ProductLine

	guard guard.ConstructorGuard
}

// NewCreatePurchaseCommand creates a command to register a new purchase.
// Validates that the currency is non-empty, the payment method is valid, and
// every supplied line is properly constructed.
func NewCreatePurchaseCommand(
	currency string,
	method purchase.PaymentMethod,
	lines []ProductLine,
) (CreatePurchaseCommand, error) {
	cmd := CreatePurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCurrency(currency),
		cmd.setMethod(method),
		cmd.setLines(lines),
	); err != nil {
		return CreatePurchaseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseCommandIsNotConstructed)
}

// Currency returns the ISO-style currency code.
func (c CreatePurchaseCommand) Currency() string {
	return c.currency
}

// Method returns the selected payment method.
func (c CreatePurchaseCommand) Method() purchase.PaymentMethod {
	return c.method
}

// Lines returns the line-item descriptions.
func (c CreatePurchaseCommand) Lines() []ProductLine {
	return c.lines
}

func (c *CreatePurchaseCommand) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}

	c.currency = currency
	return nil
}

func (c *CreatePurchaseCommand) setMethod(method purchase.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *CreatePurchaseCommand) setLines(lines []ProductLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}
