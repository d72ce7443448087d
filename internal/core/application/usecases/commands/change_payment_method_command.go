package commands

import (
	"errors"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"
	"purchase/internal/pkg/guard"
)

var ErrChangePaymentMethodCommandIsNotConstructed = errors.New(
	"ChangePaymentMethodCommand must be created via NewChangePaymentMethodCommand constructor",
)

// ChangePaymentMethodCommand represents a request to replace the payment
// method of an existing purchase. The change is only legal while the purchase
// is still IN_PROGRESS; the aggregate enforces that.
type ChangePaymentMethodCommand struct { //nolint:recvcheck //using for validation
	purchaseID kernel.UUID
	method     purchase.PaymentMethod

	guard guard.ConstructorGuard
}

// NewChangePaymentMethodCommand creates a command to change a purchase's
// payment method. Validates that the purchase id and the method are valid values.
func NewChangePaymentMethodCommand(
	purchaseID kernel.UUID,
	method purchase.PaymentMethod,
) (ChangePaymentMethodCommand, error) {
	cmd := ChangePaymentMethodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPurchaseID(purchaseID),
		cmd.setMethod(method),
	); err != nil {
		return ChangePaymentMethodCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePaymentMethodCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentMethodCommandIsNotConstructed)
}

// PurchaseID returns the identifier of the purchase to update.
func (c ChangePaymentMethodCommand) PurchaseID() kernel.UUID {
	return c.purchaseID
}

// Method returns the requested payment method.
func (c ChangePaymentMethodCommand) Method() purchase.PaymentMethod {
	return c.method
}

func (c *ChangePaymentMethodCommand) setPurchaseID(purchaseID kernel.UUID) error {
	if err := purchaseID.Validate(); err != nil {
		return err
	}

	c.purchaseID = purchaseID
	return nil
}

func (c *ChangePaymentMethodCommand) setMethod(method purchase.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
