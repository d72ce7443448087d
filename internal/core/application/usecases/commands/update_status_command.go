package commands

import (
	"errors"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"
	"purchase/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand represents a request to advance the payment status of an
// existing purchase to the requested value.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	purchaseID kernel.UUID
	status     purchase.Status

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand creates a command to advance a purchase's status.
// Validates that the purchase id and the requested status are valid values;
// whether the transition itself is legal is decided by the aggregate.
func NewUpdateStatusCommand(purchaseID kernel.UUID, status purchase.Status) (UpdateStatusCommand, error) {
	cmd := UpdateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPurchaseID(purchaseID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// PurchaseID returns the identifier of the purchase to update.
func (c UpdateStatusCommand) PurchaseID() kernel.UUID {
	return c.purchaseID
}

// Status returns the requested payment status.
func (c UpdateStatusCommand) Status() purchase.Status {
	return c.status
}

func (c *UpdateStatusCommand) setPurchaseID(purchaseID kernel.UUID) error {
	if err := purchaseID.Validate(); err != nil {
		return err
	}

	c.purchaseID = purchaseID
	return nil
}

func (c *UpdateStatusCommand) setStatus(status purchase.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
