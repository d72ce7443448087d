// Package guard provides a defensive programming pattern that ensures commands,
// queries, and other value-like objects are only created through their designated
// constructor functions. A zero-value object carries a zero-value guard and fails
// validation, which prevents accidental use of uninitialized structs.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific validation
// error is supplied for an object that was not created via its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its constructor.
// Embed it as a private field and set it with NewConstructorGuard inside the
// constructor; the zero value fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
