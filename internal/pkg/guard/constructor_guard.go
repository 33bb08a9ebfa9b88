// Package guard provides a constructor guard for commands and value objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// distinguishable from instances built through their designated constructor,
// so validation can reject objects that bypassed construction rules.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// and the guarded object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is "not constructed" and fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as constructed.
// Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was built through its constructor.
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
