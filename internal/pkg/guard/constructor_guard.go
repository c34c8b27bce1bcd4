// Package guard implements the constructor-guard pattern used by domain
// value objects and commands. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable: only values produced by the designated
// constructor pass Validate.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so structs embedding a guard cannot be used without going
// through their constructor.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Call it from
// the owning type's constructor and nowhere else.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the owner was built via its constructor.
// Returns validationError (or ErrDefaultConstructorGuard when nil) for
// zero-value guards, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
