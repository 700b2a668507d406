package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an object created outside its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. Embedding a guard in a struct makes
// zero-value instances detectable: the internal flag is only set by
// NewConstructorGuard, so any struct created by direct initialization fails
// validation.
//
// Example usage:
//
//	type Plan struct {
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewPlan(quantity int) (Plan, error) {
//	    if quantity <= 0 {
//	        return Plan{}, errors.New("quantity must be positive")
//	    }
//	    return Plan{quantity: quantity, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Plan) Validate() error {
//	    return p.guard.Validate(ErrPlanIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
// Call it in the constructor of every guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was created through its
// constructor. Returns validationError for zero-value instances, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
