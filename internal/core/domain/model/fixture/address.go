package fixture

import (
	"fmt"

	"seeder/internal/pkg/errs"
	"seeder/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is a delivery address from the fixed reference pool.
// It is an immutable value object; the zero value is invalid.
//
// Example:
//
//	addr, err := fixture.NewAddress("12 Marina Road", "Lagos")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street string
	city   string

	guard guard.ConstructorGuard
}

// NewAddress creates a delivery address with non-empty street and city.
func NewAddress(street, city string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	address.street = street
	address.city = city
	return address, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// IsEqual reports whether two addresses point at the same place.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city
}

// String formats the address for report output.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s", a.street, a.city)
}
