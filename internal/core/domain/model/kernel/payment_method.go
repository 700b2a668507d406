package kernel

import (
	"fmt"

	"seeder/internal/pkg/errs"
)

// PaymentMethod identifies how an order's installments are charged.
// It is a value object with a fixed set of wire names understood by the
// backend's order-creation and payment endpoints.
type PaymentMethod int

const (
	// UnknownMethod represents an invalid or undefined payment method.
	// This value (0) helps catch uninitialized PaymentMethod values.
	UnknownMethod PaymentMethod = iota

	// Wallet charges the customer's in-app wallet balance.
	Wallet

	// Card charges the customer's saved card.
	Card

	// BankTransfer settles installments via direct bank transfer.
	BankTransfer
)

// getMethodStrings returns the wire names for all methods, including invalid ones.
func getMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownMethod: "unknown",
		Wallet:        "wallet",
		Card:          "card",
		BankTransfer:  "bank_transfer",
	}
}

// getValidMethodStrings returns the wire names for valid methods only.
func getValidMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // UnknownMethod is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		Wallet:       "wallet",
		Card:         "card",
		BankTransfer: "bank_transfer",
	}
}

// PaymentMethodFromString parses a backend wire name into a PaymentMethod.
// Returns an error for unrecognized names.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getValidMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a known payment method", s),
	)
}

// Validate checks that the PaymentMethod is one of the valid values.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the backend wire name of the method.
// Implements fmt.Stringer; safe to call on any value.
func (m PaymentMethod) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
