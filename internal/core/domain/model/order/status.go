package order

import (
	"fmt"

	"seeder/internal/pkg/errs"
)

// Status represents the installment lifecycle state of a remote order.
//
// State transitions:
//
//	Active ──┬──> Settled
//	         │
//	         └──> Active
//	  (one transition per recorded installment)
//
// Orders are created Active because the backend charges the first installment
// at creation time. Settled is a final state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active indicates the order still has unpaid installment steps.
	Active

	// Settled indicates every installment step has been paid.
	// This is a final state with no further transitions allowed.
	Settled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Active:  "Active",
		Settled: "Settled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:  "Active",
		Settled: "Settled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Active and Settled; Unknown (0) and anything else fail.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidatePay checks whether another installment may be recorded in the
// current status, without performing the transition. Only Active orders
// accept payments; paying a Settled order is a state error.
func (s Status) ValidatePay() error {
	if s != Active {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pay an installment", s.String()),
		)
	}
	return nil
}

// Pay transitions the status after one installment is recorded.
//
// Valid transitions:
//   - Active -> Active  (steps remain)
//   - Active -> Settled (final step paid)
//
// Returns (0, error) if the current status does not accept payments.
func (s Status) Pay(isFinalStep bool) (Status, error) {
	if err := s.ValidatePay(); err != nil {
		return 0, err
	}

	if isFinalStep {
		return Settled, nil
	}
	return Active, nil
}
