package batch

import (
	"errors"
	"fmt"
	"time"

	"seeder/internal/core/domain/model/fixture"
	"seeder/internal/core/domain/model/order"
	"seeder/internal/pkg/errs"
)

// FailureKind classifies why a remote call failed. The kind decides how the
// run treats the failure: business-rule halts are expected terminal
// conditions, everything else is an error worth reporting.
type FailureKind int

const (
	// UnknownFailure represents an unclassified failure.
	// This value (0) helps catch uninitialized FailureKind values.
	UnknownFailure FailureKind = iota

	// TransportFailure covers network errors: the request never produced an
	// HTTP response (connection refused, timeout, DNS).
	TransportFailure

	// ValidationFailure covers 4xx rejections of the request payload.
	ValidationFailure

	// BusinessRuleFailure covers rejections by a backend business rule, such
	// as the one-payment-per-day installment limit.
	BusinessRuleFailure

	// UnexpectedFailure covers responses the client cannot interpret,
	// including 5xx and malformed bodies.
	UnexpectedFailure
)

func getFailureKindStrings() map[FailureKind]string {
	return map[FailureKind]string{
		UnknownFailure:      "unknown",
		TransportFailure:    "transport",
		ValidationFailure:   "validation",
		BusinessRuleFailure: "business rule",
		UnexpectedFailure:   "unexpected",
	}
}

// String returns the human-readable name of the failure kind.
func (k FailureKind) String() string {
	if s, ok := getFailureKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Failure is the recorded reason one remote call did not succeed.
// StatusCode is zero when no HTTP response was received.
type Failure struct {
	Kind       FailureKind
	Message    string
	StatusCode int
}

// FailureFromError classifies a remote-call error into a Failure record.
// Classification follows the remote error taxonomy; errors outside it are
// recorded as unexpected rather than dropped.
func FailureFromError(err error) Failure {
	var (
		transportErr  *errs.TransportError
		rejectedErr   *errs.RequestRejectedError
		limitErr      *errs.InstallmentLimitError
		unexpectedErr *errs.UnexpectedResponseError
	)

	switch {
	case errors.As(err, &limitErr):
		return Failure{Kind: BusinessRuleFailure, Message: limitErr.Message, StatusCode: 0}
	case errors.As(err, &rejectedErr):
		return Failure{Kind: ValidationFailure, Message: rejectedErr.Message, StatusCode: rejectedErr.StatusCode}
	case errors.As(err, &transportErr):
		return Failure{Kind: TransportFailure, Message: transportErr.Error()}
	case errors.As(err, &unexpectedErr):
		return Failure{Kind: UnexpectedFailure, Message: unexpectedErr.Message, StatusCode: unexpectedErr.StatusCode}
	default:
		return Failure{Kind: UnexpectedFailure, Message: err.Error()}
	}
}

// String formats the failure for report lines, e.g.
// "validation (422): street is required".
func (f Failure) String() string {
	if f.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", f.Kind, f.StatusCode, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// SubmissionResult records the outcome of submitting one fixture: either the
// created order or the failure reason, plus the observed call latency.
// Results are appended in submission order, one per fixture.
type SubmissionResult struct {
	fixture fixture.Fixture
	order   *order.Order
	failure *Failure
	latency time.Duration
}

// NewSubmissionSuccess records a fixture that produced a remote order.
func NewSubmissionSuccess(f fixture.Fixture, o *order.Order, latency time.Duration) SubmissionResult {
	return SubmissionResult{fixture: f, order: o, latency: latency}
}

// NewSubmissionFailure records a fixture whose submission failed.
func NewSubmissionFailure(f fixture.Fixture, failure Failure, latency time.Duration) SubmissionResult {
	return SubmissionResult{fixture: f, failure: &failure, latency: latency}
}

// Succeeded reports whether the fixture produced an order.
func (r SubmissionResult) Succeeded() bool {
	return r.order != nil
}

// Fixture returns the fixture this result belongs to.
func (r SubmissionResult) Fixture() fixture.Fixture {
	return r.fixture
}

// Order returns the created order, or nil for a failed submission.
func (r SubmissionResult) Order() *order.Order {
	return r.order
}

// Failure returns the recorded failure, or nil for a successful submission.
func (r SubmissionResult) Failure() *Failure {
	return r.failure
}

// Latency returns how long the remote call took.
func (r SubmissionResult) Latency() time.Duration {
	return r.latency
}
