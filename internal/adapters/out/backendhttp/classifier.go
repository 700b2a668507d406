package backendhttp

import "strings"

// stepLimitMessageFragment is the free-text signal the backend currently
// emits when an order already received its installment for the day. The true
// external contract is not structured, so detection stays swappable.
const stepLimitMessageFragment = "already made a payment"

// StepLimitMatcher decides whether a rejected payment response signals the
// daily installment limit. It receives the HTTP status code and the error
// message from the response body.
type StepLimitMatcher func(statusCode int, message string) bool

// DefaultStepLimitMatcher matches the backend's current free-text message by
// substring, case-insensitively.
func DefaultStepLimitMatcher(_ int, message string) bool {
	return strings.Contains(strings.ToLower(message), stepLimitMessageFragment)
}
