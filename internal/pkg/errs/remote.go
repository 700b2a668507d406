package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for remote backend calls. The backend HTTP adapter maps every
// failed call to exactly one of these categories; the submission driver and the
// progression simulator branch on them with errors.Is.
var (
	// ErrTransportFailure marks unreachable-host and timeout failures.
	ErrTransportFailure = errors.New("transport failure")

	// ErrRequestRejected marks 4xx validation rejections of a single unit.
	ErrRequestRejected = errors.New("request rejected")

	// ErrInstallmentLimitReached marks the backend's one-installment-per-day
	// business rule. During progression this is an expected terminal state for
	// the order, never an incident.
	ErrInstallmentLimitReached = errors.New("installment limit reached for today")

	// ErrUnexpectedResponse marks any other non-success response.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// TransportError indicates the backend could not be reached or the call timed out.
type TransportError struct {
	Op    string
	Cause error
}

// NewTransportError creates an error for a failed network round trip.
func NewTransportError(op string, cause error) *TransportError {
	return &TransportError{Op: op, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrTransportFailure, sanitize(e.Op), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrTransportFailure, sanitize(e.Op))
}

func (e *TransportError) Unwrap() error {
	return ErrTransportFailure
}

// RequestRejectedError indicates the backend rejected the request as malformed.
type RequestRejectedError struct {
	StatusCode int
	Message    string
}

// NewRequestRejectedError creates an error for a 4xx validation rejection.
func NewRequestRejectedError(statusCode int, message string) *RequestRejectedError {
	return &RequestRejectedError{StatusCode: statusCode, Message: message}
}

func (e *RequestRejectedError) Error() string {
	return fmt.Sprintf("%s: %s (status code: %d)", ErrRequestRejected, sanitize(e.Message), e.StatusCode)
}

func (e *RequestRejectedError) Unwrap() error {
	return ErrRequestRejected
}

// InstallmentLimitError indicates the backend refused a payment because the
// order already received its installment for the current day.
type InstallmentLimitError struct {
	OrderID string
	Message string
}

// NewInstallmentLimitError creates an error for the daily installment limit.
func NewInstallmentLimitError(orderID, message string) *InstallmentLimitError {
	return &InstallmentLimitError{OrderID: orderID, Message: message}
}

func (e *InstallmentLimitError) Error() string {
	return fmt.Sprintf("%s: order %s (%s)", ErrInstallmentLimitReached, sanitize(e.OrderID), sanitize(e.Message))
}

func (e *InstallmentLimitError) Unwrap() error {
	return ErrInstallmentLimitReached
}

// UnexpectedResponseError indicates a non-success response outside the known categories.
type UnexpectedResponseError struct {
	StatusCode int
	Message    string
}

// NewUnexpectedResponseError creates an error for an unclassified backend response.
func NewUnexpectedResponseError(statusCode int, message string) *UnexpectedResponseError {
	return &UnexpectedResponseError{StatusCode: statusCode, Message: message}
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("%s: %s (status code: %d)", ErrUnexpectedResponse, sanitize(e.Message), e.StatusCode)
}

func (e *UnexpectedResponseError) Unwrap() error {
	return ErrUnexpectedResponse
}
