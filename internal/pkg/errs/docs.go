// Package errs provides standardized error types for the seeder application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Two families of errors live here:
//
// Validation errors, raised while constructing fixtures and value objects:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found
//
// Remote call errors, raised by the backend HTTP adapter and classified into
// the categories the submission driver and progression simulator act on:
//   - TransportError: the backend was unreachable or the call timed out
//   - RequestRejectedError: the backend rejected the request as malformed (4xx)
//   - InstallmentLimitError: the backend's one-installment-per-day rule fired;
//     an expected terminal condition during progression, not an incident
//   - UnexpectedResponseError: any other non-success response
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
