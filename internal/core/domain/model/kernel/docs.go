// Package kernel provides the shared value objects of the seeder domain:
// identifiers, monetary amounts, and payment methods.
//
// All types here are immutable value objects created through validating
// constructors. Zero values are deliberately invalid and fail Validate(),
// which keeps improperly initialized objects from reaching the backend.
package kernel
