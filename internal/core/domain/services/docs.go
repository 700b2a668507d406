// Package services provides domain services that operate across multiple
// domain entities of the seeding run.
//
// The package includes:
//   - ProgressionBander: assigns created orders a target completion fraction
//     by splitting the batch into bands in creation order.
//
// Domain services hold policy that does not naturally belong to a single
// value object or entity.
package services
