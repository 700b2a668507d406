// Package batch holds the value objects that describe one seeding run: the
// per-fixture submission outcomes, the per-order progression plans and
// results, and the aggregated run report.
//
// Everything here is pure data plus pure functions. The types record what the
// use case handlers did; they never perform network or database work
// themselves, which keeps report building trivially testable.
package batch
