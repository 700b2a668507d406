// Package order models the seeder's view of an order that lives in the
// remote backend. The backend owns the record; this process only holds a
// reference mirroring the identifier and the fields the backend echoes back
// (status, installment counters, totals).
//
// Creation of an order implicitly charges the first installment, so a fresh
// reference always starts with one paid step. The local mirror is advanced by
// RecordPayment as the progression simulator issues further installments, and
// the Status state machine keeps the mirror from drifting into states the
// backend would never report.
package order
