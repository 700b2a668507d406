// Package ports defines the interfaces between the application core and the
// outside world: the remote backend being seeded, the pacing policy between
// calls, and the local seed ledger. These contracts enable dependency
// inversion and testability.
package ports

import (
	"context"

	"seeder/internal/core/domain/model/fixture"
	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/core/domain/model/order"
)

// Backend is the outbound contract to the remote system being seeded.
//
// Implementations issue exactly one request per call, never retry, and map
// every failure onto the remote error taxonomy in internal/pkg/errs:
// transport failures, 4xx rejections, the daily installment limit, and
// anything else as an unexpected response.
type Backend interface {
	// CreateOrder submits one fixture as a new order. The order identifier
	// is generated client-side before the request, so resubmitting the same
	// identifier cannot create a duplicate. Creation implicitly charges the
	// first installment step.
	CreateOrder(ctx context.Context, f fixture.Fixture) (*order.Order, error)

	// PayInstallment pays exactly one installment step of an existing order.
	// The backend enforces at most one installment per order per day; hitting
	// that limit comes back as errs.ErrInstallmentLimitReached.
	PayInstallment(ctx context.Context, orderID kernel.UUID, method kernel.PaymentMethod) (order.PaymentStep, error)
}
