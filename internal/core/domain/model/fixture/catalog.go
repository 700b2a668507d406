package fixture

import "seeder/internal/pkg/errs"

// ErrAddressPoolIsEmpty is returned when a catalog is requested without any
// reference addresses. This is the one fatal error of a seeding run.
var ErrAddressPoolIsEmpty = errs.NewValueIsRequiredError("address pool must contain at least one address")

// GenerateFixtures builds the catalog for one seeding run: one fixture per
// plan, paired with an address from the pool by index modulo pool size.
//
// The function is pure and deterministic. Calling it twice with the same
// inputs yields structurally identical catalogs, so an interrupted run can be
// rebuilt without drift. More plans than addresses wraps around the pool;
// fewer plans than addresses leaves the tail of the pool unused.
//
// An empty pool is the only fatal input: without addresses no unit of work
// can be formed, so the whole run is aborted rather than recorded as
// per-unit failures.
func GenerateFixtures(pool []Address, plans []Plan) ([]Fixture, error) {
	if len(pool) == 0 {
		return nil, ErrAddressPoolIsEmpty
	}
	for _, address := range pool {
		if err := address.Validate(); err != nil {
			return nil, err
		}
	}

	fixtures := make([]Fixture, 0, len(plans))
	for i, plan := range plans {
		f, err := NewFixture(i, plan, pool[i%len(pool)])
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, f)
	}

	return fixtures, nil
}
