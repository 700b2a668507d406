package cmd

import (
	"seeder/internal/core/domain/model/fixture"
	"seeder/internal/core/domain/model/kernel"
)

// planTemplate is one recognizable shape of seeded order. The runner cycles
// through the templates so a seeded backend shows orders of varied size,
// schedule length, and payment method.
type planTemplate struct {
	quantity      int
	durationSteps int
	ratePerStep   int64
	paymentMethod kernel.PaymentMethod
}

func planTemplates() []planTemplate {
	return []planTemplate{
		{quantity: 1, durationSteps: 4, ratePerStep: 2500, paymentMethod: kernel.Wallet},
		{quantity: 2, durationSteps: 6, ratePerStep: 1500, paymentMethod: kernel.Card},
		{quantity: 1, durationSteps: 12, ratePerStep: 5000, paymentMethod: kernel.BankTransfer},
		{quantity: 3, durationSteps: 2, ratePerStep: 800, paymentMethod: kernel.Wallet},
		{quantity: 1, durationSteps: 8, ratePerStep: 3200, paymentMethod: kernel.Card},
	}
}

// DefaultAddressPool returns the fixed delivery addresses fixtures draw from.
// Fixtures wrap around the pool, so the pool stays deliberately small.
func DefaultAddressPool() ([]fixture.Address, error) {
	raw := []struct{ street, city string }{
		{"12 Marina Road", "Lagos"},
		{"4 Allen Avenue", "Ikeja"},
		{"27 Aminu Kano Crescent", "Abuja"},
	}

	pool := make([]fixture.Address, 0, len(raw))
	for _, r := range raw {
		addr, err := fixture.NewAddress(r.street, r.city)
		if err != nil {
			return nil, err
		}
		pool = append(pool, addr)
	}

	return pool, nil
}

// DefaultPlans builds count order plans by cycling through the plan
// templates, so every run seeds the same recognizable mix.
func DefaultPlans(count int) ([]fixture.Plan, error) {
	templates := planTemplates()
	plans := make([]fixture.Plan, 0, count)

	for i := range count {
		tmpl := templates[i%len(templates)]

		rate, err := kernel.NewMoney(tmpl.ratePerStep)
		if err != nil {
			return nil, err
		}

		plan, err := fixture.NewPlan(tmpl.quantity, tmpl.durationSteps, rate, tmpl.paymentMethod)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, nil
}
