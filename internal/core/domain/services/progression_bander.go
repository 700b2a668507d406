package services

import (
	"seeder/internal/core/domain/model/batch"
	"seeder/internal/core/domain/model/order"
	"seeder/internal/pkg/errs"
)

// Default band fractions: the first third of created orders is paid to half,
// the second third to eighty percent, the third third in full. Orders past
// the last full band stay at whatever creation alone produced.
const (
	DefaultLowBandFraction  = 0.5
	DefaultMidBandFraction  = 0.8
	DefaultHighBandFraction = 1.0
)

// ProgressionBander is a domain service that assigns each created order a
// target completion fraction for the progression simulator. Banding shapes
// test data into varied states; it is policy, not a business rule, so the
// fractions are injected rather than hard-coded.
//
// Rules:
//   - Orders are split in creation order, never reshuffled.
//   - Each configured fraction gets a band of floor(count/len(fractions))
//     orders; the remainder past the last full band is left untouched
//     (target fraction zero, so the simulator issues no payments for it).
//   - Fractions must lie in [0, 1] and must not decrease across bands.
type ProgressionBander struct {
	fractions []float64
}

// NewProgressionBander creates a bander with the given band fractions.
// At least one fraction is required.
func NewProgressionBander(fractions []float64) (ProgressionBander, error) {
	if len(fractions) == 0 {
		return ProgressionBander{}, errs.NewValueIsRequiredError("fractions")
	}

	prev := 0.0
	for _, f := range fractions {
		if f < 0 || f > 1 {
			return ProgressionBander{}, errs.NewValueIsOutOfRangeError("fraction", f, 0.0, 1.0)
		}
		if f < prev {
			return ProgressionBander{}, errs.NewValueIsInvalidError("fractions must not decrease")
		}
		prev = f
	}

	return ProgressionBander{fractions: fractions}, nil
}

// NewDefaultProgressionBander creates a bander with the 50/80/100% bands.
func NewDefaultProgressionBander() ProgressionBander {
	bander, _ := NewProgressionBander([]float64{
		DefaultLowBandFraction,
		DefaultMidBandFraction,
		DefaultHighBandFraction,
	})
	return bander
}

// Band assigns every order a progression plan, one per order, in creation
// order. Orders in the remainder past the last full band get a zero target
// fraction, which plans no additional payments.
func (b ProgressionBander) Band(orders []*order.Order) ([]batch.ProgressionPlan, error) {
	if len(orders) == 0 {
		return nil, nil
	}

	bandSize := len(orders) / len(b.fractions)
	plans := make([]batch.ProgressionPlan, 0, len(orders))

	for i, o := range orders {
		fraction := 0.0
		if bandSize > 0 && i/bandSize < len(b.fractions) {
			fraction = b.fractions[i/bandSize]
		}

		plan, err := batch.NewProgressionPlan(o, fraction)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, nil
}
