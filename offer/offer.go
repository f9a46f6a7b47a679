// Package offer solves the equity-offer equations: given the average
// score and cliff/vesting ratio observed across prior offers and a proposed
// equity share, it recovers the cliff and vesting period that would make the
// proposal consistent with the averages.
//
// The model: score = equity / (cliff² · vesting), cliff = ratio · vesting,
// with cliff and vesting in days.
package offer

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/parchmint/clausal/errors"
)

const (
	maxIterations = 100
	tolerance     = 1e-10
	daysPerYear   = 365
)

// Inputs are the observed averages and the proposed equity share.
type Inputs struct {
	AvgScore float64 // average score across prior offers
	AvgRatio float64 // average cliff/vesting ratio across prior offers
	Equity   float64 // proposed equity share, in (0, 1)
}

// Offer is a solved cliff/vesting pair.
type Offer struct {
	CliffDays   float64 `json:"cliff_days"`
	VestingDays float64 `json:"vesting_days"`
}

// CliffYears returns the cliff in years, rounded to two decimals.
func (o Offer) CliffYears() float64 {
	return math.Round(o.CliffDays/daysPerYear*100) / 100
}

// VestingYears returns the vesting period in years, rounded to two decimals.
func (o Offer) VestingYears() float64 {
	return math.Round(o.VestingDays/daysPerYear*100) / 100
}

// Solve finds cliff and vesting days satisfying the offer equations via
// damped Newton iteration, seeded from the decoupled closed-form estimate.
func Solve(in Inputs) (Offer, error) {
	if in.AvgScore <= 0 || in.AvgRatio <= 0 {
		return Offer{}, errors.NewDataError(
			"offer averages must be positive, got score=%g ratio=%g", in.AvgScore, in.AvgRatio)
	}
	if in.Equity <= 0 || in.Equity >= 1 {
		return Offer{}, errors.NewDataError("equity must be in (0, 1), got %g", in.Equity)
	}

	// Substituting cliff = ratio·vesting into the score equation gives a
	// decent starting point; Newton polishes it.
	v := math.Cbrt(in.Equity / (in.AvgScore * in.AvgRatio * in.AvgRatio))
	c := in.AvgRatio * v

	residual := func(c, v float64) (f0, f1 float64) {
		f0 = in.AvgScore - in.Equity/(c*c*v)
		f1 = c - in.AvgRatio*v
		return f0, f1
	}

	f0, f1 := residual(c, v)
	norm := math.Hypot(f0, f1)
	tol := tolerance * (1 + math.Abs(in.AvgScore) + math.Abs(in.AvgRatio))

	for i := 0; i < maxIterations; i++ {
		if norm < tol {
			return Offer{CliffDays: c, VestingDays: v}, nil
		}

		jac := mat.NewDense(2, 2, []float64{
			2 * in.Equity / (c * c * c * v), in.Equity / (c * c * v * v),
			1, -in.AvgRatio,
		})
		rhs := mat.NewVecDense(2, []float64{-f0, -f1})

		var step mat.VecDense
		if err := step.SolveVec(jac, rhs); err != nil {
			return Offer{}, errors.Wrap(errors.ErrNotConverged, "singular Jacobian")
		}

		// Halve the step until it both stays in the positive quadrant and
		// decreases the residual
		scale := 1.0
		for {
			nc := c + scale*step.AtVec(0)
			nv := v + scale*step.AtVec(1)
			if nc > 0 && nv > 0 {
				nf0, nf1 := residual(nc, nv)
				if nn := math.Hypot(nf0, nf1); nn < norm {
					c, v, f0, f1, norm = nc, nv, nf0, nf1, nn
					break
				}
			}
			scale /= 2
			if scale < 1e-12 {
				return Offer{}, errors.Wrap(errors.ErrNotConverged, "step search stalled")
			}
		}
	}

	if norm < tol {
		return Offer{CliffDays: c, VestingDays: v}, nil
	}
	return Offer{}, errors.Wrapf(errors.ErrNotConverged, "after %d iterations", maxIterations)
}
