package collection

import (
	"math"

	"github.com/katalvlaran/hydronet/fluid"
)

// Series is an ordered chain of components. Every member carries the same
// mass flow; the pressure change is the sum of member pressure changes.
type Series struct {
	memberSet[fluid.Component]
	opts Options
}

// NewSeries builds a series collection. Its default tolerance is
// SeriesTolerance (on mass flow).
func NewSeries(members []fluid.Component, opts ...Option) (*Series, error) {
	set, err := newMemberSet(members)
	if err != nil {
		return nil, err
	}
	return &Series{memberSet: set, opts: buildOptions(SeriesTolerance, opts)}, nil
}

// PressureChange sums the member pressure changes at massFlow.
func (s *Series) PressureChange(massFlow float64) (float64, error) {
	return sumPressure(s.items, massFlow)
}

// MassFlowFromPressureChange inverts PressureChange.
//
// Steps:
//  1. Baseline ΔP₀ = PressureChange(0) and loss = −(ΔP − ΔP₀).
//  2. |loss| < DeadBand → 0 without root finding.
//  3. Brent over [0, ±FlowBrackets[0]] in the direction of the loss, then
//     the symmetric brackets. Exhausting them all yields ErrSolveFailed.
func (s *Series) MassFlowFromPressureChange(pressureChange float64) (float64, error) {
	members := s.items
	curve := func(m float64) (float64, error) { return sumPressure(members, m) }

	// Stage 1: baseline
	dp0, err := curve(0)
	if err != nil {
		return 0, err
	}
	loss := -(pressureChange - dp0)

	// Stage 2: dead-band
	if math.Abs(loss) < s.opts.Heuristics.DeadBand {
		s.opts.Logger.Debug("inside dead-band",
			"kind", "series", "state", StateZeroFlowShortCircuit, "loss", loss)
		return 0, nil
	}

	// Stage 3: root find
	return seriesFlow("series", curve, pressureChange, loss, s.opts)
}

// PressureLoss returns −(PressureChange(massFlow) − PressureChange(0)).
func (s *Series) PressureLoss(massFlow float64) (float64, error) {
	return LossFromChange(s, massFlow)
}

// MassFlowFromPressureLoss inverts PressureLoss.
func (s *Series) MassFlowFromPressureLoss(pressureLoss float64) (float64, error) {
	return FlowFromLoss(s, pressureLoss)
}
