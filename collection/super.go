package collection

import (
	"math"
)

// Super is a collection of collections. Members are already aggregated
// responses (a Series of pipes, a Parallel bank, another Super, …) and are
// combined according to the arrangement.
//
// Flow from pressure always runs through the same gate: the dead-band, then
// check-valve detection, and only then the arrangement's solve.
type Super struct {
	memberSet[Collection]
	arrangement Arrangement
	opts        Options
}

// NewSuper builds a super-collection with DefaultTolerance.
func NewSuper(arrangement Arrangement, members []Collection, opts ...Option) (*Super, error) {
	set, err := newMemberSet(members)
	if err != nil {
		return nil, err
	}
	return &Super{
		memberSet:   set,
		arrangement: arrangement,
		opts:        buildOptions(DefaultTolerance, opts),
	}, nil
}

// Arrangement returns how members are combined.
func (s *Super) Arrangement() Arrangement {
	return s.arrangement
}

// PressureChange returns the pressure change at massFlow: the member sum in
// series, the common pressure solved for in parallel.
func (s *Super) PressureChange(massFlow float64) (float64, error) {
	if s.arrangement == ArrangementSeries {
		return sumPressure(s.items, massFlow)
	}
	return parallelPressure(s.kind(), s.items, massFlow, s.opts)
}

// MassFlowFromPressureChange returns the mass flow at pressureChange.
//
// Steps:
//  1. Baseline ΔP₀ = PressureChange(0), loss = −(ΔP − ΔP₀);
//     |loss| < DeadBand → 0.
//  2. Check-valve detection; a diode-like super-collection asked to flow
//     against its bias → 0. Series evaluates the summed curve at ±DiodeFlow.
//     Parallel classifies every member and blocks a direction only when all
//     of them block it, so a branch with an infinite reverse loss never
//     reaches the pressure solve.
//  3. Parallel: sum of member flows at pressureChange.
//     Series: Brent on the summed curve with the mass-flow ladder.
func (s *Super) MassFlowFromPressureChange(pressureChange float64) (float64, error) {
	members := s.items
	h := s.opts.Heuristics
	kind := s.kind()
	curve := func(m float64) (float64, error) {
		if s.arrangement == ArrangementSeries {
			return sumPressure(members, m)
		}
		return parallelPressure(kind, members, m, s.opts)
	}

	// Stage 1: baseline and dead-band
	dp0, err := curve(0)
	if err != nil {
		return 0, err
	}
	loss := -(pressureChange - dp0)
	if math.Abs(loss) < h.DeadBand {
		s.opts.Logger.Debug("inside dead-band",
			"kind", kind, "state", StateZeroFlowShortCircuit, "loss", loss)
		return 0, nil
	}

	// Stage 2: check-valve detection
	var bias Bias
	if s.arrangement == ArrangementSeries {
		bias, err = detectBias(func(m float64) (float64, error) {
			dp, err := curve(m)
			if err != nil {
				return 0, err
			}
			return -(dp - dp0), nil
		}, h)
	} else {
		bias, err = parallelBias(members, h)
	}
	if err != nil {
		return 0, err
	}
	if bias.Blocks(loss) {
		s.opts.Logger.Debug("check valve blocks flow",
			"kind", kind, "state", StateCheckValveShortCircuit, "bias", bias, "loss", loss)
		return 0, nil
	}

	// Stage 3: arrangement solve
	if s.arrangement == ArrangementSeries {
		return seriesFlow(kind, curve, pressureChange, loss, s.opts)
	}
	return totalFlow(members, pressureChange)
}

// PressureLoss returns −(PressureChange(massFlow) − PressureChange(0)).
func (s *Super) PressureLoss(massFlow float64) (float64, error) {
	return LossFromChange(s, massFlow)
}

// MassFlowFromPressureLoss inverts PressureLoss.
func (s *Super) MassFlowFromPressureLoss(pressureLoss float64) (float64, error) {
	return FlowFromLoss(s, pressureLoss)
}

func (s *Super) kind() string {
	return "super-" + s.arrangement.String()
}
