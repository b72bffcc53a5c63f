package collection

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hydronet/fluid"
	"github.com/katalvlaran/hydronet/rootfind"
)

// sumPressure returns Σ member PressureChange(massFlow).
func sumPressure[T fluid.Component](members []T, massFlow float64) (float64, error) {
	total := 0.0
	for _, m := range members {
		dp, err := m.PressureChange(massFlow)
		if err != nil {
			return 0, err
		}
		total += dp
	}
	return total, nil
}

// totalFlow returns Σ member MassFlowFromPressureChange(pressureChange).
func totalFlow[T fluid.Component](members []T, pressureChange float64) (float64, error) {
	total := 0.0
	for _, m := range members {
		q, err := m.MassFlowFromPressureChange(pressureChange)
		if err != nil {
			return 0, err
		}
		total += q
	}
	return total, nil
}

// flowLadder builds the mass-flow escalation ladder: a one-sided first
// bracket [0, ±w₀] in the expected direction, then symmetric ones.
func flowLadder(direction float64, widths []float64) []rootfind.Bracket {
	out := make([]rootfind.Bracket, 0, len(widths))
	out = append(out, rootfind.Bracket{Lo: 0, Hi: math.Copysign(widths[0], direction)})
	for _, w := range widths[1:] {
		out = append(out, rootfind.Bracket{Lo: -w, Hi: w})
	}
	return out
}

// seriesFlow inverts a summed pressure curve for the mass flow that produces
// target. loss is the pressure loss implied by target and gives the expected
// flow direction; callers have already applied the dead-band.
func seriesFlow(kind string, curve func(float64) (float64, error), target, loss float64, o Options) (float64, error) {
	// Stage 1: ladder in the direction of the loss
	brackets := flowLadder(loss, o.Heuristics.FlowBrackets)
	f := func(m float64) (float64, error) {
		dp, err := curve(m)
		if err != nil {
			return 0, err
		}
		return dp - target, nil
	}
	o.Logger.Debug("solving for mass flow",
		"kind", kind, "state", StateRootFind, "pressureChange", target, "bracket", brackets[0])

	// Stage 2: root find with escalation
	res, err := rootfind.Escalate(f, brackets, o.root())
	if err != nil {
		return 0, failed(o, kind, "mass flow", target, err)
	}
	solved(o, kind, res)

	return res.Root, nil
}

// parallelPressure finds the common pressure change at which the member
// flows add up to massFlow.
//
// Steps:
//  1. Regime classification from the zero-flow spread of member pressures
//     (internal) and the average member loss at massFlow (external).
//  2. Bound guess: member pressures at the regime's per-branch flow, bracket
//     avg ± spread (±MinBracket when collapsed or blocked). At zero flow the
//     average itself is returned when the member flows already cancel there.
//  3. Brent on Σ flow(P) − massFlow, widening the half-width by
//     BracketGrowth up to Escalations times. A sign change narrower than
//     Resolution of its bracket is accepted: members with a dead-band make
//     the flow sum a step function.
func parallelPressure[T fluid.Component](kind string, members []T, massFlow float64, o Options) (float64, error) {
	h := o.Heuristics
	f := func(p float64) (float64, error) {
		q, err := totalFlow(members, p)
		if err != nil {
			return 0, err
		}
		return q - massFlow, nil
	}

	// Stage 1: regime classification
	var internal, external float64
	if math.Abs(massFlow) >= h.ZeroFlow {
		zero, err := PressureEstimates(members, 0)
		if err != nil {
			return 0, err
		}
		internal = MaxPressure(zero) - MinPressure(zero)

		losses, err := PressureLossEstimates(members, massFlow)
		if err != nil {
			return 0, err
		}
		external = math.Abs(AveragePressure(losses))
	}
	regime := ClassifyRegime(massFlow, internal, external, h)
	o.Logger.Debug("classified regime",
		"kind", kind, "state", StateRegimeClassification, "massFlow", massFlow,
		"regime", regime, "internal", internal, "external", external)

	// Stage 2: bound guess
	guess := regime.guess(massFlow, len(members))
	estimates, err := PressureEstimates(members, guess)
	if err != nil {
		return 0, err
	}
	first := GuessBracket(estimates, h)
	centre := 0.5 * (first.Lo + first.Hi)
	if regime == RegimeZeroFlow {
		r, err := f(centre)
		if err != nil {
			return 0, err
		}
		if math.Abs(r) < o.Tolerance {
			o.Logger.Debug("members balance at the estimate",
				"kind", kind, "state", StateSolved, "root", centre)
			return centre, nil
		}
	}
	ladder := rootfind.Widen(centre, 0.5*first.Width(), h.BracketGrowth, 1+h.Escalations)
	o.Logger.Debug("guessed bracket",
		"kind", kind, "state", StateBoundGuess, "branchFlow", guess, "bracket", first)

	// Stage 3: root find with escalation
	ro := o.root()
	ro.Resolution = h.Resolution
	res, err := rootfind.Escalate(f, ladder, ro)
	if err != nil {
		return 0, failed(o, kind, "pressure change", massFlow, err)
	}
	solved(o, kind, res)

	return res.Root, nil
}

// failed converts an exhausted ladder into ErrSolveFailed and passes every
// other error (component failures) through unmodified.
func failed(o Options, kind, quantity string, input float64, err error) error {
	if !errors.Is(err, rootfind.ErrBracketsExhausted) {
		return err
	}
	o.Logger.Debug("solve failed", "kind", kind, "state", StateFatal, "input", input, "err", err)
	return fmt.Errorf("%w: %s %s for %g: %w", ErrSolveFailed, kind, quantity, input, err)
}

func solved(o Options, kind string, res rootfind.Result) {
	if res.Attempt > 0 {
		o.Logger.Debug("escalated bracket",
			"kind", kind, "state", StateBracketEscalation, "attempt", res.Attempt, "bracket", res.Bracket)
	}
	o.Logger.Debug("solved",
		"kind", kind, "state", StateSolved, "root", res.Root, "iterations", res.Iterations)
}
