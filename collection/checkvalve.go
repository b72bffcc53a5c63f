package collection

import (
	"errors"
	"math"

	"github.com/katalvlaran/hydronet/fluid"
)

// ClassifyBias decides from the losses at ±DiodeFlow whether an arrangement behaves
// like a diode, and in which direction it conducts.
//
// The arrangement is diode-like when either loss is NaN or of infinite
// magnitude, or when the larger magnitude exceeds DiodeRatio times the
// smaller one. It then conducts forward when the reverse loss is the blocked
// (non-finite) or larger one, and in reverse otherwise.
func ClassifyBias(forwardLoss, reverseLoss float64, h Heuristics) Bias {
	fwdBlocked, revBlocked := blocked(forwardLoss), blocked(reverseLoss)
	f, r := math.Abs(forwardLoss), math.Abs(reverseLoss)

	diode := fwdBlocked || revBlocked || math.Max(f, r) > h.DiodeRatio*math.Min(f, r)
	if !diode {
		return BiasNone
	}
	if revBlocked || (!fwdBlocked && r > f) {
		return BiasForward
	}
	return BiasReverse
}

// DetectCheckValve measures the loss of c at ±DiodeFlow and classifies it.
// A flow that c cannot carry at any pressure (ErrSolveFailed) counts as
// a blocked loss; every other error is returned unmodified.
func DetectCheckValve(c fluid.Component, h Heuristics) (Bias, error) {
	return detectBias(c.PressureLoss, h)
}

func detectBias(loss func(float64) (float64, error), h Heuristics) (Bias, error) {
	fwd, err := lossAt(loss, h.DiodeFlow)
	if err != nil {
		return BiasNone, err
	}
	rev, err := lossAt(loss, -h.DiodeFlow)
	if err != nil {
		return BiasNone, err
	}
	return ClassifyBias(fwd, rev, h), nil
}

func lossAt(loss func(float64) (float64, error), massFlow float64) (float64, error) {
	v, err := loss(massFlow)
	if errors.Is(err, ErrSolveFailed) {
		return math.NaN(), nil
	}
	return v, err
}

// parallelBias combines the member biases of a parallel arrangement without
// solving it: the arrangement blocks a direction only when every member
// blocks that direction.
func parallelBias[T fluid.Component](members []T, h Heuristics) (Bias, error) {
	var out Bias
	for i, m := range members {
		b, err := DetectCheckValve(m, h)
		if err != nil {
			return BiasNone, err
		}
		if b == BiasNone || (i > 0 && b != out) {
			return BiasNone, nil
		}
		out = b
	}
	return out, nil
}

// Blocks reports whether a diode with this bias stops flow in the direction
// given by the sign of direction.
func (b Bias) Blocks(direction float64) bool {
	switch b {
	case BiasForward:
		return direction < 0
	case BiasReverse:
		return direction > 0
	default:
		return false
	}
}

// blocked reports NaN, ±Inf and ±MaxFloat64 losses.
func blocked(v float64) bool {
	return math.IsNaN(v) || math.Abs(v) >= math.MaxFloat64
}
