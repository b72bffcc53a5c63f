package collection

import (
	"math"

	"github.com/katalvlaran/hydronet/fluid"
	"github.com/katalvlaran/hydronet/rootfind"
)

// PressureEstimates returns PressureChange(massFlow) of every member, in
// member order. The first member error is returned unmodified.
func PressureEstimates[T fluid.Component](members []T, massFlow float64) ([]float64, error) {
	out := make([]float64, len(members))
	for i, m := range members {
		dp, err := m.PressureChange(massFlow)
		if err != nil {
			return nil, err
		}
		out[i] = dp
	}
	return out, nil
}

// PressureLossEstimates returns PressureLoss(massFlow) of every member.
func PressureLossEstimates[T fluid.Component](members []T, massFlow float64) ([]float64, error) {
	out := make([]float64, len(members))
	for i, m := range members {
		loss, err := m.PressureLoss(massFlow)
		if err != nil {
			return nil, err
		}
		out[i] = loss
	}
	return out, nil
}

// MaxPressure returns the largest value, or 0 for an empty vector.
func MaxPressure(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	hi := v[0]
	for _, x := range v[1:] {
		if x > hi {
			hi = x
		}
	}
	return hi
}

// MinPressure returns the smallest value, or 0 for an empty vector.
func MinPressure(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	lo := v[0]
	for _, x := range v[1:] {
		if x < lo {
			lo = x
		}
	}
	return lo
}

// AveragePressure returns the arithmetic mean, or 0 for an empty vector.
func AveragePressure(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// ClassifyRegime picks the flow-driving regime of a parallel solve.
//
//   - internal: spread (max − min) of the branch pressure changes at zero flow.
//   - external: magnitude of the average branch pressure loss at massFlow.
//
// Steps:
//  1. |massFlow| < ZeroFlow                  → RegimeZeroFlow.
//  2. internal·RegimeRatio > external        → RegimeInternalCirculation.
//  3. internal·RegimeRatio < external        → RegimeExternalFlow.
//  4. |internal − external|/|internal| < Deviation → RegimeComparable.
//  5. otherwise                              → RegimeFallback.
//
// Step 4 divides by internal; a zero internal spread yields NaN, which fails
// the comparison and lands in RegimeFallback. The classification never fails.
func ClassifyRegime(massFlow, internal, external float64, h Heuristics) Regime {
	if math.Abs(massFlow) < h.ZeroFlow {
		return RegimeZeroFlow
	}
	switch scaled := internal * h.RegimeRatio; {
	case scaled > external:
		return RegimeInternalCirculation
	case scaled < external:
		return RegimeExternalFlow
	}
	if math.Abs(internal-external)/math.Abs(internal) < h.Deviation {
		return RegimeComparable
	}
	return RegimeFallback
}

// GuessBracket centres a pressure bracket on the average estimate with the
// estimate spread as half-width. A collapsed spread is widened to
// ±MinBracket.
//
// Blocked estimates (NaN, ±Inf, ±MaxFloat64) carry no location and are
// skipped; with none left the bracket is 0 ± MinBracket.
func GuessBracket(estimates []float64, h Heuristics) rootfind.Bracket {
	usable := make([]float64, 0, len(estimates))
	for _, e := range estimates {
		if !blocked(e) {
			usable = append(usable, e)
		}
	}
	avg := AveragePressure(usable)
	half := MaxPressure(usable) - MinPressure(usable)
	if half == 0 || math.IsInf(half, 0) {
		half = h.MinBracket
	}
	return rootfind.Bracket{Lo: avg - half, Hi: avg + half}
}
