package fluid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydronet/rootfind"
)

// reynoldsBrackets is the escalation ladder used when inverting Be(Re).
// The lower end is always zero because Be(0) = 0 and Be grows with Re.
var reynoldsBrackets = []rootfind.Bracket{
	{Lo: 0, Hi: 1e3},
	{Lo: 0, Hi: 1e6},
	{Lo: 0, Hi: 1e12},
}

// reynoldsOptions trades a larger iteration budget for the 12 decades of the
// widest bracket.
var reynoldsOptions = rootfind.Options{Tolerance: 1e-9, MaxIterations: 100}

// Fanning returns the Fanning friction factor from Churchill's correlation,
// valid across laminar, transitional and turbulent regimes.
//
//	f = 2·((8/Re)¹² + (A+B)^−1.5)^(1/12)
//	A = (2.457·ln(1/((7/Re)^0.9 + 0.27·ε/D)))¹⁶
//	B = (37530/Re)¹⁶
//
// re is taken by magnitude. At very small Re the laminar term overflows and
// the laminar limit 16/Re is returned instead.
func Fanning(re, roughnessRatio float64) float64 {
	re = math.Abs(re)
	laminar := math.Pow(8/re, 12)
	if math.IsInf(laminar, 1) {
		return 16 / re
	}
	a := math.Pow(2.457*math.Log(1/(math.Pow(7/re, 0.9)+0.27*roughnessRatio)), 16)
	b := math.Pow(37530/re, 16)

	return 2 * math.Pow(laminar+math.Pow(a+b, -1.5), 1.0/12)
}

// Darcy returns the Darcy friction factor, four times the Fanning factor.
func Darcy(re, roughnessRatio float64) float64 {
	return 4 * Fanning(re, roughnessRatio)
}

// Bejan returns the Bejan number ½·(f_D·L/D + K)·Re² with the sign of re.
// lengthRatio is L/D and k the summed form-loss coefficient.
//
// The friction term is evaluated as (f_D·Re)·Re so that the laminar limit
// (f_D·Re → 64) stays finite as Re → 0.
func Bejan(re, roughnessRatio, lengthRatio, k float64) float64 {
	if re == 0 {
		return 0
	}
	mag := math.Abs(re)
	friction := Darcy(mag, roughnessRatio) * mag * mag * lengthRatio
	form := k * mag * mag
	be := 0.5 * (friction + form)

	return math.Copysign(be, re)
}

// ReynoldsFromBejan inverts Bejan for Re by bracketed root finding on the
// magnitude; the result carries the sign of be.
func ReynoldsFromBejan(be, roughnessRatio, lengthRatio, k float64) (float64, error) {
	if be == 0 {
		return 0, nil
	}
	if math.IsNaN(be) || math.IsInf(be, 0) {
		return 0, fmt.Errorf("%w: Bejan number %g", ErrNonPhysical, be)
	}
	target := math.Abs(be)
	f := func(re float64) (float64, error) {
		return Bejan(re, roughnessRatio, lengthRatio, k) - target, nil
	}
	res, err := rootfind.Escalate(f, reynoldsBrackets, reynoldsOptions)
	if err != nil {
		return 0, fmt.Errorf("fluid: Reynolds number for Be=%g: %w", be, err)
	}

	return math.Copysign(res.Root, be), nil
}

// Reynolds converts a mass flowrate through a circular section.
func Reynolds(massFlow, diameter, area, viscosity float64) float64 {
	return massFlow * diameter / (area * viscosity)
}

// MassFlowFromReynolds is the inverse of Reynolds.
func MassFlowFromReynolds(re, diameter, area, viscosity float64) float64 {
	return re * area * viscosity / diameter
}

// PressureFromBejan converts a Bejan number into a pressure difference.
func PressureFromBejan(be, diameter, density, viscosity float64) float64 {
	return viscosity * viscosity * be / (diameter * diameter * density)
}

// BejanFromPressure is the inverse of PressureFromBejan.
func BejanFromPressure(pressure, diameter, density, viscosity float64) float64 {
	return pressure * diameter * diameter * density / (viscosity * viscosity)
}

// CircleArea returns the flow area of a circular section.
func CircleArea(diameter float64) float64 {
	return math.Pi * diameter * diameter / 4
}
