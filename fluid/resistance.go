package fluid

import (
	"fmt"
	"math"
)

// Resistance is a lumped loss element:
//
//	loss(ṁ) = Linear·ṁ + Quadratic·ṁ²                 for ṁ ≥ 0
//	loss(ṁ) = −(ReverseLinear·|ṁ| + ReverseQuadratic·ṁ²) for ṁ < 0
//	ΔP(ṁ)   = Head − loss(ṁ)
//
// Coefficients are in Pa/(kg/s) and Pa/(kg/s)². A check valve is a
// Resistance whose reverse coefficients are several orders of magnitude
// above the forward ones (see CheckValve).
type Resistance struct {
	Linear           float64
	Quadratic        float64
	ReverseLinear    float64
	ReverseQuadratic float64
	Head             float64
}

// NewResistance returns a symmetric resistance with no head.
func NewResistance(linear, quadratic float64) Resistance {
	return Resistance{
		Linear:           linear,
		Quadratic:        quadratic,
		ReverseLinear:    linear,
		ReverseQuadratic: quadratic,
	}
}

// CheckValve returns a resistance that opposes reverse flow blockage times
// harder than forward flow. A finite blockage keeps the inverse defined.
func CheckValve(linear, quadratic, blockage float64) Resistance {
	return Resistance{
		Linear:           linear,
		Quadratic:        quadratic,
		ReverseLinear:    linear * blockage,
		ReverseQuadratic: quadratic * blockage,
	}
}

// Validate reports ErrNonPhysical for negative or missing coefficients.
func (r Resistance) Validate() error {
	for _, c := range []float64{r.Linear, r.Quadratic, r.ReverseLinear, r.ReverseQuadratic} {
		if !nonNegative(c) {
			return fmt.Errorf("%w: resistance coefficient %g", ErrNonPhysical, c)
		}
	}
	if r.Linear+r.Quadratic == 0 || r.ReverseLinear+r.ReverseQuadratic == 0 {
		return fmt.Errorf("%w: resistance needs a loss coefficient in each direction", ErrNonPhysical)
	}
	if math.IsNaN(r.Head) || math.IsInf(r.Head, 0) {
		return fmt.Errorf("%w: resistance head %g", ErrNonPhysical, r.Head)
	}
	return nil
}

// PressureChange returns Head minus the loss at massFlow.
func (r Resistance) PressureChange(massFlow float64) (float64, error) {
	loss, err := r.PressureLoss(massFlow)
	if err != nil {
		return 0, err
	}
	return r.Head - loss, nil
}

// PressureLoss returns the signed loss at massFlow.
func (r Resistance) PressureLoss(massFlow float64) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if massFlow >= 0 {
		return r.Linear*massFlow + r.Quadratic*massFlow*massFlow, nil
	}
	m := -massFlow
	return -(r.ReverseLinear*m + r.ReverseQuadratic*m*m), nil
}

// MassFlowFromPressureChange inverts PressureChange.
func (r Resistance) MassFlowFromPressureChange(pressureChange float64) (float64, error) {
	return r.MassFlowFromPressureLoss(r.Head - pressureChange)
}

// MassFlowFromPressureLoss solves b·ṁ² + a·ṁ − loss = 0 in the direction
// given by the sign of loss. The root is written as 2L/(a + √(a²+4bL)),
// which stays accurate when either coefficient is zero.
func (r Resistance) MassFlowFromPressureLoss(pressureLoss float64) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(pressureLoss) || math.IsInf(pressureLoss, 0) {
		return 0, fmt.Errorf("%w: pressure loss %g", ErrNonPhysical, pressureLoss)
	}
	a, b := r.Linear, r.Quadratic
	if pressureLoss < 0 {
		a, b = r.ReverseLinear, r.ReverseQuadratic
	}
	l := math.Abs(pressureLoss)
	if l == 0 {
		return 0, nil
	}
	m := 2 * l / (a + math.Sqrt(a*a+4*b*l))

	return math.Copysign(m, pressureLoss), nil
}
