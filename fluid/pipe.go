package fluid

import (
	"fmt"
	"math"
)

// Pipe is a straight circular pipe.
//
//   - Fluid:       conveyed fluid.
//   - Diameter:    internal diameter in m (> 0).
//   - Length:      m (≥ 0).
//   - Roughness:   absolute wall roughness in m (≥ 0).
//   - K:           summed form-loss coefficient of fittings in the run (≥ 0).
//   - Inclination: angle above horizontal in radians; a rising pipe loses
//     ρ·g·L·sin θ of pressure at zero flow.
//   - Source:      internal pressure source in Pa added to the change.
type Pipe struct {
	Fluid       Fluid
	Diameter    float64
	Length      float64
	Roughness   float64
	K           float64
	Inclination float64
	Source      float64
}

// Validate reports ErrNonPhysical for an unusable pipe.
func (p Pipe) Validate() error {
	if err := p.Fluid.Validate(); err != nil {
		return err
	}
	switch {
	case !positive(p.Diameter):
		return fmt.Errorf("%w: pipe diameter %g", ErrNonPhysical, p.Diameter)
	case !nonNegative(p.Length):
		return fmt.Errorf("%w: pipe length %g", ErrNonPhysical, p.Length)
	case !nonNegative(p.Roughness):
		return fmt.Errorf("%w: pipe roughness %g", ErrNonPhysical, p.Roughness)
	case !nonNegative(p.K):
		return fmt.Errorf("%w: pipe K %g", ErrNonPhysical, p.K)
	case p.Length == 0 && p.K == 0:
		return fmt.Errorf("%w: pipe has neither length nor K", ErrNonPhysical)
	case math.IsNaN(p.Inclination) || math.IsInf(p.Inclination, 0):
		return fmt.Errorf("%w: pipe inclination %g", ErrNonPhysical, p.Inclination)
	case math.IsNaN(p.Source) || math.IsInf(p.Source, 0):
		return fmt.Errorf("%w: pipe source %g", ErrNonPhysical, p.Source)
	}
	return nil
}

// Area returns the flow area.
func (p Pipe) Area() float64 {
	return CircleArea(p.Diameter)
}

// Head returns the zero-flow pressure change: hydrostatic term plus source.
func (p Pipe) Head() float64 {
	return p.Fluid.Density*(-StandardGravity)*p.Length*math.Sin(p.Inclination) + p.Source
}

// PressureChange returns Head() minus the frictional and form loss at massFlow.
func (p Pipe) PressureChange(massFlow float64) (float64, error) {
	loss, err := p.PressureLoss(massFlow)
	if err != nil {
		return 0, err
	}
	return p.Head() - loss, nil
}

// PressureLoss returns the frictional and form loss, signed like massFlow.
func (p Pipe) PressureLoss(massFlow float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(massFlow) {
		return 0, fmt.Errorf("%w: mass flow %g", ErrNonPhysical, massFlow)
	}
	re := Reynolds(massFlow, p.Diameter, p.Area(), p.Fluid.Viscosity)
	be := Bejan(re, p.Roughness/p.Diameter, p.Length/p.Diameter, p.K)

	return PressureFromBejan(be, p.Diameter, p.Fluid.Density, p.Fluid.Viscosity), nil
}

// MassFlowFromPressureChange inverts PressureChange.
func (p Pipe) MassFlowFromPressureChange(pressureChange float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.MassFlowFromPressureLoss(p.Head() - pressureChange)
}

// MassFlowFromPressureLoss inverts PressureLoss through ReynoldsFromBejan.
func (p Pipe) MassFlowFromPressureLoss(pressureLoss float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	be := BejanFromPressure(pressureLoss, p.Diameter, p.Fluid.Density, p.Fluid.Viscosity)
	re, err := ReynoldsFromBejan(be, p.Roughness/p.Diameter, p.Length/p.Diameter, p.K)
	if err != nil {
		return 0, err
	}
	return MassFlowFromReynolds(re, p.Diameter, p.Area(), p.Fluid.Viscosity), nil
}
