package fluid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydronet/rootfind"
)

// DarcyFunc returns the Darcy friction factor at a signed Reynolds number and
// relative roughness ε/D.
type DarcyFunc func(re, roughnessRatio float64) float64

// KFunc returns the summed form-loss coefficient at a signed Reynolds number.
type KFunc func(re float64) float64

// LaminarDarcy is the Hagen–Poiseuille friction factor 64/|Re|.
func LaminarDarcy(re, _ float64) float64 {
	return 64 / math.Abs(re)
}

// NoFriction is a DarcyFunc for components whose whole loss is in K.
func NoFriction(float64, float64) float64 {
	return 0
}

// ConstantK returns a KFunc that ignores the Reynolds number.
func ConstantK(k float64) KFunc {
	return func(float64) float64 { return k }
}

// Custom is a duct whose friction factor and form loss are supplied by the
// caller, typically fitted to measurements of a flowmeter, heater or valve:
//
//	Be = ½·(Darcy(Re, ε/D)·L/D + K(Re))·Re·|Re|
//
// Both strategies see the signed Reynolds number so a law may differ by flow
// direction; they return magnitudes and the loss takes the sign of Re.
//
//   - Fluid, Diameter (hydraulic, > 0), Length (> 0), Roughness (≥ 0),
//     Inclination (radians) and Source: as for Pipe.
//   - FlowArea: m²; zero uses the circle of Diameter.
//   - Darcy:    nil uses the Churchill correlation.
//   - K:        nil means no form loss.
//
// A strategy must be pure. A NaN, infinite or negative coefficient is
// reported as ErrNonPhysical.
type Custom struct {
	Fluid       Fluid
	Diameter    float64
	Length      float64
	Roughness   float64
	FlowArea    float64
	Inclination float64
	Source      float64
	Darcy       DarcyFunc
	K           KFunc
}

// Validate reports ErrNonPhysical for an unusable geometry.
func (c Custom) Validate() error {
	if err := c.Fluid.Validate(); err != nil {
		return err
	}
	switch {
	case !positive(c.Diameter):
		return fmt.Errorf("%w: custom diameter %g", ErrNonPhysical, c.Diameter)
	case !positive(c.Length):
		return fmt.Errorf("%w: custom length %g", ErrNonPhysical, c.Length)
	case !nonNegative(c.Roughness):
		return fmt.Errorf("%w: custom roughness %g", ErrNonPhysical, c.Roughness)
	case !nonNegative(c.FlowArea):
		return fmt.Errorf("%w: custom flow area %g", ErrNonPhysical, c.FlowArea)
	case math.IsNaN(c.Inclination) || math.IsInf(c.Inclination, 0):
		return fmt.Errorf("%w: custom inclination %g", ErrNonPhysical, c.Inclination)
	case math.IsNaN(c.Source) || math.IsInf(c.Source, 0):
		return fmt.Errorf("%w: custom source %g", ErrNonPhysical, c.Source)
	}
	return nil
}

// Area returns FlowArea, or the circle of Diameter when it is unset.
func (c Custom) Area() float64 {
	if c.FlowArea > 0 {
		return c.FlowArea
	}
	return CircleArea(c.Diameter)
}

// Head returns the zero-flow pressure change: hydrostatic term plus source.
func (c Custom) Head() float64 {
	return c.Fluid.Density*(-StandardGravity)*c.Length*math.Sin(c.Inclination) + c.Source
}

// Bejan returns the Bejan number of the component at re.
func (c Custom) Bejan(re float64) (float64, error) {
	if re == 0 {
		return 0, nil
	}
	darcy, k := c.Darcy, c.K
	if darcy == nil {
		darcy = Darcy
	}
	fldk := darcy(re, c.Roughness/c.Diameter) * c.Length / c.Diameter
	if k != nil {
		fldk += k(re)
	}
	if !nonNegative(fldk) {
		return 0, fmt.Errorf("%w: custom fLD+K %g at Re=%g", ErrNonPhysical, fldk, re)
	}
	return 0.5 * fldk * re * math.Abs(re), nil
}

// PressureChange returns Head() minus the loss at massFlow.
func (c Custom) PressureChange(massFlow float64) (float64, error) {
	loss, err := c.PressureLoss(massFlow)
	if err != nil {
		return 0, err
	}
	return c.Head() - loss, nil
}

// PressureLoss returns the loss, signed like massFlow.
func (c Custom) PressureLoss(massFlow float64) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(massFlow) {
		return 0, fmt.Errorf("%w: mass flow %g", ErrNonPhysical, massFlow)
	}
	be, err := c.Bejan(Reynolds(massFlow, c.Diameter, c.Area(), c.Fluid.Viscosity))
	if err != nil {
		return 0, err
	}
	return PressureFromBejan(be, c.Diameter, c.Fluid.Density, c.Fluid.Viscosity), nil
}

// MassFlowFromPressureChange inverts PressureChange.
func (c Custom) MassFlowFromPressureChange(pressureChange float64) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c.MassFlowFromPressureLoss(c.Head() - pressureChange)
}

// MassFlowFromPressureLoss inverts PressureLoss by root finding on the
// Reynolds number in the direction of the loss.
func (c Custom) MassFlowFromPressureLoss(pressureLoss float64) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	be := BejanFromPressure(pressureLoss, c.Diameter, c.Fluid.Density, c.Fluid.Viscosity)
	if be == 0 {
		return 0, nil
	}
	if math.IsNaN(be) || math.IsInf(be, 0) {
		return 0, fmt.Errorf("%w: Bejan number %g", ErrNonPhysical, be)
	}

	brackets := make([]rootfind.Bracket, len(reynoldsBrackets))
	for i, br := range reynoldsBrackets {
		brackets[i] = rootfind.Bracket{Lo: br.Lo, Hi: math.Copysign(br.Hi, be)}
	}
	f := func(re float64) (float64, error) {
		got, err := c.Bejan(re)
		if err != nil {
			return 0, err
		}
		return got - be, nil
	}
	res, err := rootfind.Escalate(f, brackets, reynoldsOptions)
	if err != nil {
		return 0, fmt.Errorf("fluid: custom Reynolds number for Be=%g: %w", be, err)
	}
	return MassFlowFromReynolds(res.Root, c.Diameter, c.Area(), c.Fluid.Viscosity), nil
}
