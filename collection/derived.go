package collection

import "github.com/katalvlaran/hydronet/fluid"

// LossFromChange derives the pressure loss of c at massFlow from its
// pressure-change curve: −(ΔP(ṁ) − ΔP(0)).
func LossFromChange(c fluid.Component, massFlow float64) (float64, error) {
	dp, err := c.PressureChange(massFlow)
	if err != nil {
		return 0, err
	}
	dp0, err := c.PressureChange(0)
	if err != nil {
		return 0, err
	}
	return -(dp - dp0), nil
}

// FlowFromLoss derives the mass flow of c for a pressure loss by shifting the
// loss onto the zero-flow baseline: MassFlowFromPressureChange(−loss + ΔP(0)).
func FlowFromLoss(c fluid.Component, pressureLoss float64) (float64, error) {
	dp0, err := c.PressureChange(0)
	if err != nil {
		return 0, err
	}
	return c.MassFlowFromPressureChange(-pressureLoss + dp0)
}
