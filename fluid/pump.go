package fluid

import (
	"fmt"
	"math"
)

// Pump is a fixed-speed pump with a linear characteristic:
//
//	ΔP(ṁ) = Rise − Slip·ṁ
//
// Rise is the shut-off pressure rise in Pa, Slip the drop in delivered
// pressure per kg/s (> 0 so the curve can be inverted).
type Pump struct {
	Rise float64
	Slip float64
}

// Validate reports ErrNonPhysical for a non-finite rise or a non-positive slip.
func (p Pump) Validate() error {
	if math.IsNaN(p.Rise) || math.IsInf(p.Rise, 0) {
		return fmt.Errorf("%w: pump rise %g", ErrNonPhysical, p.Rise)
	}
	if !positive(p.Slip) {
		return fmt.Errorf("%w: pump slip %g", ErrNonPhysical, p.Slip)
	}
	return nil
}

func (p Pump) PressureChange(massFlow float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.Rise - p.Slip*massFlow, nil
}

func (p Pump) PressureLoss(massFlow float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.Slip * massFlow, nil
}

func (p Pump) MassFlowFromPressureChange(pressureChange float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return (p.Rise - pressureChange) / p.Slip, nil
}

func (p Pump) MassFlowFromPressureLoss(pressureLoss float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return pressureLoss / p.Slip, nil
}
