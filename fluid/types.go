package fluid

import "errors"

// ErrNonPhysical indicates a component or fluid parameter outside its
// physical domain.
var ErrNonPhysical = errors.New("fluid: non-physical parameter")

// StandardGravity is the gravitational acceleration in m/s².
const StandardGravity = 9.81

// Component is a hydraulic element that relates mass flowrate (kg/s) to
// pressure change across it (Pa, outlet minus inlet).
//
// Implementations must be pure: the same input always yields the same output
// and no call mutates shared state. Errors are reported to the caller and are
// propagated unmodified by the collection solvers.
type Component interface {
	// PressureChange returns the outlet-minus-inlet pressure change at the
	// given mass flowrate.
	PressureChange(massFlow float64) (float64, error)

	// MassFlowFromPressureChange is the inverse of PressureChange.
	MassFlowFromPressureChange(pressureChange float64) (float64, error)

	// PressureLoss returns −(PressureChange(massFlow) − PressureChange(0)).
	PressureLoss(massFlow float64) (float64, error)

	// MassFlowFromPressureLoss is the inverse of PressureLoss.
	MassFlowFromPressureLoss(pressureLoss float64) (float64, error)
}

// Committer is implemented by components that keep the operating point chosen
// for them. Solvers never call Commit; callers do after a solve.
type Committer interface {
	Commit(massFlow, pressureChange float64) error
}
