package collection

import "github.com/katalvlaran/hydronet/fluid"

// Parallel is a set of branches between two common nodes. Every member sees
// the same pressure change; the mass flow is the sum of branch flows.
type Parallel struct {
	memberSet[fluid.Component]
	opts Options
}

// NewParallel builds a parallel collection with DefaultTolerance on pressure.
func NewParallel(members []fluid.Component, opts ...Option) (*Parallel, error) {
	set, err := newMemberSet(members)
	if err != nil {
		return nil, err
	}
	return &Parallel{memberSet: set, opts: buildOptions(DefaultTolerance, opts)}, nil
}

// MassFlowFromPressureChange sums the branch flows at pressureChange.
func (p *Parallel) MassFlowFromPressureChange(pressureChange float64) (float64, error) {
	return totalFlow(p.items, pressureChange)
}

// PressureChange finds the common pressure change carrying massFlow.
// See ClassifyRegime and GuessBracket for the initial bracket.
func (p *Parallel) PressureChange(massFlow float64) (float64, error) {
	return parallelPressure("parallel", p.items, massFlow, p.opts)
}

// PressureLoss returns −(PressureChange(massFlow) − PressureChange(0)).
func (p *Parallel) PressureLoss(massFlow float64) (float64, error) {
	return LossFromChange(p, massFlow)
}

// MassFlowFromPressureLoss inverts PressureLoss.
func (p *Parallel) MassFlowFromPressureLoss(pressureLoss float64) (float64, error) {
	return FlowFromLoss(p, pressureLoss)
}
