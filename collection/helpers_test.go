package collection_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/collection"
	"github.com/katalvlaran/hydronet/fluid"
)

// airPipe is the 2-inch reference duct: laminar at 0.1 kg/s with a drop of
// about 17 465 Pa.
func airPipe() fluid.Pipe {
	return fluid.Pipe{
		Fluid:     fluid.Fluid{Name: "air", Density: 1, Viscosity: 0.0186},
		Diameter:  0.0508,
		Length:    1,
		Roughness: 0.002e-3,
		K:         5,
	}
}

// components returns n copies of c as a member slice.
func components(c fluid.Component, n int) []fluid.Component {
	out := make([]fluid.Component, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// mustSeries builds a series of n reference pipes.
func mustSeries(t testing.TB, n int, opts ...collection.Option) *collection.Series {
	t.Helper()
	s, err := collection.NewSeries(components(airPipe(), n), opts...)
	require.NoError(t, err)
	return s
}

// valve blocks reverse flow 1e5 times harder than it passes forward flow.
// The linear law keeps its losses well clear of the dead-band at DiodeFlow.
func valve() fluid.Resistance {
	return fluid.CheckValve(1e5, 0, 1e5)
}

// branch wraps a single component in a one-member series.
func branch(t testing.TB, c fluid.Component) *collection.Series {
	t.Helper()
	s, err := collection.NewSeries([]fluid.Component{c})
	require.NoError(t, err)
	return s
}

// debugLogger captures debug output for assertions on solver states.
func debugLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}), &buf
}

// broken fails every query with err.
type broken struct{ err error }

func (b broken) PressureChange(float64) (float64, error)             { return 0, b.err }
func (b broken) MassFlowFromPressureChange(float64) (float64, error) { return 0, b.err }
func (b broken) PressureLoss(float64) (float64, error)               { return 0, b.err }
func (b broken) MassFlowFromPressureLoss(float64) (float64, error)   { return 0, b.err }

// flat has a constant pressure change: no mass flow can reproduce any other
// value, which forces every bracket to fail.
type flat struct{ dp float64 }

func (f flat) PressureChange(float64) (float64, error)             { return f.dp, nil }
func (f flat) MassFlowFromPressureChange(float64) (float64, error) { return 0, nil }
func (f flat) PressureLoss(float64) (float64, error)               { return 0, nil }
func (f flat) MassFlowFromPressureLoss(float64) (float64, error)   { return 0, nil }

// oneWay passes forward flow through a linear resistance r and needs an
// infinite pressure rise to pass any reverse flow.
type oneWay struct{ r float64 }

func (o oneWay) PressureChange(massFlow float64) (float64, error) {
	if massFlow < 0 {
		return math.Inf(1), nil
	}
	return -o.r * massFlow, nil
}

func (o oneWay) MassFlowFromPressureChange(pressureChange float64) (float64, error) {
	if pressureChange >= 0 {
		return 0, nil
	}
	return -pressureChange / o.r, nil
}

func (o oneWay) PressureLoss(massFlow float64) (float64, error) {
	dp, err := o.PressureChange(massFlow)
	return -dp, err
}

func (o oneWay) MassFlowFromPressureLoss(pressureLoss float64) (float64, error) {
	return o.MassFlowFromPressureChange(-pressureLoss)
}

var errBoom = errors.New("sensor offline")
