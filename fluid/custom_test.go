package fluid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hydronet/fluid"
)

var _ fluid.Component = fluid.Custom{}

// flowmeterK is a fitted coriolis flowmeter law, 18 + 93000/|Re|^1.35.
func flowmeterK(re float64) float64 {
	return 18 + 93000/math.Pow(math.Abs(re), 1.35)
}

// flowmeter is a vertical coriolis meter carrying a heat-transfer oil; its
// whole loss sits in the fitted K.
func flowmeter() fluid.Custom {
	return fluid.Custom{
		Fluid:       fluid.Fluid{Name: "oil", Density: 1060, Viscosity: 5.3e-3},
		Diameter:    2.79e-2,
		Length:      0.36,
		Roughness:   0.015,
		FlowArea:    6.11e-4,
		Inclination: math.Pi / 2,
		Darcy:       fluid.NoFriction,
		K:           flowmeterK,
	}
}

type CustomSuite struct {
	suite.Suite
	meter fluid.Custom
}

func (s *CustomSuite) SetupTest() {
	s.meter = flowmeter()
}

// TestMatchesPipe: Churchill friction with a constant K is a plain pipe.
func (s *CustomSuite) TestMatchesPipe() {
	p := airPipe()
	c := fluid.Custom{
		Fluid:     p.Fluid,
		Diameter:  p.Diameter,
		Length:    p.Length,
		Roughness: p.Roughness,
		K:         fluid.ConstantK(p.K),
	}
	for _, m := range []float64{0.01, 0.1, 1, 25, -0.3} {
		want, err := p.PressureChange(m)
		require.NoError(s.T(), err)
		got, err := c.PressureChange(m)
		require.NoError(s.T(), err)
		require.InEpsilon(s.T(), want, got, 1e-12, "ṁ=%g", m)

		back, err := c.MassFlowFromPressureChange(got)
		require.NoError(s.T(), err)
		require.InEpsilon(s.T(), m, back, 1e-9, "ṁ=%g", m)
	}
}

// TestHagenPoiseuille: the laminar strategy reproduces 32·μ·L·ṁ/(ρ·A·D²).
func (s *CustomSuite) TestHagenPoiseuille() {
	p := airPipe()
	c := fluid.Custom{Fluid: p.Fluid, Diameter: p.Diameter, Length: 2, Darcy: fluid.LaminarDarcy}

	const m = 0.002
	loss, err := c.PressureLoss(m)
	require.NoError(s.T(), err)
	want := 32 * p.Fluid.Viscosity * c.Length * m / (p.Fluid.Density * c.Area() * p.Diameter * p.Diameter)
	require.InEpsilon(s.T(), want, loss, 1e-12)
}

func (s *CustomSuite) TestFlowmeterRoundTrip() {
	for _, m := range []float64{0.01, 0.15, 1, -0.15} {
		dp, err := s.meter.PressureChange(m)
		require.NoError(s.T(), err)
		got, err := s.meter.MassFlowFromPressureChange(dp)
		require.NoError(s.T(), err)
		require.InEpsilon(s.T(), m, got, 1e-9, "ṁ=%g", m)
	}
}

// TestFlowmeterLoss pins the loss at 0.15 kg/s (Re ≈ 1292).
func (s *CustomSuite) TestFlowmeterLoss() {
	loss, err := s.meter.PressureLoss(0.15)
	require.NoError(s.T(), err)
	require.InEpsilon(s.T(), 678.406, loss, 1e-5)

	reverse, err := s.meter.PressureLoss(-0.15)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), -loss, reverse, 1e-9)
}

// TestHead: a vertical meter at rest loses ρ·g·L.
func (s *CustomSuite) TestHead() {
	dp, err := s.meter.PressureChange(0)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), -1060*9.81*0.36, dp, 1e-9)

	q, err := s.meter.MassFlowFromPressureChange(dp)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, q)
}

// TestDirectionalLaw: a K that only grows in reverse makes a leaky valve.
func (s *CustomSuite) TestDirectionalLaw() {
	c := s.meter
	c.K = func(re float64) float64 {
		if re < 0 {
			return 1e4 * flowmeterK(re)
		}
		return flowmeterK(re)
	}
	fwd, err := c.PressureLoss(0.15)
	require.NoError(s.T(), err)
	rev, err := c.PressureLoss(-0.15)
	require.NoError(s.T(), err)
	require.InEpsilon(s.T(), -1e4*fwd, rev, 1e-12)

	q, err := c.MassFlowFromPressureLoss(rev)
	require.NoError(s.T(), err)
	require.InEpsilon(s.T(), -0.15, q, 1e-9)
}

func (s *CustomSuite) TestNonPhysical() {
	bad := map[string]func(c *fluid.Custom){
		"zero diameter":  func(c *fluid.Custom) { c.Diameter = 0 },
		"zero length":    func(c *fluid.Custom) { c.Length = 0 },
		"negative area":  func(c *fluid.Custom) { c.FlowArea = -1 },
		"nan source":     func(c *fluid.Custom) { c.Source = math.NaN() },
		"negative k":     func(c *fluid.Custom) { c.K = fluid.ConstantK(-1) },
		"nan friction":   func(c *fluid.Custom) { c.Darcy = func(float64, float64) float64 { return math.NaN() } },
		"infinite fluid": func(c *fluid.Custom) { c.Fluid.Viscosity = math.Inf(1) },
	}
	for name, mutate := range bad {
		c := flowmeter()
		mutate(&c)
		_, err := c.PressureChange(0.15)
		require.ErrorIs(s.T(), err, fluid.ErrNonPhysical, name)
	}

	_, err := s.meter.MassFlowFromPressureLoss(math.Inf(1))
	require.ErrorIs(s.T(), err, fluid.ErrNonPhysical)
}

func TestCustomSuite(t *testing.T) {
	suite.Run(t, new(CustomSuite))
}
