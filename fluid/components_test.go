package fluid_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hydronet/fluid"
)

// airPipe is the two-inch reference pipe used across the test suites.
func airPipe() fluid.Pipe {
	return fluid.Pipe{
		Fluid:     fluid.Fluid{Name: "air", Density: 1, Viscosity: 0.0186},
		Diameter:  0.0508,
		Length:    1,
		Roughness: 0.002e-3,
		K:         5,
	}
}

// compile-time checks
var (
	_ fluid.Component = fluid.Pipe{}
	_ fluid.Component = fluid.Resistance{}
	_ fluid.Component = fluid.Pump{}
	_ fluid.Component = (*fluid.Tracked)(nil)
	_ fluid.Committer = (*fluid.Tracked)(nil)
)

type PipeSuite struct {
	suite.Suite
	pipe fluid.Pipe
}

func (s *PipeSuite) SetupTest() {
	s.pipe = airPipe()
}

// TestLaminarDrop checks the reference drop at 0.1 kg/s (Re ≈ 134.75).
func (s *PipeSuite) TestLaminarDrop() {
	dp, err := s.pipe.PressureChange(0.1)
	require.NoError(s.T(), err)
	require.InEpsilon(s.T(), -17465.0, dp, 1e-3)

	loss, err := s.pipe.PressureLoss(0.1)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), -dp, loss, 1e-9)
}

func (s *PipeSuite) TestRoundTrip() {
	for _, m := range []float64{0, 0.01, 0.1, 1, 25, -0.3} {
		dp, err := s.pipe.PressureChange(m)
		require.NoError(s.T(), err)
		got, err := s.pipe.MassFlowFromPressureChange(dp)
		require.NoError(s.T(), err)
		require.InDelta(s.T(), m, got, 1e-9*math.Max(1, math.Abs(m)), "ṁ=%g", m)
	}
}

func (s *PipeSuite) TestHydrostaticHead() {
	s.pipe.Inclination = math.Pi / 2
	s.pipe.Source = 100

	dp0, err := s.pipe.PressureChange(0)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), -9.81+100, dp0, 1e-12)

	// a loss is measured from the baseline, so the head drops out
	loss, err := s.pipe.PressureLoss(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, loss)

	m, err := s.pipe.MassFlowFromPressureChange(dp0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, m)
}

func (s *PipeSuite) TestNonPhysical() {
	cases := map[string]func(p *fluid.Pipe){
		"diameter":  func(p *fluid.Pipe) { p.Diameter = 0 },
		"length":    func(p *fluid.Pipe) { p.Length = -1 },
		"roughness": func(p *fluid.Pipe) { p.Roughness = -1e-6 },
		"k":         func(p *fluid.Pipe) { p.K = -1 },
		"lossless":  func(p *fluid.Pipe) { p.Length, p.K = 0, 0 },
		"density":   func(p *fluid.Pipe) { p.Fluid.Density = 0 },
		"viscosity": func(p *fluid.Pipe) { p.Fluid.Viscosity = math.NaN() },
	}
	for name, mutate := range cases {
		p := airPipe()
		mutate(&p)
		_, err := p.PressureChange(0.1)
		require.ErrorIs(s.T(), err, fluid.ErrNonPhysical, name)
		_, err = p.MassFlowFromPressureChange(-100)
		require.ErrorIs(s.T(), err, fluid.ErrNonPhysical, name)
	}
}

func TestPipeSuite(t *testing.T) {
	suite.Run(t, new(PipeSuite))
}

func TestResistance_Symmetric(t *testing.T) {
	r := fluid.NewResistance(10, 200)
	r.Head = 50

	dp, err := r.PressureChange(2)
	require.NoError(t, err)
	require.InDelta(t, 50-(20+800), dp, 1e-12)

	for _, m := range []float64{-3, -0.5, 0, 0.5, 3} {
		dp, err := r.PressureChange(m)
		require.NoError(t, err)
		got, err := r.MassFlowFromPressureChange(dp)
		require.NoError(t, err)
		require.InDelta(t, m, got, 1e-12)
	}
}

func TestResistance_SingleTerm(t *testing.T) {
	linear := fluid.NewResistance(4, 0)
	m, err := linear.MassFlowFromPressureLoss(8)
	require.NoError(t, err)
	require.InDelta(t, 2.0, m, 1e-15)

	square := fluid.NewResistance(0, 2)
	m, err = square.MassFlowFromPressureLoss(-8)
	require.NoError(t, err)
	require.InDelta(t, -2.0, m, 1e-15)
}

func TestCheckValve_Asymmetric(t *testing.T) {
	v := fluid.CheckValve(0, 100, 1e5)

	fwd, err := v.PressureLoss(0.01)
	require.NoError(t, err)
	rev, err := v.PressureLoss(-0.01)
	require.NoError(t, err)
	require.InEpsilon(t, 1e5, -rev/fwd, 1e-9)
}

func TestResistance_NonPhysical(t *testing.T) {
	_, err := fluid.Resistance{Linear: 1}.PressureLoss(1)
	require.ErrorIs(t, err, fluid.ErrNonPhysical, "missing reverse coefficients")

	_, err = fluid.NewResistance(-1, 1).PressureChange(1)
	require.ErrorIs(t, err, fluid.ErrNonPhysical)

	_, err = fluid.NewResistance(1, 1).MassFlowFromPressureLoss(math.Inf(1))
	require.ErrorIs(t, err, fluid.ErrNonPhysical)
}

func TestPump(t *testing.T) {
	p := fluid.Pump{Rise: 1e5, Slip: 200}

	dp, err := p.PressureChange(10)
	require.NoError(t, err)
	require.Equal(t, 1e5-2000, dp)

	m, err := p.MassFlowFromPressureChange(dp)
	require.NoError(t, err)
	require.InDelta(t, 10.0, m, 1e-12)

	loss, err := p.PressureLoss(10)
	require.NoError(t, err)
	require.Equal(t, 2000.0, loss)

	m, err = p.MassFlowFromPressureLoss(loss)
	require.NoError(t, err)
	require.InDelta(t, 10.0, m, 1e-12)

	_, err = fluid.Pump{Rise: 1}.PressureChange(0)
	require.ErrorIs(t, err, fluid.ErrNonPhysical)
}

func TestTracked(t *testing.T) {
	tr := fluid.Track(fluid.NewResistance(1, 1))

	_, ok := tr.Committed()
	require.False(t, ok)

	// queries are forwarded
	dp, err := tr.PressureChange(1)
	require.NoError(t, err)
	require.Equal(t, -2.0, dp)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = tr.Commit(float64(i), -float64(i))
			_, _ = tr.Committed()
		}(i)
	}
	wg.Wait()

	pt, ok := tr.Committed()
	require.True(t, ok)
	require.Equal(t, pt.MassFlow, -pt.PressureChange)

	tr.Reset()
	_, ok = tr.Committed()
	require.False(t, ok)
}
