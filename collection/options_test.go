package collection_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/collection"
	"github.com/katalvlaran/hydronet/fluid"
)

func TestDefaultOptions(t *testing.T) {
	o := collection.DefaultOptions()
	require.Equal(t, collection.DefaultTolerance, o.Tolerance)
	require.Equal(t, collection.DefaultMaxIterations, o.MaxIterations)
	require.NotNil(t, o.Logger)
	require.NoError(t, o.Heuristics.Validate())
}

// TestDefaultHeuristics pins the stock tuning. These are empirical
// thresholds, not physical constants; the test guards against accidental
// edits only.
func TestDefaultHeuristics(t *testing.T) {
	h := collection.DefaultHeuristics()
	require.Equal(t, 9.0, h.DeadBand)
	require.Equal(t, 1e-9, h.ZeroFlow)
	require.Equal(t, 10.0, h.RegimeRatio)
	require.Equal(t, 0.8, h.Deviation)
	require.Equal(t, 1000.0, h.DiodeRatio)
	require.Equal(t, 0.01, h.DiodeFlow)
	require.Equal(t, 5.0, h.MinBracket)
	require.Equal(t, []float64{10, 1e4, 2e7}, h.FlowBrackets)
	require.Equal(t, 10.0, h.BracketGrowth)
	require.Equal(t, 3, h.Escalations)
	require.Equal(t, 1e-5, h.Resolution)
}

func TestHeuristics_Validate(t *testing.T) {
	mutations := map[string]func(h *collection.Heuristics){
		"negative dead-band": func(h *collection.Heuristics) { h.DeadBand = -1 },
		"nan deviation":      func(h *collection.Heuristics) { h.Deviation = math.NaN() },
		"zero ratio":         func(h *collection.Heuristics) { h.RegimeRatio = 0 },
		"zero diode flow":    func(h *collection.Heuristics) { h.DiodeFlow = 0 },
		"infinite growth":    func(h *collection.Heuristics) { h.BracketGrowth = math.Inf(1) },
		"empty ladder":       func(h *collection.Heuristics) { h.FlowBrackets = nil },
		"bad ladder step":    func(h *collection.Heuristics) { h.FlowBrackets = []float64{10, -1} },
		"negative escalate":  func(h *collection.Heuristics) { h.Escalations = -1 },
		"whole bracket":      func(h *collection.Heuristics) { h.Resolution = 1 },
		"negative resolve":   func(h *collection.Heuristics) { h.Resolution = -1e-5 },
	}
	for name, mutate := range mutations {
		h := collection.DefaultHeuristics()
		mutate(&h)
		require.ErrorIs(t, h.Validate(), collection.ErrBadHeuristics, name)
	}
}

func TestOptionPanics(t *testing.T) {
	members := []fluid.Component{fluid.NewResistance(1, 0)}

	require.Panics(t, func() { _, _ = collection.NewSeries(members, collection.WithTolerance(0)) })
	require.Panics(t, func() { _, _ = collection.NewSeries(members, collection.WithTolerance(math.NaN())) })
	require.Panics(t, func() { _, _ = collection.NewParallel(members, collection.WithMaxIterations(0)) })

	h := collection.DefaultHeuristics()
	h.MinBracket = -5
	require.Panics(t, func() { _, _ = collection.NewParallel(members, collection.WithHeuristics(h)) })

	require.NotPanics(t, func() { _, _ = collection.NewParallel(members, collection.WithLogger(nil)) })
}

// TestWithHeuristics_Copies: later edits to the caller's ladder do not leak
// into a built collection.
func TestWithHeuristics_Copies(t *testing.T) {
	h := collection.DefaultHeuristics()
	s := mustSeries(t, 10, collection.WithHeuristics(h))
	h.FlowBrackets[0] = 1e-6

	q, err := s.MassFlowFromPressureChange(-174650)
	require.NoError(t, err)
	require.InEpsilon(t, 0.1, q, 1e-3)
}
