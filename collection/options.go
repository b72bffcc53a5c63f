package collection

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/hydronet/rootfind"
)

// Solver defaults.
const (
	// DefaultTolerance is the root-finding tolerance for Parallel and Super.
	DefaultTolerance = 1e-9

	// SeriesTolerance is the default tolerance of Series, on mass flow.
	SeriesTolerance = 1e-15

	// DefaultMaxIterations caps Brent iterations per bracket.
	DefaultMaxIterations = 30
)

// Heuristics holds the tuning constants of the solvers. They are engineering
// judgement, not physics, and every one can be overridden.
//
//   - DeadBand:      |pressure loss| below this returns zero flow (Pa).
//   - ZeroFlow:      |mass flow| below this is treated as zero (kg/s).
//   - RegimeRatio:   internal vs external pressure scale factor.
//   - Deviation:     relative deviation (fraction) under which the two
//     scales count as comparable.
//   - DiodeRatio:    forward/reverse loss ratio that flags a check valve.
//   - DiodeFlow:     mass flow used for check-valve detection (kg/s).
//   - MinBracket:    half-width used when a pressure bracket collapses (Pa).
//   - FlowBrackets:  half-widths of the series mass-flow ladder (kg/s); the
//     first one is one-sided in the expected flow direction.
//   - BracketGrowth: factor applied to a pressure half-width on escalation.
//   - Escalations:   number of widened pressure brackets after the first.
//   - Resolution:    fraction of a pressure bracket under which a sign change
//     is accepted as the answer; members with a dead-band make the summed
//     flow jump, and a jump never meets the flow tolerance.
type Heuristics struct {
	DeadBand      float64
	ZeroFlow      float64
	RegimeRatio   float64
	Deviation     float64
	DiodeRatio    float64
	DiodeFlow     float64
	MinBracket    float64
	FlowBrackets  []float64
	BracketGrowth float64
	Escalations   int
	Resolution    float64
}

// DefaultHeuristics returns the stock tuning.
//
// Defaults:
//   - DeadBand:      9 Pa
//   - ZeroFlow:      1e-9 kg/s
//   - RegimeRatio:   10
//   - Deviation:     0.8
//   - DiodeRatio:    1000
//   - DiodeFlow:     0.01 kg/s
//   - MinBracket:    5 Pa
//   - FlowBrackets:  10, 1e4, 2e7 kg/s
//   - BracketGrowth: 10
//   - Escalations:   3
//   - Resolution:    1e-5
func DefaultHeuristics() Heuristics {
	return Heuristics{
		DeadBand:      9,
		ZeroFlow:      1e-9,
		RegimeRatio:   10,
		Deviation:     0.8,
		DiodeRatio:    1000,
		DiodeFlow:     0.01,
		MinBracket:    5,
		FlowBrackets:  []float64{10, 1e4, 2e7},
		BracketGrowth: 10,
		Escalations:   3,
		Resolution:    1e-5,
	}
}

// Validate reports ErrBadHeuristics for negative thresholds, non-positive
// scales, a Resolution of 1 or more, or an empty flow ladder.
func (h Heuristics) Validate() error {
	type field struct {
		name     string
		v        float64
		positive bool
	}
	fields := []field{
		{"DeadBand", h.DeadBand, false},
		{"ZeroFlow", h.ZeroFlow, false},
		{"RegimeRatio", h.RegimeRatio, true},
		{"Deviation", h.Deviation, false},
		{"DiodeRatio", h.DiodeRatio, true},
		{"DiodeFlow", h.DiodeFlow, true},
		{"MinBracket", h.MinBracket, true},
		{"BracketGrowth", h.BracketGrowth, true},
		{"Resolution", h.Resolution, false},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 || (f.positive && f.v == 0) {
			return fmt.Errorf("%w: %s=%g", ErrBadHeuristics, f.name, f.v)
		}
	}
	if len(h.FlowBrackets) == 0 {
		return fmt.Errorf("%w: FlowBrackets is empty", ErrBadHeuristics)
	}
	for i, w := range h.FlowBrackets {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return fmt.Errorf("%w: FlowBrackets[%d]=%g", ErrBadHeuristics, i, w)
		}
	}
	if h.Resolution >= 1 {
		return fmt.Errorf("%w: Resolution=%g", ErrBadHeuristics, h.Resolution)
	}
	if h.Escalations < 0 {
		return fmt.Errorf("%w: Escalations=%d", ErrBadHeuristics, h.Escalations)
	}
	return nil
}

// Options configures a collection solver.
//
//   - Tolerance:     absolute Brent tolerance (kg/s for series, Pa for parallel).
//   - MaxIterations: Brent iterations per bracket.
//   - Heuristics:    regime, dead-band and bracket tuning.
//   - Logger:        debug sink for solver states; discarded by default.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Heuristics    Heuristics
	Logger        *log.Logger
}

// Option represents a functional option for configuring a collection.
type Option func(*Options)

// DefaultOptions returns the Parallel/Super defaults. Series starts from the
// same values with Tolerance replaced by SeriesTolerance.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Heuristics:    DefaultHeuristics(),
		Logger:        log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithTolerance overrides the root-finding tolerance.
// Panics with ErrBadTolerance on a non-finite or non-positive value.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations overrides the iteration cap per bracket.
// Panics with ErrBadMaxIterations when n <= 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithHeuristics replaces the tuning constants.
// Panics when h.Validate fails.
func WithHeuristics(h Heuristics) Option {
	return func(o *Options) {
		if err := h.Validate(); err != nil {
			panic(err.Error())
		}
		h.FlowBrackets = append([]float64(nil), h.FlowBrackets...)
		o.Heuristics = h
	}
}

// WithLogger sets the debug logger. A nil logger keeps the discard default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions applies opts over the defaults with the given tolerance.
func buildOptions(tolerance float64, opts []Option) Options {
	o := DefaultOptions()
	o.Tolerance = tolerance
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// root converts to the rootfind configuration.
func (o Options) root() rootfind.Options {
	return rootfind.Options{Tolerance: o.Tolerance, MaxIterations: o.MaxIterations}
}
