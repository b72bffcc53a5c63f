package rootfind

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the root finders.
var (
	// ErrNoBracket indicates that the function does not change sign across
	// the supplied bracket, or that an end point evaluates to NaN/±Inf.
	ErrNoBracket = errors.New("rootfind: root is not bracketed")

	// ErrNonFinite indicates that the function produced NaN or ±Inf at an
	// interior trial point.
	ErrNonFinite = errors.New("rootfind: function value is not finite")

	// ErrMaxIterations indicates that the iteration budget was exhausted
	// before the bracket collapsed to the requested tolerance.
	ErrMaxIterations = errors.New("rootfind: maximum iterations exceeded")

	// ErrBracketsExhausted indicates that every bracket handed to Escalate
	// failed. It always wraps the cause of the last failure.
	ErrBracketsExhausted = errors.New("rootfind: all brackets exhausted")

	// ErrBadTolerance indicates a tolerance that is not finite and positive.
	ErrBadTolerance = errors.New("rootfind: tolerance must be finite and positive")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("rootfind: MaxIterations must be positive")

	// ErrBadResolution indicates a resolution outside [0, 1).
	ErrBadResolution = errors.New("rootfind: resolution must be in [0, 1)")
)

// Defaults used by DefaultOptions.
const (
	// DefaultTolerance is the absolute tolerance on the root.
	DefaultTolerance = 1e-9

	// DefaultMaxIterations caps the function evaluations per bracket.
	DefaultMaxIterations = 30
)

// machEps is the float64 machine epsilon (2^-52).
const machEps = 2.220446049250313e-16

// Func is a scalar function whose root is sought. A non-nil error aborts the
// search and is returned to the caller unmodified.
type Func func(x float64) (float64, error)

// Options configures a single bracketed search.
//   - Tolerance:     absolute tolerance on x (and on |f(x)| for early exit).
//   - MaxIterations: maximum number of interior evaluations.
//   - Resolution:    fraction of the starting bracket width under which a
//     sign-change bracket is accepted even though |f| stays above Tolerance.
//     It lets the search stop on a jump of f; zero disables it.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Resolution    float64
}

// DefaultOptions returns Options{Tolerance: 1e-9, MaxIterations: 30}.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate reports whether the options are usable.
func (o Options) Validate() error {
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance <= 0 {
		return fmt.Errorf("%w: got %g", ErrBadTolerance, o.Tolerance)
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadMaxIterations, o.MaxIterations)
	}
	if math.IsNaN(o.Resolution) || o.Resolution < 0 || o.Resolution >= 1 {
		return fmt.Errorf("%w: got %g", ErrBadResolution, o.Resolution)
	}
	return nil
}

// Bracket is a search interval. Lo may be greater than Hi; the solvers only
// require a sign change between the two ends.
type Bracket struct {
	Lo, Hi float64
}

// Width returns |Hi - Lo|.
func (b Bracket) Width() float64 {
	return math.Abs(b.Hi - b.Lo)
}

// String renders the bracket as "[lo, hi]".
func (b Bracket) String() string {
	return fmt.Sprintf("[%g, %g]", b.Lo, b.Hi)
}

// Result describes a successful search.
type Result struct {
	// Root is the accepted abscissa.
	Root float64

	// Iterations counts interior evaluations spent in the final bracket.
	Iterations int

	// Bracket is the interval in which the root was found.
	Bracket Bracket

	// Attempt is the zero-based index of that interval in the escalation
	// list (always 0 for Solve).
	Attempt int
}

// retryable reports whether a failed search may be retried with a wider
// bracket. Errors raised by the user function are not retryable.
func retryable(err error) bool {
	return errors.Is(err, ErrNoBracket) ||
		errors.Is(err, ErrNonFinite) ||
		errors.Is(err, ErrMaxIterations)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
