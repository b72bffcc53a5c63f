package rootfind

import "fmt"

// Escalate searches each bracket in order and returns the first root found.
//
// A bracket is abandoned only for numeric reasons (ErrNoBracket, ErrNonFinite,
// ErrMaxIterations); the next, usually wider, bracket is then searched from
// scratch. Any other error comes from f and is returned unmodified. When
// every bracket fails the returned error wraps both ErrBracketsExhausted and
// the last numeric failure.
func Escalate(f Func, brackets []Bracket, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if len(brackets) == 0 {
		return Result{}, fmt.Errorf("%w: no brackets supplied", ErrBracketsExhausted)
	}

	var lastErr error
	for i, br := range brackets {
		res, err := Solve(f, br.Lo, br.Hi, opts)
		if err == nil {
			res.Attempt = i
			return res, nil
		}
		if !retryable(err) {
			return Result{}, err
		}
		lastErr = err
	}

	return Result{}, fmt.Errorf("%w (%d brackets, widest %s): %w",
		ErrBracketsExhausted, len(brackets), brackets[len(brackets)-1], lastErr)
}

// Widen builds an escalation ladder around a centre: the first bracket is
// centre ± halfWidth, each following one multiplies the half-width by growth.
// steps is the total number of brackets returned (at least one).
func Widen(centre, halfWidth, growth float64, steps int) []Bracket {
	if steps < 1 {
		steps = 1
	}
	out := make([]Bracket, 0, steps)
	w := halfWidth
	for i := 0; i < steps; i++ {
		out = append(out, Bracket{Lo: centre - w, Hi: centre + w})
		w *= growth
	}
	return out
}
