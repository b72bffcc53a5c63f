package rootfind

import (
	"fmt"
	"math"
)

// Brent returns a root of f inside [lo, hi] using Brent's method.
// It is a thin wrapper over Solve for callers that only need the abscissa.
func Brent(f Func, lo, hi float64, opts Options) (float64, error) {
	res, err := Solve(f, lo, hi, opts)
	if err != nil {
		return 0, err
	}
	return res.Root, nil
}

// Solve runs Brent's method on the bracket [lo, hi].
//
// Steps:
//  1. Validate options and evaluate both ends; an end that is already a
//     root is returned immediately.
//  2. Require finite end values of opposite sign (ErrNoBracket otherwise).
//  3. Iterate: keep b as the best estimate and c as the opposite end of the
//     bracket; try inverse quadratic interpolation (or the secant rule when
//     only two distinct points exist), fall back to bisection whenever the
//     interpolated step is unsafe or too slow.
//  4. Stop when |f(b)| < Tolerance or the half-bracket drops below
//     2·ε·|b| + Tolerance/2, or below Resolution·|hi − lo|/2 when a
//     resolution is set.
//
// Complexity: O(MaxIterations) evaluations of f, O(1) memory.
func Solve(f Func, lo, hi float64, opts Options) (Result, error) {
	// Stage 1: validate and evaluate the bracket ends
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	bracket := Bracket{Lo: lo, Hi: hi}

	var (
		a, b   = lo, hi
		fa, fb float64
		err    error
	)
	if fa, err = f(a); err != nil {
		return Result{}, err
	}
	if fb, err = f(b); err != nil {
		return Result{}, err
	}

	// Stage 2: bracket sanity
	if !finite(fa) || !finite(fb) {
		return Result{}, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrNoBracket, a, fa, b, fb)
	}
	if math.Abs(fa) < opts.Tolerance || fa == 0 {
		return Result{Root: a, Bracket: bracket}, nil
	}
	if math.Abs(fb) < opts.Tolerance || fb == 0 {
		return Result{Root: b, Bracket: bracket}, nil
	}
	if (fa > 0) == (fb > 0) {
		return Result{}, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrNoBracket, a, fa, b, fb)
	}

	// Stage 3: main loop
	var (
		c, fc = b, fb
		d, e  float64
		floor = 0.5 * opts.Resolution * bracket.Width()
		tol1  float64
		xm    float64
		p, q  float64
		r, s  float64
	)
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		// keep the root between b and c
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		// b must hold the smaller residual
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 = 2*machEps*math.Abs(b) + 0.5*opts.Tolerance
		xm = 0.5 * (c - b)
		if math.Abs(xm) <= math.Max(tol1, floor) || math.Abs(fb) < opts.Tolerance {
			return Result{Root: b, Iterations: iter, Bracket: bracket}, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			s = fb / fa
			if a == c {
				// secant step
				p = 2 * xm * s
				q = 1 - s
			} else {
				// inverse quadratic interpolation
				q = fa / fc
				r = fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			// accept the interpolation only if it stays inside the bracket
			// and shrinks faster than the step before last
			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		if fb, err = f(b); err != nil {
			return Result{}, err
		}
		if !finite(fb) {
			return Result{}, fmt.Errorf("%w: f(%g)=%g", ErrNonFinite, b, fb)
		}
	}

	// Stage 4: budget exhausted
	return Result{}, fmt.Errorf("%w: %d iterations in %s", ErrMaxIterations, opts.MaxIterations, bracket)
}
