// Package rootfind implements bracketed scalar root finding for the hydronet
// solvers.
//
// The workhorse is Brent's method: a bracketing algorithm that combines
// bisection, the secant rule and inverse quadratic interpolation. It keeps
// the guaranteed convergence of bisection while reaching superlinear speed on
// smooth functions, and it needs no derivative. Hydraulic pressure–flow
// curves are smooth and monotonic over realistic ranges, which is exactly the
// regime where Brent converges in a handful of evaluations.
//
// # API
//
//	type Func func(x float64) (float64, error)
//
//	func Brent(f Func, lo, hi float64, opts Options) (float64, error)
//	func Solve(f Func, lo, hi float64, opts Options) (Result, error)
//	func Escalate(f Func, brackets []Bracket, opts Options) (Result, error)
//
// Brent and Solve search a single bracket. Escalate tries a list of brackets
// in order, moving to the next one only when the previous search failed for
// numeric reasons (no sign change, non-finite values, iteration budget spent).
// Errors produced by f itself are never retried: they are returned exactly as
// f produced them.
//
// # Convergence
//
// A root is accepted when either
//
//   - |f(b)| < Tolerance, or
//   - the bracket half-width is at most 2·ε·|b| + Tolerance/2
//     (ε = machine epsilon).
//
// Options.MaxIterations caps the number of function evaluations after the two
// bracket-end evaluations. The default cap is 30.
//
// # Errors
//
//	ErrNoBracket         - f(lo) and f(hi) share a sign or are not finite.
//	ErrNonFinite         - f returned NaN/±Inf inside the bracket.
//	ErrMaxIterations     - the iteration budget ran out before convergence.
//	ErrBracketsExhausted - Escalate failed on every bracket (wraps the last cause).
//	ErrBadTolerance, ErrBadMaxIterations - invalid Options.
package rootfind
