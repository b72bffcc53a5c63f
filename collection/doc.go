// Package collection composes fluid.Component values into series, parallel
// and super-collections and solves them for the complementary quantity:
// pressure change from a net mass flow, or mass flow from a net pressure
// change.
//
// Overview:
//
//   - Series: members carry the same mass flow; pressure changes add up.
//     Pressure from flow is a closed-form sum, flow from pressure is a Brent
//     solve over an escalating ladder of mass-flow brackets.
//   - Parallel: members share the pressure change; flows add up. Flow from
//     pressure is a closed-form sum, pressure from flow is a Brent solve
//     whose initial bracket comes from a regime heuristic.
//   - Super: a collection of collections, in parallel (default) or in series.
//     Flow from pressure first applies the dead-band and check-valve
//     detection, then the arrangement's solve.
//
// Every collection is itself a fluid.Component, so arrangements nest to any
// depth.
//
// Regimes (parallel pressure from flow):
//
//	internal = max − min of branch ΔP at zero flow
//	external = |average branch pressure loss at Q|
//
//	|Q| < ZeroFlow            → zero flow,            guess 0
//	internal·10 > external    → internal circulation, guess 0
//	internal·10 < external    → external flow,        guess Q/N
//	|int − ext|/|int| < 0.8   → comparable,           guess 0
//	otherwise                 → fallback,             guess Q/N
//
// The branch pressures at the guessed per-branch flow give the bracket
// avg ± (max − min), ±5 Pa when it collapses. On failure the half-width grows
// tenfold up to three times.
//
// Dead-band and check valves:
//
//   - A pressure change whose implied loss is under 9 Pa yields exactly zero
//     flow from Series and Super. Near zero flow the root finder would
//     otherwise chase noise.
//   - A Super whose losses at ±0.01 kg/s differ by more than 1000×, or are
//     not finite, behaves like a diode. Asked to flow against its bias it
//     returns zero without root finding.
//
// All thresholds live in Heuristics and can be overridden with
// WithHeuristics.
//
// Committing an operating point:
//
// Solvers are pure. Once a flow is chosen, Commit(massFlow) walks the tree
// and hands each stateful member (fluid.Committer, e.g. fluid.Tracked) its
// own operating point.
//
// Error handling (sentinel errors):
//
//   - ErrNoMembers, ErrNilMember: invalid member slice.
//   - ErrIndexOutOfRange: At, Remove or Replace with a bad index.
//   - ErrSolveFailed: every bracket failed; wraps rootfind.ErrBracketsExhausted.
//   - ErrBadTolerance, ErrBadMaxIterations, ErrBadHeuristics: option panics.
//
// Errors returned by members are propagated unmodified.
//
// Concurrency:
//
// Solving never mutates a collection. Member mutators (SetMembers, Add,
// Remove, Replace) swap in a fresh slice and must not race with solves.
package collection
