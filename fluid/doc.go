// Package fluid defines the Component capability shared by every element of a
// hydraulic network, together with a small set of reference components.
//
// Overview:
//
//   - Component is the contract every hydraulic element satisfies: four pure
//     queries mapping mass flowrate to pressure change and back, plus the
//     derived pressure-loss view (loss measured from the zero-flow baseline).
//   - Committer is the optional second half of the contract. Solvers never
//     call it; once an operating point is chosen, the caller pushes it to the
//     members that want to remember it.
//   - Tracked wraps any Component and records the last committed point.
//
// Reference components:
//
//   - Pipe:       Churchill friction factor, form-loss coefficient K,
//     hydrostatic head and an internal pressure source.
//   - Resistance: loss = a·|ṁ| + b·ṁ² with separate forward and reverse
//     coefficients, which makes it a fitting or, with a large reverse
//     coefficient, a check valve.
//   - Pump:       constant pressure rise with linear slip.
//
// Sign convention:
//
//	pressureChange = baseline − pressureLoss
//	baseline       = PressureChange(0)  (hydrostatic head, pump rise, …)
//
// A positive mass flowrate runs from inlet to outlet. A positive pressure
// loss opposes a positive flow.
//
// Dimensionless groups (Churchill 1977, Bejan form):
//
//	Re = ṁ·D / (A·μ)
//	Be = ½·(f_D·L/D + K)·Re²          (signed like Re)
//	ΔP = μ²·Be / (D²·ρ)
//
// Error handling (sentinel errors):
//
//   - ErrNonPhysical:
//     Returned when a component or fluid carries a non-physical parameter
//     (non-positive diameter, density or viscosity, negative roughness or K,
//     a resistance with no loss coefficients, a pump without slip).
//
// Errors produced by the inverse pipe solve wrap the rootfind sentinels.
package fluid
