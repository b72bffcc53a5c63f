// Package hydronet solves steady flow through networks of pipes, valves and
// pumps arranged in series, in parallel, and in collections of collections.
//
// Everything is organized under six packages:
//
//	rootfind/    Brent's method and bracket escalation
//	fluid/       the Component contract and stock components (Churchill
//	             pipe, resistance, check valve, pump, custom friction and
//	             K laws, tracked operating points)
//	collection/  Series, Parallel and Super solvers with the regime,
//	             dead-band and check-valve heuristics
//	core/        directed reference graph
//	dfs/         topological order and cycle paths over core graphs
//	network/     TOML/YAML network files built into collection trees
//
// The hydronet command (cmd/hydronet) loads network files and solves, tabulates,
// validates or draws them.
//
// Quick example:
//
//	       ┌── run (10 ducts) ──┐
//	  in ──┼── run (10 ducts) ──┼── out
//	       └── run (10 ducts) ──┘
//
//	represents a super-collection of three series runs in parallel:
//	0.3 kg/s of air splits evenly and drops about 174 650 Pa.
//
//	go install github.com/katalvlaran/hydronet/cmd/hydronet@latest
package hydronet
