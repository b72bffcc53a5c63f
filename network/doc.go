// Package network loads hydraulic networks from TOML or YAML files and builds
// them into collection trees.
//
// Overview:
//
//   - fluids:      named fluids (density, viscosity).
//   - components:  named leaves: pipe, resistance, check_valve, pump, custom.
//     A custom component names its friction and form-loss laws; laws beyond
//     the built-in ones are registered with WithFriction and WithKLaw. A
//     component marked tracked is wrapped in fluid.Tracked so Commit can
//     record its operating point.
//   - collections: named series, parallel or super collections whose members
//     reference components or other collections by name. A member list may
//     be repeated with repeat = N.
//   - root:        the collection the network solves for.
//   - solver:      tolerances, iteration cap and heuristic overrides applied
//     to every collection.
//
// Collection references form a directed core.Graph (collection -> member).
// dfs.TopologicalSort orders it so members are built before the collections
// that hold them; a loop fails the build with ErrCycle naming the path found
// by dfs.DetectCycles.
// Collections and components that the root never reaches are still built, so
// a broken definition anywhere in the file is reported.
//
// Error handling:
//
//   - ErrUnknownFormat     file extension is neither TOML nor YAML.
//   - ErrParse             the document does not decode.
//   - ErrUnknownReference  a name that no fluid, component or collection has.
//   - ErrUnknownKind       unsupported component, collection or arrangement kind.
//   - ErrDuplicateName     a component and a collection share a name.
//   - ErrBadMember         a member that cannot sit where it is referenced.
//   - ErrBadSolver         invalid solver settings.
//   - ErrCycle             collections reference each other in a loop.
//   - ErrNoRoot            root is missing or names a component.
//
// Component parameter errors surface as fluid.ErrNonPhysical and collection
// construction errors as the collection package's sentinels, both wrapped
// with the offending name.
package network
