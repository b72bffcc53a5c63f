package network

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/hydronet/collection"
	"github.com/katalvlaran/hydronet/core"
	"github.com/katalvlaran/hydronet/dfs"
	"github.com/katalvlaran/hydronet/fluid"
)

// BuildOptions configures Build.
//
//   - Logger:    passed to every collection and used for build progress;
//     discarded by default.
//   - Frictions: friction laws custom components may name.
//   - KLaws:     form-loss laws custom components may name.
type BuildOptions struct {
	Logger    *log.Logger
	Frictions map[string]fluid.DarcyFunc
	KLaws     map[string]fluid.KFunc
}

// BuildOption represents a functional option for Build.
type BuildOption func(*BuildOptions)

// DefaultBuildOptions returns options with a discard logger.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Logger:    log.NewWithOptions(io.Discard, log.Options{}),
		Frictions: map[string]fluid.DarcyFunc{},
		KLaws:     map[string]fluid.KFunc{},
	}
}

// WithLogger sets the logger. A nil logger keeps the discard default.
func WithLogger(l *log.Logger) BuildOption {
	return func(o *BuildOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithFriction registers a friction law under name for custom components.
// Panics on an empty name or a nil law.
func WithFriction(name string, fn fluid.DarcyFunc) BuildOption {
	if name == "" || fn == nil {
		panic("network: WithFriction needs a name and a law")
	}
	return func(o *BuildOptions) {
		o.Frictions[name] = fn
	}
}

// WithKLaw registers a form-loss law under name for custom components.
// Panics on an empty name or a nil law.
func WithKLaw(name string, fn fluid.KFunc) BuildOption {
	if name == "" || fn == nil {
		panic("network: WithKLaw needs a name and a law")
	}
	return func(o *BuildOptions) {
		o.KLaws[name] = fn
	}
}

// Network is a built network file.
type Network struct {
	root    collection.Collection
	tree    *Node
	order   []string
	tracked map[string]*fluid.Tracked
}

// Root returns the root collection.
func (n *Network) Root() collection.Collection {
	return n.root
}

// Tree returns the description of the root collection.
func (n *Network) Tree() *Node {
	return n.tree
}

// Order returns every collection name with members before the collections
// that hold them.
func (n *Network) Order() []string {
	return slices.Clone(n.order)
}

// TrackedNames returns the names of tracked components, sorted.
func (n *Network) TrackedNames() []string {
	return slices.Sorted(maps.Keys(n.tracked))
}

// Tracked returns the tracked wrapper of the named component.
func (n *Network) Tracked(name string) (*fluid.Tracked, bool) {
	t, ok := n.tracked[name]
	return t, ok
}

// builder holds the state of one Build.
type builder struct {
	file  *File
	opts  BuildOptions
	log   *log.Logger
	copts []collection.Option // options shared by every collection
	stol  []collection.Option // series tolerance, when overridden
	ptol  []collection.Option // parallel and super tolerance, when overridden

	comps   map[string]fluid.Component
	cols    map[string]collection.Collection
	nodes   map[string]*Node
	tracked map[string]*fluid.Tracked
}

// Build resolves f into a collection tree rooted at f.Root.
func Build(f *File, options ...BuildOption) (*Network, error) {
	// 1. Apply options
	opts := DefaultBuildOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 2. Names must be unique across components and collections
	for name := range f.Components {
		if _, ok := f.Collections[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	// 3. Translate solver settings
	b := &builder{
		file:    f,
		opts:    opts,
		log:     opts.Logger,
		comps:   make(map[string]fluid.Component, len(f.Components)),
		cols:    make(map[string]collection.Collection, len(f.Collections)),
		nodes:   make(map[string]*Node, len(f.Components)+len(f.Collections)),
		tracked: make(map[string]*fluid.Tracked),
	}
	if err := b.solver(f.Solver); err != nil {
		return nil, err
	}
	// 4. Order every collection, reachable from the root or not
	order, err := b.references()
	if err != nil {
		return nil, err
	}
	// 5. Build members before the collections that hold them
	for _, name := range order {
		if err := b.build(name); err != nil {
			return nil, err
		}
	}
	// 6. Validate components no collection references
	for _, name := range slices.Sorted(maps.Keys(f.Components)) {
		if _, _, err := b.component(name, f.Components[name]); err != nil {
			return nil, err
		}
	}
	// 7. Pick the root
	if f.Root == "" {
		return nil, ErrNoRoot
	}
	root, ok := b.cols[f.Root]
	if !ok {
		if _, isComp := f.Components[f.Root]; isComp {
			return nil, fmt.Errorf("%w: %q is a component", ErrNoRoot, f.Root)
		}
		return nil, fmt.Errorf("%w: root %q", ErrUnknownReference, f.Root)
	}
	b.log.Debug("built network", "root", f.Root,
		"collections", len(b.cols), "components", len(b.comps), "tracked", len(b.tracked))

	return &Network{root: root, tree: b.nodes[f.Root], order: order, tracked: b.tracked}, nil
}

// solver converts the solver section into collection options.
func (b *builder) solver(s SolverSpec) error {
	bad := func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) || v < 0 }
	switch {
	case bad(s.Tolerance):
		return fmt.Errorf("%w: tolerance %g", ErrBadSolver, s.Tolerance)
	case bad(s.SeriesTolerance):
		return fmt.Errorf("%w: series_tolerance %g", ErrBadSolver, s.SeriesTolerance)
	case s.MaxIterations < 0:
		return fmt.Errorf("%w: max_iterations %d", ErrBadSolver, s.MaxIterations)
	}
	h := s.Heuristics.Apply(collection.DefaultHeuristics())
	if err := h.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSolver, err)
	}

	b.copts = []collection.Option{collection.WithHeuristics(h), collection.WithLogger(b.log)}
	if s.MaxIterations > 0 {
		b.copts = append(b.copts, collection.WithMaxIterations(s.MaxIterations))
	}
	if s.Tolerance > 0 {
		b.ptol = []collection.Option{collection.WithTolerance(s.Tolerance)}
	}
	if s.SeriesTolerance > 0 {
		b.stol = []collection.Option{collection.WithTolerance(s.SeriesTolerance)}
	}
	return nil
}

// references builds the collection -> member graph and returns every
// collection with members before the collections that hold them.
func (b *builder) references() ([]string, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	for _, name := range slices.Sorted(maps.Keys(b.file.Collections)) {
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("network: collection %q: %w", name, err)
		}
		for _, ref := range b.file.Collections[name].Members {
			// components are leaves
			if _, ok := b.file.Components[ref]; ok {
				continue
			}
			if _, ok := b.file.Collections[ref]; !ok {
				return nil, fmt.Errorf("%w: collection %q member %q", ErrUnknownReference, name, ref)
			}
			if _, err := g.AddEdge(name, ref); err != nil {
				return nil, fmt.Errorf("network: collection %q: %w", name, err)
			}
		}
	}

	order, err := dfs.TopologicalSort(g)
	if errors.Is(err, dfs.ErrCycleDetected) {
		cycles, cerr := dfs.DetectCycles(g)
		if cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycles[0], " -> "))
	}
	if err != nil {
		return nil, fmt.Errorf("network: reference order: %w", err)
	}
	slices.Reverse(order)
	return order, nil
}

// build constructs the named collection. Its member collections are built.
func (b *builder) build(name string) error {
	spec := b.file.Collections[name]
	repeat := spec.Repeat
	if repeat < 0 {
		return fmt.Errorf("%w: collection %q repeat %d", ErrBadMember, name, repeat)
	}
	if repeat == 0 {
		repeat = 1
	}

	members := make([]fluid.Component, 0, len(spec.Members)*repeat)
	children := make([]*Node, 0, len(spec.Members)*repeat)
	for range repeat {
		for _, ref := range spec.Members {
			c, node, err := b.member(ref)
			if err != nil {
				return err
			}
			members = append(members, c)
			children = append(children, node)
		}
	}

	col, node, err := b.collection(name, spec, members)
	if err != nil {
		return err
	}
	node.Children = children
	b.log.Debug("built collection", "name", name, "kind", node.Kind, "members", len(members))

	b.cols[name] = col
	b.nodes[name] = node
	return nil
}

// member resolves a reference checked by references.
func (b *builder) member(ref string) (fluid.Component, *Node, error) {
	if spec, ok := b.file.Components[ref]; ok {
		return b.component(ref, spec)
	}
	return b.cols[ref], b.nodes[ref], nil
}

// collection constructs the collection for spec over resolved members.
func (b *builder) collection(name string, spec CollectionSpec, members []fluid.Component) (collection.Collection, *Node, error) {
	var (
		col collection.Collection
		err error
	)
	node := &Node{Name: name, Kind: spec.Kind}
	switch spec.Kind {
	case KindSeries:
		col, err = collection.NewSeries(members, b.options(b.stol)...)
	case KindParallel:
		col, err = collection.NewParallel(members, b.options(b.ptol)...)
	case KindSuper:
		arr, aerr := arrangement(spec.Arrangement)
		if aerr != nil {
			return nil, nil, fmt.Errorf("collection %q: %w", name, aerr)
		}
		node.Kind = KindSuper + "-" + arr.String()
		subs := make([]collection.Collection, len(members))
		for i, m := range members {
			sub, ok := m.(collection.Collection)
			if !ok {
				return nil, nil, fmt.Errorf("%w: super %q member %d is a component, not a collection",
					ErrBadMember, name, i)
			}
			subs[i] = sub
		}
		col, err = collection.NewSuper(arr, subs, b.options(b.ptol)...)
	default:
		return nil, nil, fmt.Errorf("%w: collection %q kind %q", ErrUnknownKind, name, spec.Kind)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("network: collection %q: %w", name, err)
	}
	return col, node, nil
}

func (b *builder) options(tol []collection.Option) []collection.Option {
	return append(slices.Clone(b.copts), tol...)
}

func arrangement(s string) (collection.Arrangement, error) {
	switch s {
	case "", collection.ArrangementParallel.String():
		return collection.ArrangementParallel, nil
	case collection.ArrangementSeries.String():
		return collection.ArrangementSeries, nil
	}
	return 0, fmt.Errorf("%w: arrangement %q", ErrUnknownKind, s)
}

// component builds and validates a leaf, once per name.
func (b *builder) component(name string, spec ComponentSpec) (fluid.Component, *Node, error) {
	if c, ok := b.comps[name]; ok {
		return c, b.nodes[name], nil
	}

	var (
		c      fluid.Component
		detail string
		err    error
	)
	switch spec.Kind {
	case KindPipe:
		fs, ok := b.file.Fluids[spec.Fluid]
		if !ok {
			return nil, nil, fmt.Errorf("%w: component %q fluid %q", ErrUnknownReference, name, spec.Fluid)
		}
		p := fluid.Pipe{
			Fluid:       fluid.Fluid{Name: spec.Fluid, Density: fs.Density, Viscosity: fs.Viscosity},
			Diameter:    spec.Diameter,
			Length:      spec.Length,
			Roughness:   spec.Roughness,
			K:           spec.K,
			Inclination: spec.Inclination * math.Pi / 180,
			Source:      spec.Source,
		}
		c, err = p, p.Validate()
		detail = fmt.Sprintf("D=%g m L=%g m K=%g", p.Diameter, p.Length, p.K)
	case KindResistance:
		r := fluid.NewResistance(spec.Linear, spec.Quadratic)
		if spec.ReverseLinear != nil {
			r.ReverseLinear = *spec.ReverseLinear
		}
		if spec.ReverseQuadratic != nil {
			r.ReverseQuadratic = *spec.ReverseQuadratic
		}
		r.Head = spec.Head
		c, err = r, r.Validate()
		detail = fmt.Sprintf("a=%g b=%g", r.Linear, r.Quadratic)
	case KindCheckValve:
		if !(spec.Blockage >= 1) {
			return nil, nil, fmt.Errorf("%w: component %q blockage %g", fluid.ErrNonPhysical, name, spec.Blockage)
		}
		r := fluid.CheckValve(spec.Linear, spec.Quadratic, spec.Blockage)
		c, err = r, r.Validate()
		detail = fmt.Sprintf("a=%g b=%g blockage=%g", r.Linear, r.Quadratic, spec.Blockage)
	case KindPump:
		p := fluid.Pump{Rise: spec.Rise, Slip: spec.Slip}
		c, err = p, p.Validate()
		detail = fmt.Sprintf("rise=%g Pa slip=%g", p.Rise, p.Slip)
	case KindCustom:
		cu, cerr := b.custom(name, spec)
		if cerr != nil {
			return nil, nil, cerr
		}
		c, err = cu, cu.Validate()
		detail = fmt.Sprintf("D=%g m L=%g m friction=%s", cu.Diameter, cu.Length, friction(spec.Friction))
		if spec.KLaw != "" {
			detail += " k_law=" + spec.KLaw
		} else {
			detail += fmt.Sprintf(" K=%g", spec.K)
		}
	default:
		return nil, nil, fmt.Errorf("%w: component %q kind %q", ErrUnknownKind, name, spec.Kind)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("network: component %q: %w", name, err)
	}

	if spec.Tracked {
		t := fluid.Track(c)
		b.tracked[name] = t
		c = t
	}
	node := &Node{Name: name, Kind: spec.Kind, Detail: detail, Tracked: spec.Tracked}
	b.comps[name] = c
	b.nodes[name] = node

	return c, node, nil
}

func friction(name string) string {
	if name == "" {
		return FrictionChurchill
	}
	return name
}

// custom resolves the fluid and the named laws of a custom component.
func (b *builder) custom(name string, spec ComponentSpec) (fluid.Custom, error) {
	fs, ok := b.file.Fluids[spec.Fluid]
	if !ok {
		return fluid.Custom{}, fmt.Errorf("%w: component %q fluid %q", ErrUnknownReference, name, spec.Fluid)
	}
	c := fluid.Custom{
		Fluid:       fluid.Fluid{Name: spec.Fluid, Density: fs.Density, Viscosity: fs.Viscosity},
		Diameter:    spec.Diameter,
		Length:      spec.Length,
		Roughness:   spec.Roughness,
		FlowArea:    spec.Area,
		Inclination: spec.Inclination * math.Pi / 180,
		Source:      spec.Source,
		K:           fluid.ConstantK(spec.K),
	}

	switch f := friction(spec.Friction); f {
	case FrictionChurchill:
		c.Darcy = nil
	case FrictionLaminar:
		c.Darcy = fluid.LaminarDarcy
	case FrictionNone:
		c.Darcy = fluid.NoFriction
	default:
		fn, ok := b.opts.Frictions[f]
		if !ok {
			return fluid.Custom{}, fmt.Errorf("%w: component %q friction %q", ErrUnknownReference, name, f)
		}
		c.Darcy = fn
	}

	if spec.KLaw != "" {
		fn, ok := b.opts.KLaws[spec.KLaw]
		if !ok {
			return fluid.Custom{}, fmt.Errorf("%w: component %q k_law %q", ErrUnknownReference, name, spec.KLaw)
		}
		c.K = fn
	}
	return c, nil
}
