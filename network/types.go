package network

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/hydronet/collection"
)

// Sentinel errors for loading and building networks.
var (
	// ErrUnknownFormat indicates a file extension other than .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("network: unknown file format")

	// ErrParse indicates a document that does not decode into a File.
	ErrParse = errors.New("network: parse error")

	// ErrUnknownReference indicates a reference to an undefined name.
	ErrUnknownReference = errors.New("network: unknown reference")

	// ErrUnknownKind indicates an unsupported kind or arrangement.
	ErrUnknownKind = errors.New("network: unknown kind")

	// ErrDuplicateName indicates a name used by both a component and a collection.
	ErrDuplicateName = errors.New("network: duplicate name")

	// ErrBadMember indicates a member that is not allowed where it appears.
	ErrBadMember = errors.New("network: invalid member")

	// ErrBadSolver indicates invalid solver settings.
	ErrBadSolver = errors.New("network: invalid solver settings")

	// ErrCycle indicates collections that reference each other in a loop.
	ErrCycle = errors.New("network: collection cycle")

	// ErrNoRoot indicates a missing root or a root that is not a collection.
	ErrNoRoot = errors.New("network: no root collection")
)

// Component kinds.
const (
	KindPipe       = "pipe"
	KindResistance = "resistance"
	KindCheckValve = "check_valve"
	KindPump       = "pump"
	KindCustom     = "custom"
)

// Friction laws a custom component may name without registering them.
const (
	FrictionChurchill = "churchill"
	FrictionLaminar   = "laminar"
	FrictionNone      = "none"
)

// Collection kinds.
const (
	KindSeries   = "series"
	KindParallel = "parallel"
	KindSuper    = "super"
)

// Format is the encoding of a network file.
type Format int

const (
	// FormatTOML is decoded with BurntSushi/toml.
	FormatTOML Format = iota
	// FormatYAML is decoded with yaml.v3.
	FormatYAML
)

// String returns "toml" or "yaml".
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// File is the decoded network document.
type File struct {
	Root        string                    `toml:"root" yaml:"root"`
	Solver      SolverSpec                `toml:"solver" yaml:"solver"`
	Fluids      map[string]FluidSpec      `toml:"fluids" yaml:"fluids"`
	Components  map[string]ComponentSpec  `toml:"components" yaml:"components"`
	Collections map[string]CollectionSpec `toml:"collections" yaml:"collections"`
}

// FluidSpec describes a fluid. Density in kg/m³, viscosity in Pa·s.
type FluidSpec struct {
	Density   float64 `toml:"density" yaml:"density"`
	Viscosity float64 `toml:"viscosity" yaml:"viscosity"`
}

// ComponentSpec describes one leaf component. Only the fields of its Kind
// are read:
//
//   - pipe:        Fluid, Diameter, Length, Roughness, K, Inclination
//     (degrees above horizontal), Source.
//   - resistance:  Linear, Quadratic, optional ReverseLinear and
//     ReverseQuadratic (symmetric when absent), Head.
//   - check_valve: Linear, Quadratic, Blockage.
//   - pump:        Rise, Slip.
//   - custom:      the pipe fields plus Area (m², zero for the circle of
//     Diameter), Friction (churchill by default, laminar, none, or a name
//     given to WithFriction) and KLaw (a name given to WithKLaw; empty uses
//     the constant K).
type ComponentSpec struct {
	Kind    string `toml:"kind" yaml:"kind"`
	Tracked bool   `toml:"tracked" yaml:"tracked"`

	Fluid       string  `toml:"fluid" yaml:"fluid"`
	Diameter    float64 `toml:"diameter" yaml:"diameter"`
	Length      float64 `toml:"length" yaml:"length"`
	Roughness   float64 `toml:"roughness" yaml:"roughness"`
	K           float64 `toml:"k" yaml:"k"`
	Inclination float64 `toml:"inclination" yaml:"inclination"`
	Source      float64 `toml:"source" yaml:"source"`

	Linear           float64  `toml:"linear" yaml:"linear"`
	Quadratic        float64  `toml:"quadratic" yaml:"quadratic"`
	ReverseLinear    *float64 `toml:"reverse_linear" yaml:"reverse_linear"`
	ReverseQuadratic *float64 `toml:"reverse_quadratic" yaml:"reverse_quadratic"`
	Head             float64  `toml:"head" yaml:"head"`
	Blockage         float64  `toml:"blockage" yaml:"blockage"`

	Rise float64 `toml:"rise" yaml:"rise"`
	Slip float64 `toml:"slip" yaml:"slip"`

	Area     float64 `toml:"area" yaml:"area"`
	Friction string  `toml:"friction" yaml:"friction"`
	KLaw     string  `toml:"k_law" yaml:"k_law"`
}

// CollectionSpec describes a collection. Arrangement applies to super only
// and defaults to parallel. Repeat (default 1) repeats the member list.
type CollectionSpec struct {
	Kind        string   `toml:"kind" yaml:"kind"`
	Arrangement string   `toml:"arrangement" yaml:"arrangement"`
	Members     []string `toml:"members" yaml:"members"`
	Repeat      int      `toml:"repeat" yaml:"repeat"`
}

// SolverSpec overrides collection solver settings. Zero values keep the
// collection defaults.
type SolverSpec struct {
	Tolerance       float64        `toml:"tolerance" yaml:"tolerance"`
	SeriesTolerance float64        `toml:"series_tolerance" yaml:"series_tolerance"`
	MaxIterations   int            `toml:"max_iterations" yaml:"max_iterations"`
	Heuristics      HeuristicsSpec `toml:"heuristics" yaml:"heuristics"`
}

// HeuristicsSpec overrides individual collection.Heuristics fields; nil
// fields keep the defaults.
type HeuristicsSpec struct {
	DeadBand      *float64  `toml:"dead_band" yaml:"dead_band"`
	ZeroFlow      *float64  `toml:"zero_flow" yaml:"zero_flow"`
	RegimeRatio   *float64  `toml:"regime_ratio" yaml:"regime_ratio"`
	Deviation     *float64  `toml:"deviation" yaml:"deviation"`
	DiodeRatio    *float64  `toml:"diode_ratio" yaml:"diode_ratio"`
	DiodeFlow     *float64  `toml:"diode_flow" yaml:"diode_flow"`
	MinBracket    *float64  `toml:"min_bracket" yaml:"min_bracket"`
	FlowBrackets  []float64 `toml:"flow_brackets" yaml:"flow_brackets"`
	BracketGrowth *float64  `toml:"bracket_growth" yaml:"bracket_growth"`
	Escalations   *int      `toml:"escalations" yaml:"escalations"`
	Resolution    *float64  `toml:"resolution" yaml:"resolution"`
}

// Apply returns h with the non-nil overrides of s.
func (s HeuristicsSpec) Apply(h collection.Heuristics) collection.Heuristics {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&h.DeadBand, s.DeadBand)
	set(&h.ZeroFlow, s.ZeroFlow)
	set(&h.RegimeRatio, s.RegimeRatio)
	set(&h.Deviation, s.Deviation)
	set(&h.DiodeRatio, s.DiodeRatio)
	set(&h.DiodeFlow, s.DiodeFlow)
	set(&h.MinBracket, s.MinBracket)
	set(&h.BracketGrowth, s.BracketGrowth)
	set(&h.Resolution, s.Resolution)
	if s.FlowBrackets != nil {
		h.FlowBrackets = append([]float64(nil), s.FlowBrackets...)
	}
	if s.Escalations != nil {
		h.Escalations = *s.Escalations
	}
	return h
}
