package collection

import (
	"errors"

	"github.com/katalvlaran/hydronet/fluid"
)

// Sentinel errors returned by the collection solvers.
var (
	// ErrNoMembers indicates a collection built, or left, without members.
	ErrNoMembers = errors.New("collection: collection has no members")

	// ErrNilMember indicates a nil member in the supplied slice.
	ErrNilMember = errors.New("collection: member is nil")

	// ErrIndexOutOfRange indicates a member index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("collection: member index out of range")

	// ErrSolveFailed indicates that every bracket of the escalation ladder
	// failed. It always wraps rootfind.ErrBracketsExhausted.
	ErrSolveFailed = errors.New("collection: solve failed")

	// ErrBadTolerance indicates a tolerance that is not finite and positive.
	ErrBadTolerance = errors.New("collection: tolerance must be finite and positive")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("collection: MaxIterations must be positive")

	// ErrBadHeuristics indicates an unusable Heuristics value.
	ErrBadHeuristics = errors.New("collection: invalid heuristics")
)

// Collection is a composed arrangement of components. It answers the same
// four queries as a single component, so collections nest to any depth.
type Collection interface {
	fluid.Component

	// Len returns the number of direct members.
	Len() int

	// Commit resolves the operating point at massFlow and pushes the member
	// operating points down to members that keep state.
	Commit(massFlow float64) error
}

// Arrangement selects how a Super combines its member collections.
type Arrangement int

const (
	// ArrangementParallel: members share the pressure change, flows add up.
	ArrangementParallel Arrangement = iota

	// ArrangementSeries: members share the mass flow, pressure changes add up.
	ArrangementSeries
)

// String returns "parallel" or "series".
func (a Arrangement) String() string {
	switch a {
	case ArrangementParallel:
		return "parallel"
	case ArrangementSeries:
		return "series"
	default:
		return "unknown"
	}
}

// Regime is the flow-driving situation used to pick the initial pressure
// guess of a parallel solve.
type Regime int

const (
	// RegimeZeroFlow: |Q| below the zero-flow threshold.
	RegimeZeroFlow Regime = iota

	// RegimeInternalCirculation: branch baselines differ by much more than
	// the loss imposed by Q; flow mostly circulates between branches.
	RegimeInternalCirculation

	// RegimeExternalFlow: the imposed flow dominates; branches share Q.
	RegimeExternalFlow

	// RegimeComparable: both effects are of similar size.
	RegimeComparable

	// RegimeFallback: none of the above matched.
	RegimeFallback
)

// String returns a short, log-friendly name.
func (r Regime) String() string {
	switch r {
	case RegimeZeroFlow:
		return "zero-flow"
	case RegimeInternalCirculation:
		return "internal-circulation"
	case RegimeExternalFlow:
		return "external-flow"
	case RegimeComparable:
		return "comparable"
	case RegimeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// guess returns the per-branch mass flow used to estimate branch pressures.
func (r Regime) guess(massFlow float64, branches int) float64 {
	switch r {
	case RegimeExternalFlow, RegimeFallback:
		return massFlow / float64(branches)
	default:
		return 0
	}
}

// State names the steps of a solve. States only appear in debug logs.
type State int

const (
	StateStart State = iota
	StateZeroFlowShortCircuit
	StateCheckValveShortCircuit
	StateRegimeClassification
	StateBoundGuess
	StateRootFind
	StateBracketEscalation
	StateSolved
	StateFatal
)

var stateNames = [...]string{
	StateStart:                  "start",
	StateZeroFlowShortCircuit:   "zero-flow-short-circuit",
	StateCheckValveShortCircuit: "check-valve-short-circuit",
	StateRegimeClassification:   "regime-classification",
	StateBoundGuess:             "bound-guess",
	StateRootFind:               "root-find",
	StateBracketEscalation:      "bracket-escalation",
	StateSolved:                 "solved",
	StateFatal:                  "fatal",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Bias is the conducting direction of a diode-like collection.
type Bias int

const (
	// BiasNone: the collection conducts both ways.
	BiasNone Bias = iota
	// BiasForward: only positive mass flow is allowed.
	BiasForward
	// BiasReverse: only negative mass flow is allowed.
	BiasReverse
)

func (b Bias) String() string {
	switch b {
	case BiasForward:
		return "forward"
	case BiasReverse:
		return "reverse"
	default:
		return "none"
	}
}
