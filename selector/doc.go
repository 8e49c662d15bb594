// Package selector implements the criterion-based active-address selector
// of §4.4: for each node, scores its owned HPAs under one of six
// objectives and marks the minimum-scoring one active, then reconciles
// the switch registry to the union of active dependencies.
//
// All six criteria score for minimization; ties are broken by the
// lowest-indexed HPA in the node's owned list (first-encountered wins).
package selector

import "errors"

// ErrNilGraph is returned when SelectBest is called with a nil graph.
var ErrNilGraph = errors.New("selector: graph is nil")

// ErrNoHPAs names the case of a node that owns no HPAs at selection time
// (it was unreachable from the root during propagation). SelectBest does
// not return it: such a node is skipped and left without an active HPA.
var ErrNoHPAs = errors.New("selector: node owns no HPAs")

// Criterion names one of the six selection objectives of §4.4.
type Criterion int

const (
	// Hops minimizes path length (hop count to root).
	Hops Criterion = iota
	// LowLinksLosses minimizes alpha*totalLinkLosses + beta*len(path).
	LowLinksLosses
	// PowerToZero minimizes alpha*power2zero + beta*len(path).
	PowerToZero
	// PowerToZeroWithLosses minimizes power2zeroWithLosses (unweighted).
	PowerToZeroWithLosses
	// Distance minimizes total physical link distance to root.
	Distance
	// LinksLosses minimizes unweighted totalLinkLosses.
	LinksLosses
)

func (c Criterion) String() string {
	switch c {
	case Hops:
		return "HOPS"
	case LowLinksLosses:
		return "LOW_LINKS_LOSSES"
	case PowerToZero:
		return "POWER_TO_ZERO"
	case PowerToZeroWithLosses:
		return "POWER_TO_ZERO_WITH_LOSSES"
	case Distance:
		return "DISTANCE"
	case LinksLosses:
		return "LINKS_LOSSES"
	default:
		return "UNKNOWN"
	}
}

// Weights carries the alpha/beta blend used by LowLinksLosses and
// PowerToZero. Defaults to alpha=beta=0.5 per §4.4.
type Weights struct {
	Alpha, Beta float64
}

// DefaultWeights returns the default 0.5/0.5 blend.
func DefaultWeights() Weights {
	return Weights{Alpha: 0.5, Beta: 0.5}
}
