// Package propagate implements the HPA flood of §4.3: starting from
// the root, it breadth-floods hierarchical path addresses outward,
// skipping loops and capping each node at core.IDSMax owned addresses.
//
// The traversal order is part of the contract, not an implementation
// detail: FIFO over the node-visit queue (which may enqueue the same node
// more than once), then the node's owned-HPA order at time of visit, then
// neighbor insertion order. Because IDSMax caps accumulation, changing
// this order changes which HPAs survive at a node near the cap — callers
// that need bit-equivalent results across re-implementations must
// preserve it exactly (§9).
package propagate

import (
	"errors"

	"github.com/hashicorp/go-hclog"
)

// ErrNilGraph is returned when Propagate is called with a nil graph.
var ErrNilGraph = errors.New("propagate: graph is nil")

// ErrRootNotFound is returned when the graph's root identity has no Node.
var ErrRootNotFound = errors.New("propagate: root node not found")

// Options configures Propagate's observability. The flood algorithm
// itself has no tunable knobs — core.IDSMax is a fixed engine constant,
// per §6.
type Options struct {
	// Logger receives Trace-level events for each HPA extension. Defaults
	// to hclog.NewNullLogger() when nil.
	Logger hclog.Logger
}

func (o *Options) logger() hclog.Logger {
	if o == nil || o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}
