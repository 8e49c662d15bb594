// Package driver implements the iterated select→balance loop of spec
// §4.6: clear the active flags, run a criterion's selector, run a
// balance pass, and repeat while enclosed loads remain, up to a bounded
// number of iterations. It also provides a minimal worker-pool fan-out
// (RunBatch) over independent (topology, root) tuples, each owning its
// own graph clone, per §5's no-shared-Graph rule.
package driver

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/gridmesh/den2ne/balance"
	"github.com/gridmesh/den2ne/core"
	"github.com/gridmesh/den2ne/selector"
)

// ErrNilGraph is returned when Run is called with a nil graph.
var ErrNilGraph = errors.New("driver: graph is nil")

// UnreachableLoadError reports a load-bearing node that still carries
// residual load after the iteration cap was hit — it was never reachable
// from the root during propagation, or quiescence simply was not reached
// in time (§7).
type UnreachableLoadError struct {
	Node       string
	ResidualKW float64
}

func (e *UnreachableLoadError) Error() string {
	return fmt.Sprintf("driver: unreachable load at %s: %.3f kW residual after iteration cap", e.Node, e.ResidualKW)
}

// Options configures Run. The zero value is usable.
type Options struct {
	// Logger receives Trace/Debug entries per iteration and Warn on
	// UnreachableLoad / iteration-cap events. Defaults to a null logger.
	Logger hclog.Logger

	// MaxIter bounds the select→balance loop. Defaults to core.MaxIter.
	MaxIter int

	// Weights carries the α/β blend for LowLinksLosses/PowerToZero.
	// Defaults to selector.DefaultWeights().
	Weights selector.Weights

	// Params selects the balance mode (losses/cap). Defaults to the
	// ideal case (both false).
	Params balance.Params
}

func (o *Options) logger() hclog.Logger {
	if o == nil || o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

func (o *Options) maxIter() int {
	if o == nil || o.MaxIter <= 0 {
		return core.MaxIter
	}
	return o.MaxIter
}

func (o *Options) weights() selector.Weights {
	if o == nil || (o.Weights == selector.Weights{}) {
		return selector.DefaultWeights()
	}
	return o.Weights
}

func (o *Options) params() balance.Params {
	if o == nil {
		return balance.Params{}
	}
	return o.Params
}

// RunResult summarizes one (graph, criterion) run.
type RunResult struct {
	Criterion    selector.Criterion
	Iterations   int
	TotalBalance float64
	AbsFlux      float64
	Unreachable  []UnreachableLoadError
	HitIterCap   bool
}
