// Package inertia implements the optional flow-inertia reconciliation pass
// of §4.7: after a criterion selects each node's active HPA
// independently, a longer active HPA's upstream nodes may not agree that
// their own active HPA is a prefix of it. Reconcile propagates the
// longest active paths upstream, swapping each disagreeing node onto the
// HPA its downstream neighbor expects, then walks the side branches that
// hang off the corrected node so they can follow the same inertia before
// the main path is walked by the balancer.
//
// This pass is semantically fragile in the source material — it mutates
// the active set while iterating it and recurses into branches under a
// hard repetition cap — and none of the six selection criteria invoke it
// automatically. Treat it as an opt-in post-selector step.
package inertia

import (
	"errors"

	"github.com/hashicorp/go-hclog"
)

// ErrNilGraph is returned when Reconcile is called with a nil graph.
var ErrNilGraph = errors.New("inertia: graph is nil")

// defaultMaxRepetitions mirrors the source's hard recursion cap.
const defaultMaxRepetitions = 10

// Options configures Reconcile. The zero value is usable.
type Options struct {
	// Logger receives Trace-level entries for every HPA swap. Defaults
	// to a null logger.
	Logger hclog.Logger

	// MaxRepetitions bounds the check-and-fix loop. Defaults to 10,
	// matching the source's hard cap.
	MaxRepetitions int
}

func (o *Options) logger() hclog.Logger {
	if o == nil || o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

func (o *Options) maxRepetitions() int {
	if o == nil || o.MaxRepetitions <= 0 {
		return defaultMaxRepetitions
	}
	return o.MaxRepetitions
}
