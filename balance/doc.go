// Package balance implements the global power-balance engine of spec
// §4.5–§4.6: given the active-HPA list left by selector.SelectBest, it
// drains load from leaves toward the root along those paths, assigning
// link direction, applying an optional loss and/or capacity model, and
// reporting the total power that reached the root together with the
// absolute flux (routing churn) the pass incurred.
package balance

import "errors"

// ErrNilGraph is returned when GlobalBalance is called with a nil graph.
var ErrNilGraph = errors.New("balance: graph is nil")

// ErrEmptyActiveList is returned when the active list is empty; there is
// always at least the root's own one-hop HPA once a criterion has run.
var ErrEmptyActiveList = errors.New("balance: active list is empty")

// Params selects which of the four balance modes (ideal, loss-only,
// cap-only, loss-and-cap) a GlobalBalance call runs under (§4.5).
type Params struct {
	WithLosses bool
	WithCap    bool
}
