// Package core defines the graph model for the Den2ne power-routing
// engine: Link, Node, HPA (hierarchical path address), and Graph.
//
// A Graph owns a set of Nodes keyed by their opaque string identity and a
// switch registry indexed 0..K-1. Each Node owns an ordered list of
// neighbor identities paired positionally with the Link records describing
// those adjacencies, plus an ordered list of HPAs accumulated during
// propagation (see the sibling propagate package).
//
// Concurrency: a single Graph is meant to be mutated by one goroutine (or
// one driver worker) at a time — see Graph.Snapshot for how the driver
// layer hands each concurrent run its own copy. Graph carries a RWMutex
// field, but no method takes it: concurrent readers are safe only while
// no goroutine mutates the graph.
package core

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrEmptyNodeID indicates an empty node identifier was supplied.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNeighborNotFound indicates an operation referenced a non-adjacent neighbor.
	ErrNeighborNotFound = errors.New("core: neighbor not found")

	// ErrSwitchNotFound indicates an operation referenced an out-of-range switch ID.
	ErrSwitchNotFound = errors.New("core: switch ID not found")

	// ErrDuplicateSwitch indicates the same (a, b) pair was registered twice as a switch.
	ErrDuplicateSwitch = errors.New("core: duplicate switch entry")

	// ErrNoRoot indicates a Graph was built without a root identity.
	ErrNoRoot = errors.New("core: root node is required")

	// ErrUnknownConfig indicates a NORMAL edge referenced a link-config ID with no entry.
	ErrUnknownConfig = errors.New("core: unknown link configuration ID")

	// ErrMissingRoot indicates BuildInput's Root identity appears in none
	// of Loads, Normal, or Switch — there is nothing to anchor the graph
	// to, and fabricating an isolated root node would hide a structural
	// input error instead of reporting it.
	ErrMissingRoot = errors.New("core: root node not present in loads or edges")

	// ErrSwitchLinkNotFound indicates SetLinkDirection addressed a pair with no Link.
	ErrSwitchLinkNotFound = errors.New("core: no link between given nodes")
)
