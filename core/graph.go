package core

import (
	"fmt"
	"sync"
)

// SwitchEntry is the switch registry's source of truth for one SWITCH
// edge's state, mirrored into both endpoints' Link records on every
// mutation.
type SwitchEntry struct {
	A, B   string
	State  SwitchState
	Pruned bool
}

// Graph owns the node table and the switch registry for one distribution
// network instance. A Graph is safe for concurrent readers but, like the
// source algorithm, expects exclusive ownership during a select→balance
// cycle (§5).
type Graph struct {
	mu sync.RWMutex

	root     string
	nodes    map[string]*Node
	switches []*SwitchEntry
}

// NewGraph returns an empty Graph rooted at root.
func NewGraph(root string) (*Graph, error) {
	if root == "" {
		return nil, ErrNoRoot
	}
	return &Graph{
		root:  root,
		nodes: make(map[string]*Node),
	}, nil
}

// Root returns the graph's root node identity.
func (g *Graph) Root() string { return g.root }

// NormalEdgeInput describes one NORMAL edge row (links.csv).
type NormalEdgeInput struct {
	A, B   string
	DistFt int
	ConfID int
}

// SwitchEdgeInput describes one SWITCH edge row (switches.csv).
type SwitchEdgeInput struct {
	A, B  string
	State SwitchState
}

// BuildInput bundles the construction inputs of §4.1.
type BuildInput struct {
	Root    string
	Loads   map[string]float64 // node -> load at the requested timestep
	Normal  []NormalEdgeInput
	Switch  []SwitchEdgeInput
	Configs map[int]LinkConfig
}

// BuildGraph constructs a Graph per §4.1: NORMAL nodes from the load
// table, VIRTUAL nodes for any edge endpoint absent from it, a mirrored
// pair of Link records per edge, and a switch registry indexed in input
// order.
func BuildGraph(in BuildInput) (*Graph, error) {
	g, err := NewGraph(in.Root)
	if err != nil {
		return nil, err
	}

	for id, load := range in.Loads {
		g.nodes[id] = newNode(id, NodeNormal, load)
	}
	for _, e := range in.Normal {
		g.ensureVirtual(e.A)
		g.ensureVirtual(e.B)
	}
	for _, e := range in.Switch {
		g.ensureVirtual(e.A)
		g.ensureVirtual(e.B)
	}

	// The root must already be anchored by the load table or by some
	// edge's endpoint; fabricating an isolated root node here would mask
	// a missing-root input error instead of reporting it (§7).
	if _, ok := g.nodes[in.Root]; !ok {
		return nil, fmt.Errorf("core: building graph: %w", ErrMissingRoot)
	}

	for _, e := range in.Normal {
		conf, ok := in.Configs[e.ConfID]
		if !ok {
			return nil, fmt.Errorf("core: edge %s-%s references conf %d: %w", e.A, e.B, e.ConfID, ErrUnknownConfig)
		}
		g.nodes[e.A].addAdjacency(e.B, NewNormalLink(e.B, e.DistFt, e.ConfID, conf))
		g.nodes[e.B].addAdjacency(e.A, NewNormalLink(e.A, e.DistFt, e.ConfID, conf))
	}

	for idx, e := range in.Switch {
		for _, prior := range g.switches {
			if (prior.A == e.A && prior.B == e.B) || (prior.A == e.B && prior.B == e.A) {
				return nil, fmt.Errorf("core: switch %s-%s: %w", e.A, e.B, ErrDuplicateSwitch)
			}
		}
		g.switches = append(g.switches, &SwitchEntry{A: e.A, B: e.B, State: e.State})
		g.nodes[e.A].addAdjacency(e.B, NewSwitchLink(e.B, idx, e.State))
		g.nodes[e.B].addAdjacency(e.A, NewSwitchLink(e.A, idx, e.State))
	}

	return g, nil
}

// ensureVirtual inserts a zero-load VIRTUAL node for id if it is not
// already present (e.g. from the load table).
func (g *Graph) ensureVirtual(id string) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = newNode(id, NodeVirtual, 0)
	}
}

// Node returns the node with the given ID, or (nil, false).
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// MustNode returns the node with the given ID, panicking if absent. For
// internal call sites that already validated existence (programmer error
// otherwise, per §7's invariant-violation policy).
func (g *Graph) MustNode(id string) *Node {
	n, ok := g.nodes[id]
	if !ok {
		panic(fmt.Sprintf("core: MustNode(%q): %v", id, ErrNodeNotFound))
	}
	return n
}

// Nodes returns the node table directly. Callers must not mutate the
// returned map's keys; node mutation through *Node is fine and is how
// every algorithm package in this module operates.
func (g *Graph) Nodes() map[string]*Node {
	return g.nodes
}

// NodeIDs returns all node identities in unspecified order.
func (g *Graph) NodeIDs() []string {
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	return out
}

// SwitchCount returns the number of entries in the switch registry.
func (g *Graph) SwitchCount() int { return len(g.switches) }

// SwitchEntryAt returns a copy of the switch registry entry at idx.
func (g *Graph) SwitchEntryAt(idx int) (SwitchEntry, bool) {
	if idx < 0 || idx >= len(g.switches) {
		return SwitchEntry{}, false
	}
	return *g.switches[idx], true
}

// FindSwitchID returns the index of the first switch registry entry whose
// A or B endpoint equals name, in registry order, or (-1, false).
//
// This mirrors the source algorithm literally: it is keyed on node
// identity alone, not on a specific edge, so a node touching more than
// one switch resolves ambiguously to whichever entry appears first in
// the registry. Spec §4.3 relies on exactly this behavior.
func (g *Graph) FindSwitchID(name string) (int, bool) {
	for i, sw := range g.switches {
		if sw.A == name || sw.B == name {
			return i, true
		}
	}
	return -1, false
}
