package core

import "fmt"

// SetSwitchConfig writes state to registry entry idx and mirrors it into
// both endpoints' Link records, keeping the switch-mirror invariant
// (§8, property 2). When pruned is true the entry is additionally
// marked pruned and may never be reopened by the selector.
func (g *Graph) SetSwitchConfig(idx int, state SwitchState, pruned bool) error {
	if idx < 0 || idx >= len(g.switches) {
		return fmt.Errorf("core: SetSwitchConfig(%d): %w", idx, ErrSwitchNotFound)
	}
	sw := g.switches[idx]
	sw.State = state
	if pruned {
		sw.Pruned = true
	}

	if a, ok := g.nodes[sw.A]; ok {
		if l, ok := a.LinkTo(sw.B); ok {
			l.State = state
		}
	}
	if b, ok := g.nodes[sw.B]; ok {
		if l, ok := b.LinkTo(sw.A); ok {
			l.State = state
		}
	}

	return nil
}

// SetLinkDirection sets the direction on the (a→b) Link only. The
// balancer is responsible for calling this symmetrically for both
// directions of an edge.
func (g *Graph) SetLinkDirection(a, b string, d Direction) error {
	na, ok := g.nodes[a]
	if !ok {
		return fmt.Errorf("core: SetLinkDirection(%s): %w", a, ErrNodeNotFound)
	}
	l, ok := na.LinkTo(b)
	if !ok {
		return fmt.Errorf("core: SetLinkDirection(%s,%s): %w", a, b, ErrSwitchLinkNotFound)
	}
	l.Direction = d
	return nil
}

// GetLinkCapacity returns the (a→b) link's capacity in kW, or (0, false)
// for a SWITCH link (which has no capacity).
func (g *Graph) GetLinkCapacity(a, b string) (float64, bool) {
	na, ok := g.nodes[a]
	if !ok {
		return 0, false
	}
	l, ok := na.LinkTo(b)
	if !ok {
		return 0, false
	}
	return l.Capacity()
}

// RemoveNode deletes name from the graph and scrubs both halves of every
// adjacency it participated in.
func (g *Graph) RemoveNode(name string) error {
	n, ok := g.nodes[name]
	if !ok {
		return fmt.Errorf("core: RemoveNode(%s): %w", name, ErrNodeNotFound)
	}

	for _, peer := range append([]string(nil), n.Neighbors...) {
		if pn, ok := g.nodes[peer]; ok {
			pn.removeNeighbor(name)
		}
	}

	delete(g.nodes, name)
	return nil
}

// ClearActive clears every node's active-HPA flag. Propagation state
// (HPAs and their Used flags) is left untouched, matching the source's
// clearSelectedIDs, which only resets selection, not propagation.
func (g *Graph) ClearActive() {
	for _, n := range g.nodes {
		n.ClearActive()
	}
}
