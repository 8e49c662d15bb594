package core

import "sort"

// PruneGraph removes dead virtual leaves in two fixed sweeps (§4.2)
// and returns the identities removed, sweep 1 first, then sweep 2. Sweeps
// are not iterated to a fixpoint: each sweep operates on the snapshot
// taken at its own start.
func (g *Graph) PruneGraph() []string {
	var sweep1, sweep2 []string

	for id, n := range g.nodes {
		if n.Variant == NodeVirtual &&
			id != g.root &&
			len(n.Links) == 1 &&
			n.Links[0].Variant == LinkSwitch {
			sweep1 = append(sweep1, id)
		}
	}
	sort.Strings(sweep1)

	for _, id := range sweep1 {
		if swID, ok := g.FindSwitchID(id); ok {
			_ = g.SetSwitchConfig(swID, StateOpen, true)
		}
	}
	for _, id := range sweep1 {
		_ = g.RemoveNode(id)
	}

	for id, n := range g.nodes {
		if n.Variant == NodeVirtual &&
			len(n.Links) == 1 &&
			n.Links[0].Variant == LinkNormal {
			sweep2 = append(sweep2, id)
		}
	}
	sort.Strings(sweep2)
	for _, id := range sweep2 {
		_ = g.RemoveNode(id)
	}

	return append(sweep1, sweep2...)
}
