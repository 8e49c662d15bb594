package core

// Snapshot returns an independently owned deep copy of the graph: nodes,
// links, HPAs, and the switch registry. The design note in §9
// recommends the driver clone the post-propagation graph once per
// criterion per timestep so each criterion sees the pristine flooded
// state; Snapshot is that primitive.
func (g *Graph) Snapshot() *Graph {
	out := &Graph{
		root:  g.root,
		nodes: make(map[string]*Node, len(g.nodes)),
	}

	for _, sw := range g.switches {
		cp := *sw
		out.switches = append(out.switches, &cp)
	}

	for id, n := range g.nodes {
		cp := &Node{
			ID:        n.ID,
			Variant:   n.Variant,
			Load:      n.Load,
			Neighbors: append([]string(nil), n.Neighbors...),
		}
		cp.Links = make([]*Link, len(n.Links))
		for i, l := range n.Links {
			ll := *l
			cp.Links[i] = &ll
		}
		cp.HPAs = make([]*HPA, len(n.HPAs))
		for i, h := range n.HPAs {
			cp.HPAs[i] = h.clone()
		}
		if n.ActiveHPA != nil {
			idx := *n.ActiveHPA
			cp.ActiveHPA = &idx
		}
		out.nodes[id] = cp
	}

	return out
}
