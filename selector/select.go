package selector

import (
	"github.com/gridmesh/den2ne/core"
)

// ActiveEntry pairs a node's owning identity with its currently active
// HPA, as produced by SelectBest or derived on demand by ActiveList.
type ActiveEntry struct {
	NodeID string
	HPA    *core.HPA
}

// SelectBest scores every node's owned HPAs under criterion c and marks
// the minimum-scoring one active (ties broken by lowest HPA index), then
// reconciles the switch registry to the union of active dependencies:
// every non-pruned switch is opened, then every switch reachable from an
// active HPA's dependency set is closed. It returns the resulting global
// active list.
//
// Callers must call g.ClearActive() first if re-selecting after a prior
// pass in the same driver iteration (§4.6).
func SelectBest(g *core.Graph, c Criterion, w Weights) ([]ActiveEntry, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	active := make([]ActiveEntry, 0, len(g.Nodes()))

	for id, n := range g.Nodes() {
		if len(n.HPAs) == 0 {
			continue // unreachable from root; surfaced by the driver as UnreachableLoad
		}

		bestIdx := 0
		bestScore := score(g, c, w, n.HPAs[0])
		for i := 1; i < len(n.HPAs); i++ {
			s := score(g, c, w, n.HPAs[i])
			if s < bestScore {
				bestScore = s
				bestIdx = i
			}
		}

		idx := bestIdx
		n.ActiveHPA = &idx
		active = append(active, ActiveEntry{NodeID: id, HPA: n.HPAs[bestIdx]})
	}

	reconcileSwitches(g, active)

	return active, nil
}

// ActiveList derives the global active-HPA list from each node's current
// ActiveHPA flag, per the §9 design note preferring a derived list over a
// separately maintained one.
func ActiveList(g *core.Graph) []ActiveEntry {
	out := make([]ActiveEntry, 0, len(g.Nodes()))
	for id, n := range g.Nodes() {
		if h := n.GetActiveHPA(); h != nil {
			out = append(out, ActiveEntry{NodeID: id, HPA: h})
		}
	}
	return out
}

// reconcileSwitches opens every non-pruned switch, then closes every
// switch in the union of dependency sets over the active HPAs (§4.4's
// final step, and testable property 6).
func reconcileSwitches(g *core.Graph, active []ActiveEntry) {
	union := make(map[int]struct{})
	for _, e := range active {
		for _, id := range e.HPA.DependsOnSorted() {
			union[id] = struct{}{}
		}
	}

	for i := 0; i < g.SwitchCount(); i++ {
		sw, ok := g.SwitchEntryAt(i)
		if !ok || sw.Pruned {
			continue
		}
		_ = g.SetSwitchConfig(i, core.StateOpen, false)
	}
	for id := range union {
		_ = g.SetSwitchConfig(id, core.StateClosed, false)
	}
}
