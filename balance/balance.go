package balance

import (
	"sort"

	"github.com/gridmesh/den2ne/core"
	"github.com/gridmesh/den2ne/selector"
)

// GlobalBalance drains every active HPA in descending path-length order,
// transferring load from each HPA's owner to its next hop under the
// given Params, and returns the total power that reached the root plus
// the accumulated absolute flux. The root's load is zeroed on return.
func GlobalBalance(g *core.Graph, active []selector.ActiveEntry, p Params) (totalBalance, absFlux float64, err error) {
	if g == nil {
		return 0, 0, ErrNilGraph
	}
	if len(active) == 0 {
		return 0, 0, ErrEmptyActiveList
	}

	queue := make([]selector.ActiveEntry, len(active))
	copy(queue, active)
	sort.SliceStable(queue, func(i, j int) bool {
		return len(queue[i].HPA.Path) > len(queue[j].HPA.Path)
	})

	for len(queue) > 1 {
		head := queue[0]
		queue = queue[1:]

		origin := g.MustNode(head.NodeID)
		dstID, ok := head.HPA.NextHop()
		if !ok {
			continue // root's own entry; only reachable once queue has drained to size 1
		}
		dst := g.MustNode(dstID)

		assignDirection(g, origin, dst)

		q := transferQuantity(g, origin, dst, p)
		dst.Load += q
		absFlux += abs(q)
		origin.Load = 0.0
	}

	root := g.MustNode(g.Root())
	totalBalance = root.Load
	root.Load = 0.0

	return totalBalance, absFlux, nil
}

// assignDirection sets both mirrored directions on the origin-dst link:
// "down" toward the leaf when origin is a net generator (negative load),
// "up" toward the root otherwise.
func assignDirection(g *core.Graph, origin, dst *core.Node) {
	if origin.Load < 0 {
		_ = g.SetLinkDirection(origin.ID, dst.ID, core.DirDown)
		_ = g.SetLinkDirection(dst.ID, origin.ID, core.DirUp)
	} else {
		_ = g.SetLinkDirection(origin.ID, dst.ID, core.DirUp)
		_ = g.SetLinkDirection(dst.ID, origin.ID, core.DirDown)
	}
}

// transferQuantity computes the power moved from origin to dst under p,
// replicating the source's literal cap predicate: a candidate quantity
// passes the cap check when the link has no capacity (SWITCH links) or
// when cap >= origin.Load, compared against the raw signed load (§4.5
// note b and §9's "capacity predicate sign").
func transferQuantity(g *core.Graph, origin, dst *core.Node, p Params) float64 {
	link, _ := origin.LinkTo(dst.ID)
	linkCap, hasCap := g.GetLinkCapacity(origin.ID, dst.ID)

	switch {
	case p.WithLosses && p.WithCap:
		candidate := origin.Load
		if hasCap && !(linkCap >= origin.Load) {
			candidate = linkCap
		}
		return candidate - link.GetLosses(candidate)

	case p.WithLosses:
		return origin.Load - link.GetLosses(origin.Load)

	case p.WithCap:
		if hasCap && !(linkCap >= origin.Load) {
			return linkCap
		}
		return origin.Load

	default:
		return origin.Load
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// AreEnclosedLoads reports whether any non-root node still carries
// non-zero load (§4.6).
func AreEnclosedLoads(g *core.Graph) bool {
	root := g.Root()
	for id, n := range g.Nodes() {
		if id != root && n.Load != 0 {
			return true
		}
	}
	return false
}
