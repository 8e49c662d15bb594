package selector

import (
	"github.com/gridmesh/den2ne/core"
)

// totalDistance sums link.DistFt along h.Path (§4.4 DISTANCE).
func totalDistance(g *core.Graph, h *core.HPA) float64 {
	var total float64
	for i := 0; i < len(h.Path)-1; i++ {
		n := g.MustNode(h.Path[i])
		l, ok := n.LinkTo(h.Path[i+1])
		if !ok {
			continue
		}
		total += float64(l.DistFt)
	}
	return total
}

// totalLinkLosses simulates a unit trip from the owning node to the root
// carrying its own load, accumulating each hop's loss and depleting the
// carried load by it (§4.4 helper). Losses are non-negative.
func totalLinkLosses(g *core.Graph, h *core.HPA) float64 {
	owner := g.MustNode(h.Owner())
	currLoad := owner.Load
	var total float64

	for i := len(h.Path) - 1; i > 0; i-- {
		n := g.MustNode(h.Path[i])
		l, ok := n.LinkTo(h.Path[i-1])
		if !ok {
			continue
		}
		loss := l.GetLosses(currLoad)
		total += loss
		currLoad -= loss
	}

	return total
}

// power2zero returns owner.Load when the HPA is just the root, else
// |owner.Load + nextHop.Load| (§4.4 helper).
func power2zero(g *core.Graph, h *core.HPA) float64 {
	owner := g.MustNode(h.Owner())
	if len(h.Path) == 1 {
		return owner.Load
	}
	next, _ := h.NextHop()
	nextNode := g.MustNode(next)
	return abs(owner.Load + nextNode.Load)
}

// power2zeroWithLosses is power2zero but the owner→nextHop loss (computed
// on the owner's own load) is subtracted before taking the absolute value.
func power2zeroWithLosses(g *core.Graph, h *core.HPA) float64 {
	owner := g.MustNode(h.Owner())
	if len(h.Path) == 1 {
		return owner.Load
	}
	next, _ := h.NextHop()
	nextNode := g.MustNode(next)

	l, _ := owner.LinkTo(next)
	var loss float64
	if l != nil {
		loss = l.GetLosses(owner.Load)
	}
	return abs(nextNode.Load + owner.Load - loss)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// score returns the criterion's score for h (lower is better).
func score(g *core.Graph, c Criterion, w Weights, h *core.HPA) float64 {
	switch c {
	case Hops:
		return float64(len(h.Path))
	case LowLinksLosses:
		return w.Alpha*totalLinkLosses(g, h) + w.Beta*float64(len(h.Path))
	case PowerToZero:
		return w.Alpha*power2zero(g, h) + w.Beta*float64(len(h.Path))
	case PowerToZeroWithLosses:
		return power2zeroWithLosses(g, h)
	case Distance:
		return totalDistance(g, h)
	case LinksLosses:
		return totalLinkLosses(g, h)
	default:
		return float64(len(h.Path))
	}
}
