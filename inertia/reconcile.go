package inertia

import (
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/gridmesh/den2ne/core"
)

// Reconcile runs the flow-inertia pass over g's currently active HPAs
// (as left by a prior selector.SelectBest call) and then iterates the
// coherence check until it settles or the repetition cap is hit.
func Reconcile(g *core.Graph, opts *Options) error {
	if g == nil {
		return ErrNilGraph
	}
	log := opts.logger()
	maxRep := opts.maxRepetitions()

	applyPass(g, longestActivePaths(g), log)

	for rep := 0; rep < maxRep; rep++ {
		toFix := incoherentActive(g)
		if len(toFix) == 0 {
			return nil
		}
		log.Trace("inertia: rechecking incoherent active HPAs", "count", len(toFix), "repetition", rep)
		applyPass(g, toFix, log)
	}

	return nil
}

// longestActivePaths returns every active HPA whose path length equals
// the longest active path length in the graph, mirroring the source's
// default seed when flowInertia is invoked without an explicit fix list.
func longestActivePaths(g *core.Graph) []*core.HPA {
	var all []*core.HPA
	maxLen := 0
	for _, n := range g.Nodes() {
		if h := n.GetActiveHPA(); h != nil {
			all = append(all, h)
			if len(h.Path) > maxLen {
				maxLen = len(h.Path)
			}
		}
	}
	out := make([]*core.HPA, 0, len(all))
	for _, h := range all {
		if len(h.Path) == maxLen {
			out = append(out, h)
		}
	}
	return out
}

// incoherentActive returns every active HPA whose next hop's own active
// HPA disagrees about where that next hop sits on the path (§4.7's
// IDsCheck self-check).
func incoherentActive(g *core.Graph) []*core.HPA {
	var out []*core.HPA
	for _, n := range g.Nodes() {
		h := n.GetActiveHPA()
		if h == nil {
			continue
		}
		next, ok := h.NextHop()
		if !ok {
			continue
		}
		nextNode, ok := g.Node(next)
		if !ok {
			continue
		}
		nextActive := nextNode.GetActiveHPA()
		if nextActive == nil {
			continue
		}
		if indexOf(nextActive.Path, next) > indexOf(h.Path, next) {
			out = append(out, h)
		}
	}
	return out
}

// applyPass processes each HPA in idsList from its second-to-last hop
// back to (but excluding) the root, swapping every upstream node whose
// active HPA does not exactly match the expected prefix, then walking
// that node's side branches onto the same inertia.
func applyPass(g *core.Graph, idsList []*core.HPA, log hclog.Logger) {
	for _, longest := range idsList {
		path := longest.Path
		for i := len(path) - 2; i >= 1; i-- {
			nextNode := g.MustNode(path[i])
			idx, ok := nextNode.IndexOfHPAExact(path[:i+1])
			if !ok {
				continue
			}
			if nextNode.ActiveHPA != nil && *nextNode.ActiveHPA == idx {
				continue // already carrying the expected HPA
			}

			expected := nextNode.HPAs[idx]
			swapActive(nextNode, idx, log)

			for _, neighbor := range nextNode.Neighbors {
				if containsStr(path, neighbor) {
					continue
				}
				walkBranch(g, nextNode, neighbor, expected, log)
			}
		}
	}
}

// walkBranch propagates inertia into the side branch rooted at start,
// swapping any node whose active HPA's view of nextNode's position
// disagrees with expected, and fanning out to that node's own neighbors
// when a swap occurs.
func walkBranch(g *core.Graph, nextNode *core.Node, start string, expected *core.HPA, log hclog.Logger) {
	queue := []string{start}
	attended := map[string]bool{nextNode.ID: true}

	for len(queue) > 0 {
		currID := queue[0]
		queue = queue[1:]
		if attended[currID] {
			continue
		}
		attended[currID] = true

		curr, ok := g.Node(currID)
		if !ok {
			continue
		}
		active := curr.GetActiveHPA()
		if active == nil || !active.Contains(expected.Owner()) {
			continue
		}

		mismatched := len(active.Path) <= len(expected.Path) ||
			indexOf(expected.Path, nextNode.ID) != indexOf(active.Path, nextNode.ID)
		if !mismatched {
			continue
		}

		var candidates []int
		for i, h := range curr.HPAs {
			if containsAllStr(h.Path, expected.Path) {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		sort.Slice(candidates, func(a, b int) bool {
			return len(curr.HPAs[candidates[a]].Path) < len(curr.HPAs[candidates[b]].Path)
		})
		swapActive(curr, candidates[0], log)

		for _, neighbor := range curr.Neighbors {
			if !attended[neighbor] {
				queue = append(queue, neighbor)
			}
		}
	}
}

func swapActive(n *core.Node, idx int, log hclog.Logger) {
	i := idx
	log.Trace("inertia: swapping active HPA", "node", n.ID, "newPath", n.HPAs[i].Path)
	n.ActiveHPA = &i
}

func indexOf(path []string, id string) int {
	for i, p := range path {
		if p == id {
			return i
		}
	}
	return -1
}

func containsStr(haystack []string, needle string) bool {
	return indexOf(haystack, needle) != -1
}

func containsAllStr(haystack, needles []string) bool {
	for _, needle := range needles {
		if !containsStr(haystack, needle) {
			return false
		}
	}
	return true
}
