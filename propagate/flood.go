package propagate

import (
	"fmt"

	"github.com/gridmesh/den2ne/core"
)

// Propagate floods HPAs outward from g's root per §4.3 and returns
// the number of HPAs created by extension; the root's seed HPA is not
// counted.
//
// Algorithm: the root is seeded with a one-element HPA. A FIFO queue of
// node identities — which may contain the same node more than once — is
// drained one entry at a time. For each entry, every one of that node's
// currently-unused HPAs is extended across every neighbor, in neighbor
// insertion order, skipping a neighbor that would close a loop or that
// already holds core.IDSMax addresses. A SWITCH hop is recorded in the
// new HPA's dependency set only when both endpoints resolve to the same
// switch-registry index via core.Graph.FindSwitchID — see that method's
// doc for the literal, name-keyed (not edge-keyed) semantics this
// replicates from the source algorithm.
func Propagate(g *core.Graph, opts *Options) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	log := opts.logger()

	root, ok := g.Node(g.Root())
	if !ok {
		return 0, ErrRootNotFound
	}
	root.HPAs = append(root.HPAs, core.NewRootHPA(g.Root()))

	queue := []string{g.Root()}
	created := 0

	for len(queue) > 0 {
		curID := queue[0]
		cur, ok := g.Node(curID)
		if !ok {
			return created, fmt.Errorf("propagate: queued node %q vanished: %w", curID, ErrRootNotFound)
		}

		// Fix the set of HPAs to examine at entry; HPAs appended to cur
		// later in this same pass (which cannot happen unless cur is its
		// own neighbor) are not revisited until a future queue entry.
		n := len(cur.HPAs)
		for i := 0; i < n; i++ {
			h := cur.HPAs[i]
			if h.Used {
				continue
			}

			for _, peer := range cur.Neighbors {
				if h.Contains(peer) {
					continue // would close a loop
				}
				peerNode, ok := g.Node(peer)
				if !ok {
					continue
				}
				if len(peerNode.HPAs) >= core.IDSMax {
					continue
				}

				switchID := -1
				link, _ := cur.LinkTo(peer)
				if link != nil && link.Variant == core.LinkSwitch {
					curSw, curOK := g.FindSwitchID(curID)
					peerSw, peerOK := g.FindSwitchID(peer)
					if curOK && peerOK && curSw == peerSw {
						switchID = curSw
					}
				}

				next := h.Extend(peer, switchID)
				peerNode.HPAs = append(peerNode.HPAs, next)
				created++
				log.Trace("propagate: extended HPA", "from", curID, "to", peer, "len", len(next.Path))

				queue = append(queue, peer)
			}

			h.Used = true
		}

		queue = queue[1:]
	}

	return created, nil
}
