package core

// Node is a vertex in the distribution graph: identity, load, an ordered
// adjacency (Neighbors[i] and Links[i] always describe the same edge), and
// the HPAs owned by this node.
//
// Invariant: len(Neighbors) == len(Links), and Links[i].Peer == Neighbors[i]
// for every i. Mutations that touch one slice must touch the other.
type Node struct {
	ID      string
	Variant NodeVariant
	Load    float64

	Neighbors []string
	Links     []*Link

	HPAs      []*HPA
	ActiveHPA *int // index into HPAs; nil when no HPA is active
}

// newNode constructs an empty Node of the given variant and load.
func newNode(id string, variant NodeVariant, load float64) *Node {
	return &Node{
		ID:        id,
		Variant:   variant,
		Load:      load,
		Neighbors: make([]string, 0, 2),
		Links:     make([]*Link, 0, 2),
	}
}

// addAdjacency appends a neighbor/link pair, preserving the positional
// pairing invariant.
func (n *Node) addAdjacency(peer string, link *Link) {
	n.Neighbors = append(n.Neighbors, peer)
	n.Links = append(n.Links, link)
}

// indexOfNeighbor returns the index of peer in Neighbors, or (-1, false).
func (n *Node) indexOfNeighbor(peer string) (int, bool) {
	for i, id := range n.Neighbors {
		if id == peer {
			return i, true
		}
	}
	return -1, false
}

// LinkTo returns the Link record this node owns for the given peer.
func (n *Node) LinkTo(peer string) (*Link, bool) {
	i, ok := n.indexOfNeighbor(peer)
	if !ok {
		return nil, false
	}
	return n.Links[i], true
}

// removeNeighbor deletes the adjacency entry for peer, if present.
func (n *Node) removeNeighbor(peer string) {
	i, ok := n.indexOfNeighbor(peer)
	if !ok {
		return
	}
	n.Neighbors = append(n.Neighbors[:i], n.Neighbors[i+1:]...)
	n.Links = append(n.Links[:i], n.Links[i+1:]...)
}

// GetActiveHPA returns the node's currently active HPA, or nil if none is
// selected.
func (n *Node) GetActiveHPA() *HPA {
	if n.ActiveHPA == nil {
		return nil
	}
	return n.HPAs[*n.ActiveHPA]
}

// ClearActive clears this node's active-HPA flag. Propagation state
// (HPAs themselves and their Used flags) is untouched.
func (n *Node) ClearActive() {
	n.ActiveHPA = nil
}

// IndexOfHPAWithPrefix returns the index of the shortest owned HPA whose
// path contains every hop of prefix, or (-1, false) if none qualifies.
// This is the containment lookup of the flow-inertia branch walk (§4.7);
// inertia's walkBranch performs the same lookup inline and does not call
// this method.
func (n *Node) IndexOfHPAWithPrefix(prefix []string) (int, bool) {
	best := -1
	for i, h := range n.HPAs {
		if containsAll(h.Path, prefix) {
			if best == -1 || len(n.HPAs[i].Path) < len(n.HPAs[best].Path) {
				best = i
			}
		}
	}
	return best, best != -1
}

// IndexOfHPAExact returns the index of the owned HPA whose path is
// identical to prefix, or (-1, false). Used by the flow-inertia pass
// (§4.7) to find the HPA a downstream node expects an upstream node to
// be carrying.
func (n *Node) IndexOfHPAExact(prefix []string) (int, bool) {
	for i, h := range n.HPAs {
		if samePath(h.Path, prefix) {
			return i, true
		}
	}
	return -1, false
}

func samePath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsAll(haystack, needles []string) bool {
	for _, need := range needles {
		found := false
		for _, h := range haystack {
			if h == need {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
