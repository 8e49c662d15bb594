package core

import "sort"

// HPA (Hierarchical Path Address) is an immutable, loop-free path from the
// root to its owning node, plus the set of switch links it transits.
//
// Invariants: Path[0] is the root, Path[len(Path)-1] is the owning node,
// every entry in Path is distinct, and DependsOn is a subset of the
// switch IDs lying on Path.
type HPA struct {
	Path      []string
	DependsOn map[int]struct{}
	Used      bool
}

// NewRootHPA returns the root's initial HPA: just itself, no dependencies,
// unused. Propagation seeds the root node with exactly this value.
func NewRootHPA(root string) *HPA {
	return &HPA{
		Path:      []string{root},
		DependsOn: make(map[int]struct{}),
	}
}

// Owner returns the node that owns this HPA (the last path entry).
func (h *HPA) Owner() string {
	return h.Path[len(h.Path)-1]
}

// Root returns the root node (the first path entry).
func (h *HPA) Root() string {
	return h.Path[0]
}

// NextHop returns the second-to-last path entry (the owner's upstream
// neighbor toward the root), or ("", false) if the HPA is just the root.
func (h *HPA) NextHop() (string, bool) {
	if len(h.Path) < 2 {
		return "", false
	}
	return h.Path[len(h.Path)-2], true
}

// Contains reports whether id appears anywhere on the path.
func (h *HPA) Contains(id string) bool {
	for _, p := range h.Path {
		if p == id {
			return true
		}
	}
	return false
}

// Extend returns a new HPA with next appended to the path and, if
// switchID >= 0, that switch ID added to the dependency set. The
// receiver is never mutated.
func (h *HPA) Extend(next string, switchID int) *HPA {
	path := make([]string, len(h.Path)+1)
	copy(path, h.Path)
	path[len(h.Path)] = next

	deps := make(map[int]struct{}, len(h.DependsOn)+1)
	for id := range h.DependsOn {
		deps[id] = struct{}{}
	}
	if switchID >= 0 {
		deps[switchID] = struct{}{}
	}

	return &HPA{Path: path, DependsOn: deps}
}

// DependsOnSorted returns the dependency set as an ascending, deterministic
// slice of switch IDs.
func (h *HPA) DependsOnSorted() []int {
	out := make([]int, 0, len(h.DependsOn))
	for id := range h.DependsOn {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// clone returns a deep copy of h.
func (h *HPA) clone() *HPA {
	path := make([]string, len(h.Path))
	copy(path, h.Path)
	deps := make(map[int]struct{}, len(h.DependsOn))
	for id := range h.DependsOn {
		deps[id] = struct{}{}
	}
	return &HPA{Path: path, DependsOn: deps, Used: h.Used}
}
