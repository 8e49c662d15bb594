package topology

import (
	"fmt"

	"github.com/gridmesh/den2ne/core"
)

// NormalEdge is one row of links.csv.
type NormalEdge struct {
	A, B   string
	DistFt int
	ConfID int
}

// SwitchEdge is one row of switches.csv.
type SwitchEdge struct {
	A, B  string
	State core.SwitchState
}

// LinkConfig is one row of a links_config*.csv file. Section is parsed
// but intentionally unused by the core (§3).
type LinkConfig struct {
	CoefR   float64
	IMax    float64
	Section string
}

// NodePosition is one row of node_positions.csv, kept for callers that
// render topology; never consumed by core or balance.
type NodePosition struct {
	X, Y float64
}

// Topology bundles every file a single (topology, root) run needs.
type Topology struct {
	// Loads maps node id to its per-timestep load vector, rounded to
	// 3 decimals on ingest.
	Loads map[string][]float64

	Normal    []NormalEdge
	Switches  []SwitchEdge
	Configs   map[int]LinkConfig
	Positions map[string]NodePosition
}

// BuildInput converts the topology at timestep delta into a
// core.BuildInput, stripping the Section field link configs carry (the
// core has no use for it) and validating that every referenced ConfID
// is present.
func (t *Topology) BuildInput(root string, delta int) (core.BuildInput, error) {
	loads := make(map[string]float64, len(t.Loads))
	for id, vec := range t.Loads {
		if delta < 0 || delta >= len(vec) {
			return core.BuildInput{}, fmt.Errorf("topology: timestep %d out of range for node %s: %w", delta, id, ErrMalformedRecord)
		}
		loads[id] = vec[delta]
	}

	configs := make(map[int]core.LinkConfig, len(t.Configs))
	for id, c := range t.Configs {
		configs[id] = core.LinkConfig{CoefR: c.CoefR, IMax: c.IMax}
	}

	normal := make([]core.NormalEdgeInput, len(t.Normal))
	for i, e := range t.Normal {
		if _, ok := t.Configs[e.ConfID]; !ok {
			return core.BuildInput{}, fmt.Errorf("topology: edge %s-%s references conf %d: %w", e.A, e.B, e.ConfID, ErrUnknownConfig)
		}
		normal[i] = core.NormalEdgeInput{A: e.A, B: e.B, DistFt: e.DistFt, ConfID: e.ConfID}
	}

	sw := make([]core.SwitchEdgeInput, len(t.Switches))
	for i, e := range t.Switches {
		sw[i] = core.SwitchEdgeInput{A: e.A, B: e.B, State: e.State}
	}

	return core.BuildInput{
		Root:    root,
		Loads:   loads,
		Normal:  normal,
		Switch:  sw,
		Configs: configs,
	}, nil
}
