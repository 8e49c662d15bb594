package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmesh/den2ne/core"
	"github.com/gridmesh/den2ne/propagate"
)

func fiveNodeGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.BuildGraph(core.BuildInput{
		Root:  "1",
		Loads: map[string]float64{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
		Normal: []core.NormalEdgeInput{
			{A: "1", B: "2", DistFt: 100, ConfID: 1},
			{A: "2", B: "3", DistFt: 100, ConfID: 1},
			{A: "2", B: "4", DistFt: 100, ConfID: 1},
			{A: "4", B: "5", DistFt: 100, ConfID: 1},
		},
		Configs: map[int]core.LinkConfig{1: {CoefR: 0.3, IMax: 400}},
	})
	require.NoError(t, err)
	return g
}

func TestPropagate_LoopFreeAndRooted(t *testing.T) {
	g := fiveNodeGraph(t)
	_, err := propagate.Propagate(g, nil)
	require.NoError(t, err)

	for id, n := range g.Nodes() {
		require.NotEmpty(t, n.HPAs, "node %s should have at least one HPA", id)
		for _, h := range n.HPAs {
			assert.Equal(t, "1", h.Root())
			assert.Equal(t, id, h.Owner())
			seen := map[string]bool{}
			for _, p := range h.Path {
				assert.False(t, seen[p], "loop in HPA for %s: %v", id, h.Path)
				seen[p] = true
			}
		}
	}
}

func TestPropagate_IDSMaxCap(t *testing.T) {
	// A densely meshed 12-node graph with multiple cycles around a root.
	loads := map[string]float64{}
	var normal []core.NormalEdgeInput
	ids := []string{"r", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
	for _, id := range ids {
		loads[id] = 0
	}
	// Ring plus chords to create many alternative paths.
	for i := 0; i < len(ids); i++ {
		next := ids[(i+1)%len(ids)]
		normal = append(normal, core.NormalEdgeInput{A: ids[i], B: next, DistFt: 50, ConfID: 1})
	}
	for i := 0; i < len(ids); i += 2 {
		other := ids[(i+5)%len(ids)]
		normal = append(normal, core.NormalEdgeInput{A: ids[i], B: other, DistFt: 50, ConfID: 1})
	}

	g, err := core.BuildGraph(core.BuildInput{
		Root:    "r",
		Loads:   loads,
		Normal:  normal,
		Configs: map[int]core.LinkConfig{1: {CoefR: 0.3, IMax: 400}},
	})
	require.NoError(t, err)

	_, err = propagate.Propagate(g, nil)
	require.NoError(t, err)

	for id, n := range g.Nodes() {
		assert.GreaterOrEqual(t, len(n.HPAs), 1, "node %s", id)
		assert.LessOrEqual(t, len(n.HPAs), core.IDSMax, "node %s exceeded IDSMax", id)
	}
}

func TestPropagate_SwitchDependency(t *testing.T) {
	g, err := core.BuildGraph(core.BuildInput{
		Root:    "1",
		Loads:   map[string]float64{"1": 0, "2": 0, "3": 0},
		Switch:  []core.SwitchEdgeInput{{A: "1", B: "2", State: core.StateClosed}},
		Normal:  []core.NormalEdgeInput{{A: "2", B: "3", DistFt: 100, ConfID: 1}},
		Configs: map[int]core.LinkConfig{1: {CoefR: 0.3, IMax: 400}},
	})
	require.NoError(t, err)

	_, err = propagate.Propagate(g, nil)
	require.NoError(t, err)

	n2, ok := g.Node("2")
	require.True(t, ok)
	require.NotEmpty(t, n2.HPAs)
	assert.Contains(t, n2.HPAs[0].DependsOnSorted(), 0)
}
