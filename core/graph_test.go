package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmesh/den2ne/core"
)

// fiveNodeInput is the §8 test topology: nodes 1..5, edges
// (1,2,100,1) (2,3,100,1) (2,4,100,1) (4,5,100,1), root=1,
// link-config 1 with coef_r=0.3, i_max=400.
func fiveNodeInput(loads map[string]float64) core.BuildInput {
	return core.BuildInput{
		Root:  "1",
		Loads: loads,
		Normal: []core.NormalEdgeInput{
			{A: "1", B: "2", DistFt: 100, ConfID: 1},
			{A: "2", B: "3", DistFt: 100, ConfID: 1},
			{A: "2", B: "4", DistFt: 100, ConfID: 1},
			{A: "4", B: "5", DistFt: 100, ConfID: 1},
		},
		Configs: map[int]core.LinkConfig{
			1: {CoefR: 0.3, IMax: 400},
		},
	}
}

func TestBuildGraph_AdjacencyPairing(t *testing.T) {
	loads := map[string]float64{"1": 0, "2": 1, "3": 1, "4": 1, "5": 1}
	g, err := core.BuildGraph(fiveNodeInput(loads))
	require.NoError(t, err)

	for id, n := range g.Nodes() {
		require.Len(t, n.Links, len(n.Neighbors))
		for i, peer := range n.Neighbors {
			assert.Equal(t, peer, n.Links[i].Peer, "node %s link %d", id, i)
			peerNode, ok := g.Node(peer)
			require.True(t, ok)
			_, ok = peerNode.LinkTo(id)
			assert.True(t, ok, "peer %s missing mirror link back to %s", peer, id)
		}
	}
}

func TestBuildGraph_VirtualNodes(t *testing.T) {
	loads := map[string]float64{"1": 0}
	g, err := core.BuildGraph(fiveNodeInput(loads))
	require.NoError(t, err)

	n2, ok := g.Node("2")
	require.True(t, ok)
	assert.Equal(t, core.NodeVirtual, n2.Variant)
	assert.Equal(t, 0.0, n2.Load)

	n1, ok := g.Node("1")
	require.True(t, ok)
	assert.Equal(t, core.NodeNormal, n1.Variant)
}

func TestBuildGraph_UnknownConfig(t *testing.T) {
	in := fiveNodeInput(map[string]float64{"1": 0})
	in.Configs = map[int]core.LinkConfig{} // drop config 1
	_, err := core.BuildGraph(in)
	require.ErrorIs(t, err, core.ErrUnknownConfig)
}

func TestSwitchMirror(t *testing.T) {
	in := fiveNodeInput(map[string]float64{"1": 0, "2": 0})
	in.Switch = []core.SwitchEdgeInput{{A: "2", B: "3", State: core.StateClosed}}
	g, err := core.BuildGraph(in)
	require.NoError(t, err)

	require.NoError(t, g.SetSwitchConfig(0, core.StateOpen, false))

	sw, ok := g.SwitchEntryAt(0)
	require.True(t, ok)
	assert.Equal(t, core.StateOpen, sw.State)

	n2, _ := g.Node("2")
	l, ok := n2.LinkTo("3")
	require.True(t, ok)
	assert.Equal(t, core.StateOpen, l.State)

	n3, _ := g.Node("3")
	l2, ok := n3.LinkTo("2")
	require.True(t, ok)
	assert.Equal(t, core.StateOpen, l2.State)
}

func TestPruneGraph_TwoSweeps(t *testing.T) {
	// 1=root -- switch -- V(virtual leaf, sw only) ; 1 -- normal -- V2(virtual leaf, normal only)
	in := core.BuildInput{
		Root:  "1",
		Loads: map[string]float64{"1": 0},
		Normal: []core.NormalEdgeInput{
			{A: "1", B: "v2", DistFt: 50, ConfID: 1},
		},
		Switch: []core.SwitchEdgeInput{
			{A: "1", B: "v1", State: core.StateClosed},
		},
		Configs: map[int]core.LinkConfig{1: {CoefR: 0.3, IMax: 400}},
	}
	g, err := core.BuildGraph(in)
	require.NoError(t, err)

	removed := g.PruneGraph()
	assert.ElementsMatch(t, []string{"v1", "v2"}, removed)

	_, ok := g.Node("v1")
	assert.False(t, ok)
	_, ok = g.Node("v2")
	assert.False(t, ok)

	sw, ok := g.SwitchEntryAt(0)
	require.True(t, ok)
	assert.True(t, sw.Pruned)
	assert.Equal(t, core.StateOpen, sw.State)
}

func TestBuildGraph_MissingRoot(t *testing.T) {
	in := core.BuildInput{
		Root:  "99",
		Loads: map[string]float64{"1": 0, "2": 1},
		Normal: []core.NormalEdgeInput{
			{A: "1", B: "2", DistFt: 100, ConfID: 1},
		},
		Configs: map[int]core.LinkConfig{1: {CoefR: 0.3, IMax: 400}},
	}
	_, err := core.BuildGraph(in)
	require.ErrorIs(t, err, core.ErrMissingRoot)
}

func TestFindSwitchID_FirstMatchWins(t *testing.T) {
	in := core.BuildInput{
		Root:  "1",
		Loads: map[string]float64{"1": 0, "2": 0, "3": 0},
		Switch: []core.SwitchEdgeInput{
			{A: "1", B: "2", State: core.StateClosed},
			{A: "1", B: "3", State: core.StateClosed},
		},
		Configs: map[int]core.LinkConfig{},
	}
	g, err := core.BuildGraph(in)
	require.NoError(t, err)

	idx, ok := g.FindSwitchID("1")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestSnapshot_Independence(t *testing.T) {
	g, err := core.BuildGraph(fiveNodeInput(map[string]float64{"1": 0, "2": 1}))
	require.NoError(t, err)

	clone := g.Snapshot()
	n2, _ := clone.Node("2")
	n2.Load = 999

	orig, _ := g.Node("2")
	assert.Equal(t, 1.0, orig.Load)
	assert.Equal(t, 999.0, n2.Load)
}
