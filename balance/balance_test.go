package balance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmesh/den2ne/balance"
	"github.com/gridmesh/den2ne/core"
	"github.com/gridmesh/den2ne/propagate"
	"github.com/gridmesh/den2ne/selector"
)

func fiveNodeGraph(t *testing.T, loads map[string]float64) *core.Graph {
	t.Helper()
	g, err := core.BuildGraph(core.BuildInput{
		Root:  "1",
		Loads: loads,
		Normal: []core.NormalEdgeInput{
			{A: "1", B: "2", DistFt: 100, ConfID: 1},
			{A: "2", B: "3", DistFt: 100, ConfID: 1},
			{A: "2", B: "4", DistFt: 100, ConfID: 1},
			{A: "4", B: "5", DistFt: 100, ConfID: 1},
		},
		Configs: map[int]core.LinkConfig{1: {CoefR: 0.3, IMax: 400}},
	})
	require.NoError(t, err)
	_, err = propagate.Propagate(g, nil)
	require.NoError(t, err)
	return g
}

// TestGlobalBalance_S1_HopsIdeal mirrors §8 scenario S1. Flux counts every
// hop: 5→4 moves 1, 3→2 moves 1, 4→2 moves 2, 2→1 moves 4, so 8 in all.
func TestGlobalBalance_S1_HopsIdeal(t *testing.T) {
	g := fiveNodeGraph(t, map[string]float64{"1": 0, "2": 1, "3": 1, "4": 1, "5": 1})
	active, err := selector.SelectBest(g, selector.Hops, selector.DefaultWeights())
	require.NoError(t, err)

	total, flux, err := balance.GlobalBalance(g, active, balance.Params{})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, total, 1e-9)
	assert.InDelta(t, 8.0, flux, 1e-9)

	for id, n := range g.Nodes() {
		if id != "1" {
			assert.InDelta(t, 0.0, n.Load, 1e-9, "node %s should have drained", id)
		}
	}
}

// TestGlobalBalance_S2_GeneratorAtLeaf mirrors §8 scenario S2. The -2 kW
// crosses three hops (5→4, 4→2, 2→1), so the flux is 6, and the generator's
// own 5→4 link is marked down.
func TestGlobalBalance_S2_GeneratorAtLeaf(t *testing.T) {
	g := fiveNodeGraph(t, map[string]float64{"1": 0, "2": 0, "3": 0, "4": 0, "5": -2})
	active, err := selector.SelectBest(g, selector.Hops, selector.DefaultWeights())
	require.NoError(t, err)

	total, flux, err := balance.GlobalBalance(g, active, balance.Params{})
	require.NoError(t, err)
	assert.InDelta(t, -2.0, total, 1e-9)
	assert.InDelta(t, 6.0, flux, 1e-9)

	n5, _ := g.Node("5")
	l, ok := n5.LinkTo("4")
	require.True(t, ok)
	assert.Equal(t, core.DirDown, l.Direction)
}

func TestGlobalBalance_LossMonotonicity(t *testing.T) {
	loads := map[string]float64{"1": 0, "2": 1, "3": 1, "4": 1, "5": 1}

	gIdeal := fiveNodeGraph(t, loads)
	activeIdeal, err := selector.SelectBest(gIdeal, selector.Hops, selector.DefaultWeights())
	require.NoError(t, err)
	idealTotal, _, err := balance.GlobalBalance(gIdeal, activeIdeal, balance.Params{})
	require.NoError(t, err)

	gLoss := fiveNodeGraph(t, loads)
	activeLoss, err := selector.SelectBest(gLoss, selector.Hops, selector.DefaultWeights())
	require.NoError(t, err)
	lossTotal, _, err := balance.GlobalBalance(gLoss, activeLoss, balance.Params{WithLosses: true})
	require.NoError(t, err)

	assert.LessOrEqual(t, abs(lossTotal), abs(idealTotal))
}

func TestGlobalBalance_FluxNonNegative(t *testing.T) {
	g := fiveNodeGraph(t, map[string]float64{"1": 0, "2": -1, "3": 2, "4": 1, "5": -3})
	active, err := selector.SelectBest(g, selector.Hops, selector.DefaultWeights())
	require.NoError(t, err)

	total, flux, err := balance.GlobalBalance(g, active, balance.Params{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, flux, abs(total))
}

func TestAreEnclosedLoads(t *testing.T) {
	g := fiveNodeGraph(t, map[string]float64{"1": 0, "2": 1, "3": 0, "4": 0, "5": 0})
	assert.True(t, balance.AreEnclosedLoads(g))

	active, err := selector.SelectBest(g, selector.Hops, selector.DefaultWeights())
	require.NoError(t, err)
	_, _, err = balance.GlobalBalance(g, active, balance.Params{})
	require.NoError(t, err)

	assert.False(t, balance.AreEnclosedLoads(g))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
