package topology_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmesh/den2ne/core"
	"github.com/gridmesh/den2ne/driver"
	"github.com/gridmesh/den2ne/topology"
)

func TestWriteSwitchConfig(t *testing.T) {
	g, err := core.BuildGraph(core.BuildInput{
		Root:   "1",
		Loads:  map[string]float64{"2": 1},
		Switch: []core.SwitchEdgeInput{{A: "1", B: "2", State: core.StateClosed}},
	})
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "swConfig_d15_c0.csv")
	require.NoError(t, topology.WriteSwitchConfig(path, g))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ID,Node A,Node B,State")
	assert.Contains(t, string(data), "0,1,2,closed")
}

func TestWriteOutdata(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "outdata_d15.csv")

	rows := map[string]struct {
		Ideal    *driver.RunResult
		WithLoss *driver.RunResult
		WithCap  *driver.RunResult
	}{
		"HOPS": {
			Ideal:    &driver.RunResult{TotalBalance: 4.0, AbsFlux: 4.0},
			WithLoss: &driver.RunResult{TotalBalance: 3.9, AbsFlux: 3.95},
			WithCap:  &driver.RunResult{TotalBalance: 3.8, AbsFlux: 3.85},
		},
	}

	require.NoError(t, topology.WriteOutdata(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "criterion,power_ideal,abs_ideal,power_wloss,abs_wloss,power_wlossCap,abs_wlossCap")
	assert.Contains(t, string(data), "HOPS,4.000,4.000,3.900,3.950,3.800,3.850")
}
