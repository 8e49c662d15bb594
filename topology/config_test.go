package topology_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmesh/den2ne/core"
	"github.com/gridmesh/den2ne/topology"
)

func TestDefaultEngineConfig_MatchesCoreConstants(t *testing.T) {
	cfg := topology.DefaultEngineConfig()
	assert.Equal(t, float64(core.Voltage), cfg.Voltage)
	assert.Equal(t, core.IDSMax, cfg.IDSMax)
	assert.Equal(t, core.MaxIter, cfg.MaxIter)
	assert.Equal(t, 0.5, cfg.Alpha)
	assert.Equal(t, 0.5, cfg.Beta)
}

func TestLoadEngineConfig_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_iter: 5\nalpha: 0.8\n"), 0o644))

	cfg, err := topology.LoadEngineConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MaxIter)
	assert.Equal(t, 0.8, cfg.Alpha)
	assert.Equal(t, 0.5, cfg.Beta) // untouched by the partial file
	assert.Equal(t, core.IDSMax, cfg.IDSMax)
}

func TestEngineConfig_Weights(t *testing.T) {
	cfg := topology.EngineConfig{Alpha: 0.7, Beta: 0.3}
	w := cfg.Weights()
	assert.Equal(t, 0.7, w.Alpha)
	assert.Equal(t, 0.3, w.Beta)
}
