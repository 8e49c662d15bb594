package topology

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gridmesh/den2ne/core"
	"github.com/gridmesh/den2ne/selector"
)

// EngineConfig holds the engine's physical constants and selector weights
// as loadable values (§3-EXP). The den2ne CLI applies MaxIter and the
// Alpha/Beta weights from it; Voltage, SwitchResistance and IDSMax are
// parsed and carried, but the engine computes with the fixed core
// constants. The zero value is not meaningful; use DefaultEngineConfig or
// LoadEngineConfig.
type EngineConfig struct {
	Voltage          float64 `yaml:"voltage"`
	SwitchResistance float64 `yaml:"switch_resistance"`
	IDSMax           int     `yaml:"ids_max"`
	MaxIter          int     `yaml:"max_iter"`
	Alpha            float64 `yaml:"alpha"`
	Beta             float64 `yaml:"beta"`
}

// DefaultEngineConfig mirrors the constants fixed by §6.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Voltage:          core.Voltage,
		SwitchResistance: core.SwitchResistance,
		IDSMax:           core.IDSMax,
		MaxIter:          core.MaxIter,
		Alpha:            selector.DefaultWeights().Alpha,
		Beta:             selector.DefaultWeights().Beta,
	}
}

// Weights projects the alpha/beta fields onto a selector.Weights value.
func (c EngineConfig) Weights() selector.Weights {
	return selector.Weights{Alpha: c.Alpha, Beta: c.Beta}
}

// LoadEngineConfig reads an EngineConfig from a YAML file, starting from
// DefaultEngineConfig so a partial file only overrides the fields it sets.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("topology: reading engine config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("topology: parsing engine config %s: %w", path, err)
	}

	return cfg, nil
}
