package topology

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/gridmesh/den2ne/core"
	"github.com/gridmesh/den2ne/driver"
)

// WriteOutdata emits one outdata_d<delta>.csv row per RunResult, per
// §6's header: criterion, power_ideal, abs_ideal, power_wloss,
// abs_wloss, power_wlossCap, abs_wlossCap.
func WriteOutdata(path string, rows map[string]struct {
	Ideal    *driver.RunResult
	WithLoss *driver.RunResult
	WithCap  *driver.RunResult
}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("topology: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"criterion", "power_ideal", "abs_ideal",
		"power_wloss", "abs_wloss", "power_wlossCap", "abs_wlossCap",
	}); err != nil {
		return fmt.Errorf("topology: writing header to %s: %w", path, err)
	}

	for criterion, r := range rows {
		record := []string{
			criterion,
			formatFloat(r.Ideal.TotalBalance), formatFloat(r.Ideal.AbsFlux),
			formatFloat(r.WithLoss.TotalBalance), formatFloat(r.WithLoss.AbsFlux),
			formatFloat(r.WithCap.TotalBalance), formatFloat(r.WithCap.AbsFlux),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("topology: writing row to %s: %w", path, err)
		}
	}

	return nil
}

// WriteSwitchConfig emits a swConfig_d<delta>_c<criterion>.csv snapshot
// of the switch registry, per §6's header: ID, Node A, Node B, State.
func WriteSwitchConfig(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("topology: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Node A", "Node B", "State"}); err != nil {
		return fmt.Errorf("topology: writing header to %s: %w", path, err)
	}

	for i := 0; i < g.SwitchCount(); i++ {
		sw, ok := g.SwitchEntryAt(i)
		if !ok {
			continue
		}
		if err := w.Write([]string{strconv.Itoa(i), sw.A, sw.B, string(sw.State)}); err != nil {
			return fmt.Errorf("topology: writing row to %s: %w", path, err)
		}
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
