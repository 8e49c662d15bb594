package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/gridmesh/den2ne/balance"
	"github.com/gridmesh/den2ne/core"
	"github.com/gridmesh/den2ne/driver"
	"github.com/gridmesh/den2ne/inertia"
	"github.com/gridmesh/den2ne/propagate"
	"github.com/gridmesh/den2ne/selector"
	"github.com/gridmesh/den2ne/topology"
)

// RunCommand wires one (topology, root) run end to end: load the CSV
// topology directory, build the graph for one timestep, propagate HPAs,
// then select+balance under one criterion (or all six), optionally
// passing through the flow-inertia reconciliation pass first.
type RunCommand struct {
	Ui cli.Ui
}

func (c *RunCommand) Synopsis() string {
	return "Run the propagate/select/balance pipeline over a topology directory"
}

func (c *RunCommand) Help() string {
	helpText := `
Usage: den2ne run [options]

  Loads a topology directory (loads.csv, links.csv, links_config.csv,
  and optionally switches.csv / node_positions.csv), builds the graph
  for one root and timestep column, and runs the engine.

Options:

  -topology=PATH     Directory holding the topology CSVs (required).
  -root=ID           Root node identity (required).
  -delta=N           Timestep column index into loads.csv (default 0).
  -criterion=NAME    One of HOPS, LOW_LINKS_LOSSES, POWER_TO_ZERO,
                     POWER_TO_ZERO_WITH_LOSSES, DISTANCE, LINKS_LOSSES,
                     or ALL (default HOPS).
  -engine-config=PATH
                     YAML engine config; max_iter, alpha and beta
                     take effect, the physical constants do not.
  -losses            Account for line losses during balance transfer.
  -cap               Cap transfers at link ampacity during balance.
  -inertia           Run the flow-inertia reconciliation pass after
                     selection, before balancing (single pass, not
                     iterated — see inertia package docs).
  -out=DIR           Write outdata_d<delta>.csv and one
                     swConfig_d<delta>_c<criterion>.csv per criterion
                     into this directory.
  -log-level=LEVEL   trace, debug, info, warn, error (default warn).
`
	return strings.TrimSpace(helpText)
}

func (c *RunCommand) Run(args []string) int {
	var topoDir, root, criterionName, engineConfigPath, outDir, logLevel string
	var delta int
	var withLosses, withCap, withInertia bool

	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	flags.StringVar(&topoDir, "topology", "", "topology directory")
	flags.StringVar(&root, "root", "", "root node identity")
	flags.IntVar(&delta, "delta", 0, "timestep column index")
	flags.StringVar(&criterionName, "criterion", "HOPS", "selection criterion, or ALL")
	flags.StringVar(&engineConfigPath, "engine-config", "", "YAML engine config override")
	flags.BoolVar(&withLosses, "losses", false, "account for line losses during balance")
	flags.BoolVar(&withCap, "cap", false, "cap transfers at link ampacity")
	flags.BoolVar(&withInertia, "inertia", false, "run flow-inertia reconciliation")
	flags.StringVar(&outDir, "out", "", "directory to write outdata/switch-config CSVs")
	flags.StringVar(&logLevel, "log-level", "warn", "log level")
	flags.Usage = func() { c.Ui.Error(c.Help()) }
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if topoDir == "" || root == "" {
		c.Ui.Error("-topology and -root are required")
		return 1
	}

	log := hclog.New(&hclog.LoggerOptions{
		Name:   "den2ne",
		Level:  hclog.LevelFromString(logLevel),
		Output: os.Stderr,
	})

	criteria, err := resolveCriteria(criterionName)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	engineCfg := topology.DefaultEngineConfig()
	if engineConfigPath != "" {
		engineCfg, err = topology.LoadEngineConfig(engineConfigPath)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("loading engine config: %s", err))
			return 1
		}
	}

	loader := topology.NewLoader()
	topo, err := loader.Load(topoDir)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("loading topology: %s", err))
		return 1
	}

	input, err := topo.BuildInput(root, delta)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("building graph input: %s", err))
		return 1
	}

	baseGraph, err := core.BuildGraph(input)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("building graph: %s", err))
		return 1
	}
	baseGraph.PruneGraph()

	if _, err := propagate.Propagate(baseGraph, &propagate.Options{Logger: log.Named("propagate")}); err != nil {
		c.Ui.Error(fmt.Sprintf("propagating HPAs: %s", err))
		return 1
	}

	params := balance.Params{WithLosses: withLosses, WithCap: withCap}
	results := make(map[string]*driver.RunResult, len(criteria))

	for _, crit := range criteria {
		g := baseGraph.Snapshot()

		var res *driver.RunResult
		if withInertia {
			res, err = runOnePassWithInertia(g, crit, engineCfg.Weights(), params, log)
		} else {
			res, err = driver.Run(g, crit, &driver.Options{
				Logger:  log.Named("driver"),
				MaxIter: engineCfg.MaxIter,
				Weights: engineCfg.Weights(),
				Params:  params,
			})
		}
		if err != nil {
			c.Ui.Error(fmt.Sprintf("running criterion %s: %s", crit.String(), err))
			return 1
		}
		results[crit.String()] = res

		c.Ui.Output(fmt.Sprintf("%-28s iterations=%-3d total=%.3f absFlux=%.3f unreachable=%d",
			crit.String(), res.Iterations, res.TotalBalance, res.AbsFlux, len(res.Unreachable)))

		if outDir != "" {
			path := filepath.Join(outDir, fmt.Sprintf("swConfig_d%d_c%s.csv", delta, crit.String()))
			if err := topology.WriteSwitchConfig(path, g); err != nil {
				c.Ui.Error(fmt.Sprintf("writing switch config: %s", err))
				return 1
			}
		}
	}

	if outDir != "" {
		if err := writeOutdata(outDir, delta, results); err != nil {
			c.Ui.Error(fmt.Sprintf("writing outdata: %s", err))
			return 1
		}
	}

	return 0
}

// runOnePassWithInertia performs a single select→reconcile→balance pass
// rather than driver.Run's iterated loop — flow inertia is an opt-in,
// fragile pass (§4.7) not specified to compose with iteration.
func runOnePassWithInertia(g *core.Graph, crit selector.Criterion, w selector.Weights, p balance.Params, log hclog.Logger) (*driver.RunResult, error) {
	g.ClearActive()

	active, err := selector.SelectBest(g, crit, w)
	if err != nil {
		return nil, err
	}

	if err := inertia.Reconcile(g, &inertia.Options{Logger: log.Named("inertia")}); err != nil {
		return nil, err
	}
	active = selector.ActiveList(g)

	total, flux, err := balance.GlobalBalance(g, active, p)
	if err != nil {
		return nil, err
	}

	return &driver.RunResult{
		Criterion:    crit,
		Iterations:   1,
		TotalBalance: total,
		AbsFlux:      flux,
	}, nil
}

func resolveCriteria(name string) ([]selector.Criterion, error) {
	if strings.EqualFold(name, "ALL") {
		return []selector.Criterion{
			selector.Hops,
			selector.LowLinksLosses,
			selector.PowerToZero,
			selector.PowerToZeroWithLosses,
			selector.Distance,
			selector.LinksLosses,
		}, nil
	}

	all := []selector.Criterion{
		selector.Hops, selector.LowLinksLosses, selector.PowerToZero,
		selector.PowerToZeroWithLosses, selector.Distance, selector.LinksLosses,
	}
	for _, c := range all {
		if strings.EqualFold(c.String(), name) {
			return []selector.Criterion{c}, nil
		}
	}
	return nil, fmt.Errorf("unknown criterion %q", name)
}

// writeOutdata emits one row per criterion. The CLI runs a single
// losses/cap configuration per invocation (chosen via -losses/-cap), so
// all three outdata columns carry that one result; running the other
// two configurations is a second/third invocation against the same
// topology directory.
func writeOutdata(outDir string, delta int, results map[string]*driver.RunResult) error {
	rows := make(map[string]struct {
		Ideal    *driver.RunResult
		WithLoss *driver.RunResult
		WithCap  *driver.RunResult
	}, len(results))

	for name, res := range results {
		rows[name] = struct {
			Ideal    *driver.RunResult
			WithLoss *driver.RunResult
			WithCap  *driver.RunResult
		}{Ideal: res, WithLoss: res, WithCap: res}
	}

	path := filepath.Join(outDir, fmt.Sprintf("outdata_d%d.csv", delta))
	return topology.WriteOutdata(path, rows)
}
