package driver

import (
	"github.com/gridmesh/den2ne/balance"
	"github.com/gridmesh/den2ne/core"
	"github.com/gridmesh/den2ne/selector"
)

// Run repeats clear→select→balance on g under criterion c until no
// enclosed loads remain or MaxIter passes have elapsed (§4.6),
// accumulating the total root balance and absolute flux across every
// pass. Loads already present on g are drained in place; callers are
// responsible for resetting them from the external load table before
// each Run call (§3's "reset each timestep" lifecycle note).
func Run(g *core.Graph, c selector.Criterion, opts *Options) (*RunResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	log := opts.logger()
	maxIter := opts.maxIter()
	weights := opts.weights()
	params := opts.params()

	res := &RunResult{Criterion: c}

	for res.Iterations = 1; res.Iterations <= maxIter; res.Iterations++ {
		g.ClearActive()

		active, err := selector.SelectBest(g, c, weights)
		if err != nil {
			return res, err
		}

		total, flux, err := balance.GlobalBalance(g, active, params)
		if err != nil {
			return res, err
		}
		res.TotalBalance += total
		res.AbsFlux += flux

		log.Trace("driver: balance pass complete",
			"criterion", c.String(), "iteration", res.Iterations, "total", total, "flux", flux)

		if !balance.AreEnclosedLoads(g) {
			return res, nil
		}
	}

	res.Iterations = maxIter
	res.HitIterCap = true
	res.Unreachable = collectUnreachable(g)
	log.Warn("driver: iteration cap reached with enclosed loads remaining",
		"criterion", c.String(), "maxIter", maxIter, "unreachable", len(res.Unreachable))

	return res, nil
}

// collectUnreachable reports every non-root node still carrying residual
// load once the iteration cap has been hit.
func collectUnreachable(g *core.Graph) []UnreachableLoadError {
	root := g.Root()
	var out []UnreachableLoadError
	for id, n := range g.Nodes() {
		if id != root && n.Load != 0 {
			out = append(out, UnreachableLoadError{Node: id, ResidualKW: n.Load})
		}
	}
	return out
}
