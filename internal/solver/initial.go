package solver

import (
	"math/rand"

	"prodsched/internal/model"
)

// BuildInitial implements the InitialSolutionBuilder (spec.md §4.5):
// for every machine, for every legal site, pick a uniform-random
// product from that machine's producible set (or idle, at
// Params.TurnOffPct) and paint the whole min-swap-hours block with it.
// Sampling order is machine-major, site-ascending, matching the fixed
// iteration order Machines()/Sites already guarantee, so the initial
// solution is reproducible under a fixed seed independent of move
// generation order.
func BuildInitial(p *Problem, r *rand.Rand) *Solution {
	sol := newSolution(p)
	turnOff := p.Params.TurnOffFraction()

	for _, m := range p.Fleet.Machines() {
		sites := p.Sites[m.ID]
		products := m.Products()
		for _, start := range sites {
			end := start + p.Params.MinSwapHours
			if end > len(p.Envelopes[m.ID]) {
				end = len(p.Envelopes[m.ID])
			}
			if r.Float64() < turnOff {
				continue // leave block idle
			}
			target := products[r.Intn(len(products))]
			sol.fillBlock(m.ID, start, end, model.Producing(target))
		}
	}

	sol.Recompute(p)
	return sol
}
