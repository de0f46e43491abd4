package solver

import (
	"math/rand"

	"prodsched/internal/model"
)

// Move describes one candidate swap: repaint machine MachineID's block
// starting at StartIndex (length Params.MinSwapHours, clipped to the
// envelope's end) to Target. StartIndex is -1 for the placeholder
// "no legal site on this machine" move (spec.md §4.4, scenario where
// V[m] is empty for the sampled machine).
type Move struct {
	MachineID  int
	StartIndex int
	Target     model.Assignment
}

// Generate pre-samples Params.Iterations candidate moves and an
// equal number of Metropolis dice rolls, reading r in a single fixed
// order: first the machine index, then (if the machine has legal
// sites) the site index, the idle/producing coin flip, and — only when
// producing — the product index; finally the dice roll for that
// iteration. A machine with no legal sites still consumes exactly one
// dice roll, so the total number of r.* calls depends only on
// Params.Iterations and the fleet's site availability pattern, never
// on acceptance outcomes — required for spec.md §8 invariant 5
// (bit-for-bit reproducibility under a fixed seed).
func Generate(p *Problem, r *rand.Rand) (moves []Move, dice []float64) {
	machines := p.Fleet.Machines()
	n := p.Params.Iterations
	moves = make([]Move, n)
	dice = make([]float64, n)

	turnOff := p.Params.TurnOffFraction()

	for i := 0; i < n; i++ {
		mach := machines[r.Intn(len(machines))]
		sites := p.Sites[mach.ID]
		if len(sites) == 0 {
			moves[i] = Move{MachineID: mach.ID, StartIndex: -1}
			dice[i] = r.Float64()
			continue
		}

		start := sites[r.Intn(len(sites))]
		var target model.Assignment
		if r.Float64() < turnOff {
			target = model.Idle()
		} else {
			products := mach.Products()
			target = model.Producing(products[r.Intn(len(products))])
		}

		moves[i] = Move{MachineID: mach.ID, StartIndex: start, Target: target}
		dice[i] = r.Float64()
	}
	return moves, dice
}
