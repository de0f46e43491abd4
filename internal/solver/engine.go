package solver

import (
	"math"

	"prodsched/internal/rng"
)

// TraceEntry records one iteration's acceptance decision, for callers
// that want to inspect convergence (spec.md §5: "the engine should
// expose enough of its run to plot cost over time").
type TraceEntry struct {
	Iteration int
	DeltaJ    float64
	Total     float64
	Accepted  bool
	Temperature float64
}

// AnnealingEngine runs the Metropolis loop over a Problem (spec.md
// §4.6): build an initial solution, then repeatedly propose a move,
// accept it unconditionally if it improves cost, or accept it with
// probability exp((-deltaJ/J)*100/T + 1e-5) otherwise, cooling T every
// iteration.
type AnnealingEngine struct {
	delta *DeltaEvaluator
}

// NewAnnealingEngine returns an AnnealingEngine.
func NewAnnealingEngine() *AnnealingEngine {
	return &AnnealingEngine{delta: NewDeltaEvaluator()}
}

// Run executes Params.Iterations moves against p, seeded by
// Params.Seed, and returns the final Solution plus its per-iteration
// trace. The acceptance formula is reproduced exactly as specified,
// including the constant +1e-5 term and the division by the solution's
// current total cost J — not "fixed" to avoid a division by zero. When
// J is 0, a worsening move gives an exponent of -Inf and a probability
// of 0, so a zero-cost solution rejects every move that raises its cost.
func (e *AnnealingEngine) Run(p *Problem) (*Solution, []TraceEntry) {
	r := rng.New(p.Params.Seed)
	sol := BuildInitial(p, r)

	moves, dice := Generate(p, r)
	trace := make([]TraceEntry, len(moves))

	temperature := p.Params.Temperature
	coolingRate := p.Params.CoolingRate

	for i, mv := range moves {
		d := e.delta.Evaluate(p, sol, mv)
		accept := d.deltaJ <= 0
		if !accept && mv.StartIndex >= 0 {
			accept = dice[i] < acceptanceProbability(d.deltaJ, sol.Total, temperature)
		}
		if accept {
			e.delta.Apply(sol, d)
		}

		trace[i] = TraceEntry{
			Iteration:   i,
			DeltaJ:      d.deltaJ,
			Total:       sol.Total,
			Accepted:    accept,
			Temperature: temperature,
		}

		temperature *= coolingRate
	}

	return sol, trace
}

// acceptanceProbability is exp((-deltaJ/J)*100/T + 1e-5), verbatim.
func acceptanceProbability(deltaJ, total, temperature float64) float64 {
	return math.Exp((-deltaJ/total)*100/temperature + 1e-5)
}
