package solver

import (
	"prodsched/internal/forecast"
	"prodsched/internal/model"
)

// Solution is the mutable state the AnnealingEngine walks through move
// by move. Schedule[m] has length model.EnvelopeLength (one entry per
// hour the machine can be producing). Production[p] and the forecast
// curve it is compared against both have length model.Horizon — one
// more than Schedule, since a cumulative curve needs a value "before
// hour 0" as well as one after every hour (spec.md §9 documents this
// off-by-one between E[m]/S[m] and D[p]/Q[p]).
type Solution struct {
	Schedule   map[int][]model.Assignment
	Production map[model.ProductID]forecast.DemandCurve
	Cost       map[model.ProductID]float64
	Total      float64
}

func newSolution(p *Problem) *Solution {
	sol := &Solution{
		Schedule:   make(map[int][]model.Assignment, p.Fleet.Len()),
		Production: make(map[model.ProductID]forecast.DemandCurve, p.Forecast.Products().Len()),
		Cost:       make(map[model.ProductID]float64, p.Forecast.Products().Len()),
	}
	for _, m := range p.Fleet.Machines() {
		sched := make([]model.Assignment, model.EnvelopeLength)
		for i := range sched {
			sched[i] = model.Idle()
		}
		sol.Schedule[m.ID] = sched
	}
	for _, id := range p.Forecast.Products().All() {
		sol.Production[id] = make(forecast.DemandCurve, model.Horizon)
	}
	return sol
}

// Recompute rebuilds Production, Cost, and Total from scratch off the
// current Schedule. BuildInitial calls this once to establish the
// starting cost; the AnnealingEngine never calls it again, since
// DeltaEvaluator keeps the three in sync incrementally. Exported so
// tests can cross-check the incremental path against a from-scratch
// recompute.
func (sol *Solution) Recompute(p *Problem) {
	for id := range sol.Production {
		curve := make(forecast.DemandCurve, model.Horizon)
		for mid, sched := range sol.Schedule {
			env := p.Envelopes[mid]
			for t, a := range sched {
				prod, ok := a.Product()
				if !ok || prod != id {
					continue
				}
				for k := t + 1; k < model.Horizon; k++ {
					curve[k] += env[t]
				}
			}
		}
		sol.Production[id] = curve
		sol.Cost[id] = costOf(p, id, curve)
	}
	sol.Total = 0
	for _, c := range sol.Cost {
		sol.Total += c
	}
}

// fillBlock writes target into Schedule[machineID][start:end]. Every
// block write is uniform across its whole range — InitialSolutionBuilder
// and the move generator both only ever write whole swap-site blocks —
// so DeltaEvaluator can read Schedule[machineID][start] and trust it
// describes every hour in the block.
func (sol *Solution) fillBlock(machineID, start, end int, target model.Assignment) {
	sched := sol.Schedule[machineID]
	for t := start; t < end; t++ {
		sched[t] = target
	}
}
