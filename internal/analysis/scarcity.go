// Package analysis summarizes a finished run: which products came out
// under-served, and by how much, grounded on the teacher's
// ArbitragePotential/RankByOracleProfit pattern (compute one summary
// struct per key, then sort it) generalized from ranking locations by
// oracle profit to ranking products by production shortfall.
package analysis

import (
	"sort"

	"prodsched/internal/model"
	"prodsched/internal/solver"
)

// Scarcity is a per-product summary of how the run treated it.
type Scarcity struct {
	Product model.ProductID
	Name    string

	PeakDemand    float64
	FinalProduced float64
	FinalShortfall float64

	MissedUnitHours float64
	OverUnitHours   float64
	Cost            float64
}

// ComputeScarcity builds a Scarcity summary for one product from a
// finished solution.
func ComputeScarcity(p *solver.Problem, sol *solver.Solution, products *model.ProductTable, id model.ProductID) Scarcity {
	demand := p.Forecast.Curve(id)
	produced := sol.Production[id]

	s := Scarcity{
		Product: id,
		Name:    products.Name(id),
		Cost:    sol.Cost[id],
	}
	if len(demand) > 0 {
		s.PeakDemand = demand[len(demand)-1]
	}
	if len(produced) > 0 {
		s.FinalProduced = produced[len(produced)-1]
	}
	s.FinalShortfall = s.PeakDemand - s.FinalProduced

	for t := range demand {
		d, q := demand[t], produced[t]
		if d > q {
			s.MissedUnitHours += d - q
		} else if q > d {
			s.OverUnitHours += q - d
		}
	}
	return s
}

// RankByShortfall computes a Scarcity for every product in the
// solution and sorts it most-underserved first.
func RankByShortfall(p *solver.Problem, sol *solver.Solution) []Scarcity {
	products := p.Forecast.Products()
	ids := products.All()

	out := make([]Scarcity, 0, len(ids))
	for _, id := range ids {
		out = append(out, ComputeScarcity(p, sol, products, id))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FinalShortfall > out[j].FinalShortfall
	})
	return out
}
