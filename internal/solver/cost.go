package solver

import (
	"prodsched/internal/forecast"
	"prodsched/internal/model"
)

// costOf implements spec.md §4.7's per-product cost:
//
//	cost(p, Q_p) = missed_penalty * sum(max(D[p][t]-Q_p[t], 0))
//	             + over_penalty   * sum(max(Q_p[t]-D[p][t], 0))
func costOf(p *Problem, productID model.ProductID, curve forecast.DemandCurve) float64 {
	demand := p.Forecast.Curve(productID)
	missed, over := 0.0, 0.0
	for t := range curve {
		d := demand[t]
		q := curve[t]
		if d > q {
			missed += d - q
		} else if q > d {
			over += q - d
		}
	}
	return p.Params.MissedProductionPenalty*missed + p.Params.OverproductionPenalty*over
}
