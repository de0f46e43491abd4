package forecast

import (
	"fmt"

	"prodsched/internal/model"
)

// DemandCurve is D[p]: cumulative target units of one product by the
// end of each hour, length model.Horizon, non-decreasing.
type DemandCurve []float64

// InterpolatedForecast is the interpolator's output: D[p] for every
// product in the forecast. It can only be constructed by Interpolate,
// so "use before interpolation" (spec.md §7:
// forecast_not_interpolated) is a type error for any caller that
// threads RawForecast/InterpolatedForecast correctly; EnsureInterpolated
// is the runtime guard solver.NewProblem applies to the pointer it is
// handed, rejecting nil or a zero-value InterpolatedForecast.
type InterpolatedForecast struct {
	products *model.ProductTable
	curves   map[model.ProductID]DemandCurve
	ready    bool
}

// Products returns the product table the curves are indexed against.
func (f *InterpolatedForecast) Products() *model.ProductTable { return f.products }

// Curve returns D[p].
func (f *InterpolatedForecast) Curve(p model.ProductID) DemandCurve { return f.curves[p] }

// EnsureInterpolated is the guard described on InterpolatedForecast.
func EnsureInterpolated(f *InterpolatedForecast) error {
	if f == nil || !f.ready {
		return model.ErrForecastNotInterpolated
	}
	return nil
}

// Interpolator implements spec.md §4.1.
type Interpolator struct{}

// NewInterpolator returns a ForecastInterpolator. It carries no state.
func NewInterpolator() *Interpolator { return &Interpolator{} }

// Interpolate converts weekly targets into hourly cumulative demand
// curves for every product in raw.
func (*Interpolator) Interpolate(raw *RawForecast) (*InterpolatedForecast, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: nil forecast", model.ErrMalformedForecast)
	}
	table, err := model.NewProductTable(raw.Products)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedForecast, err)
	}

	curves := make(map[model.ProductID]DemandCurve, len(raw.Products))
	for _, name := range raw.Products {
		id, _ := table.ID(name)
		curves[id] = interpolateOne(raw.Weekly[name])
	}
	return &InterpolatedForecast{products: table, curves: curves, ready: true}, nil
}

// interpolateOne runs the §4.1 algorithm for a single product's five
// weekly targets: prepend and append a zero-target week (7 anchors),
// cumsum the anchor targets, then linearly interpolate hour-by-hour
// between consecutive anchors. The documented scaling factor is 1.0
// (spec.md §9) — no additional multiplier is applied.
func interpolateOne(weekly [weeksPerForecast]float64) DemandCurve {
	var anchorTargets [weeksPerForecast + 2]float64
	for i, v := range weekly {
		anchorTargets[i+1] = v
	}

	var cumAnchors [weeksPerForecast + 2]float64
	running := 0.0
	for i, v := range anchorTargets {
		running += v
		cumAnchors[i] = running
	}

	curve := make(DemandCurve, model.Horizon)
	lastAnchor := len(cumAnchors) - 1
	for k := 0; k < lastAnchor; k++ {
		startHour := k * model.HoursPerWeek
		endHour := (k + 1) * model.HoursPerWeek
		startVal, endVal := cumAnchors[k], cumAnchors[k+1]
		span := float64(endHour - startHour)
		for h := startHour; h < endHour; h++ {
			frac := float64(h-startHour) / span
			curve[h] = startVal + frac*(endVal-startVal)
		}
	}
	curve[model.Horizon-1] = cumAnchors[lastAnchor]
	return curve
}
