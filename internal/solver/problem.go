// Package solver implements the annealing core: MoveGenerator,
// InitialSolutionBuilder, DeltaEvaluator, and the AnnealingEngine
// (spec.md §4.4-§4.7). This is the ~70% of the system the spec calls
// "the core"; everything else in the module exists to build a Problem
// and report on its Solution.
package solver

import (
	"fmt"

	"prodsched/internal/forecast"
	"prodsched/internal/model"
	"prodsched/internal/productivity"
	"prodsched/internal/swapsite"
)

// Problem bundles the immutable, once-built-per-run data: the demand
// curves, productivity envelopes, and swap-site sets (spec.md §3,
// "Lifecycle"). Nothing after NewProblem mutates it.
type Problem struct {
	Fleet     *model.Fleet
	Forecast  *forecast.InterpolatedForecast
	Envelopes map[int]productivity.Envelope
	Sites     map[int]swapsite.Sites
	Params    model.SolverParams
}

// NewProblem validates its inputs and builds E[m] and V[m] for every
// machine in fleet.
func NewProblem(fleet *model.Fleet, fc *forecast.InterpolatedForecast, params model.SolverParams) (*Problem, error) {
	if err := forecast.EnsureInterpolated(fc); err != nil {
		return nil, err
	}
	if fleet == nil || fleet.Len() == 0 {
		return nil, fmt.Errorf("solver: fleet has no machines")
	}
	if err := fleet.Validate(); err != nil {
		return nil, err
	}
	params = model.DefaultSolverParams(params)

	envelopes := productivity.BuildAll(fleet)
	sites := swapsite.BuildAll(envelopes, params.MinSwapHours)

	return &Problem{
		Fleet:     fleet,
		Forecast:  fc,
		Envelopes: envelopes,
		Sites:     sites,
		Params:    params,
	}, nil
}
