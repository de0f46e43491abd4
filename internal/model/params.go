package model

// SolverParams holds the per-run tunables from spec.md §6.
type SolverParams struct {
	Iterations  int
	Temperature float64
	CoolingRate float64

	// TurnOffPct is a percentage (0-100); the solver divides by 100
	// internally (spec.md §6).
	TurnOffPct float64

	MinSwapHours int

	OverproductionPenalty    float64
	MissedProductionPenalty float64

	// Seed is the fixed RNG seed. 42 is the contract value for
	// deterministic testing (spec.md §4.4).
	Seed int64
}

// DefaultSolverParams fills in the documented defaults (spec.md §6)
// for every zero-valued field, leaving explicit overrides untouched.
func DefaultSolverParams(p SolverParams) SolverParams {
	if p.MinSwapHours == 0 {
		p.MinSwapHours = 8
	}
	if p.OverproductionPenalty == 0 {
		p.OverproductionPenalty = 1
	}
	if p.MissedProductionPenalty == 0 {
		p.MissedProductionPenalty = 15
	}
	if p.Seed == 0 {
		p.Seed = 42
	}
	return p
}

// TurnOffFraction is TurnOffPct/100, clamped to [0,1].
func (p SolverParams) TurnOffFraction() float64 {
	f := p.TurnOffPct / 100
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
