package main

import (
	"flag"
	"fmt"

	"prodsched/internal/config"
	"prodsched/internal/forecast"
	"prodsched/internal/solver"
)

// Demo:
// - Load a YAML config and a weekly-forecast CSV
// - Build the Problem (envelopes, swap sites, demand curves)
// - Run the annealing engine for a handful of iterations to show how
//   the pieces fit together
func main() {
	cfgPath := flag.String("config", "examples/config.yaml", "Path to YAML config")
	forecastPath := flag.String("forecast", "examples/forecast.csv", "Path to weekly-forecast CSV")
	n := flag.Int("n", 12, "Number of trace rows to print")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	raw, err := forecast.LoadWeeklyCSV(*forecastPath)
	if err != nil {
		panic(err)
	}
	fc, err := forecast.NewInterpolator().Interpolate(raw)
	if err != nil {
		panic(err)
	}

	fleet, err := cfg.BuildFleet(fc.Products())
	if err != nil {
		panic(err)
	}

	problem, err := solver.NewProblem(fleet, fc, cfg.SolverParams())
	if err != nil {
		panic(err)
	}

	fmt.Printf("Loaded %d machines, %d products\n", problem.Fleet.Len(), fc.Products().Len())
	fmt.Printf("Iterations=%d Temperature=%.2f CoolingRate=%.4f\n\n",
		problem.Params.Iterations, problem.Params.Temperature, problem.Params.CoolingRate)

	engine := solver.NewAnnealingEngine()
	sol, trace := engine.Run(problem)

	for i := 0; i < min(*n, len(trace)); i++ {
		t := trace[i]
		fmt.Printf("iter=%-6d deltaJ=%10.3f total=%12.3f accepted=%-5v T=%8.3f\n",
			t.Iteration, t.DeltaJ, t.Total, t.Accepted, t.Temperature)
	}

	fmt.Printf("\nDone. Total cost=%.2f\n", sol.Total)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
