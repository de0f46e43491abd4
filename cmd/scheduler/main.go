package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"prodsched/internal/analysis"
	"prodsched/internal/config"
	"prodsched/internal/forecast"
	"prodsched/internal/model"
	"prodsched/internal/solver"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "schedule":
		cmdSchedule(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	case "validate":
		cmdValidate(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  scheduler schedule --config examples/config.yaml --forecast examples/forecast.csv --out results/schedule.csv")
	fmt.Println("  scheduler rank --config examples/config.yaml --forecast examples/forecast.csv")
	fmt.Println("  scheduler validate --config examples/config.yaml --forecast examples/forecast.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - schedule writes one row per (machine, hour) with its final assignment")
	fmt.Println("  - rank prints products sorted by final production shortfall")
	fmt.Println("  - validate only loads and validates config+forecast, for exit-code scripting")
}

// exitForError maps a setup/load error to the exit code spec.md §6
// promises: 3 for an unrecognized shift pattern, 4 for a duplicate
// machine id, 2 for every other invalid-input failure (malformed
// forecast, missing files, failed cross-validation, ...).
func exitForError(err error) {
	switch {
	case errors.Is(err, model.ErrUnknownShiftPattern):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	case errors.Is(err, model.ErrDuplicateMachineID):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(4)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func cmdSchedule(args []string) {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	forecastPath := fs.String("forecast", "", "Path to weekly-forecast CSV")
	outPath := fs.String("out", "results/schedule.csv", "Output schedule CSV path")
	summaryPath := fs.String("summary", "", "Optional output cost-summary CSV path")
	seed := fs.Int64("seed", 0, "Optional: override the configured RNG seed (0 = use config)")
	_ = fs.Parse(args)

	if *cfgPath == "" || *forecastPath == "" {
		fmt.Println("--config and --forecast are required")
		os.Exit(2)
	}

	problem, err := loadProblem(*cfgPath, *forecastPath, *seed)
	if err != nil {
		exitForError(err)
	}

	engine := solver.NewAnnealingEngine()
	sol, trace := engine.Run(problem)

	accepted := 0
	for _, t := range trace {
		if t.Accepted {
			accepted++
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := solver.WriteScheduleCSV(*outPath, problem, sol); err != nil {
		panic(err)
	}
	if *summaryPath != "" {
		if err := os.MkdirAll(filepath.Dir(*summaryPath), 0o755); err != nil {
			panic(err)
		}
		if err := solver.WriteCostSummaryCSV(*summaryPath, problem, sol); err != nil {
			panic(err)
		}
	}

	fmt.Printf("Wrote schedule for %d machines to %s\n", problem.Fleet.Len(), *outPath)
	fmt.Printf("Total cost=%.2f Iterations=%d Accepted=%d\n", sol.Total, len(trace), accepted)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	forecastPath := fs.String("forecast", "", "Path to weekly-forecast CSV")
	seed := fs.Int64("seed", 0, "Optional: override the configured RNG seed (0 = use config)")
	_ = fs.Parse(args)

	if *cfgPath == "" || *forecastPath == "" {
		fmt.Println("--config and --forecast are required")
		os.Exit(2)
	}

	problem, err := loadProblem(*cfgPath, *forecastPath, *seed)
	if err != nil {
		exitForError(err)
	}

	engine := solver.NewAnnealingEngine()
	sol, _ := engine.Run(problem)

	ranked := analysis.RankByShortfall(problem, sol)
	fmt.Printf("%-4s %-20s %-12s %-12s %-12s\n", "rank", "product", "peak-demand", "final-prod", "shortfall")
	for i, r := range ranked {
		fmt.Printf("%-4d %-20s %-12.2f %-12.2f %-12.2f\n", i+1, r.Name, r.PeakDemand, r.FinalProduced, r.FinalShortfall)
	}
}

// cmdValidate only loads and cross-validates config+forecast and
// builds the Problem, without running the solver — for scripted
// config checks that care about the exit code (spec.md §6) and
// nothing else.
func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	forecastPath := fs.String("forecast", "", "Path to weekly-forecast CSV")
	_ = fs.Parse(args)

	if *cfgPath == "" || *forecastPath == "" {
		fmt.Println("--config and --forecast are required")
		os.Exit(2)
	}

	if _, err := loadProblem(*cfgPath, *forecastPath, 0); err != nil {
		exitForError(err)
	}

	fmt.Println("ok")
}

func loadProblem(cfgPath, forecastPath string, seedOverride int64) (*solver.Problem, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	raw, err := forecast.LoadWeeklyCSV(forecastPath)
	if err != nil {
		return nil, err
	}
	fc, err := forecast.NewInterpolator().Interpolate(raw)
	if err != nil {
		return nil, err
	}
	fleet, err := cfg.BuildFleet(fc.Products())
	if err != nil {
		return nil, err
	}

	params := cfg.SolverParams()
	if seedOverride != 0 {
		params.Seed = seedOverride
	}
	return solver.NewProblem(fleet, fc, params)
}
