// Package config loads the static, on-disk configuration for a
// scheduling run: machine stats, shift patterns, machine-to-product
// assignment, and solver parameters. Shape and loading style mirror
// the teacher's internal/config/config.go (gopkg.in/yaml.v3, a
// Load/LoadUnchecked/Validate split).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"prodsched/internal/model"
)

// MachineStatsEntry is one machine's static stats (spec.md §6). Only
// IdealRunRate is consumed by the core solver; the rest are reserved
// for future downtime simulation and must round-trip without error.
type MachineStatsEntry struct {
	IdealRunRate        float64 `yaml:"ideal_run_rate"`
	Efficiency           float64 `yaml:"efficiency"`
	MinDowntimeSecs      int     `yaml:"min_downtime_secs"`
	DowntimeProbability  float64 `yaml:"downtime_probability"`
	RestartProbability   float64 `yaml:"restart_probability"`
}

// MachineEntry assigns a shift pattern and a producible-product list
// to a machine id.
type MachineEntry struct {
	ShiftPattern string   `yaml:"shift_pattern"`
	Products     []string `yaml:"products"`
}

// SolverConfig is the YAML shape of spec.md §6's per-run parameters.
type SolverConfig struct {
	Iterations               int     `yaml:"iterations"`
	Temperature               float64 `yaml:"temperature"`
	CoolingRate                float64 `yaml:"cooling_rate"`
	TurnOffPct                 float64 `yaml:"turn_off_pct"`
	MinSwapHours                int     `yaml:"min_swap_hours"`
	OverproductionPenalty       float64 `yaml:"overproduction_penalty"`
	MissedProductionPenalty     float64 `yaml:"missed_production_penalty"`
	Seed                         int64   `yaml:"seed"`
}

// Config is the on-disk configuration shape (YAML).
type Config struct {
	MachineStats  map[int]MachineStatsEntry `yaml:"machine_stats"`
	Machines      map[int]MachineEntry      `yaml:"machines"`
	ShiftPatterns map[string]WeeklyPattern  `yaml:"shift_patterns"`
	Solver        SolverConfig              `yaml:"solver"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads configuration without validating it. Useful for
// debugging/printing partial configs, same as the teacher's
// LoadUnchecked.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedForecast, err)
	}
	return &c, nil
}

// Validate checks that every referenced shift pattern resolves and
// that every machine has a stats entry. It does not build a Fleet
// (that's BuildFleet) so it can run before a product table exists.
func (c *Config) Validate() error {
	if len(c.MachineStats) == 0 {
		return fmt.Errorf("config: machine_stats is required")
	}
	if len(c.Machines) == 0 {
		return fmt.Errorf("config: machines is required")
	}
	for id, me := range c.Machines {
		if _, ok := c.MachineStats[id]; !ok {
			return fmt.Errorf("config: machine %d has no machine_stats entry", id)
		}
		if _, err := BuildShiftMask(me.ShiftPattern, c.ShiftPatterns); err != nil {
			return err
		}
	}
	return nil
}

// SolverParams converts the YAML solver config into model.SolverParams,
// applying the §6 defaults to any zero-valued field.
func (c *Config) SolverParams() model.SolverParams {
	return model.DefaultSolverParams(model.SolverParams{
		Iterations:               c.Solver.Iterations,
		Temperature:               c.Solver.Temperature,
		CoolingRate:                c.Solver.CoolingRate,
		TurnOffPct:                 c.Solver.TurnOffPct,
		MinSwapHours:                c.Solver.MinSwapHours,
		OverproductionPenalty:       c.Solver.OverproductionPenalty,
		MissedProductionPenalty:     c.Solver.MissedProductionPenalty,
		Seed:                         c.Solver.Seed,
	})
}
