package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"prodsched/internal/config"
	"prodsched/internal/model"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestBuildShiftMaskBuiltins() {
	mask, err := config.BuildShiftMask("null", nil)
	s.Require().NoError(err)
	for _, v := range mask {
		s.Equal(0.0, v)
	}

	mask, err = config.BuildShiftMask("6-2", nil)
	s.Require().NoError(err)
	s.Equal(1.0, mask[6])  // Monday 06:00
	s.Equal(0.0, mask[14]) // Monday 14:00, outside the 6-2 window
	s.Equal(0.0, mask[5*24+6]) // Saturday: not a production day
}

func (s *ConfigSuite) TestBuildShiftMaskUnknown() {
	_, err := config.BuildShiftMask("not-a-pattern", nil)
	s.ErrorIs(err, model.ErrUnknownShiftPattern)
}

func (s *ConfigSuite) TestBuildShiftMaskCustomRejectsWrongLength() {
	custom := map[string]config.WeeklyPattern{
		"bad": {0: make([]float64, 10)},
	}
	_, err := config.BuildShiftMask("bad", custom)
	s.Error(err)
}

func (s *ConfigSuite) writeYAML(body string) string {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o644))
	return path
}

func (s *ConfigSuite) TestLoadValidatesShiftPatternsAndStats() {
	body := `
machine_stats:
  1:
    ideal_run_rate: 10
machines:
  1:
    shift_pattern: "6-2"
    products: ["A"]
solver:
  iterations: 100
  temperature: 50
  cooling_rate: 0.99
`
	cfg, err := config.Load(s.writeYAML(body))
	s.Require().NoError(err)
	s.Equal(100, cfg.Solver.Iterations)

	params := cfg.SolverParams()
	s.Equal(100, params.Iterations)
	s.Equal(8, params.MinSwapHours) // default applied
}

func (s *ConfigSuite) TestLoadRejectsMissingStatsEntry() {
	body := `
machine_stats: {}
machines:
  1:
    shift_pattern: "null"
    products: ["A"]
`
	_, err := config.Load(s.writeYAML(body))
	s.Error(err)
}

func (s *ConfigSuite) TestBuildFleetAssignsOnlyKnownProducts() {
	body := `
machine_stats:
  1:
    ideal_run_rate: 10
machines:
  1:
    shift_pattern: "null"
    products: ["A", "B"]
`
	cfg, err := config.Load(s.writeYAML(body))
	s.Require().NoError(err)

	table, err := model.NewProductTable([]string{"A"})
	s.Require().NoError(err)

	fleet, err := cfg.BuildFleet(table)
	s.Require().NoError(err)

	m, ok := fleet.Get(1)
	s.Require().True(ok)
	aID, _ := table.ID("A")
	s.True(m.Produces(aID))
}
