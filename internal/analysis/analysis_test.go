package analysis_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"prodsched/internal/analysis"
	"prodsched/internal/forecast"
	"prodsched/internal/model"
	"prodsched/internal/solver"
)

type AnalysisSuite struct {
	suite.Suite
}

func TestAnalysisSuite(t *testing.T) {
	suite.Run(t, new(AnalysisSuite))
}

func (s *AnalysisSuite) TestRankByShortfallOrdersWorstFirst() {
	var alwaysOn model.ShiftMask
	for i := range alwaysOn {
		alwaysOn[i] = 1
	}
	var neverOn model.ShiftMask

	fleet := model.NewFleet()
	s.Require().NoError(fleet.AddMachine(model.NewMachine(1, 50, alwaysOn)))
	s.Require().NoError(fleet.AssignProduct(1, 0)) // "Easy", well-served
	s.Require().NoError(fleet.AddMachine(model.NewMachine(2, 0, neverOn)))
	s.Require().NoError(fleet.AssignProduct(2, 1)) // "Hard", never produced

	raw := &forecast.RawForecast{
		Products: []string{"Easy", "Hard"},
		Weekly: map[string][5]float64{
			"Easy": {10, 10, 10, 10, 10},
			"Hard": {100, 100, 100, 100, 100},
		},
	}
	fc, err := forecast.NewInterpolator().Interpolate(raw)
	s.Require().NoError(err)

	problem, err := solver.NewProblem(fleet, fc, model.SolverParams{Iterations: 10, Temperature: 20, CoolingRate: 0.9})
	s.Require().NoError(err)

	engine := solver.NewAnnealingEngine()
	sol, _ := engine.Run(problem)

	ranked := analysis.RankByShortfall(problem, sol)
	s.Require().Len(ranked, 2)
	s.Equal("Hard", ranked[0].Name)
	s.Greater(ranked[0].FinalShortfall, ranked[1].FinalShortfall)
}

func (s *AnalysisSuite) TestComputeScarcityNoDemandIsZeroShortfall() {
	fleet := model.NewFleet()
	s.Require().NoError(fleet.AddMachine(model.NewMachine(1, 10, model.ShiftMask{})))
	s.Require().NoError(fleet.AssignProduct(1, 0))

	raw := &forecast.RawForecast{
		Products: []string{"A"},
		Weekly:   map[string][5]float64{"A": {0, 0, 0, 0, 0}},
	}
	fc, err := forecast.NewInterpolator().Interpolate(raw)
	s.Require().NoError(err)

	problem, err := solver.NewProblem(fleet, fc, model.SolverParams{Iterations: 5, Temperature: 10, CoolingRate: 0.9})
	s.Require().NoError(err)

	r := rand.New(rand.NewSource(1))
	sol := solver.BuildInitial(problem, r)

	scarcity := analysis.ComputeScarcity(problem, sol, fc.Products(), 0)
	s.Equal(0.0, scarcity.FinalShortfall)
}
