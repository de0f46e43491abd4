package forecast_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"prodsched/internal/forecast"
	"prodsched/internal/model"
)

// CSV layout matches LoadWeeklyCSV: header row lists product names as
// columns, each following row is one week's targets across products.

type ForecastSuite struct {
	suite.Suite
}

func TestForecastSuite(t *testing.T) {
	suite.Run(t, new(ForecastSuite))
}

func (s *ForecastSuite) writeCSV(body string) string {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "forecast.csv")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o644))
	return path
}

func (s *ForecastSuite) TestLoadWeeklyCSVFiveRows() {
	body := "A\n10\n20\n30\n40\n50\n"
	raw, err := forecast.LoadWeeklyCSV(s.writeCSV(body))
	s.Require().NoError(err)
	s.Equal([]string{"A"}, raw.Products)
	s.Equal([5]float64{10, 20, 30, 40, 50}, raw.Weekly["A"])
}

func (s *ForecastSuite) TestLoadWeeklyCSVMalformed() {
	body := "A\nnotanumber\n"
	_, err := forecast.LoadWeeklyCSV(s.writeCSV(body))
	s.ErrorIs(err, model.ErrMalformedForecast)
}

func (s *ForecastSuite) TestEnsureInterpolatedGuardsRawForecast() {
	err := forecast.EnsureInterpolated(nil)
	s.ErrorIs(err, model.ErrForecastNotInterpolated)
}

func (s *ForecastSuite) TestInterpolateZeroDemandCurveIsAllZero() {
	body := "A\n0\n0\n0\n0\n0\n"
	raw, err := forecast.LoadWeeklyCSV(s.writeCSV(body))
	s.Require().NoError(err)

	fc, err := forecast.NewInterpolator().Interpolate(raw)
	s.Require().NoError(err)
	s.Require().NoError(forecast.EnsureInterpolated(fc))

	id, ok := fc.Products().ID("A")
	s.Require().True(ok)
	curve := fc.Curve(id)
	s.Len(curve, model.Horizon)
	for _, v := range curve {
		s.Equal(0.0, v)
	}
}

// TestInterpolateCumulativeIsNonDecreasing checks the curve the
// interpolator produces never goes backwards (spec.md §4.1: D[p] is a
// cumulative target).
func (s *ForecastSuite) TestInterpolateCumulativeIsNonDecreasing() {
	body := "A\n10\n20\n30\n40\n50\n"
	raw, err := forecast.LoadWeeklyCSV(s.writeCSV(body))
	s.Require().NoError(err)

	fc, err := forecast.NewInterpolator().Interpolate(raw)
	s.Require().NoError(err)

	id, _ := fc.Products().ID("A")
	curve := fc.Curve(id)
	for i := 1; i < len(curve); i++ {
		s.GreaterOrEqual(curve[i], curve[i-1])
	}
	s.Equal(150.0, curve[len(curve)-1])
}

func (s *ForecastSuite) TestLoadWeeklyCSVFourRowsPrependsImplicitZeroWeek() {
	bodyFour := "A\n10\n20\n30\n40\n"
	rawFour, err := forecast.LoadWeeklyCSV(s.writeCSV(bodyFour))
	s.Require().NoError(err)
	s.Equal([5]float64{0, 10, 20, 30, 40}, rawFour.Weekly["A"])
}
