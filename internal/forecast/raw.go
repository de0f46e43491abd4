// Package forecast implements the ForecastInterpolator (spec.md §4.1):
// weekly sales targets in, an hourly cumulative demand curve per
// product out. CSV ingestion of the weekly targets is the spec's
// explicitly out-of-scope "tabular file reader" collaborator; we still
// implement it end-to-end since this module specifies its interface.
package forecast

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"prodsched/internal/model"
)

// weeksPerForecast is the number of real weekly targets a forecast
// carries before the interpolator's own zero-week padding (spec.md
// §4.1: "5 weekly targets, possibly zero").
const weeksPerForecast = 5

// RawForecast is a product -> weekly-targets mapping, not yet
// interpolated. It is a distinct type from InterpolatedForecast so
// that "forecast must be interpolated before use" is enforced by the
// type system at almost every call site (spec.md §9, "Supplemented
// features": original_source/problem.py's add_forecast guard).
type RawForecast struct {
	Products []string
	Weekly   map[string][weeksPerForecast]float64
}

// LoadWeeklyCSV reads a header row of product names followed by 4 or 5
// numeric rows of weekly targets (spec.md §6). A 4-row file is
// interpreted as weeks 1-4 with an implicit all-zero week 0 — the
// forecast has not yet started moving product at the time the file
// was produced. Non-numeric cells or ragged rows are
// ErrMalformedForecast and not recoverable.
func LoadWeeklyCSV(path string) (*RawForecast, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedForecast, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedForecast, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one data row", model.ErrMalformedForecast)
	}

	header := rows[0]
	dataRows := rows[1:]
	if len(dataRows) != 4 && len(dataRows) != weeksPerForecast {
		return nil, fmt.Errorf("%w: expected 4 or 5 weekly rows, got %d", model.ErrMalformedForecast, len(dataRows))
	}

	values := make([][]float64, len(dataRows))
	for i, row := range dataRows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d columns, header has %d", model.ErrMalformedForecast, i, len(row), len(header))
		}
		parsed := make([]float64, len(row))
		for j, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d (%q): %v", model.ErrMalformedForecast, i, j, cell, err)
			}
			parsed[j] = v
		}
		values[i] = parsed
	}
	if len(dataRows) == 4 {
		values = append([][]float64{make([]float64, len(header))}, values...)
	}

	weekly := make(map[string][weeksPerForecast]float64, len(header))
	for col, name := range header {
		var w [weeksPerForecast]float64
		for week := 0; week < weeksPerForecast; week++ {
			w[week] = values[week][col]
		}
		weekly[name] = w
	}

	return &RawForecast{Products: append([]string(nil), header...), Weekly: weekly}, nil
}
