package solver

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteScheduleCSV writes one row per (machine, hour), grounded on the
// teacher's WriteLedgerCSV: a flat, spreadsheet-friendly export of the
// schedule this run produced.
func WriteScheduleCSV(path string, p *Problem, sol *Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"machine_id", "hour", "assignment"}); err != nil {
		return err
	}

	products := p.Forecast.Products()
	for _, m := range p.Fleet.Machines() {
		sched := sol.Schedule[m.ID]
		for hour, a := range sched {
			label := "IDLE"
			if id, ok := a.Product(); ok {
				label = products.Name(id)
			}
			row := []string{strconv.Itoa(m.ID), strconv.Itoa(hour), label}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

// WriteCostSummaryCSV writes one row per product: its final cumulative
// demand, final cumulative production, and total cost.
func WriteCostSummaryCSV(path string, p *Problem, sol *Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"product", "final_demand", "final_produced", "cost"}); err != nil {
		return err
	}

	products := p.Forecast.Products()
	for _, id := range products.All() {
		demand := p.Forecast.Curve(id)
		produced := sol.Production[id]
		row := []string{
			products.Name(id),
			fmtFloat(demand[len(demand)-1]),
			fmtFloat(produced[len(produced)-1]),
			fmtFloat(sol.Cost[id]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
