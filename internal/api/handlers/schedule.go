package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prodsched/internal/api/models"
	"prodsched/internal/config"
	"prodsched/internal/forecast"
	"prodsched/internal/model"
	"prodsched/internal/solver"
)

// ScheduleHandler handles scheduling-run requests, grounded on the
// teacher's BacktestHandler (load inputs, run the engine, shape the
// response).
type ScheduleHandler struct{}

// NewScheduleHandler returns a ScheduleHandler.
func NewScheduleHandler() *ScheduleHandler { return &ScheduleHandler{} }

// RunSchedule handles POST /api/v1/schedule.
func (h *ScheduleHandler) RunSchedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	problem, err := buildProblem(req.ConfigPath, req.ForecastPath, req.Seed, req.Iterations)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	engine := solver.NewAnnealingEngine()
	sol, trace := engine.Run(problem)

	resp := models.ScheduleResponse{
		Status:        "completed",
		TotalCost:     sol.Total,
		CostByProduct: costByProductName(problem, sol),
		Iterations:    len(trace),
		AcceptedMoves: countAccepted(trace),
	}
	if req.IncludeSchedule {
		resp.Schedule = encodeSchedule(problem, sol)
	}
	if req.IncludeTrace {
		resp.Trace = encodeTrace(trace)
	}

	c.JSON(http.StatusOK, resp)
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{Error: models.ErrorDetail{Code: code, Message: message}})
}

// buildProblem loads config and forecast files and wires a
// solver.Problem from them, applying request-level overrides.
func buildProblem(configPath, forecastPath string, seed *int64, iterations int) (*solver.Problem, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	raw, err := forecast.LoadWeeklyCSV(forecastPath)
	if err != nil {
		return nil, err
	}
	interp := forecast.NewInterpolator()
	fc, err := interp.Interpolate(raw)
	if err != nil {
		return nil, err
	}
	fleet, err := cfg.BuildFleet(fc.Products())
	if err != nil {
		return nil, err
	}

	params := cfg.SolverParams()
	if seed != nil {
		params.Seed = *seed
	}
	if iterations > 0 {
		params.Iterations = iterations
	}

	return solver.NewProblem(fleet, fc, params)
}

func costByProductName(p *solver.Problem, sol *solver.Solution) map[string]float64 {
	products := p.Forecast.Products()
	out := make(map[string]float64, len(sol.Cost))
	for id, cost := range sol.Cost {
		out[products.Name(id)] = cost
	}
	return out
}

func countAccepted(trace []solver.TraceEntry) int {
	n := 0
	for _, t := range trace {
		if t.Accepted {
			n++
		}
	}
	return n
}

func encodeTrace(trace []solver.TraceEntry) []models.TraceStep {
	out := make([]models.TraceStep, len(trace))
	for i, t := range trace {
		out[i] = models.TraceStep{
			Iteration:   t.Iteration,
			DeltaJ:      t.DeltaJ,
			Total:       t.Total,
			Accepted:    t.Accepted,
			Temperature: t.Temperature,
		}
	}
	return out
}

// encodeSchedule run-length encodes each machine's hourly assignment
// into blocks, since the wire form of 1008 per-hour entries per
// machine is not a useful response shape.
func encodeSchedule(p *solver.Problem, sol *solver.Solution) []models.MachineSchedule {
	products := p.Forecast.Products()
	out := make([]models.MachineSchedule, 0, p.Fleet.Len())

	for _, m := range p.Fleet.Machines() {
		sched := sol.Schedule[m.ID]
		ms := models.MachineSchedule{MachineID: m.ID}

		var blockStart int
		var current model.Assignment
		for t := 0; t <= len(sched); t++ {
			if t < len(sched) && t > 0 && sched[t] == current {
				continue
			}
			if t > 0 {
				ms.Blocks = append(ms.Blocks, blockFor(products, blockStart, t, current))
			}
			if t < len(sched) {
				current = sched[t]
				blockStart = t
			}
		}
		out = append(out, ms)
	}
	return out
}

func blockFor(products *model.ProductTable, start, end int, a model.Assignment) models.Block {
	b := models.Block{StartHour: start, EndHour: end}
	if id, ok := a.Product(); ok {
		b.Product = products.Name(id)
	}
	return b
}
