package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prodsched/internal/analysis"
	"prodsched/internal/api/models"
	"prodsched/internal/solver"
)

// RankHandler handles scarcity-ranking requests, grounded on the
// teacher's RankHandler (load inputs, call the analysis package,
// shape a sorted response).
type RankHandler struct{}

// NewRankHandler returns a RankHandler.
func NewRankHandler() *RankHandler { return &RankHandler{} }

// RankProducts handles GET /api/v1/rank.
func (h *RankHandler) RankProducts(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	problem, err := buildProblem(req.ConfigPath, req.ForecastPath, nil, 0)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	engine := solver.NewAnnealingEngine()
	sol, _ := engine.Run(problem)

	ranked := analysis.RankByShortfall(problem, sol)

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}
	ranked = ranked[:limit]

	rankings := make([]models.Ranking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.Ranking{
			Rank:            i + 1,
			Product:         r.Name,
			PeakDemand:      r.PeakDemand,
			FinalProduced:   r.FinalProduced,
			FinalShortfall:  r.FinalShortfall,
			MissedUnitHours: r.MissedUnitHours,
			OverUnitHours:   r.OverUnitHours,
			Cost:            r.Cost,
		}
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
