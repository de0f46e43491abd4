package models

// ScheduleResponse is the response body for POST /api/v1/schedule.
type ScheduleResponse struct {
	Status       string             `json:"status"`
	TotalCost    float64            `json:"total_cost"`
	CostByProduct map[string]float64 `json:"cost_by_product"`
	Iterations   int                `json:"iterations"`
	AcceptedMoves int               `json:"accepted_moves"`
	Schedule     []MachineSchedule  `json:"schedule,omitempty"`
	Trace        []TraceStep        `json:"trace,omitempty"`
}

// MachineSchedule is one machine's hour-by-hour assignment, run-length
// encoded: consecutive hours with the same assignment are collapsed
// into a single block, since the raw per-hour form (1008 entries) is
// not a useful wire shape.
type MachineSchedule struct {
	MachineID int     `json:"machine_id"`
	Blocks    []Block `json:"blocks"`
}

// Block is one contiguous run of the same assignment.
type Block struct {
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
	Product   string `json:"product,omitempty"` // empty means idle
}

// TraceStep is one iteration's acceptance outcome.
type TraceStep struct {
	Iteration   int     `json:"iteration"`
	DeltaJ      float64 `json:"delta_j"`
	Total       float64 `json:"total"`
	Accepted    bool    `json:"accepted"`
	Temperature float64 `json:"temperature"`
}

// RankResponse is the response body for GET /api/v1/rank.
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking is one product's scarcity summary.
type Ranking struct {
	Rank            int     `json:"rank"`
	Product         string  `json:"product"`
	PeakDemand      float64 `json:"peak_demand"`
	FinalProduced   float64 `json:"final_produced"`
	FinalShortfall  float64 `json:"final_shortfall"`
	MissedUnitHours float64 `json:"missed_unit_hours"`
	OverUnitHours   float64 `json:"over_unit_hours"`
	Cost            float64 `json:"cost"`
}

// ErrorResponse mirrors the teacher's error envelope shape.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code alongside the message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
