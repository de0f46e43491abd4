package model

import "errors"

// Sentinel errors for the fatal, setup-time error kinds. All are raised
// before a solver run begins; the annealing loop itself never returns
// an error, it only rejects degenerate moves.
var (
	ErrDuplicateMachineID         = errors.New("duplicate_machine_id")
	ErrUnknownShiftPattern        = errors.New("unknown_shift_pattern")
	ErrDuplicateProductAssignment = errors.New("duplicate_product_assignment")
	ErrForecastNotInterpolated    = errors.New("forecast_not_interpolated")
	ErrEmptyProductSet            = errors.New("empty_product_set")
	ErrMalformedForecast          = errors.New("malformed_forecast")
)
