package config

import (
	"fmt"

	"prodsched/internal/model"
)

// WeeklyPattern is the on-disk shape of a custom shift pattern:
// weekday (0=Monday) -> 24 hourly values in [0,1]. Matches spec.md §6's
// "pattern_name -> {0..6 -> [24 numbers]}".
type WeeklyPattern map[int][]float64

// weekdays are the five production days built-in patterns run on.
var weekdays = [5]int{0, 1, 2, 3, 4}

// BuildShiftMask resolves a pattern name to a model.ShiftMask. It
// first checks the fixed set of recognized built-in patterns
// (spec.md §6), then falls back to custom patterns loaded from
// configuration. An unrecognized name is a fatal
// ErrUnknownShiftPattern, never silently defaulted.
//
// The windowed built-ins are expressed with the same start/end hourly
// window idea the teacher uses for charge/discharge windows
// (internal/strategy/schedule.go: parseHHMM/inWindow), generalized from
// a single-machine daily schedule to a 7x24 weekly mask.
func BuildShiftMask(name string, custom map[string]WeeklyPattern) (model.ShiftMask, error) {
	switch name {
	case "null":
		return model.ShiftMask{}, nil
	case "6-2":
		return windowMask(6, 14), nil
	case "2-10":
		return windowMask(14, 22), nil
	case "6-2 and 2-10":
		return windowMask(6, 22), nil
	}
	if wp, ok := custom[name]; ok {
		return maskFromWeeklyPattern(wp)
	}
	return model.ShiftMask{}, fmt.Errorf("%w: %q", model.ErrUnknownShiftPattern, name)
}

// windowMask sets hours [startHour, endHour) to 1 on each of the five
// weekdays, 0 elsewhere.
func windowMask(startHour, endHour int) model.ShiftMask {
	var m model.ShiftMask
	for _, day := range weekdays {
		for h := startHour; h < endHour; h++ {
			m[day*24+h] = 1
		}
	}
	return m
}

func maskFromWeeklyPattern(wp WeeklyPattern) (model.ShiftMask, error) {
	var m model.ShiftMask
	for day := 0; day < 7; day++ {
		hours, ok := wp[day]
		if !ok {
			continue // unspecified day defaults to all-zero
		}
		if len(hours) != 24 {
			return model.ShiftMask{}, fmt.Errorf("shift pattern day %d: expected 24 hourly values, got %d", day, len(hours))
		}
		copy(m[day*24:day*24+24], hours)
	}
	return m, nil
}
