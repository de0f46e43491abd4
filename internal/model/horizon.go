package model

// HoursPerWeek is the length of one shift-mask cycle.
const HoursPerWeek = 168

// PlanningWeeks is the number of week-long spans between the seven
// weekly anchors the interpolator uses: five production weeks plus the
// zero-weeks spec.md §4.1 prepends/appends to the forecast.
const PlanningWeeks = 6

// Horizon is H: the number of hourly slots covering the planning window,
// anchored so slot 0 is 00:00 on the next Monday and the last anchor
// (slot H-1) lands on a Monday boundary too.
const Horizon = PlanningWeeks*HoursPerWeek + 1

// EnvelopeLength is H-1: productivity envelopes are one slot shorter
// than demand/production/schedule arrays (spec.md §9, last bullet).
// The last slot is never scheduled because demand is anchored there.
const EnvelopeLength = Horizon - 1
