// Package calendar projects events onto a month-by-day view.
package calendar

import (
	"time"

	"zafaevents/internal/domain"
)

// Day is one calendar day and the events falling on it.
type Day struct {
	Date   time.Time       `json:"date"`
	Events []*domain.Event `json:"events"`
}

// DaysInMonth returns every day of the month containing ref, from the first
// to the last day inclusive, ascending, at UTC midnight.
func DaysInMonth(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := make([]time.Time, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// EventsOnDate returns the events whose date falls on the given calendar day,
// preserving input order. The result is never nil.
func EventsOnDate(events []*domain.Event, day time.Time) []*domain.Event {
	out := make([]*domain.Event, 0)
	for _, e := range events {
		if SameDay(e.Date, day) {
			out = append(out, e)
		}
	}
	return out
}

// SameDay reports whether a and b are the same calendar day, ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthGrid buckets events day by day across the month containing ref.
// Events are expected in ascending date order; bucket order follows it.
func MonthGrid(ref time.Time, events []*domain.Event) []Day {
	days := DaysInMonth(ref)
	grid := make([]Day, 0, len(days))
	for _, d := range days {
		grid = append(grid, Day{Date: d, Events: EventsOnDate(events, d)})
	}
	return grid
}

// NextMonth and PrevMonth shift the reference date by a fixed 30 days rather
// than a true calendar month. Near months of 28, 29, or 31 days this can land
// on an unexpected day of the month; the behavior is kept as shipped.
func NextMonth(ref time.Time) time.Time {
	return ref.AddDate(0, 0, 30)
}

// PrevMonth shifts the reference date back by a fixed 30 days. See NextMonth.
func PrevMonth(ref time.Time) time.Time {
	return ref.AddDate(0, 0, -30)
}
