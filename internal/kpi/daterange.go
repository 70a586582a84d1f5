package kpi

import (
	"time"

	"github.com/superstore-analytics/kpi-engine/internal/entity"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseRange builds the date filter from the two optional request bounds.
// Both bounds present yields the closed interval [start, end]; if either is
// absent the range filters nothing. A supplied bound that does not parse as
// a calendar date is rejected even when the other bound is absent.
func ParseRange(start, end string) (entity.DateRange, error) {
	var rng entity.DateRange

	if start != "" {
		t, err := parseDate(start)
		if err != nil {
			return entity.DateRange{}, &InvalidDateError{Bound: "date_debut", Value: start, Err: err}
		}
		rng.From = &t
	}
	if end != "" {
		t, err := parseDate(end)
		if err != nil {
			return entity.DateRange{}, &InvalidDateError{Bound: "date_fin", Value: end, Err: err}
		}
		rng.To = &t
	}
	return rng, nil
}

func parseDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
