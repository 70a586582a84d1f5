package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is a closed interval over the order date. A nil bound means the
// interval is unbounded on that side; both bounds nil means no filtering.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Unbounded reports whether the range imposes no constraint. A lone bound
// does not filter; the interval only applies when both ends are set.
func (r DateRange) Unbounded() bool {
	return r.From == nil || r.To == nil
}

// Contains reports whether t lies in [From, To], inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	if r.Unbounded() {
		return true
	}
	return !t.Before(*r.From) && !t.After(*r.To)
}

// KPIResult is one ranked row of a KPI response. DimensionValue is nil for
// global (dimension-less) KPIs.
type KPIResult struct {
	DimensionValue *string         `json:"dimension_value"`
	MetricValue    decimal.Decimal `json:"metric_value"`
}
