package kpi

import "fmt"

// InvalidDateError reports a date bound that could not be parsed. It is a
// request error: the caller supplied the bound, retrying won't help.
type InvalidDateError struct {
	Bound string // "date_debut" or "date_fin"
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date bound %s=%q: %v", e.Bound, e.Value, e.Err)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

// UnknownKPIError reports a KPI identifier missing from the catalog.
type UnknownKPIError struct {
	ID string
}

func (e *UnknownKPIError) Error() string {
	return fmt.Sprintf("unknown kpi %q", e.ID)
}

// StoreUnavailableError reports a failed store round trip. The engine does
// not retry; retry policy belongs to the caller.
type StoreUnavailableError struct {
	KPI string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable while computing kpi %q: %v", e.KPI, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }
