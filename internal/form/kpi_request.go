package form

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/asaskevich/govalidator"
)

// KPIRequest carries the query parameters of one KPI call. Date bounds stay
// raw strings here; parsing them is the engine's job so that "bad date" is
// reported by the core's own typed error.
type KPIRequest struct {
	ID        string `valid:"required"`
	DateStart string `valid:"-"`
	DateEnd   string `valid:"-"`
	Limit     int    `valid:"-"`
}

// FromQuery builds a KPIRequest from the route id and URL query parameters.
func FromQuery(id string, r *http.Request) (*KPIRequest, error) {
	q := r.URL.Query()
	req := &KPIRequest{
		ID:        id,
		DateStart: q.Get("date_debut"),
		DateEnd:   q.Get("date_fin"),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("limit must be an integer: %w", err)
		}
		req.Limit = limit
	}
	return req, nil
}

func (r *KPIRequest) Validate() error {
	if r.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	if _, err := govalidator.ValidateStruct(r); err != nil {
		return err
	}
	return nil
}
