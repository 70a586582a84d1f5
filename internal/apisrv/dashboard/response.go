package dashboard

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/superstore-analytics/kpi-engine/internal/entity"
)

// errors

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	ErrorText  string `json:"error,omitempty"` // application-level error message, for debugging
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrNotFound(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     "Resource not found.",
		ErrorText:      err.Error(),
	}
}

func ErrServiceUnavailable(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusServiceUnavailable,
		StatusText:     http.StatusText(http.StatusServiceUnavailable),
		ErrorText:      err.Error(),
	}
}

func ErrInternalServerError(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
		ErrorText:      err.Error(),
	}
}

// kpi

// KPIResponse wraps the ranked result rows. Data is always present, an
// empty ranking marshals as "data":[] so callers can tell "no data" apart
// from a request error.
type KPIResponse struct {
	Data []entity.KPIResult `json:"data"`
}

func NewKPIResponse(results []entity.KPIResult) *KPIResponse {
	if results == nil {
		results = []entity.KPIResult{}
	}
	return &KPIResponse{Data: results}
}

func (rd *KPIResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// catalog

type CatalogResponse struct {
	KPIs []string `json:"kpis"`
}

func (rd *CatalogResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
