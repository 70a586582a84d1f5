// Package dashboard exposes the KPI catalog over plain JSON endpoints
// consumed by the dashboard frontend.
package dashboard

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/superstore-analytics/kpi-engine/internal/dependency"
	"github.com/superstore-analytics/kpi-engine/internal/form"
	"github.com/superstore-analytics/kpi-engine/internal/kpi"
)

// Server handles the dashboard routes.
type Server struct {
	engine *kpi.Engine
	store  dependency.EntityStore
}

func New(engine *kpi.Engine, store dependency.EntityStore) *Server {
	return &Server{
		engine: engine,
		store:  store,
	}
}

// Routes mounts the dashboard endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.health)
	r.Get("/api/kpi", s.listKPIs)
	r.Get("/api/kpi/{id}", s.runKPI)
}

func (s *Server) runKPI(w http.ResponseWriter, r *http.Request) {
	req, err := form.FromQuery(chi.URLParam(r, "id"), r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	results, err := s.engine.Run(r.Context(), req.ID, req.DateStart, req.DateEnd)
	if err != nil {
		s.renderKPIError(w, r, err)
		return
	}

	// Top-N truncation is a presentation concern (the dashboard slider);
	// the engine always returns the full ranking.
	if req.Limit > 0 && req.Limit < len(results) {
		results = results[:req.Limit]
	}

	render.Render(w, r, NewKPIResponse(results))
}

func (s *Server) renderKPIError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalidDate *kpi.InvalidDateError
		unknownKPI  *kpi.UnknownKPIError
		unavailable *kpi.StoreUnavailableError
	)
	switch {
	case errors.As(err, &invalidDate):
		render.Render(w, r, ErrInvalidRequest(err))
	case errors.As(err, &unknownKPI):
		render.Render(w, r, ErrNotFound(err))
	case errors.As(err, &unavailable):
		slog.Default().ErrorContext(r.Context(), "kpi store round trip failed",
			slog.String("kpi", unavailable.KPI),
			slog.String("error", err.Error()),
		)
		render.Render(w, r, ErrServiceUnavailable(err))
	default:
		slog.Default().ErrorContext(r.Context(), "kpi computation failed",
			slog.String("error", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
	}
}

func (s *Server) listKPIs(w http.ResponseWriter, r *http.Request) {
	render.Render(w, r, &CatalogResponse{KPIs: kpi.IDs()})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		render.Render(w, r, ErrServiceUnavailable(err))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
