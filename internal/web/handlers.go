package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/emiliopalmerini/hyperfocus/internal/controller"
	"github.com/emiliopalmerini/hyperfocus/internal/domain"
	"github.com/emiliopalmerini/hyperfocus/internal/ports"
	"github.com/emiliopalmerini/hyperfocus/internal/web/templates"
)

func (s *Server) dashboardData() templates.DashboardData {
	return templates.DashboardData{
		Snapshot: s.ctrl.Snapshot(),
		Now:      s.now(),
		Location: s.cfg.Location,
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Page(s.dashboardData()).Render(r.Context(), w); err != nil {
		s.logger.Error("render dashboard", "error", err)
	}
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.ctrl.Snapshot()); err != nil {
		s.logger.Error("encode snapshot", "error", err)
	}
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	rng, ok := s.formRange(w, r)
	if !ok {
		return
	}
	userID := strings.TrimSpace(r.FormValue("user_id"))
	s.settle(r.Context(), "load", s.ctrl.LoadAll(r.Context(), userID, rng))
	s.respond(w, r)
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	rng, ok := s.formRange(w, r)
	if !ok {
		return
	}
	s.settle(r.Context(), "range", s.ctrl.LoadAll(r.Context(), s.ctrl.UserID(), rng))
	s.respond(w, r)
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	s.settle(r.Context(), "demo", s.coord.SeedDemoData(r.Context()))
	s.respond(w, r)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	s.settle(r.Context(), "start session", s.coord.StartSession(r.Context()))
	s.respond(w, r)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	if !domain.ContainsSession(s.ctrl.Snapshot().Views.Sessions.Value, id) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	s.settle(r.Context(), "select", s.ctrl.Select(r.Context(), id))
	s.respond(w, r)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	s.settle(r.Context(), "end session", s.coord.EndSession(r.Context(), id))
	s.respond(w, r)
}

func (s *Server) handleCreateInterruption(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	draft := controller.InterruptionDraft{
		Type:        domain.InterruptionType(r.FormValue("type")),
		Description: r.FormValue("description"),
		Start:       r.FormValue("start"),
		End:         r.FormValue("end"),
	}
	s.ctrl.SetDraft(draft)

	in, err := draft.Input(s.cfg.Location)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.settle(r.Context(), "create interruption", s.coord.CreateInterruption(r.Context(), in))
	s.respond(w, r)
}

// settle logs a controller error and persists the active context. The
// controller already reflects failures in its banner.
func (s *Server) settle(ctx context.Context, op string, err error) {
	if err != nil {
		s.logger.Debug("dashboard operation failed", "op", op, "error", err)
	}
	if s.store == nil {
		return
	}
	snap := s.ctrl.Snapshot()
	if snap.UserID == "" {
		return
	}
	if err := s.store.Save(ctx, ports.ActiveContext{
		UserID:            snap.UserID,
		Range:             snap.Range,
		SelectedSessionID: snap.SelectedSessionID,
	}); err != nil {
		s.logger.Error("failed to persist context", "error", err)
	}
}

// respond swaps the dashboard fragment for htmx, otherwise redirects home.
func (s *Server) respond(w http.ResponseWriter, r *http.Request) {
	if !isHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Dashboard(s.dashboardData()).Render(r.Context(), w); err != nil {
		s.logger.Error("render dashboard fragment", "error", err)
	}
}

func (s *Server) formRange(w http.ResponseWriter, r *http.Request) (domain.Range, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return "", false
	}
	raw := r.FormValue("range")
	if raw == "" {
		return s.ctrl.Range(), true
	}
	rng, err := domain.ParseRange(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	return rng, true
}

func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
