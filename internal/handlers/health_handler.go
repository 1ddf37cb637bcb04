package handlers

import (
	"encoding/json"
	"net/http"

	"horplus-console/internal/health"
	"horplus-console/internal/web"
)

type HealthHandler struct {
	checker *health.Checker
}

func NewHealthHandler(checker *health.Checker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.checker.Check(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if st.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(st)
}

// OpsHandler renders the live monitoring page; the page itself subscribes to
// the websocket feed.
type OpsHandler struct {
	sessions *web.SessionManager
	renderer *web.Renderer
}

func NewOpsHandler(sessions *web.SessionManager, renderer *web.Renderer) *OpsHandler {
	return &OpsHandler{sessions: sessions, renderer: renderer}
}

func (h *OpsHandler) Ops(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "ops.html", pageData(w, r, h.sessions, "Monitoring", nil))
}
