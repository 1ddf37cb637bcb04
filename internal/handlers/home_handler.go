package handlers

import (
	"net/http"

	"horplus-console/internal/pages"
	"horplus-console/internal/upstream"
	"horplus-console/internal/web"
)

type HomeHandler struct {
	api      *upstream.Client
	sessions *web.SessionManager
	renderer *web.Renderer
}

func NewHomeHandler(api *upstream.Client, sessions *web.SessionManager, renderer *web.Renderer) *HomeHandler {
	return &HomeHandler{api: api, sessions: sessions, renderer: renderer}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	notifier := &web.FlashNotifier{Sessions: h.sessions, W: w, R: r}
	page := pages.NewHomePage(h.api, notifier)
	page.Load(r.Context())

	h.renderer.Render(w, "home.html", pageData(w, r, h.sessions, "Dashboard", map[string]interface{}{
		"Users":          page.Users.Items(),
		"AvailableRooms": page.AvailableRoomCount(),
		"Tenants":        page.TenantCount(),
	}))
}
