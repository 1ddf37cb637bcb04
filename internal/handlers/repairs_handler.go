package handlers

import (
	"net/http"

	"horplus-console/internal/pages"
	"horplus-console/internal/upstream"
	"horplus-console/internal/web"
)

type RepairsHandler struct {
	api      *upstream.Client
	sessions *web.SessionManager
	renderer *web.Renderer
}

func NewRepairsHandler(api *upstream.Client, sessions *web.SessionManager, renderer *web.Renderer) *RepairsHandler {
	return &RepairsHandler{api: api, sessions: sessions, renderer: renderer}
}

func (h *RepairsHandler) page(w http.ResponseWriter, r *http.Request) *pages.RepairsPage {
	notifier := &web.FlashNotifier{Sessions: h.sessions, W: w, R: r}
	return pages.NewRepairsPage(h.api, notifier, &web.FormConfirmer{R: r})
}

func (h *RepairsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Load(r.Context())

	if r.URL.Query().Get("dialog") == "edit" {
		id := queryID(r, "id")
		for _, ticket := range page.List.Items() {
			if ticket.RepairID == id {
				page.OpenEdit(ticket)
				break
			}
		}
	}

	h.render(w, r, page)
}

// Save moves a ticket through the status workflow. Only edits exist here;
// tenants open their tickets from the resident app.
func (h *RepairsHandler) Save(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)

	form := pages.RepairForm{Status: r.PostFormValue("status")}
	if id := formID(r, "id"); id > 0 {
		page.Dialog.OpenEdit(id, form)
	} else {
		page.Dialog.OpenAdd()
		page.Dialog.Apply(func(f *pages.RepairForm) { *f = form })
	}

	if err := page.Save(r.Context()); err != nil {
		page.Load(r.Context())
		h.render(w, r, page)
		return
	}
	http.Redirect(w, r, "/repair", http.StatusFound)
}

func (h *RepairsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Delete(r.Context(), formID(r, "id"))
	http.Redirect(w, r, "/repair", http.StatusFound)
}

func (h *RepairsHandler) render(w http.ResponseWriter, r *http.Request, page *pages.RepairsPage) {
	h.renderer.Render(w, "repairs.html", pageData(w, r, h.sessions, "Repairs", map[string]interface{}{
		"Items":      page.List.Items(),
		"DialogOpen": page.Dialog.IsOpen(),
		"EditingID":  page.Dialog.EditingID(),
		"Form":       page.Dialog.Form(),
	}))
}
