package handlers

import (
	"net/http"

	"horplus-console/internal/crud"
	"horplus-console/internal/pages"
	"horplus-console/internal/upstream"
	"horplus-console/internal/web"
)

type AnnouncementsHandler struct {
	api      *upstream.Client
	sessions *web.SessionManager
	renderer *web.Renderer
}

func NewAnnouncementsHandler(api *upstream.Client, sessions *web.SessionManager, renderer *web.Renderer) *AnnouncementsHandler {
	return &AnnouncementsHandler{api: api, sessions: sessions, renderer: renderer}
}

func (h *AnnouncementsHandler) page(w http.ResponseWriter, r *http.Request) *pages.AnnouncementsPage {
	notifier := &web.FlashNotifier{Sessions: h.sessions, W: w, R: r}
	return pages.NewAnnouncementsPage(h.api, notifier, &web.FormConfirmer{R: r})
}

func (h *AnnouncementsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Load(r.Context())

	switch r.URL.Query().Get("dialog") {
	case "new":
		page.Dialog.OpenAdd()
	case "edit":
		id := queryID(r, "id")
		for _, a := range page.List.Items() {
			if a.AnnouncementID == id {
				page.OpenEdit(a)
				break
			}
		}
	}

	h.render(w, r, page)
}

func (h *AnnouncementsHandler) Save(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)

	form := pages.AnnouncementForm{
		Title:  r.PostFormValue("title"),
		Detail: r.PostFormValue("detail"),
	}
	if id := formID(r, "id"); id > 0 {
		page.Dialog.OpenEdit(id, form)
	} else {
		page.Dialog.OpenAdd()
		page.Dialog.Apply(func(f *pages.AnnouncementForm) { *f = form })
	}

	if err := page.Save(r.Context()); err != nil {
		page.Load(r.Context())
		h.render(w, r, page)
		return
	}
	http.Redirect(w, r, "/announcement", http.StatusFound)
}

func (h *AnnouncementsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Delete(r.Context(), formID(r, "id"))
	http.Redirect(w, r, "/announcement", http.StatusFound)
}

func (h *AnnouncementsHandler) render(w http.ResponseWriter, r *http.Request, page *pages.AnnouncementsPage) {
	h.renderer.Render(w, "announcements.html", pageData(w, r, h.sessions, "Announcements", map[string]interface{}{
		"Items":      page.List.Items(),
		"DialogOpen": page.Dialog.IsOpen(),
		"Editing":    page.Dialog.Mode() == crud.ModeEditing,
		"EditingID":  page.Dialog.EditingID(),
		"Form":       page.Dialog.Form(),
	}))
}
