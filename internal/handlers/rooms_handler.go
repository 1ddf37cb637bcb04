package handlers

import (
	"net/http"

	"horplus-console/internal/crud"
	"horplus-console/internal/pages"
	"horplus-console/internal/upstream"
	"horplus-console/internal/web"
)

type RoomsHandler struct {
	api      *upstream.Client
	sessions *web.SessionManager
	renderer *web.Renderer
}

func NewRoomsHandler(api *upstream.Client, sessions *web.SessionManager, renderer *web.Renderer) *RoomsHandler {
	return &RoomsHandler{api: api, sessions: sessions, renderer: renderer}
}

func (h *RoomsHandler) page(w http.ResponseWriter, r *http.Request) *pages.RoomsPage {
	notifier := &web.FlashNotifier{Sessions: h.sessions, W: w, R: r}
	return pages.NewRoomsPage(h.api, notifier, &web.FormConfirmer{R: r})
}

func (h *RoomsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Load(r.Context())

	switch r.URL.Query().Get("dialog") {
	case "new":
		page.Dialog.OpenAdd()
	case "edit":
		id := queryID(r, "id")
		for _, room := range page.List.Items() {
			if room.RoomID == id {
				page.OpenEdit(room)
				break
			}
		}
	}

	h.render(w, r, page)
}

func (h *RoomsHandler) Save(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)

	form := pages.RoomForm{
		RoomNumber:  r.PostFormValue("room_number"),
		Rent:        r.PostFormValue("rent"),
		Description: r.PostFormValue("description"),
		Status:      r.PostFormValue("status"),
	}

	if id := formID(r, "id"); id > 0 {
		page.Dialog.OpenEdit(id, form)
	} else {
		page.Dialog.OpenAdd()
		page.Dialog.Apply(func(f *pages.RoomForm) { *f = form })
	}

	if err := page.Save(r.Context()); err != nil {
		page.Load(r.Context())
		h.render(w, r, page)
		return
	}
	http.Redirect(w, r, "/room", http.StatusFound)
}

func (h *RoomsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Delete(r.Context(), formID(r, "id"))
	http.Redirect(w, r, "/room", http.StatusFound)
}

func (h *RoomsHandler) render(w http.ResponseWriter, r *http.Request, page *pages.RoomsPage) {
	h.renderer.Render(w, "rooms.html", pageData(w, r, h.sessions, "Rooms", map[string]interface{}{
		"Items":      page.List.Items(),
		"DialogOpen": page.Dialog.IsOpen(),
		"Editing":    page.Dialog.Mode() == crud.ModeEditing,
		"EditingID":  page.Dialog.EditingID(),
		"Form":       page.Dialog.Form(),
	}))
}
