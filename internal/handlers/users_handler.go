package handlers

import (
	"net/http"
	"strconv"

	"horplus-console/internal/crud"
	"horplus-console/internal/pages"
	"horplus-console/internal/upstream"
	"horplus-console/internal/web"
)

type UsersHandler struct {
	api      *upstream.Client
	sessions *web.SessionManager
	renderer *web.Renderer
}

func NewUsersHandler(api *upstream.Client, sessions *web.SessionManager, renderer *web.Renderer) *UsersHandler {
	return &UsersHandler{api: api, sessions: sessions, renderer: renderer}
}

func (h *UsersHandler) page(w http.ResponseWriter, r *http.Request) *pages.UsersPage {
	notifier := &web.FlashNotifier{Sessions: h.sessions, W: w, R: r}
	return pages.NewUsersPage(h.api, notifier, &web.FormConfirmer{R: r})
}

// List renders the user roster. ?dialog=new opens the add dialog,
// ?dialog=edit&id=N pre-fills the edit dialog from the fetched record.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Load(r.Context())

	switch r.URL.Query().Get("dialog") {
	case "new":
		page.Dialog.OpenAdd()
	case "edit":
		id := queryID(r, "id")
		for _, u := range page.List.Items() {
			if u.UserID == id {
				page.OpenEdit(u)
				break
			}
		}
	}

	h.render(w, r, page)
}

// Save persists the posted dialog form. A failed save re-renders the page
// with the dialog still open and the input intact; success redirects back to
// the fresh list.
func (h *UsersHandler) Save(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)

	form := pages.UserForm{
		Username:    r.PostFormValue("username"),
		Password:    r.PostFormValue("password"),
		FullName:    r.PostFormValue("full_name"),
		PhoneNumber: r.PostFormValue("phone_number"),
		LineID:      r.PostFormValue("line_id"),
		Role:        r.PostFormValue("role"),
	}
	if raw := r.PostFormValue("room_number"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			form.RoomNumber = &n
		}
	}

	if id := formID(r, "id"); id > 0 {
		page.Dialog.OpenEdit(id, form)
	} else {
		page.Dialog.OpenAdd()
		page.Dialog.Apply(func(f *pages.UserForm) { *f = form })
	}

	if err := page.Save(r.Context()); err != nil {
		page.Load(r.Context())
		h.render(w, r, page)
		return
	}
	http.Redirect(w, r, "/user", http.StatusFound)
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Delete(r.Context(), formID(r, "id"))
	http.Redirect(w, r, "/user", http.StatusFound)
}

func (h *UsersHandler) render(w http.ResponseWriter, r *http.Request, page *pages.UsersPage) {
	// Template-friendly copy of the optional room selection
	formRoom := 0
	if room := page.Dialog.Form().RoomNumber; room != nil {
		formRoom = *room
	}
	h.renderer.Render(w, "users.html", pageData(w, r, h.sessions, "Users", map[string]interface{}{
		"Items":          page.List.Items(),
		"FormRoom":       formRoom,
		"AvailableRooms": page.AvailableRooms.Items(),
		"DialogOpen":     page.Dialog.IsOpen(),
		"Editing":        page.Dialog.Mode() == crud.ModeEditing,
		"EditingID":      page.Dialog.EditingID(),
		"Form":           page.Dialog.Form(),
	}))
}
