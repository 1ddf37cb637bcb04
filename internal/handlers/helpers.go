package handlers

import (
	"net/http"
	"strconv"

	"horplus-console/internal/middleware"
	"horplus-console/internal/web"
)

func pageData(w http.ResponseWriter, r *http.Request, sessions *web.SessionManager, title string, data interface{}) web.PageData {
	username, _ := middleware.GetUsernameFromContext(r.Context())
	return web.PageData{
		Title:    title,
		Username: username,
		Elevated: middleware.IsElevated(r.Context()),
		Flashes:  sessions.Flashes(w, r),
		Data:     data,
	}
}

// formID reads a record id posted by a save or delete form; 0 means absent.
func formID(r *http.Request, field string) int64 {
	id, _ := strconv.ParseInt(r.PostFormValue(field), 10, 64)
	return id
}

// queryID reads a record id from the query string; 0 means absent.
func queryID(r *http.Request, field string) int64 {
	id, _ := strconv.ParseInt(r.URL.Query().Get(field), 10, 64)
	return id
}
