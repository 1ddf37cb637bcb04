package web

import (
	"net/http"
)

// FlashNotifier adapts the session flash queue to the crud.Notifier
// contract for the duration of one request.
type FlashNotifier struct {
	Sessions *SessionManager
	W        http.ResponseWriter
	R        *http.Request
}

func (n *FlashNotifier) Success(title, text string) {
	n.Sessions.AddFlash(n.W, n.R, Flash{Level: "success", Title: title, Text: text})
}

func (n *FlashNotifier) Error(title, text string) {
	n.Sessions.AddFlash(n.W, n.R, Flash{Level: "error", Title: title, Text: text})
}

func (n *FlashNotifier) Info(title, text string) {
	n.Sessions.AddFlash(n.W, n.R, Flash{Level: "info", Title: title, Text: text})
}

// FormConfirmer implements the blocking delete confirmation for the web
// layer: the delete form only carries confirm=true after the user accepted
// the browser prompt, so an unconfirmed post reaches the upstream never.
type FormConfirmer struct {
	R *http.Request
}

func (c *FormConfirmer) Confirm(title, text string) bool {
	return c.R.PostFormValue("confirm") == "true"
}
