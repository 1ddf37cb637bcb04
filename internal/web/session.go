// Package web holds the console's browser-facing session plumbing: the
// cookie session, flash notifications, and the form-posted confirmation
// contract the crud flows consume.
package web

import (
	"encoding/gob"
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "horplus_console"

// Flash is one queued notification, rendered by the layout on the next page.
type Flash struct {
	Level string // success, error, info
	Title string
	Text  string
}

func init() {
	gob.Register(Flash{})
}

type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

func (m *SessionManager) session(r *http.Request) *sessions.Session {
	// Get never fails fatally: a bad cookie yields a fresh session
	s, _ := m.store.Get(r, sessionName)
	return s
}

// Token returns the session JWT, or "" when the visitor is not logged in.
func (m *SessionManager) Token(r *http.Request) string {
	s := m.session(r)
	if token, ok := s.Values["token"].(string); ok {
		return token
	}
	return ""
}

// SetToken stores the session JWT in the cookie.
func (m *SessionManager) SetToken(w http.ResponseWriter, r *http.Request, token string) {
	s := m.session(r)
	s.Values["token"] = token
	if err := s.Save(r, w); err != nil {
		log.Printf("[Session] Save failed: %v", err)
	}
}

// Clear drops the session, logging the visitor out.
func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) {
	s := m.session(r)
	s.Options.MaxAge = -1
	s.Values = make(map[interface{}]interface{})
	if err := s.Save(r, w); err != nil {
		log.Printf("[Session] Clear failed: %v", err)
	}
	// The session object is cached per request. Restore the cookie lifetime
	// so anything queued after the clear (a "session expired" notice) is
	// written as a fresh cookie instead of inheriting the expiry.
	s.Options.MaxAge = 0
}

// AddFlash queues a notification for the next rendered page.
func (m *SessionManager) AddFlash(w http.ResponseWriter, r *http.Request, f Flash) {
	s := m.session(r)
	s.AddFlash(f)
	if err := s.Save(r, w); err != nil {
		log.Printf("[Session] Flash save failed: %v", err)
	}
}

// Flashes pops all queued notifications.
func (m *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	s := m.session(r)
	raw := s.Flashes()
	if len(raw) > 0 {
		if err := s.Save(r, w); err != nil {
			log.Printf("[Session] Flash save failed: %v", err)
		}
	}
	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
