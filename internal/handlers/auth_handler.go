// Package handlers holds the console's HTTP handlers. Each dashboard screen
// builds its page controller per request: the fetched lists live for one
// render, which keeps every view a snapshot of the latest fetch.
package handlers

import (
	"log"
	"net"
	"net/http"

	"horplus-console/internal/auth"
	"horplus-console/internal/cache"
	"horplus-console/internal/config"
	"horplus-console/internal/middleware"
	"horplus-console/internal/upstream"
	"horplus-console/internal/web"
)

type AuthHandler struct {
	api      *upstream.Client
	jwt      *auth.JWTManager
	sessions *web.SessionManager
	renderer *web.Renderer
	cfg      *config.Config
}

func NewAuthHandler(api *upstream.Client, jwt *auth.JWTManager, sessions *web.SessionManager, renderer *web.Renderer, cfg *config.Config) *AuthHandler {
	return &AuthHandler{api: api, jwt: jwt, sessions: sessions, renderer: renderer, cfg: cfg}
}

// Welcome renders the login page; an already valid session goes straight to
// the dashboard.
func (h *AuthHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	if token := h.sessions.Token(r); token != "" {
		if _, err := h.jwt.ValidateToken(token); err == nil {
			http.Redirect(w, r, "/home", http.StatusFound)
			return
		}
		h.sessions.Clear(w, r)
		h.sessions.AddFlash(w, r, web.Flash{Level: "info", Title: "Session expired", Text: "Please sign in again"})
	}
	h.renderer.Render(w, "welcome.html", web.PageData{
		Title:   "HorPlus Admin",
		Flashes: h.sessions.Flashes(w, r),
	})
}

// Login exchanges the posted credentials for a console session. The upstream
// decides whether the account is an admin; the console just carries its
// verdict as a signed cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.sessions.AddFlash(w, r, web.Flash{Level: "error", Title: "Missing credentials", Text: "Please enter a username and password"})
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if _, err := h.api.LoginAdmin(r.Context(), username, password); err != nil {
		title, text := upstream.Describe(err, "Username or password is incorrect")
		h.sessions.AddFlash(w, r, web.Flash{Level: "error", Title: title, Text: text})
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	token, err := h.jwt.GenerateToken(username, false)
	if err != nil {
		log.Printf("[Auth] Token generation failed: %v", err)
		h.sessions.AddFlash(w, r, web.Flash{Level: "error", Title: "Login failed", Text: "Could not create a session"})
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.sessions.SetToken(w, r, token)
	h.sessions.AddFlash(w, r, web.Flash{Level: "success", Title: "Welcome", Text: "Signed in successfully"})
	http.Redirect(w, r, "/home", http.StatusFound)
}

// Elevate grants the user-management claim after a correct elevation code.
// Attempts are rate-limited per client address.
func (h *AuthHandler) Elevate(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.GetUsernameFromContext(r.Context())
	clientKey := clientAddr(r)

	if !cache.AllowElevationAttempt(r.Context(), clientKey) {
		log.Printf("[Auth] Elevation rate limit hit for %s", clientKey)
		h.sessions.AddFlash(w, r, web.Flash{Level: "error", Title: "Too many attempts", Text: "Please wait 15 minutes before trying again"})
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	code := r.PostFormValue("code")
	if !auth.VerifyCode(h.cfg.Admin.CodeHash, code) {
		h.sessions.AddFlash(w, r, web.Flash{Level: "error", Title: "Wrong code", Text: "The code is incorrect"})
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	cache.ClearElevationAttempts(r.Context(), clientKey)

	token, err := h.jwt.GenerateToken(username, true)
	if err != nil {
		log.Printf("[Auth] Token generation failed: %v", err)
		h.sessions.AddFlash(w, r, web.Flash{Level: "error", Title: "Error", Text: "Could not update the session"})
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	h.sessions.SetToken(w, r, token)
	http.Redirect(w, r, "/user", http.StatusFound)
}

// Logout drops the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
