// Package router wires the console's routes: the public welcome and login
// surface, the session-gated dashboard screens, and the elevated user
// management area.
package router

import (
	"net/http"

	"horplus-console/internal/handlers"
	"horplus-console/internal/middleware"
	"horplus-console/internal/monitoring"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Auth          *handlers.AuthHandler
	Home          *handlers.HomeHandler
	Users         *handlers.UsersHandler
	Rooms         *handlers.RoomsHandler
	Repairs       *handlers.RepairsHandler
	Announcements *handlers.AnnouncementsHandler
	Bills         *handlers.BillsHandler
	Health        *handlers.HealthHandler
	Ops           *handlers.OpsHandler
	Broadcaster   *monitoring.Broadcaster
	AuthMW        *middleware.AuthMiddleware
}

func New(d Deps) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.PanicRecovery)
	r.Use(middleware.MetricsMiddleware)

	// Public surface
	r.HandleFunc("/", d.Auth.Welcome).Methods(http.MethodGet)
	r.HandleFunc("/login", d.Auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", d.Auth.Logout).Methods(http.MethodPost)
	r.HandleFunc("/healthz", d.Health.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Dashboard: any signed-in admin
	dash := r.NewRoute().Subrouter()
	dash.Use(d.AuthMW.RequireSession)
	dash.HandleFunc("/home", d.Home.Home).Methods(http.MethodGet)
	dash.HandleFunc("/elevate", d.Auth.Elevate).Methods(http.MethodPost)

	dash.HandleFunc("/room", d.Rooms.List).Methods(http.MethodGet)
	dash.HandleFunc("/room/save", d.Rooms.Save).Methods(http.MethodPost)
	dash.HandleFunc("/room/delete", d.Rooms.Delete).Methods(http.MethodPost)

	dash.HandleFunc("/repair", d.Repairs.List).Methods(http.MethodGet)
	dash.HandleFunc("/repair/save", d.Repairs.Save).Methods(http.MethodPost)
	dash.HandleFunc("/repair/delete", d.Repairs.Delete).Methods(http.MethodPost)

	dash.HandleFunc("/announcement", d.Announcements.List).Methods(http.MethodGet)
	dash.HandleFunc("/announcement/save", d.Announcements.Save).Methods(http.MethodPost)
	dash.HandleFunc("/announcement/delete", d.Announcements.Delete).Methods(http.MethodPost)

	dash.HandleFunc("/bill", d.Bills.Admin).Methods(http.MethodGet)
	dash.HandleFunc("/bill/room/{room:[0-9]+}", d.Bills.Room).Methods(http.MethodGet)
	dash.HandleFunc("/bill/room/{room:[0-9]+}/save", d.Bills.SaveRoom).Methods(http.MethodPost)
	dash.HandleFunc("/bill/room/{room:[0-9]+}/delete", d.Bills.DeleteRoom).Methods(http.MethodPost)
	dash.HandleFunc("/bill/room/{room:[0-9]+}/receipt/{bill:[0-9]+}", d.Bills.Receipt).Methods(http.MethodGet)

	dash.HandleFunc("/ops", d.Ops.Ops).Methods(http.MethodGet)
	dash.HandleFunc("/ops/ws", d.Broadcaster.HandleWS).Methods(http.MethodGet)
	dash.HandleFunc("/ops/stats", d.Broadcaster.StatsHandler).Methods(http.MethodGet)

	// User management: requires the elevation claim
	elevated := r.NewRoute().Subrouter()
	elevated.Use(d.AuthMW.RequireElevated)
	elevated.HandleFunc("/user", d.Users.List).Methods(http.MethodGet)
	elevated.HandleFunc("/user/save", d.Users.Save).Methods(http.MethodPost)
	elevated.HandleFunc("/user/delete", d.Users.Delete).Methods(http.MethodPost)

	return r
}
