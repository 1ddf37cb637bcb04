// Package crud implements the list/dialog/save/delete pattern every
// management page of the dashboard is built from: a list that mirrors the
// last successful fetch, a single add/edit dialog, and save/delete flows
// that only ever mutate data through the upstream API and refetch.
package crud

// Notifier surfaces operation outcomes to the user. The console web layer
// implements it with session flashes; tests implement it with recorders.
type Notifier interface {
	Success(title, text string)
	Error(title, text string)
	Info(title, text string)
}

// Confirmer blocks an irreversible action until the user answers. A false
// answer means the action must not issue any request.
type Confirmer interface {
	Confirm(title, text string) bool
}

// NopNotifier discards notifications. Used for secondary background lists
// (e.g. the available-room picker) whose failures should not interrupt the
// user the way the primary list's do.
type NopNotifier struct{}

func (NopNotifier) Success(title, text string) {}
func (NopNotifier) Error(title, text string)   {}
func (NopNotifier) Info(title, text string)    {}

// ValidationError is a local form check failure; no request may be sent
// while one is outstanding.
type ValidationError struct {
	Field string
	Title string
	Text  string
}

func (e *ValidationError) Error() string {
	return e.Text
}
