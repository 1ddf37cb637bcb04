package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"horplus-console/internal/pages"
	"horplus-console/internal/timeutil"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer serves the console's server-rendered pages. Every page template
// is parsed together with the shared layout at startup.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"statusColor": pages.StatusColor,
		"thaiDate": func(value string) string {
			t, err := timeutil.ParseLocal(timeutil.DateLayout, value)
			if err != nil {
				return value
			}
			return timeutil.FormatThaiDate(t)
		},
		"thaiDateTime": func(value string) string {
			t, err := timeutil.ParseLocal("2006-01-02T15:04:05", value)
			if err != nil {
				return value
			}
			return timeutil.FormatThaiDateTime(t)
		},
		"now": timeutil.Now,
	}

	pageNames := []string{
		"welcome.html", "home.html", "users.html", "rooms.html",
		"repairs.html", "announcements.html", "bills.html",
		"roombills.html", "ops.html",
	}

	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		templates[name] = template.Must(
			template.New("layout.html").Funcs(funcs).
				ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return &Renderer{templates: templates}
}

// PageData is the envelope every template receives.
type PageData struct {
	Title    string
	Username string
	Elevated bool
	Flashes  []Flash
	Data     interface{}
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data PageData) {
	tmpl, ok := r.templates[name]
	if !ok {
		log.Printf("[Render] Unknown template %q", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Printf("[Render] %s: %v", name, err)
	}
}
