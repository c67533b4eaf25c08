package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/2beens/ironlog/internal/ironlog/api"
	"github.com/2beens/ironlog/internal/ironlog/view"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates holds the full page and every htmx fragment, each addressed
// by its define name.
type Templates struct {
	tmpl *template.Template
}

func LoadTemplates() (*Templates, error) {
	funcMap := template.FuncMap{
		"chartConfig": func(c view.Chart) (string, error) {
			return c.ConfigJSON()
		},
		"chartExtras": func(c view.Chart) (string, error) {
			return c.ExtrasJSON()
		},
		"noDataText":    func() string { return view.NoDataText },
		"activityIcon":  view.ActivityIcon,
		"activityTitle": view.ActivityTitle,
		"activityTypes": func() []api.ActivityType { return api.ActivityTypes },
		"add":           func(a, b int) int { return a + b },
	}

	tmpl, err := template.New("ironlog").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Templates{tmpl: tmpl}, nil
}

func (t *Templates) Render(w io.Writer, name string, data any) error {
	if t.tmpl.Lookup(name) == nil {
		return fmt.Errorf("template %q not found", name)
	}
	return t.tmpl.ExecuteTemplate(w, name, data)
}

// StaticHandler serves the embedded scripts and styles under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
