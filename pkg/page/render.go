package page

import (
	"embed"
	"html/template"
	"io"
	"net/url"

	"github.com/podcastr/podcastr/pkg/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").
	Funcs(template.FuncMap{
		// Episode descriptions come from the podcast CMS and are inserted as is.
		"trusted":    func(s string) template.HTML { return template.HTML(s) },
		"pathEscape": url.PathEscape,
	}).
	ParseFS(templatesFS, "templates/*.html"))

// Render writes the episode detail document.
func Render(w io.Writer, episode *model.Episode) error {
	return templates.ExecuteTemplate(w, "episode", episode)
}

// RenderHome writes the list of latest episodes.
func RenderHome(w io.Writer, episodes []*model.Episode) error {
	return templates.ExecuteTemplate(w, "home", episodes)
}
