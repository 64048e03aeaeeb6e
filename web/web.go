// Package web embeds the HTML templates rendered by the handlers.
package web

import (
	"embed"
	"html/template"
	"strconv"
	"time"

	"github.com/farellandr/eventure/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

func Funcs() template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time) string {
			return t.Format("Jan. 2, 2006")
		},
		"isoDate": func(t time.Time) string {
			return t.Format(models.DateLayout)
		},
		"id": func(id uint) string {
			return strconv.FormatUint(uint64(id), 10)
		},
		// eventRows adapts a bare event slice to the event_rows partial.
		"eventRows": func(base string, events []models.Event) map[string]any {
			return map[string]any{"Base": base, "Events": events}
		},
		"contains": func(values []string, id uint) bool {
			want := strconv.FormatUint(uint64(id), 10)
			for _, v := range values {
				if v == want {
					return true
				}
			}
			return false
		},
	}
}

// Templates parses every page and partial into one set.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}
