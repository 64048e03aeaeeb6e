package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"error.html", "dashboard.html", "event_list.html", "event_search.html",
		"event_detail.html", "event_form.html", "participant_list.html",
		"participant_form.html", "category_list.html", "category_form.html",
		"confirm_delete.html",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestFuncs(t *testing.T) {
	funcs := Funcs()
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Mar. 5, 2024", funcs["date"].(func(time.Time) string)(day))
	assert.Equal(t, "2024-03-05", funcs["isoDate"].(func(time.Time) string)(day))

	contains := funcs["contains"].(func([]string, uint) bool)
	assert.True(t, contains([]string{"1", "7"}, 7))
	assert.False(t, contains(nil, 7))
}

func TestErrorTemplate(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "error.html", map[string]any{
		"Title": "Not Found",
		"Base":  "/events",
		"Error": map[string]any{"Status": 404, "Error": "Not Found", "Message": "<gone>"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "404 Not Found")
	assert.Contains(t, buf.String(), "&lt;gone&gt;")
	assert.Contains(t, buf.String(), `href="/events/"`)
}
