package helpers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/farellandr/eventure/internal/pagination"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contextFor(target string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestEventListParams_Filter(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantText     string
		wantCategory *uint
		wantRange    bool
	}{
		{name: "no params", target: "/"},
		{name: "text is trimmed", target: "/?q=+hall+", wantText: "hall"},
		{name: "category", target: "/?category=3", wantCategory: ptr(3)},
		{name: "bad category ignored", target: "/?category=abc"},
		{name: "full range", target: "/?start=2024-01-01&end=2024-01-31", wantRange: true},
		{name: "half range ignored", target: "/?start=2024-01-01"},
		{name: "bad date ignored", target: "/?start=2024-01-01&end=soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := ParseEventListParams(contextFor(tt.target)).Filter()
			assert.Equal(t, tt.wantText, filter.Text)
			assert.Equal(t, tt.wantCategory, filter.CategoryID)
			assert.Equal(t, tt.wantRange, filter.Range != nil)
		})
	}
}

func TestEventListParams_Values(t *testing.T) {
	params := ParseEventListParams(contextFor("/?q=hall&category=3&start=&page=2"))
	assert.Equal(t, url.Values{"q": {"hall"}, "category": {"3"}}, params.Values())
	assert.True(t, params.SelectedCategory(3))
	assert.False(t, params.SelectedCategory(4))
}

func TestParseID(t *testing.T) {
	c := contextFor("/")
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, ok := ParseID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(12), id)

	for _, raw := range []string{"0", "-1", "x"} {
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, ok := ParseID(c, "id")
		assert.False(t, ok, raw)
	}
}

func TestPager_URL(t *testing.T) {
	page, err := pagination.New(25, 10, "2")
	require.NoError(t, err)

	pager := NewPager(page, url.Values{"q": {"town hall"}})
	assert.Equal(t, "?page=3&q=town+hall", pager.URL(page.NextNumber()))
	assert.Equal(t, "?page=1", NewPager(page, nil).URL(1))
	assert.Equal(t, url.Values{"q": {"town hall"}}, pager.Query)
}

func ptr(v uint) *uint {
	return &v
}
