package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/farellandr/eventure/config"
	"github.com/farellandr/eventure/internal/server"
	"github.com/farellandr/eventure/internal/service"
	"github.com/farellandr/eventure/internal/testdb"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var today = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type app struct {
	db     *gorm.DB
	router *gin.Engine
}

func newApp(t *testing.T) *app {
	t.Helper()
	db := testdb.New(t)
	cfg := &config.Config{
		App:      config.AppConfig{Name: "eventure", Environment: "test"},
		Metrics:  config.MetricsConfig{Enabled: true},
		Location: time.UTC,
	}

	srv, err := server.New(cfg, db, zap.NewNop(), server.WithClock(service.FixedClock(today)))
	require.NoError(t, err)
	return &app{db: db, router: srv.Router()}
}

func (a *app) get(target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func (a *app) post(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}
