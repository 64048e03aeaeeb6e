package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/farellandr/eventure/config"
	"github.com/farellandr/eventure/internal/handlers"
	"github.com/farellandr/eventure/internal/helpers"
	"github.com/farellandr/eventure/internal/middleware"
	"github.com/farellandr/eventure/internal/repository"
	"github.com/farellandr/eventure/internal/service"
	"github.com/farellandr/eventure/web"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 30 * time.Second

// Server owns the HTTP engine and its dependencies.
type Server struct {
	cfg    *config.Config
	db     *gorm.DB
	log    *zap.Logger
	clock  service.Clock
	router *gin.Engine
}

type Option func(*Server)

// WithClock replaces the clock deciding which date is "today".
func WithClock(clock service.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

func New(cfg *config.Config, db *gorm.DB, log *zap.Logger, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:   cfg,
		db:    db,
		log:   log,
		clock: service.SystemClock(cfg.Location),
	}
	for _, opt := range opts {
		opt(s)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			helpers.RespondWithServerError(c, log, fmt.Errorf("panic: %v", recovered))
		}),
	)

	if cfg.Metrics.Enabled {
		metrics := middleware.NewMetrics(cfg.App.Name)
		r.Use(metrics.Middleware())
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	r.GET("/healthz", s.health)

	s.setupRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		helpers.RespondWithError(c, http.StatusNotFound, "The requested page could not be found.")
	})
	r.NoMethod(func(c *gin.Context) {
		helpers.RespondWithError(c, http.StatusMethodNotAllowed, "This page does not accept that request method.")
	})

	s.router = r
	return s, nil
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) setupRoutes(r *gin.Engine) {
	categoryRepo := repository.NewGormCategoryRepository(s.db)
	eventRepo := repository.NewGormEventRepository(s.db)
	participantRepo := repository.NewGormParticipantRepository(s.db)

	h := routeHandlers{
		events: handlers.NewEventHandler(
			service.NewEventService(eventRepo, categoryRepo, s.clock), s.log),
		participants: handlers.NewParticipantHandler(
			service.NewParticipantService(participantRepo, eventRepo), s.log),
		categories: handlers.NewCategoryHandler(
			service.NewCategoryService(categoryRepo), s.log),
		dashboard: handlers.NewDashboardHandler(
			service.NewDashboardService(eventRepo, participantRepo, s.clock), s.log),
	}

	// The same pages are served from the root and again under /events/.
	for _, prefix := range []string{"", "/events"} {
		g := r.Group(prefix + "/")
		g.Use(middleware.MountPrefix(prefix))
		h.mount(g)
	}
}

type routeHandlers struct {
	events       *handlers.EventHandler
	participants *handlers.ParticipantHandler
	categories   *handlers.CategoryHandler
	dashboard    *handlers.DashboardHandler
}

func (h routeHandlers) mount(g *gin.RouterGroup) {
	g.GET("/", h.events.ListEvents)
	g.GET("/dashboard/", h.dashboard.ShowDashboard)
	g.GET("/search/", h.events.SearchEvents)

	event := g.Group("/event")
	{
		event.GET("/add/", h.events.NewEvent)
		event.POST("/add/", h.events.CreateEvent)
		event.GET("/:id/", h.events.GetEvent)
		event.GET("/:id/edit/", h.events.EditEvent)
		event.POST("/:id/edit/", h.events.UpdateEvent)
		event.GET("/:id/delete/", h.events.ConfirmDeleteEvent)
		event.POST("/:id/delete/", h.events.DeleteEvent)
	}

	g.GET("/participants/", h.participants.ListParticipants)
	participant := g.Group("/participant")
	{
		participant.GET("/add/", h.participants.NewParticipant)
		participant.POST("/add/", h.participants.CreateParticipant)
		participant.GET("/:id/edit/", h.participants.EditParticipant)
		participant.POST("/:id/edit/", h.participants.UpdateParticipant)
		participant.GET("/:id/delete/", h.participants.ConfirmDeleteParticipant)
		participant.POST("/:id/delete/", h.participants.DeleteParticipant)
	}

	g.GET("/categories/", h.categories.ListCategories)
	category := g.Group("/category")
	{
		category.GET("/add/", h.categories.NewCategory)
		category.POST("/add/", h.categories.CreateCategory)
		category.GET("/:id/edit/", h.categories.EditCategory)
		category.POST("/:id/edit/", h.categories.UpdateCategory)
		category.GET("/:id/delete/", h.categories.ConfirmDeleteCategory)
		category.POST("/:id/delete/", h.categories.DeleteCategory)
	}
}

func (s *Server) health(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		s.log.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.log.Info("server exited")
	return nil
}
