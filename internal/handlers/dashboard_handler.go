package handlers

import (
	"net/http"

	"github.com/farellandr/eventure/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboard service.DashboardService
	log       *zap.Logger
}

func NewDashboardHandler(dashboard service.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, log: log}
}

func (h *DashboardHandler) ShowDashboard(c *gin.Context) {
	dashboard, err := h.dashboard.Build(c.Request.Context(), c.Query("filter"), c.Query("show"))
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	render(c, http.StatusOK, "dashboard.html", "Dashboard", gin.H{
		"Dashboard": dashboard,
	})
}
