package handlers

import (
	"net/http"

	"github.com/farellandr/eventure/internal/forms"
	"github.com/farellandr/eventure/internal/helpers"
	"github.com/farellandr/eventure/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	events service.EventService
	log    *zap.Logger
}

func NewEventHandler(events service.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{events: events, log: log}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()
	params := helpers.ParseEventListParams(c)

	result, err := h.events.List(ctx, params.Filter(), c.Query("page"))
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	categories, err := h.events.Categories(ctx)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	render(c, http.StatusOK, "event_list.html", "Events", gin.H{
		"Events":     result.Events,
		"Pager":      helpers.NewPager(result.Page, params.Values()),
		"Params":     params,
		"Categories": categories,
	})
}

func (h *EventHandler) SearchEvents(c *gin.Context) {
	result, err := h.events.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	render(c, http.StatusOK, "event_search.html", "Search", gin.H{
		"Query":  result.Query,
		"Events": result.Events,
	})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	event, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	render(c, http.StatusOK, "event_detail.html", event.Name, gin.H{
		"Event":  event,
		"IsPast": h.events.IsPast(event),
	})
}

func (h *EventHandler) NewEvent(c *gin.Context) {
	h.renderForm(c, forms.EventInput{}, nil, 0)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var in forms.EventInput
	if !bindForm(c, &in) {
		return
	}

	if _, err := h.events.Create(c.Request.Context(), in); err != nil {
		if fields, ok := formErrors(err); ok {
			h.renderForm(c, in, fields, 0)
			return
		}
		respondWithServiceError(c, h.log, err)
		return
	}

	redirect(c, "/")
}

func (h *EventHandler) EditEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	event, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	h.renderForm(c, forms.EventInputFrom(*event), nil, id)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in forms.EventInput
	if !bindForm(c, &in) {
		return
	}

	if _, err := h.events.Update(c.Request.Context(), id, in); err != nil {
		if fields, ok := formErrors(err); ok {
			h.renderForm(c, in, fields, id)
			return
		}
		respondWithServiceError(c, h.log, err)
		return
	}

	redirect(c, "/")
}

func (h *EventHandler) ConfirmDeleteEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	event, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	render(c, http.StatusOK, "confirm_delete.html", "Delete event", gin.H{
		"Confirm": confirmDelete{Object: event.String(), Kind: "event", CancelURL: "/"},
	})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.events.Delete(c.Request.Context(), id); err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	redirect(c, "/")
}

func (h *EventHandler) renderForm(c *gin.Context, in forms.EventInput, errs forms.Errors, id uint) {
	categories, err := h.events.Categories(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	title := "Add event"
	if id != 0 {
		title = "Edit event"
	}
	render(c, http.StatusOK, "event_form.html", title, gin.H{
		"Input":      in,
		"Errors":     errs,
		"ID":         id,
		"Categories": categories,
	})
}
