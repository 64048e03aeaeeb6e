package handlers

import (
	"net/http"

	"github.com/farellandr/eventure/internal/forms"
	"github.com/farellandr/eventure/internal/helpers"
	"github.com/farellandr/eventure/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ParticipantHandler struct {
	participants service.ParticipantService
	log          *zap.Logger
}

func NewParticipantHandler(participants service.ParticipantService, log *zap.Logger) *ParticipantHandler {
	return &ParticipantHandler{participants: participants, log: log}
}

func (h *ParticipantHandler) ListParticipants(c *gin.Context) {
	result, err := h.participants.List(c.Request.Context(), c.Query("page"))
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	render(c, http.StatusOK, "participant_list.html", "Participants", gin.H{
		"Participants": result.Participants,
		"Pager":        helpers.NewPager(result.Page, nil),
	})
}

func (h *ParticipantHandler) NewParticipant(c *gin.Context) {
	h.renderForm(c, forms.ParticipantInput{}, nil, 0)
}

func (h *ParticipantHandler) CreateParticipant(c *gin.Context) {
	var in forms.ParticipantInput
	if !bindForm(c, &in) {
		return
	}

	if _, err := h.participants.Create(c.Request.Context(), in); err != nil {
		if fields, ok := formErrors(err); ok {
			h.renderForm(c, in, fields, 0)
			return
		}
		respondWithServiceError(c, h.log, err)
		return
	}

	redirect(c, "/participants/")
}

func (h *ParticipantHandler) EditParticipant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	participant, err := h.participants.Get(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	h.renderForm(c, forms.ParticipantInputFrom(*participant), nil, id)
}

func (h *ParticipantHandler) UpdateParticipant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in forms.ParticipantInput
	if !bindForm(c, &in) {
		return
	}

	if _, err := h.participants.Update(c.Request.Context(), id, in); err != nil {
		if fields, ok := formErrors(err); ok {
			h.renderForm(c, in, fields, id)
			return
		}
		respondWithServiceError(c, h.log, err)
		return
	}

	redirect(c, "/participants/")
}

func (h *ParticipantHandler) ConfirmDeleteParticipant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	participant, err := h.participants.Get(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	render(c, http.StatusOK, "confirm_delete.html", "Delete participant", gin.H{
		"Confirm": confirmDelete{Object: participant.String(), Kind: "participant", CancelURL: "/participants/"},
	})
}

func (h *ParticipantHandler) DeleteParticipant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.participants.Delete(c.Request.Context(), id); err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	redirect(c, "/participants/")
}

func (h *ParticipantHandler) renderForm(c *gin.Context, in forms.ParticipantInput, errs forms.Errors, id uint) {
	events, err := h.participants.Events(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	title := "Add participant"
	if id != 0 {
		title = "Edit participant"
	}
	render(c, http.StatusOK, "participant_form.html", title, gin.H{
		"Input":  in,
		"Errors": errs,
		"ID":     id,
		"Events": events,
	})
}
