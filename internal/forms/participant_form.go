package forms

import (
	"strconv"
	"strings"

	"github.com/farellandr/eventure/internal/models"
)

// ParticipantInput is the raw participant form submission. Events holds the
// ids ticked in the multi-select and may be empty.
type ParticipantInput struct {
	Name   string   `form:"name" validate:"required,max=120"`
	Email  string   `form:"email" validate:"required,max=254,email"`
	Events []string `form:"events"`
}

func ParticipantInputFrom(p models.Participant) ParticipantInput {
	in := ParticipantInput{Name: p.Name, Email: p.Email}
	for _, e := range p.Events {
		in.Events = append(in.Events, strconv.FormatUint(uint64(e.ID), 10))
	}
	return in
}

// CleanParticipant trims and validates the input and parses the selected
// event ids. Email uniqueness and event existence are checked by the caller.
func CleanParticipant(in ParticipantInput) (models.Participant, []uint, Errors) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	errs := Errors{}
	check(in, errs)

	var eventIDs []uint
	for _, raw := range in.Events {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		id, err := ParseID(raw)
		if err != nil {
			if !errs.Has("events") {
				errs.Add("events", MsgInvalidPick)
			}
			continue
		}
		eventIDs = append(eventIDs, id)
	}

	if errs.Any() {
		return models.Participant{}, nil, errs
	}
	return models.Participant{Name: in.Name, Email: in.Email}, eventIDs, nil
}
