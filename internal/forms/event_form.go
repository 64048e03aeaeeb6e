package forms

import (
	"strconv"
	"strings"

	"github.com/farellandr/eventure/internal/models"
)

// EventInput is the raw event form submission.
type EventInput struct {
	Name        string `form:"name" validate:"required,max=150"`
	Description string `form:"description"`
	Date        string `form:"date" validate:"required"`
	Time        string `form:"time" validate:"required"`
	Location    string `form:"location" validate:"required,max=255"`
	Category    string `form:"category" validate:"required"`
}

func EventInputFrom(e models.Event) EventInput {
	in := EventInput{
		Name:        e.Name,
		Description: e.Description,
		Location:    e.Location,
	}
	if !e.Date.IsZero() {
		in.Date = e.Date.Format(models.DateLayout)
		in.Time = e.Time.Short()
	}
	if e.CategoryID != 0 {
		in.Category = strconv.FormatUint(uint64(e.CategoryID), 10)
	}
	return in
}

// CleanEvent trims, validates and parses the input. Whether the category
// exists is checked by the caller.
func CleanEvent(in EventInput) (models.Event, Errors) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Location = strings.TrimSpace(in.Location)
	in.Category = strings.TrimSpace(in.Category)

	errs := Errors{}
	check(in, errs)

	var event models.Event
	event.Name = in.Name
	event.Description = in.Description
	event.Location = in.Location

	if in.Date != "" {
		date, err := models.ParseDate(in.Date)
		if err != nil {
			errs.Add("date", MsgInvalidDate)
		}
		event.Date = date
	}
	if in.Time != "" {
		tod, err := models.ParseTimeOfDay(in.Time)
		if err != nil {
			errs.Add("time", MsgInvalidTime)
		}
		event.Time = tod
	}
	if in.Category != "" {
		id, err := ParseID(in.Category)
		if err != nil {
			errs.Add("category", MsgInvalidPick)
		}
		event.CategoryID = id
	}

	if errs.Any() {
		return models.Event{}, errs
	}
	return event, nil
}

// ParseID parses a positive database id.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}
