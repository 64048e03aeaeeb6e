package models

import (
	"fmt"
	"time"
)

// Event is a single dated occurrence owned by a Category. Date and Time are
// stored in separate columns; Date is always normalized to midnight UTC.
type Event struct {
	ID           uint          `gorm:"primaryKey"`
	Name         string        `gorm:"size:150;not null"`
	Description  string        `gorm:"type:text;not null;default:''"`
	Date         time.Time     `gorm:"type:date;not null;index:idx_events_date;index:idx_events_category_date,priority:2"`
	Time         TimeOfDay     `gorm:"type:time;not null"`
	Location     string        `gorm:"size:255;not null"`
	CategoryID   uint          `gorm:"not null;index:idx_events_category_date,priority:1"`
	Category     Category      `gorm:"constraint:OnDelete:CASCADE;"`
	Participants []Participant `gorm:"many2many:event_participants;constraint:OnDelete:CASCADE;"`

	// Populated only by annotated list queries.
	ParticipantCount int64 `gorm:"->;-:migration"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EventOrder sorts newest dates first and earlier start times first within a day.
const EventOrder = "events.date DESC, events.time ASC, events.id ASC"

// IsPast reports whether today is strictly after the event date. The time of
// day is ignored.
func (e Event) IsPast(today time.Time) bool {
	return DateOf(today).After(DateOf(e.Date))
}

func (e Event) String() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.Date.Format(DateLayout))
}
