package models

import (
	"fmt"
	"time"
)

type Participant struct {
	ID     uint    `gorm:"primaryKey"`
	Name   string  `gorm:"size:120;not null"`
	Email  string  `gorm:"size:254;not null;uniqueIndex"`
	Events []Event `gorm:"many2many:event_participants;constraint:OnDelete:CASCADE;"`

	// Populated only by annotated list queries.
	EventCount int64 `gorm:"->;-:migration"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

const ParticipantOrder = "participants.name ASC, participants.id ASC"

func (p Participant) String() string {
	return fmt.Sprintf("%s <%s>", p.Name, p.Email)
}
