package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/farellandr/eventure/internal/models"
	"gorm.io/gorm"
)

// DateRange is inclusive on both ends.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// EventFilter describes which events a listing returns. All set fields are
// combined with AND; Text matches name OR location, case-insensitively.
type EventFilter struct {
	Text       string
	CategoryID *uint
	Range      *DateRange

	// Dashboard partitions relative to a reference date.
	OnOrAfter *time.Time
	Before    *time.Time
	On        *time.Time
}

func dateParam(t time.Time) string {
	return models.DateOf(t).Format(models.DateLayout)
}

func nextDayParam(t time.Time) string {
	return models.DateOf(t).AddDate(0, 0, 1).Format(models.DateLayout)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeOperator picks a case-insensitive LIKE for the dialect. Postgres needs
// ILIKE to use the trigram indexes; sqlite's LIKE already ignores ASCII case.
func likeOperator(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "ILIKE"
	}
	return "LIKE"
}

// scope translates the filter into WHERE clauses on the events table. Date
// bounds are expressed as half-open ranges so they hold regardless of how the
// dialect stores DATE values.
func (f EventFilter) scope(db *gorm.DB) *gorm.DB {
	if text := strings.TrimSpace(f.Text); text != "" {
		op := likeOperator(db)
		pattern := "%" + likeEscaper.Replace(text) + "%"
		db = db.Where(
			fmt.Sprintf(`(events.name %[1]s ? ESCAPE '\' OR events.location %[1]s ? ESCAPE '\')`, op),
			pattern, pattern,
		)
	}
	if f.CategoryID != nil {
		db = db.Where("events.category_id = ?", *f.CategoryID)
	}
	if f.Range != nil {
		db = db.Where("events.date >= ? AND events.date < ?", dateParam(f.Range.Start), nextDayParam(f.Range.End))
	}
	if f.OnOrAfter != nil {
		db = db.Where("events.date >= ?", dateParam(*f.OnOrAfter))
	}
	if f.Before != nil {
		db = db.Where("events.date < ?", dateParam(*f.Before))
	}
	if f.On != nil {
		db = db.Where("events.date >= ? AND events.date < ?", dateParam(*f.On), nextDayParam(*f.On))
	}
	return db
}

// Page selects a window of an ordered result. A zero Limit means everything.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) scope(db *gorm.DB) *gorm.DB {
	if p.Limit > 0 {
		db = db.Limit(p.Limit).Offset(p.Offset)
	}
	return db
}
