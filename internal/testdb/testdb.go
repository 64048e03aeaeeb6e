// Package testdb provides isolated, migrated in-memory databases for tests.
package testdb

import (
	"fmt"
	"testing"
	"time"

	"github.com/farellandr/eventure/config"
	"github.com/farellandr/eventure/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// New opens a fresh shared-cache in-memory sqlite database, migrates it and
// closes it when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// Date builds a calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func CreateCategory(t testing.TB, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category %q: %v", name, err)
	}
	return category
}

func CreateEvent(t testing.TB, db *gorm.DB, category *models.Category, name, location string, date time.Time, clock string) *models.Event {
	t.Helper()
	tod, err := models.ParseTimeOfDay(clock)
	if err != nil {
		t.Fatalf("parse time %q: %v", clock, err)
	}
	event := &models.Event{
		Name:       name,
		Location:   location,
		Date:       date,
		Time:       tod,
		CategoryID: category.ID,
	}
	if err := db.Omit("Category", "Participants").Create(event).Error; err != nil {
		t.Fatalf("create event %q: %v", name, err)
	}
	return event
}

func CreateParticipant(t testing.TB, db *gorm.DB, name, email string, events ...*models.Event) *models.Participant {
	t.Helper()
	participant := &models.Participant{Name: name, Email: email}
	if err := db.Omit("Events").Create(participant).Error; err != nil {
		t.Fatalf("create participant %q: %v", email, err)
	}
	for _, e := range events {
		err := db.Exec("INSERT INTO event_participants (event_id, participant_id) VALUES (?, ?)", e.ID, participant.ID).Error
		if err != nil {
			t.Fatalf("link participant %q to event %d: %v", email, e.ID, err)
		}
	}
	return participant
}
