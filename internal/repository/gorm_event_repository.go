package repository

import (
	"context"
	"time"

	"github.com/farellandr/eventure/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventParticipant is a row of the many-to-many join table.
type eventParticipant struct {
	EventID       uint
	ParticipantID uint
}

func (eventParticipant) TableName() string {
	return "event_participants"
}

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) List(ctx context.Context, filter EventFilter, page Page) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Select("events.*, COUNT(event_participants.participant_id) AS participant_count").
		Joins("LEFT JOIN event_participants ON event_participants.event_id = events.id").
		Scopes(filter.scope, page.scope).
		Group("events.id").
		Order(models.EventOrder).
		Preload("Category").
		Find(&events).Error
	return events, translate(err)
}

func (r *GormEventRepository) Count(ctx context.Context, filter EventFilter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Event{}).Scopes(filter.scope).Count(&total).Error
	return total, translate(err)
}

func (r *GormEventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order(models.ParticipantOrder)
		}).
		First(&event, id).Error
	if err != nil {
		return nil, translate(err)
	}
	event.ParticipantCount = int64(len(event.Participants))
	return &event, nil
}

func (r *GormEventRepository) Create(ctx context.Context, event *models.Event) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(event).Error)
}

func (r *GormEventRepository) Update(ctx context.Context, event *models.Event) error {
	res := r.db.WithContext(ctx).
		Model(&models.Event{ID: event.ID}).
		Select("name", "description", "date", "time", "location", "category_id").
		Updates(event)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormEventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&eventParticipant{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Event{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *GormEventRepository) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uint
	err := r.db.WithContext(ctx).Model(&models.Event{}).Where("id IN ?", ids).Pluck("id", &found).Error
	return found, translate(err)
}

func (r *GormEventRepository) Stats(ctx context.Context, today time.Time) (EventStats, error) {
	var stats EventStats
	day := dateParam(today)
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Select(`COUNT(*) AS total,
			COUNT(CASE WHEN events.date >= ? THEN 1 END) AS upcoming,
			COUNT(CASE WHEN events.date < ? THEN 1 END) AS past`, day, day).
		Scan(&stats).Error
	return stats, translate(err)
}
