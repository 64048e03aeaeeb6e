package repository

import (
	"context"

	"github.com/farellandr/eventure/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormParticipantRepository struct {
	db *gorm.DB
}

func NewGormParticipantRepository(db *gorm.DB) *GormParticipantRepository {
	return &GormParticipantRepository{db: db}
}

func (r *GormParticipantRepository) List(ctx context.Context, page Page) ([]models.Participant, error) {
	var participants []models.Participant
	err := r.db.WithContext(ctx).
		Model(&models.Participant{}).
		Select("participants.*, COUNT(event_participants.event_id) AS event_count").
		Joins("LEFT JOIN event_participants ON event_participants.participant_id = participants.id").
		Scopes(page.scope).
		Group("participants.id").
		Order(models.ParticipantOrder).
		Find(&participants).Error
	return participants, translate(err)
}

func (r *GormParticipantRepository) GetByID(ctx context.Context, id uint) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order(models.EventOrder)
		}).
		First(&participant, id).Error
	if err != nil {
		return nil, translate(err)
	}
	participant.EventCount = int64(len(participant.Events))
	return &participant, nil
}

func (r *GormParticipantRepository) Create(ctx context.Context, participant *models.Participant, eventIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(participant).Error; err != nil {
			return err
		}
		return linkEvents(tx, participant.ID, eventIDs)
	})
	return translate(err)
}

func (r *GormParticipantRepository) Update(ctx context.Context, participant *models.Participant, eventIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Participant{ID: participant.ID}).
			Select("name", "email").
			Updates(participant)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("participant_id = ?", participant.ID).Delete(&eventParticipant{}).Error; err != nil {
			return err
		}
		return linkEvents(tx, participant.ID, eventIDs)
	})
	return translate(err)
}

func linkEvents(tx *gorm.DB, participantID uint, eventIDs []uint) error {
	if len(eventIDs) == 0 {
		return nil
	}
	rows := make([]eventParticipant, 0, len(eventIDs))
	seen := make(map[uint]struct{}, len(eventIDs))
	for _, id := range eventIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, eventParticipant{EventID: id, ParticipantID: participantID})
	}
	return tx.Create(&rows).Error
}

func (r *GormParticipantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("participant_id = ?", id).Delete(&eventParticipant{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Participant{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *GormParticipantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Participant{}).Count(&count).Error
	return count, translate(err)
}

func (r *GormParticipantRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Participant{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
