package service

import (
	"context"
	"fmt"

	"github.com/farellandr/eventure/internal/forms"
	"github.com/farellandr/eventure/internal/models"
	"github.com/farellandr/eventure/internal/pagination"
	"github.com/farellandr/eventure/internal/repository"
)

const (
	ParticipantsPerPage = 20

	msgParticipantEmailTaken = "Participant with this Email already exists."
)

type ParticipantPage struct {
	Participants []models.Participant
	Page         *pagination.Page
}

type ParticipantService interface {
	List(ctx context.Context, page string) (*ParticipantPage, error)
	Get(ctx context.Context, id uint) (*models.Participant, error)
	Create(ctx context.Context, in forms.ParticipantInput) (*models.Participant, error)
	Update(ctx context.Context, id uint, in forms.ParticipantInput) (*models.Participant, error)
	// Delete removes the participant from every event, keeping the events
	Delete(ctx context.Context, id uint) error
	// Events returns the choices offered by the participant form
	Events(ctx context.Context) ([]models.Event, error)
}

type participantService struct {
	participantRepo repository.ParticipantRepository
	eventRepo       repository.EventRepository
}

func NewParticipantService(participantRepo repository.ParticipantRepository, eventRepo repository.EventRepository) ParticipantService {
	return &participantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
	}
}

func (s *participantService) List(ctx context.Context, raw string) (*ParticipantPage, error) {
	total, err := s.participantRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}

	page, window, err := paginate(total, ParticipantsPerPage, raw)
	if err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.List(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return &ParticipantPage{Participants: participants, Page: page}, nil
}

func (s *participantService) Get(ctx context.Context, id uint) (*models.Participant, error) {
	return s.participantRepo.GetByID(ctx, id)
}

func (s *participantService) Create(ctx context.Context, in forms.ParticipantInput) (*models.Participant, error) {
	participant, eventIDs, err := s.clean(ctx, in, 0)
	if err != nil {
		return nil, err
	}
	if err := s.participantRepo.Create(ctx, &participant, eventIDs); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}
	return &participant, nil
}

func (s *participantService) Update(ctx context.Context, id uint, in forms.ParticipantInput) (*models.Participant, error) {
	existing, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cleaned, eventIDs, err := s.clean(ctx, in, id)
	if err != nil {
		return nil, err
	}

	existing.Name = cleaned.Name
	existing.Email = cleaned.Email
	existing.Events = nil
	if err := s.participantRepo.Update(ctx, existing, eventIDs); err != nil {
		return nil, fmt.Errorf("update participant %d: %w", id, err)
	}
	return existing, nil
}

func (s *participantService) Delete(ctx context.Context, id uint) error {
	return s.participantRepo.Delete(ctx, id)
}

func (s *participantService) Events(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.List(ctx, repository.EventFilter{}, repository.Page{})
}

func (s *participantService) clean(ctx context.Context, in forms.ParticipantInput, id uint) (models.Participant, []uint, error) {
	participant, eventIDs, errs := forms.CleanParticipant(in)
	if errs.Any() {
		return participant, nil, invalid(errs)
	}

	errs = forms.Errors{}
	taken, err := s.participantRepo.EmailTaken(ctx, participant.Email, id)
	if err != nil {
		return participant, nil, fmt.Errorf("check participant email: %w", err)
	}
	if taken {
		errs.Add("email", msgParticipantEmailTaken)
	}

	if len(eventIDs) > 0 {
		found, err := s.eventRepo.ExistingIDs(ctx, eventIDs)
		if err != nil {
			return participant, nil, fmt.Errorf("check participant events: %w", err)
		}
		if !containsAll(found, eventIDs) {
			errs.Add("events", forms.MsgInvalidPick)
		}
	}

	return participant, eventIDs, invalid(errs)
}

func containsAll(have, want []uint) bool {
	set := make(map[uint]struct{}, len(have))
	for _, id := range have {
		set[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
