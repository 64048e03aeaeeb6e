package service

import (
	"context"
	"fmt"
	"time"

	"github.com/farellandr/eventure/internal/models"
	"github.com/farellandr/eventure/internal/repository"
)

// Recognised values of the dashboard "filter" and "show" parameters.
const (
	FilterUpcoming   = "upcoming"
	FilterPast       = "past"
	FilterAll        = "all"
	ShowParticipants = "participants"
)

// Dashboard is everything the organizer dashboard renders.
type Dashboard struct {
	Today             time.Time
	Stats             repository.EventStats
	TotalParticipants int64
	TodaysEvents      []models.Event
	Filter            string
	FilteredEvents    []models.Event
	ShowParticipants  bool
	Participants      []models.Participant
}

type DashboardService interface {
	Build(ctx context.Context, filter, show string) (*Dashboard, error)
}

type dashboardService struct {
	eventRepo       repository.EventRepository
	participantRepo repository.ParticipantRepository
	clock           Clock
}

func NewDashboardService(eventRepo repository.EventRepository, participantRepo repository.ParticipantRepository, clock Clock) DashboardService {
	return &dashboardService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		clock:           clock,
	}
}

func (s *dashboardService) Build(ctx context.Context, filter, show string) (*Dashboard, error) {
	today := s.clock.Today()

	stats, err := s.eventRepo.Stats(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("event stats: %w", err)
	}

	participants, err := s.participantRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}

	todays, err := s.eventRepo.List(ctx, repository.EventFilter{On: &today}, repository.Page{})
	if err != nil {
		return nil, fmt.Errorf("list today's events: %w", err)
	}

	var subset repository.EventFilter
	switch filter {
	case FilterUpcoming:
		subset.OnOrAfter = &today
	case FilterPast:
		subset.Before = &today
	default:
		filter = FilterAll
	}
	filtered, err := s.eventRepo.List(ctx, subset, repository.Page{})
	if err != nil {
		return nil, fmt.Errorf("list %s events: %w", filter, err)
	}

	dashboard := &Dashboard{
		Today:             today,
		Stats:             stats,
		TotalParticipants: participants,
		TodaysEvents:      todays,
		Filter:            filter,
		FilteredEvents:    filtered,
	}

	if show == ShowParticipants {
		dashboard.ShowParticipants = true
		dashboard.Participants, err = s.participantRepo.List(ctx, repository.Page{})
		if err != nil {
			return nil, fmt.Errorf("list participants: %w", err)
		}
	}
	return dashboard, nil
}
