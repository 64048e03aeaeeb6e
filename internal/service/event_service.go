package service

import (
	"context"
	"fmt"

	"github.com/farellandr/eventure/internal/forms"
	"github.com/farellandr/eventure/internal/models"
	"github.com/farellandr/eventure/internal/pagination"
	"github.com/farellandr/eventure/internal/repository"
)

const EventsPerPage = 10

// EventPage is one page of a filtered event listing.
type EventPage struct {
	Events []models.Event
	Page   *pagination.Page
}

// SearchResult is the outcome of a text search. Query is the text exactly as
// it was submitted.
type SearchResult struct {
	Query  string
	Events []models.Event
}

type EventService interface {
	// List returns the requested page of events matching filter. An invalid
	// or out-of-range page reports ErrNotFound.
	List(ctx context.Context, filter repository.EventFilter, page string) (*EventPage, error)
	Search(ctx context.Context, query string) (*SearchResult, error)
	Get(ctx context.Context, id uint) (*models.Event, error)
	Create(ctx context.Context, in forms.EventInput) (*models.Event, error)
	Update(ctx context.Context, id uint, in forms.EventInput) (*models.Event, error)
	Delete(ctx context.Context, id uint) error
	// IsPast reports whether the event's date lies before today
	IsPast(event *models.Event) bool
	// Categories returns the choices offered by the event form
	Categories(ctx context.Context) ([]models.Category, error)
}

type eventService struct {
	eventRepo    repository.EventRepository
	categoryRepo repository.CategoryRepository
	clock        Clock
}

func NewEventService(eventRepo repository.EventRepository, categoryRepo repository.CategoryRepository, clock Clock) EventService {
	return &eventService{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

func (s *eventService) List(ctx context.Context, filter repository.EventFilter, raw string) (*EventPage, error) {
	total, err := s.eventRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	page, window, err := paginate(total, EventsPerPage, raw)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.List(ctx, filter, window)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return &EventPage{Events: events, Page: page}, nil
}

func (s *eventService) Search(ctx context.Context, query string) (*SearchResult, error) {
	events, err := s.eventRepo.List(ctx, repository.EventFilter{Text: query}, repository.Page{})
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return &SearchResult{Query: query, Events: events}, nil
}

func (s *eventService) Get(ctx context.Context, id uint) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) Create(ctx context.Context, in forms.EventInput) (*models.Event, error) {
	event, err := s.clean(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, &event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &event, nil
}

func (s *eventService) Update(ctx context.Context, id uint, in forms.EventInput) (*models.Event, error) {
	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cleaned, err := s.clean(ctx, in)
	if err != nil {
		return nil, err
	}

	existing.Name = cleaned.Name
	existing.Description = cleaned.Description
	existing.Date = cleaned.Date
	existing.Time = cleaned.Time
	existing.Location = cleaned.Location
	existing.CategoryID = cleaned.CategoryID
	existing.Category = models.Category{}
	if err := s.eventRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update event %d: %w", id, err)
	}
	return existing, nil
}

func (s *eventService) Delete(ctx context.Context, id uint) error {
	return s.eventRepo.Delete(ctx, id)
}

func (s *eventService) IsPast(event *models.Event) bool {
	return event.IsPast(s.clock.Today())
}

func (s *eventService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *eventService) clean(ctx context.Context, in forms.EventInput) (models.Event, error) {
	event, errs := forms.CleanEvent(in)
	if errs.Any() {
		return event, invalid(errs)
	}

	exists, err := s.categoryRepo.Exists(ctx, event.CategoryID)
	if err != nil {
		return event, fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return event, invalid(forms.Errors{"category": {forms.MsgInvalidPick}})
	}
	return event, nil
}
