package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"zafaevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEvent(event); err != nil {
		return err
	}

	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	return s.eventRepo.Create(ctx, event)
}

// UpdateEvent replaces the editable fields of an existing event and refreshes
// updated_at. created_at is preserved from the stored record.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, draft *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEvent(draft); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	event.Name = draft.Name
	event.Date = draft.Date
	event.EstimatedGuests = draft.EstimatedGuests
	event.Menu = draft.Menu
	event.EstimatedCost = draft.EstimatedCost
	event.Notes = draft.Notes
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func validateEvent(event *domain.Event) error {
	if strings.TrimSpace(event.Name) == "" {
		return fmt.Errorf("%w: event name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(event.Menu) == "" {
		return fmt.Errorf("%w: menu is required", domain.ErrInvalidInput)
	}
	if event.Date.IsZero() {
		return fmt.Errorf("%w: event date is required", domain.ErrInvalidInput)
	}
	if event.EstimatedGuests < 0 {
		return fmt.Errorf("%w: estimated guests must be non-negative", domain.ErrInvalidInput)
	}
	if event.EstimatedCost < 0 {
		return fmt.Errorf("%w: estimated cost must be non-negative", domain.ErrInvalidInput)
	}
	return nil
}
