package domain

import (
	"context"
	"time"
)

// Event represents a catering event with estimated planning figures.
// Date carries calendar-day granularity (UTC midnight); events are never deleted.
// swagger:model Event
type Event struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Date            time.Time `json:"date"`
	EstimatedGuests int       `json:"estimated_guests"`
	Menu            string    `json:"menu"`
	EstimatedCost   Cents     `json:"estimated_cost"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EventRepository defines the interface for event storage.
// List returns events in ascending date order.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
}

// EventService defines the application operations on events.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, eventID string, draft *Event) (*Event, error)
	GetEventByID(ctx context.Context, eventID string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
}
