package postgres

import (
	"context"
	"database/sql"
	"errors"

	"zafaevents/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, date, estimated_guests, menu, estimated_cost_cents, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Name, e.Date, e.EstimatedGuests, e.Menu, int64(e.EstimatedCost), e.Notes, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, name, date, estimated_guests, menu, estimated_cost_cents, notes, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var costCents int64
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Date, &e.EstimatedGuests, &e.Menu, &costCents, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e.EstimatedCost = domain.Cents(costCents)
	return e, nil
}

// List returns all events in ascending date order; the calendar projection
// relies on this ordering.
func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, name, date, estimated_guests, menu, estimated_cost_cents, notes, created_at, updated_at
		FROM events
		ORDER BY date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var costCents int64
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.EstimatedGuests, &e.Menu, &costCents, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.EstimatedCost = domain.Cents(costCents)
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update rewrites the editable fields. created_at is never touched; the
// caller is responsible for refreshing UpdatedAt before the call.
func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $1, date = $2, estimated_guests = $3, menu = $4, estimated_cost_cents = $5, notes = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Name, e.Date, e.EstimatedGuests, e.Menu, int64(e.EstimatedCost), e.Notes, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
