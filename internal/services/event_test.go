package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"zafaevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	order     []string
	nextID    int
	createErr error
	listErr   error
	updateErr error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:   make(map[string]*domain.Event),
		nextID: 1,
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	stored := *e
	f.byID[e.ID] = &stored
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Event
	for _, id := range f.order {
		cp := *f.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *e
	f.byID[e.ID] = &stored
	return nil
}

func validDraft() *domain.Event {
	return &domain.Event{
		Name:            "Gala Dinner",
		Date:            time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		EstimatedGuests: 120,
		Menu:            "Buffet",
		EstimatedCost:   domain.Cents(250000),
		Notes:           "outdoor seating",
	}
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	tests := []struct {
		name        string
		setup       func() *fakeEventRepo
		mutate      func(e *domain.Event)
		wantErr     bool
		wantInvalid bool
		assert      func(t *testing.T, repo *fakeEventRepo, event *domain.Event)
	}{
		{
			name:   "success",
			setup:  newFakeEventRepo,
			mutate: func(e *domain.Event) {},
			assert: func(t *testing.T, repo *fakeEventRepo, event *domain.Event) {
				require.NotEmpty(t, event.ID)
				assert.False(t, event.CreatedAt.IsZero())
				assert.False(t, event.UpdatedAt.IsZero())
				got, ok := repo.byID[event.ID]
				require.True(t, ok)
				assert.Equal(t, "Gala Dinner", got.Name)
				assert.Equal(t, domain.Cents(250000), got.EstimatedCost)
			},
		},
		{
			name:        "missing name",
			setup:       newFakeEventRepo,
			mutate:      func(e *domain.Event) { e.Name = "  " },
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:        "missing menu",
			setup:       newFakeEventRepo,
			mutate:      func(e *domain.Event) { e.Menu = "" },
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:        "missing date",
			setup:       newFakeEventRepo,
			mutate:      func(e *domain.Event) { e.Date = time.Time{} },
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:        "negative guests",
			setup:       newFakeEventRepo,
			mutate:      func(e *domain.Event) { e.EstimatedGuests = -1 },
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:        "negative cost",
			setup:       newFakeEventRepo,
			mutate:      func(e *domain.Event) { e.EstimatedCost = domain.Cents(-1) },
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name: "repo error",
			setup: func() *fakeEventRepo {
				repo := newFakeEventRepo()
				repo.createErr = errors.New("db error")
				return repo
			},
			mutate:  func(e *domain.Event) {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := tt.setup()
			svc := NewEventService(repo, timeout)
			event := validDraft()
			tt.mutate(event)
			err := svc.CreateEvent(ctx, event)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantInvalid {
					require.True(t, errors.Is(err, domain.ErrInvalidInput))
				}
				return
			}
			require.NoError(t, err)
			if tt.assert != nil {
				tt.assert(t, repo, event)
			}
		})
	}
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	seed := func(repo *fakeEventRepo) *domain.Event {
		event := validDraft()
		event.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		event.UpdatedAt = event.CreatedAt
		_ = repo.Create(ctx, event)
		return event
	}

	t.Run("success replaces editable fields", func(t *testing.T) {
		repo := newFakeEventRepo()
		seeded := seed(repo)

		draft := validDraft()
		draft.Name = "Gala Dinner (rescheduled)"
		draft.Date = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
		draft.EstimatedGuests = 90
		draft.EstimatedCost = domain.Cents(220000)

		svc := NewEventService(repo, timeout)
		got, err := svc.UpdateEvent(ctx, seeded.ID, draft)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, seeded.ID, got.ID)
		assert.Equal(t, "Gala Dinner (rescheduled)", got.Name)
		assert.Equal(t, 90, got.EstimatedGuests)
		assert.Equal(t, domain.Cents(220000), got.EstimatedCost)
		assert.True(t, got.CreatedAt.Equal(seeded.CreatedAt), "created_at must not change")
		assert.True(t, got.UpdatedAt.After(seeded.UpdatedAt), "updated_at must be refreshed")
	})

	t.Run("not found", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, timeout)
		got, err := svc.UpdateEvent(ctx, "ev-missing", validDraft())
		require.Error(t, err)
		require.Nil(t, got)
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("invalid draft rejected before lookup", func(t *testing.T) {
		repo := newFakeEventRepo()
		seeded := seed(repo)
		draft := validDraft()
		draft.Name = ""
		svc := NewEventService(repo, timeout)
		got, err := svc.UpdateEvent(ctx, seeded.ID, draft)
		require.Error(t, err)
		require.Nil(t, got)
		require.True(t, errors.Is(err, domain.ErrInvalidInput))
		stored := repo.byID[seeded.ID]
		assert.Equal(t, "Gala Dinner", stored.Name, "stored event must be untouched")
	})

	t.Run("repo update error", func(t *testing.T) {
		repo := newFakeEventRepo()
		seeded := seed(repo)
		repo.updateErr = errors.New("db error")
		svc := NewEventService(repo, timeout)
		got, err := svc.UpdateEvent(ctx, seeded.ID, validDraft())
		require.Error(t, err)
		require.Nil(t, got)
		require.False(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestEventService_GetEventByID(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	t.Run("success", func(t *testing.T) {
		repo := newFakeEventRepo()
		event := validDraft()
		_ = repo.Create(ctx, event)
		svc := NewEventService(repo, timeout)
		got, err := svc.GetEventByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, event.ID, got.ID)
		assert.Equal(t, "Gala Dinner", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), timeout)
		got, err := svc.GetEventByID(ctx, "ev-missing")
		require.Error(t, err)
		require.Nil(t, got)
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestEventService_ListEvents(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	t.Run("returns all events", func(t *testing.T) {
		repo := newFakeEventRepo()
		first := validDraft()
		second := validDraft()
		second.Name = "Wedding"
		_ = repo.Create(ctx, first)
		_ = repo.Create(ctx, second)
		svc := NewEventService(repo, timeout)
		events, err := svc.ListEvents(ctx)
		require.NoError(t, err)
		require.Len(t, events, 2)
	})

	t.Run("empty store returns empty slice not nil", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), timeout)
		events, err := svc.ListEvents(ctx)
		require.NoError(t, err)
		require.NotNil(t, events)
		require.Len(t, events, 0)
	})

	t.Run("repo error", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.listErr = errors.New("db error")
		svc := NewEventService(repo, timeout)
		events, err := svc.ListEvents(ctx)
		require.Error(t, err)
		require.Nil(t, events)
	})
}
