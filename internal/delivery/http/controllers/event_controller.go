package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"zafaevents/internal/delivery/http/helpers"
	"zafaevents/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// EventRequest is the request body for POST /events and PUT /events/{eventID}.
// The numeric fields arrive as form text and default to zero when they do not
// parse as numbers, mirroring the submission forms.
type EventRequest struct {
	Name            string `json:"name"`
	Date            string `json:"date"`
	EstimatedGuests string `json:"estimated_guests"`
	Menu            string `json:"menu"`
	EstimatedCost   string `json:"estimated_cost"`
	Notes           string `json:"notes"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (e EventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(e.Menu) == "" {
		errs = append(errs, "menu is required")
	}
	if strings.TrimSpace(e.Date) == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(dateLayout, strings.TrimSpace(e.Date)); err != nil {
		errs = append(errs, "date must be formatted as YYYY-MM-DD")
	}
	if domain.ParseCount(e.EstimatedGuests) < 0 {
		errs = append(errs, "estimated_guests must be non-negative")
	}
	if domain.ParseAmount(e.EstimatedCost) < 0 {
		errs = append(errs, "estimated_cost must be non-negative")
	}
	return errs
}

// toDraft converts the request into a domain event draft. Unparseable numeric
// fields have already been validated non-negative; here they fall back to 0.
func (e EventRequest) toDraft() *domain.Event {
	date, _ := time.Parse(dateLayout, strings.TrimSpace(e.Date))
	return &domain.Event{
		Name:            strings.TrimSpace(e.Name),
		Date:            date,
		EstimatedGuests: domain.ParseCount(e.EstimatedGuests),
		Menu:            strings.TrimSpace(e.Menu),
		EstimatedCost:   domain.ParseAmount(e.EstimatedCost),
		Notes:           e.Notes,
	}
}

// EventSuccessResponse is the success response envelope for single-event endpoints.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create a catering event. id and timestamps are server-generated. Numeric fields are text and default to 0 when not parseable.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.toDraft()
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not save event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces the editable fields of an event and refreshes updated_at; created_at never changes.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, req.toDraft())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not save event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not load event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// ListEvents godoc
// @Summary List all events
// @Description Returns every event, ascending by date.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsSuccessResponse "data is an array of events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not load events")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
