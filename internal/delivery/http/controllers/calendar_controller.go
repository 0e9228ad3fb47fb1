package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"

	"zafaevents/internal/calendar"
	"zafaevents/internal/delivery/http/helpers"
	"zafaevents/internal/domain"
)

// monthLayout is the wire format of the month query parameter.
const monthLayout = "2006-01"

// MonthResponse is the data payload for GET /calendar (200).
// PrevMonth and NextMonth carry the reference dates reached by the month
// navigation (a fixed 30-day shift either way).
type MonthResponse struct {
	Month     string         `json:"month"`
	PrevMonth string         `json:"prev_month"`
	NextMonth string         `json:"next_month"`
	Days      []calendar.Day `json:"days"`
}

// MonthSuccessResponse is the success response envelope for GET /calendar (200).
type MonthSuccessResponse struct {
	Data  MonthResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type CalendarController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewCalendarController(logger *slog.Logger, svc domain.EventService) *CalendarController {
	return &CalendarController{
		Logger:  logger,
		Service: svc,
	}
}

// GetMonth godoc
// @Summary Month view of events
// @Description Returns one bucket per day of the requested month with the events falling on that day. The month query param is YYYY-MM and defaults to the current month.
// @Tags calendar
// @Produce json
// @Param month query string false "Reference month (YYYY-MM)"
// @Success 200 {object} controllers.MonthSuccessResponse "data contains the month grid"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar [get]
func (c *CalendarController) GetMonth(w http.ResponseWriter, r *http.Request) {
	ref := time.Now().UTC()
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := time.Parse(monthLayout, m)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "month must be formatted as YYYY-MM")
			return
		}
		ref = parsed
	}

	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not load events")
		return
	}

	resp := MonthResponse{
		Month:     ref.Format("January 2006"),
		PrevMonth: calendar.PrevMonth(ref).Format(monthLayout),
		NextMonth: calendar.NextMonth(ref).Format(monthLayout),
		Days:      calendar.MonthGrid(ref, events),
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// ExportICS godoc
// @Summary iCalendar export of all events
// @Description Streams every event as an all-day VEVENT in a text/calendar feed.
// @Tags calendar
// @Produce plain
// @Success 200 {string} string "iCalendar data"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar/export.ics [get]
func (c *CalendarController) ExportICS(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not load events")
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//zafaevents//calendar//EN")
	for _, e := range events {
		ev := cal.AddEvent(fmt.Sprintf("%s@zafaevents", e.ID))
		ev.SetCreatedTime(e.CreatedAt)
		ev.SetDtStampTime(e.UpdatedAt)
		ev.SetAllDayStartAt(e.Date)
		ev.SetAllDayEndAt(e.Date.AddDate(0, 0, 1))
		ev.SetSummary(e.Name)
		ev.SetDescription(fmt.Sprintf("Menu: %s (%d guests)", e.Menu, e.EstimatedGuests))
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="events.ics"`)
	w.WriteHeader(http.StatusOK)
	_ = cal.SerializeTo(w)
}
