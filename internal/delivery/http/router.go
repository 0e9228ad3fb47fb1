package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"zafaevents/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, invoiceController *controllers.InvoiceController, calendarController *controllers.CalendarController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventByID)
	mux.HandleFunc("PUT /events/{eventID}", eventController.UpdateEvent)

	// Invoices
	mux.HandleFunc("GET /invoices", invoiceController.ListInvoices)
	mux.HandleFunc("POST /events/{eventID}/invoices", invoiceController.GenerateInvoice)
	mux.HandleFunc("GET /invoices/{invoiceID}", invoiceController.GetInvoiceByID)
	mux.HandleFunc("PATCH /invoices/{invoiceID}/complete", invoiceController.CompleteInvoice)

	// Calendar
	mux.HandleFunc("GET /calendar", calendarController.GetMonth)
	mux.HandleFunc("GET /calendar/export.ics", calendarController.ExportICS)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
