package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"zafaevents/internal/delivery/http/helpers"
	"zafaevents/internal/domain"
)

// GenerateInvoiceRequest is the request body for POST /events/{eventID}/invoices.
// final_cost and deposit are form text; deposit is optional and defaults to 0.
type GenerateInvoiceRequest struct {
	FinalCost string `json:"final_cost"`
	Deposit   string `json:"deposit"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`
}

// Validate implements Validator.
func (g GenerateInvoiceRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(g.FinalCost) == "" {
		errs = append(errs, "final_cost is required")
	}
	if domain.ParseAmount(g.FinalCost) < 0 {
		errs = append(errs, "final_cost must be non-negative")
	}
	if domain.ParseAmount(g.Deposit) < 0 {
		errs = append(errs, "deposit must be non-negative")
	}
	if g.Email != "" && !emailRegex.MatchString(strings.TrimSpace(g.Email)) {
		errs = append(errs, "email must be a valid email address")
	}
	return errs
}

// InvoiceSuccessResponse is the success response envelope for single-invoice endpoints.
type InvoiceSuccessResponse struct {
	Data  *domain.Invoice   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListInvoicesSuccessResponse is the success response envelope for GET /invoices (200).
type ListInvoicesSuccessResponse struct {
	Data  []*domain.Invoice `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type InvoiceController struct {
	Logger  *slog.Logger
	Service domain.InvoiceService
}

func NewInvoiceController(logger *slog.Logger, svc domain.InvoiceService) *InvoiceController {
	return &InvoiceController{
		Logger:  logger,
		Service: svc,
	}
}

// GenerateInvoice godoc
// @Summary Generate an invoice for an event
// @Description Snapshots the event into a new pending invoice with a generated invoice number and a derived balance due (final cost minus deposit, not clamped). If email is given, an invoice summary is sent best-effort after the invoice is persisted; a send failure never fails the request.
// @Tags invoices
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param invoice body GenerateInvoiceRequest true "Invoice data"
// @Success 201 {object} controllers.InvoiceSuccessResponse "data contains the created invoice"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/invoices [post]
func (c *InvoiceController) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req GenerateInvoiceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draft := domain.InvoiceDraft{
		FinalCost: domain.ParseAmount(req.FinalCost),
		Deposit:   domain.ParseAmount(req.Deposit),
		Email:     strings.TrimSpace(req.Email),
		Notes:     req.Notes,
	}
	invoice, err := c.Service.GenerateInvoice(r.Context(), eventID, draft)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not generate invoice")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, invoice)
}

// CompleteInvoice godoc
// @Summary Mark an invoice as completed
// @Description One-way status transition pending -> completed. Completing an already-completed invoice succeeds and changes nothing; there is no reverse transition.
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID (UUID)"
// @Success 200 {object} controllers.InvoiceSuccessResponse "data contains the invoice"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invoices/{invoiceID}/complete [patch]
func (c *InvoiceController) CompleteInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID := r.PathValue("invoiceID")
	if invoiceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing invoiceID")
		return
	}
	invoice, err := c.Service.CompleteInvoice(r.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "invoice not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not update invoice")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, invoice)
}

// GetInvoiceByID godoc
// @Summary Get an invoice by ID
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID (UUID)"
// @Success 200 {object} controllers.InvoiceSuccessResponse "data contains the invoice"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invoices/{invoiceID} [get]
func (c *InvoiceController) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	invoiceID := r.PathValue("invoiceID")
	if invoiceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing invoiceID")
		return
	}
	invoice, err := c.Service.GetInvoiceByID(r.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "invoice not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not load invoice")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, invoice)
}

// ListInvoices godoc
// @Summary List all invoices
// @Description Returns every invoice, newest first.
// @Tags invoices
// @Produce json
// @Success 200 {object} controllers.ListInvoicesSuccessResponse "data is an array of invoices"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invoices [get]
func (c *InvoiceController) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := c.Service.ListInvoices(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not load invoices")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, invoices)
}
