package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"zafaevents/internal/domain"
)

// eventDateDisplayFormat matches the "Month D, YYYY" rendering used everywhere
// an event date is shown to a person.
const eventDateDisplayFormat = "January 2, 2006"

type invoiceService struct {
	invoiceRepo    domain.InvoiceRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewInvoiceService(invoiceRepo domain.InvoiceRepository, eventRepo domain.EventRepository, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.InvoiceService {
	return &invoiceService{
		invoiceRepo:    invoiceRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// GenerateInvoice snapshots the event into a new pending invoice, persists it,
// and then, only if a destination address was given, sends the invoice summary
// email. The send is strictly best-effort and happens after the invoice is
// committed: a failure is logged and swallowed, never rolled back, never
// retried, and never surfaced to the caller.
func (s *invoiceService) GenerateInvoice(ctx context.Context, eventID string, draft domain.InvoiceDraft) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	invoice := domain.NewInvoiceFromEvent(event, draft.FinalCost, draft.Deposit, draft.Email, draft.Notes, time.Now())
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	if invoice.Email != "" {
		data := &domain.InvoiceEmailData{
			Email:         invoice.Email,
			EventName:     invoice.EventName,
			EventDate:     invoice.EventDate.Format(eventDateDisplayFormat),
			InvoiceNumber: invoice.InvoiceNumber,
			FinalCost:     invoice.FinalCost.String(),
			Deposit:       invoice.Deposit.String(),
			BalanceDue:    invoice.BalanceDue.String(),
			Notes:         invoice.Notes,
		}
		if err := s.emailService.SendInvoiceSummary(ctx, data); err != nil {
			s.logger.Warn("invoice email failed",
				"invoice_number", invoice.InvoiceNumber,
				"to", invoice.Email,
				"err", err,
			)
		}
	}

	return invoice, nil
}

// CompleteInvoice moves a pending invoice to completed. Completing an
// already-completed invoice is a no-op success; there is no way back.
func (s *invoiceService) CompleteInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	if !invoice.Complete(time.Now()) {
		return invoice, nil
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, invoiceID, invoice.Status, invoice.UpdatedAt); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update invoice status: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	if invoices == nil {
		invoices = []*domain.Invoice{}
	}
	return invoices, nil
}
