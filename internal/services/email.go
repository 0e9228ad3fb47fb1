package services

import (
	"context"
	"fmt"
	"log"

	"zafaevents/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendInvoiceSummary sends the invoice summary email using the "invoice" template.
func (s *emailService) SendInvoiceSummary(ctx context.Context, data *domain.InvoiceEmailData) error {
	if data == nil {
		return fmt.Errorf("invoice email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("invoice", data)
	if err != nil {
		return fmt.Errorf("failed to render invoice template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send invoice email: %w", err)
	}
	log.Printf("[EMAIL] Invoice %s sent to %s", data.InvoiceNumber, data.Email)
	return nil
}
