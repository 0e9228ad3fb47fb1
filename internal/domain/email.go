package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// InvoiceEmailData holds the display-ready fields of the invoice summary email.
// Money values are formatted to two decimal places, the event date as "January 2, 2006".
type InvoiceEmailData struct {
	Email         string
	EventName     string
	EventDate     string
	InvoiceNumber string
	FinalCost     string
	Deposit       string
	BalanceDue    string
	Notes         string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendInvoiceSummary(ctx context.Context, data *InvoiceEmailData) error
}
