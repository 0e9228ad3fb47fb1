package domain

import (
	"context"
	"fmt"
	"time"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusCompleted InvoiceStatus = "completed"
)

// Invoice is a billing document generated from an Event. The event fields are
// a snapshot taken at creation time: later edits to the source event do not
// touch an existing invoice, and an invoice survives its event.
// swagger:model Invoice
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	EventID       string        `json:"event_id"`
	EventName     string        `json:"event_name"`
	EventDate     time.Time     `json:"event_date"`
	EstimatedCost Cents         `json:"estimated_cost"`
	FinalCost     Cents         `json:"final_cost"`
	Deposit       Cents         `json:"deposit"`
	BalanceDue    Cents         `json:"balance_due"`
	Email         string        `json:"email"`
	Notes         string        `json:"notes"`
	Status        InvoiceStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// NewInvoiceFromEvent builds a pending invoice snapshotting the event at now.
// The invoice number is derived from the creation instant in milliseconds and
// is never recomputed. ID is set by the repository on create.
func NewInvoiceFromEvent(event *Event, finalCost, deposit Cents, email, notes string, now time.Time) *Invoice {
	return &Invoice{
		InvoiceNumber: fmt.Sprintf("INV-%d", now.UnixMilli()),
		EventID:       event.ID,
		EventName:     event.Name,
		EventDate:     event.Date,
		EstimatedCost: event.EstimatedCost,
		FinalCost:     finalCost,
		Deposit:       deposit,
		BalanceDue:    BalanceDue(finalCost, deposit),
		Email:         email,
		Notes:         notes,
		Status:        InvoiceStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Complete moves the invoice to completed. The transition is one-way and
// idempotent: completing an already-completed invoice changes nothing.
// It reports whether the status actually changed.
func (i *Invoice) Complete(now time.Time) bool {
	if i.Status == InvoiceStatusCompleted {
		return false
	}
	i.Status = InvoiceStatusCompleted
	i.UpdatedAt = now
	return true
}

// InvoiceRepository defines the interface for invoice storage.
// List returns invoices newest first (descending created_at).
type InvoiceRepository interface {
	List(ctx context.Context) ([]*Invoice, error)
	GetByID(ctx context.Context, id string) (*Invoice, error)
	Create(ctx context.Context, invoice *Invoice) error
	UpdateStatus(ctx context.Context, id string, status InvoiceStatus, updatedAt time.Time) error
}

// InvoiceDraft carries the user-supplied fields of a generate-invoice action.
type InvoiceDraft struct {
	FinalCost Cents
	Deposit   Cents
	Email     string
	Notes     string
}

// InvoiceService defines the application operations on invoices.
type InvoiceService interface {
	GenerateInvoice(ctx context.Context, eventID string, draft InvoiceDraft) (*Invoice, error)
	CompleteInvoice(ctx context.Context, invoiceID string) (*Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*Invoice, error)
	ListInvoices(ctx context.Context) ([]*Invoice, error)
}
