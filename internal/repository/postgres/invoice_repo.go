package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"zafaevents/internal/domain"
)

type invoiceRepository struct {
	DB *sql.DB
}

func NewInvoiceRepository(db *sql.DB) domain.InvoiceRepository {
	return &invoiceRepository{
		DB: db,
	}
}

const invoiceColumns = `id, invoice_number, event_id, event_name, event_date, estimated_cost_cents,
		final_cost_cents, deposit_cents, balance_due_cents, email, notes, status, created_at, updated_at`

func (r *invoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_number, event_id, event_name, event_date, estimated_cost_cents,
			final_cost_cents, deposit_cents, balance_due_cents, email, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		inv.InvoiceNumber, inv.EventID, inv.EventName, inv.EventDate, int64(inv.EstimatedCost),
		int64(inv.FinalCost), int64(inv.Deposit), int64(inv.BalanceDue),
		inv.Email, inv.Notes, string(inv.Status), inv.CreatedAt, inv.UpdatedAt,
	).Scan(&inv.ID)
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id = $1
	`
	inv, err := scanInvoice(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

// List returns all invoices newest first.
func (r *invoiceRepository) List(ctx context.Context) ([]*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus, updatedAt time.Time) error {
	query := `UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := r.DB.ExecContext(ctx, query, string(status), updatedAt, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row rowScanner) (*domain.Invoice, error) {
	inv := &domain.Invoice{}
	var estimated, final, deposit, balance int64
	var status string
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.EventID, &inv.EventName, &inv.EventDate, &estimated,
		&final, &deposit, &balance, &inv.Email, &inv.Notes, &status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.EstimatedCost = domain.Cents(estimated)
	inv.FinalCost = domain.Cents(final)
	inv.Deposit = domain.Cents(deposit)
	inv.BalanceDue = domain.Cents(balance)
	inv.Status = domain.InvoiceStatus(status)
	return inv, nil
}
