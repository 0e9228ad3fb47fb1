package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zafaevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInvoiceService implements domain.InvoiceService for handler tests.
type fakeInvoiceService struct {
	generateErr     error
	completeErr     error
	getErr          error
	listErr         error
	generateResult  *domain.Invoice
	completeResult  *domain.Invoice
	getResult       *domain.Invoice
	listResult      []*domain.Invoice
	lastGenerateID  string
	lastDraft       domain.InvoiceDraft
	lastCompleteID  string
}

func (f *fakeInvoiceService) GenerateInvoice(ctx context.Context, eventID string, draft domain.InvoiceDraft) (*domain.Invoice, error) {
	f.lastGenerateID = eventID
	f.lastDraft = draft
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.generateResult, nil
}

func (f *fakeInvoiceService) CompleteInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	f.lastCompleteID = invoiceID
	if f.completeErr != nil {
		return nil, f.completeErr
	}
	return f.completeResult, nil
}

func (f *fakeInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeInvoiceService) ListInvoices(ctx context.Context) ([]*domain.Invoice, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listResult == nil {
		return []*domain.Invoice{}, nil
	}
	return f.listResult, nil
}

func sampleInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:            "invc-1",
		InvoiceNumber: "INV-1714567890123",
		EventID:       "ev-1",
		EventName:     "Gala Dinner",
		EventDate:     time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		EstimatedCost: domain.Cents(250000),
		FinalCost:     domain.Cents(220000),
		Deposit:       domain.Cents(50000),
		BalanceDue:    domain.Cents(170000),
		Email:         "client@example.com",
		Status:        domain.InvoiceStatusPending,
	}
}

func TestInvoiceController_GenerateInvoice(t *testing.T) {
	tests := []struct {
		name           string
		eventID        string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkDraft     func(t *testing.T, draft domain.InvoiceDraft)
	}{
		{
			name:       "success",
			eventID:    "ev-1",
			body:       `{"final_cost":"2200.00","deposit":"500.00","email":"client@example.com","notes":"due on receipt"}`,
			wantStatus: http.StatusCreated,
			checkDraft: func(t *testing.T, draft domain.InvoiceDraft) {
				assert.Equal(t, domain.Cents(220000), draft.FinalCost)
				assert.Equal(t, domain.Cents(50000), draft.Deposit)
				assert.Equal(t, "client@example.com", draft.Email)
			},
		},
		{
			name:       "deposit defaults to zero",
			eventID:    "ev-1",
			body:       `{"final_cost":"100"}`,
			wantStatus: http.StatusCreated,
			checkDraft: func(t *testing.T, draft domain.InvoiceDraft) {
				assert.Equal(t, domain.Cents(10000), draft.FinalCost)
				assert.Equal(t, domain.Cents(0), draft.Deposit)
				assert.Empty(t, draft.Email)
			},
		},
		{
			name:           "missing final cost",
			eventID:        "ev-1",
			body:           `{"deposit":"100"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "final_cost is required",
		},
		{
			name:           "bad email",
			eventID:        "ev-1",
			body:           `{"final_cost":"100","email":"not-an-email"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "email must be a valid email address",
		},
		{
			name:           "missing eventID",
			eventID:        "",
			body:           `{"final_cost":"100"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "missing eventID",
		},
		{
			name:           "event not found",
			eventID:        "ev-missing",
			body:           `{"final_cost":"100"}`,
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "event not found",
		},
		{
			name:           "service error",
			eventID:        "ev-1",
			body:           `{"final_cost":"100"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "could not generate invoice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeInvoiceService{generateErr: tt.fakeErr, generateResult: sampleInvoice()}
			ctrl := NewInvoiceController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/events/"+tt.eventID+"/invoices", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.GenerateInvoice(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr.Body)
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				var invoice domain.Invoice
				decodeData(t, envelope, &invoice)
				assert.Equal(t, "INV-1714567890123", invoice.InvoiceNumber)
				assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)
				assert.Equal(t, tt.eventID, fake.lastGenerateID)
				if tt.checkDraft != nil {
					tt.checkDraft(t, fake.lastDraft)
				}
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
		})
	}
}

func TestInvoiceController_CompleteInvoice(t *testing.T) {
	completed := sampleInvoice()
	completed.Status = domain.InvoiceStatusCompleted

	tests := []struct {
		name       string
		invoiceID  string
		fakeErr    error
		wantStatus int
	}{
		{"success", "invc-1", nil, http.StatusOK},
		{"not found", "invc-missing", domain.ErrNotFound, http.StatusNotFound},
		{"missing invoiceID", "", nil, http.StatusBadRequest},
		{"service error", "invc-1", errors.New("db error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeInvoiceService{completeErr: tt.fakeErr, completeResult: completed}
			ctrl := NewInvoiceController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPatch, "/invoices/"+tt.invoiceID+"/complete", nil)
			req.SetPathValue("invoiceID", tt.invoiceID)
			rr := httptest.NewRecorder()

			ctrl.CompleteInvoice(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			envelope := decodeEnvelope(t, rr.Body)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				var invoice domain.Invoice
				decodeData(t, envelope, &invoice)
				assert.Equal(t, domain.InvoiceStatusCompleted, invoice.Status)
				assert.Equal(t, tt.invoiceID, fake.lastCompleteID)
				return
			}
			require.NotNil(t, envelope.Error)
		})
	}
}

func TestInvoiceController_GetInvoiceByID(t *testing.T) {
	tests := []struct {
		name       string
		invoiceID  string
		fakeErr    error
		wantStatus int
	}{
		{"success", "invc-1", nil, http.StatusOK},
		{"not found", "invc-missing", domain.ErrNotFound, http.StatusNotFound},
		{"missing invoiceID", "", nil, http.StatusBadRequest},
		{"service error", "invc-1", errors.New("db error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeInvoiceService{getErr: tt.fakeErr, getResult: sampleInvoice()}
			ctrl := NewInvoiceController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/invoices/"+tt.invoiceID, nil)
			req.SetPathValue("invoiceID", tt.invoiceID)
			rr := httptest.NewRecorder()

			ctrl.GetInvoiceByID(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			envelope := decodeEnvelope(t, rr.Body)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				var invoice domain.Invoice
				decodeData(t, envelope, &invoice)
				assert.Equal(t, "invc-1", invoice.ID)
				assert.Equal(t, domain.Cents(170000), invoice.BalanceDue)
				return
			}
			require.NotNil(t, envelope.Error)
		})
	}
}

func TestInvoiceController_ListInvoices(t *testing.T) {
	t.Run("success renders amounts as decimals", func(t *testing.T) {
		fake := &fakeInvoiceService{listResult: []*domain.Invoice{sampleInvoice()}}
		ctrl := NewInvoiceController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/invoices", nil)
		rr := httptest.NewRecorder()

		ctrl.ListInvoices(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, `"balance_due":1700.00`)
		assert.Contains(t, body, `"final_cost":2200.00`)
		var envelope struct {
			Data []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		require.Len(t, envelope.Data, 1)
	})

	t.Run("empty list is a JSON array not null", func(t *testing.T) {
		ctrl := NewInvoiceController(testLogger, &fakeInvoiceService{})
		req := httptest.NewRequest(http.MethodGet, "/invoices", nil)
		rr := httptest.NewRecorder()

		ctrl.ListInvoices(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"data":[]`)
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := NewInvoiceController(testLogger, &fakeInvoiceService{listErr: errors.New("db error")})
		req := httptest.NewRequest(http.MethodGet, "/invoices", nil)
		rr := httptest.NewRecorder()

		ctrl.ListInvoices(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
