package models

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoice_ComputeTotals(t *testing.T) {
	tests := []struct {
		name          string
		amount        string
		taxRate       string
		wantTaxAmount string
		wantTotal     string
	}{
		{
			name:          "standard VAT",
			amount:        "1000",
			taxRate:       "22",
			wantTaxAmount: "220",
			wantTotal:     "1220",
		},
		{
			name:          "zero rate",
			amount:        "1000",
			taxRate:       "0",
			wantTaxAmount: "0",
			wantTotal:     "1000",
		},
		{
			name:          "rounding half away from zero",
			amount:        "33.33",
			taxRate:       "22",
			wantTaxAmount: "7.33",
			wantTotal:     "40.66",
		},
		{
			name:          "cent boundary",
			amount:        "0.25",
			taxRate:       "22",
			wantTaxAmount: "0.06",
			wantTotal:     "0.31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice := Invoice{
				Amount:  decimal.RequireFromString(tt.amount),
				TaxRate: decimal.RequireFromString(tt.taxRate),
			}
			invoice.ComputeTotals()

			assert.True(t, invoice.TaxAmount.Equal(decimal.RequireFromString(tt.wantTaxAmount)),
				"tax amount: got %s want %s", invoice.TaxAmount, tt.wantTaxAmount)
			assert.True(t, invoice.TotalAmount.Equal(decimal.RequireFromString(tt.wantTotal)),
				"total amount: got %s want %s", invoice.TotalAmount, tt.wantTotal)
		})
	}
}

func TestInvoice_Validate(t *testing.T) {
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	paidDate := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	validInvoice := func() Invoice {
		inv := Invoice{
			Number:    gofakeit.LetterN(4) + "-2024-001",
			Amount:    decimal.NewFromInt(1000),
			TaxRate:   decimal.NewFromInt(22),
			Status:    InvoiceStatusSent,
			IssueDate: issueDate,
			DueDate:   issueDate.AddDate(0, 1, 0),
		}
		inv.ComputeTotals()
		return inv
	}

	t.Run("valid invoice", func(t *testing.T) {
		inv := validInvoice()
		require.NoError(t, inv.Validate())
	})

	t.Run("negative amount", func(t *testing.T) {
		inv := validInvoice()
		inv.Amount = decimal.NewFromInt(-5)
		inv.ComputeTotals()
		assert.ErrorIs(t, inv.Validate(), ErrInvalidInvoiceAmount)
	})

	t.Run("tax rate above 100", func(t *testing.T) {
		inv := validInvoice()
		inv.TaxRate = decimal.NewFromInt(150)
		inv.ComputeTotals()
		assert.ErrorIs(t, inv.Validate(), ErrInvalidTaxRate)
	})

	t.Run("total mismatch", func(t *testing.T) {
		inv := validInvoice()
		inv.TotalAmount = inv.TotalAmount.Add(decimal.NewFromFloat(0.01))
		assert.ErrorIs(t, inv.Validate(), ErrInvoiceTotalMismatch)
	})

	t.Run("paid date on unpaid invoice", func(t *testing.T) {
		inv := validInvoice()
		inv.PaidDate = &paidDate
		assert.ErrorIs(t, inv.Validate(), ErrPaidDateWithoutPaid)
	})

	t.Run("unknown status", func(t *testing.T) {
		inv := validInvoice()
		inv.Status = "cancelled"
		assert.ErrorIs(t, inv.Validate(), ErrInvalidInvoiceStatus)
	})
}

func TestInvoice_StatusTransitions(t *testing.T) {
	paidDate := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	t.Run("draft to sent allowed", func(t *testing.T) {
		inv := Invoice{Status: InvoiceStatusDraft}
		assert.True(t, inv.CanTransitionTo(InvoiceStatusSent))
	})

	t.Run("draft cannot be paid directly", func(t *testing.T) {
		inv := Invoice{Status: InvoiceStatusDraft}
		assert.False(t, inv.CanTransitionTo(InvoiceStatusPaid))
		assert.ErrorIs(t, inv.MarkPaid(paidDate), ErrInvalidStatusTransition)
	})

	t.Run("overdue invoice can still be paid", func(t *testing.T) {
		inv := Invoice{Status: InvoiceStatusOverdue}
		require.NoError(t, inv.MarkPaid(paidDate))
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
		require.NotNil(t, inv.PaidDate)
		assert.Equal(t, paidDate, *inv.PaidDate)
	})

	t.Run("paid is terminal", func(t *testing.T) {
		inv := Invoice{Status: InvoiceStatusPaid}
		assert.False(t, inv.CanTransitionTo(InvoiceStatusSent))
		assert.False(t, inv.CanTransitionTo(InvoiceStatusOverdue))
	})
}
