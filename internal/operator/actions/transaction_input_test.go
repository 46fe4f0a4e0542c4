package actions

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

func validInput() TransactionInput {
	return TransactionInput{
		Type:       sqlconfig.TypeExpense,
		VendorName: "Sharma Traders",
		Amount:     decimal.RequireFromString("11800"),
		Currency:   "INR",
		GstPercent: decimal.RequireFromString("18"),
		Category:   "Raw Materials",
		Date:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidate_Valid(t *testing.T) {
	input := validInput()
	assert.NoError(t, input.Validate())
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TransactionInput)
	}{
		{"bad type", func(i *TransactionInput) { i.Type = "transfer" }},
		{"blank vendor", func(i *TransactionInput) { i.VendorName = "   " }},
		{"blank category", func(i *TransactionInput) { i.Category = "" }},
		{"zero amount", func(i *TransactionInput) { i.Amount = decimal.Zero }},
		{"negative amount", func(i *TransactionInput) { i.Amount = decimal.RequireFromString("-1") }},
		{"negative gst", func(i *TransactionInput) { i.GstPercent = decimal.RequireFromString("-5") }},
		{"gst over 100", func(i *TransactionInput) { i.GstPercent = decimal.RequireFromString("101") }},
		{"zero date", func(i *TransactionInput) { i.Date = time.Time{} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			assert.Error(t, input.Validate())
		})
	}
}

func TestNormalized_TrimsAndDefaults(t *testing.T) {
	input := validInput()
	input.VendorName = "  Sharma Traders  "
	input.Category = " Raw Materials "
	input.InvoiceNumber = " INV-042 "
	input.Currency = ""

	normalized := input.normalized()
	assert.Equal(t, "Sharma Traders", normalized.VendorName)
	assert.Equal(t, "Raw Materials", normalized.Category)
	assert.Equal(t, "INV-042", normalized.InvoiceNumber)
	assert.Equal(t, "INR", normalized.Currency)
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "INR", normalizeCurrency(""))
	assert.Equal(t, "INR", normalizeCurrency("  inr "))
	assert.Equal(t, "USD", normalizeCurrency("usd"))
	// Over-long codes are truncated to three characters.
	assert.Equal(t, "RUP", normalizeCurrency("Rupees"))
}

func TestGstAmount_DerivedFromInclusiveAmount(t *testing.T) {
	input := validInput()
	// 11800 inclusive at 18% carries exactly 1800 of GST.
	assert.True(t, input.gstAmount().Equal(decimal.RequireFromString("1800")))

	input.GstPercent = decimal.Zero
	assert.True(t, input.gstAmount().IsZero())
}
