// Package gst implements GST arithmetic for Indian small businesses.
// Input GST is GST paid on purchases (expenses, creditable); output GST
// is GST collected on sales (income). Net GST payable is output minus
// input, floored at zero.
package gst

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Summary aggregates the GST position for a period.
type Summary struct {
	TotalInputGst  decimal.Decimal
	TotalOutputGst decimal.Decimal
	NetGstPayable  decimal.Decimal
}

// TaxFromInclusive extracts the GST component from a tax-inclusive amount:
// amount * rate / (100 + rate). A rate of zero or below yields zero.
// Callers validate inputs; negative amounts and rates are not supported.
func TaxFromInclusive(amountInclusive, ratePercent decimal.Decimal) decimal.Decimal {
	if ratePercent.Sign() <= 0 {
		return decimal.Zero
	}
	return amountInclusive.Mul(ratePercent).Div(hundred.Add(ratePercent))
}

// BaseFromInclusive computes the pre-tax base from a tax-inclusive amount:
// amount / (1 + rate/100). A rate of zero or below returns the amount unchanged.
func BaseFromInclusive(amountInclusive, ratePercent decimal.Decimal) decimal.Decimal {
	if ratePercent.Sign() <= 0 {
		return amountInclusive
	}
	return amountInclusive.Div(decimal.NewFromInt(1).Add(ratePercent.Div(hundred)))
}

// Summarize combines the income-side and expense-side GST totals.
// A credit surplus (input > output) reports a zero liability rather than
// a negative one; refunds and carry-forward are handled outside this system.
func Summarize(incomeGst, expenseGst decimal.Decimal) Summary {
	net := incomeGst.Sub(expenseGst)
	if net.Sign() < 0 {
		net = decimal.Zero
	}
	return Summary{
		TotalInputGst:  expenseGst,
		TotalOutputGst: incomeGst,
		NetGstPayable:  net,
	}
}
