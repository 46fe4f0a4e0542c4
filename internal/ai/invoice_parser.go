package ai

import (
	"context"
	"encoding/json"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"
)

// maxInvoiceTextLen bounds how much OCR/pasted text goes into the prompt.
const maxInvoiceTextLen = 6000

var supportedCurrencies = map[string]bool{
	"INR": true,
	"USD": true,
	"EUR": true,
	"GBP": true,
}

// ParsedInvoice is the structured result of extracting fields from raw
// invoice text. Date is YYYY-MM-DD; missing fields come back zero/empty.
type ParsedInvoice struct {
	VendorName    string
	InvoiceNumber string
	Amount        decimal.Decimal
	Currency      string
	GstPercent    decimal.Decimal
	Date          string
}

// IInvoiceParser extracts transaction fields from raw invoice text.
//
//go:generate mockery --name IInvoiceParser --output mock_IInvoiceParser.go
type IInvoiceParser interface {
	ParseInvoiceText(ctx context.Context, rawText string) (*ParsedInvoice, error)
}

var _ IInvoiceParser = (*Client)(nil)

const invoiceSystemPrompt = `You are an expert at extracting invoice/bill data from any country. Given text from an invoice (OCR or copy-paste), return a JSON object with exactly these keys:
- vendorName (string)
- invoiceNumber (string)
- amount (number, the total amount as shown on the invoice - use the numeric value only)
- currency (string, ISO 4217 code: INR for Indian Rupee, USD for US Dollar, EUR for Euro, GBP for British Pound. Detect from symbols like ₹ $ € £ or words like "Rupees", "Dollars", "USD", "INR")
- gstPercent (number, e.g. 18 for 18% - use 0 if not GST or different tax)
- date (string in YYYY-MM-DD)
If something is missing use empty string or 0. For currency use INR only if clearly Indian Rupees, otherwise the currency shown on the invoice. Return only valid JSON, no markdown.`

// ParseInvoiceText extracts invoice fields from raw text.
func (c *Client) ParseInvoiceText(ctx context.Context, rawText string) (*ParsedInvoice, error) {
	if c.api == nil {
		return nil, ErrNotConfigured
	}
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return nil, ErrBadResponse
	}
	if len(rawText) > maxInvoiceTextLen {
		rawText = rawText[:maxInvoiceTextLen]
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: invoiceSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: rawText},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrBadResponse
	}

	return parseInvoiceResponse(resp.Choices[0].Message.Content)
}

func parseInvoiceResponse(content string) (*ParsedInvoice, error) {
	var payload struct {
		VendorName    string      `json:"vendorName"`
		InvoiceNumber string      `json:"invoiceNumber"`
		Amount        interface{} `json:"amount"`
		Currency      string      `json:"currency"`
		GstPercent    interface{} `json:"gstPercent"`
		Date          string      `json:"date"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, ErrBadResponse
	}

	return &ParsedInvoice{
		VendorName:    payload.VendorName,
		InvoiceNumber: payload.InvoiceNumber,
		Amount:        coerceDecimal(payload.Amount),
		Currency:      NormalizeCurrency(payload.Currency),
		GstPercent:    coerceDecimal(payload.GstPercent),
		Date:          payload.Date,
	}, nil
}

// coerceDecimal turns whatever the model emitted for a numeric field into
// a decimal, defaulting to zero like the rest of the loose-shape handling.
func coerceDecimal(value interface{}) decimal.Decimal {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// NormalizeCurrency uppercases and truncates a currency code, falling
// back to INR for anything outside the supported set.
func NormalizeCurrency(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) > 3 {
		code = code[:3]
	}
	if supportedCurrencies[code] {
		return code
	}
	return "INR"
}
