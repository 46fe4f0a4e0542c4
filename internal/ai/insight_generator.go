package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"
)

// Insight categories the model is asked to produce.
const (
	InsightSpendingChange  = "spending_change"
	InsightHighestCategory = "highest_category"
	InsightGstAlert        = "gst_alert"
	InsightGeneral         = "general"
)

const maxInsights = 5

// Insight is one generated insight. Value is an optional formatted figure
// such as a percentage or amount string.
type Insight struct {
	Type        string
	Title       string
	Description string
	Value       string
}

// InsightContext is the numeric context handed to the model: the month's
// aggregate, plus the top expense category and the previous month's
// expense total for comparison.
type InsightContext struct {
	TotalIncome           decimal.Decimal
	TotalExpenses         decimal.Decimal
	NetProfit             decimal.Decimal
	TotalInputGst         decimal.Decimal
	TotalOutputGst        decimal.Decimal
	NetGstPayable         decimal.Decimal
	HasTopCategory        bool
	TopCategory           string
	TopCategoryAmount     decimal.Decimal
	PreviousMonthExpenses decimal.Decimal
}

// IInsightGenerator turns a month's numbers into short advisory insights.
//
//go:generate mockery --name IInsightGenerator --output mock_IInsightGenerator.go
type IInsightGenerator interface {
	GenerateMonthlyInsights(ctx context.Context, insightCtx *InsightContext) ([]Insight, error)
}

var _ IInsightGenerator = (*Client)(nil)

// GenerateMonthlyInsights asks the model for 3-5 insight bullet points
// over the month's aggregated numbers. No retry on failure; one failed
// call degrades that single request.
func (c *Client) GenerateMonthlyInsights(ctx context.Context, insightCtx *InsightContext) ([]Insight, error) {
	if c.api == nil {
		return nil, ErrNotConfigured
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: insightPrompt(insightCtx)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrBadResponse
	}

	return parseInsightsResponse(resp.Choices[0].Message.Content)
}

func insightPrompt(insightCtx *InsightContext) string {
	var b strings.Builder
	b.WriteString(`You are a concise business advisor for Indian small businesses. Based on this month's numbers, return a JSON object with an "insights" key holding an array of 3-5 insight objects. Each object has: "type" (one of: spending_change, highest_category, gst_alert, general), "title" (short), "description" (1-2 sentences), optional "value" (e.g. percentage or amount string).

Numbers:
`)
	fmt.Fprintf(&b, "- Total Income: %s\n", insightCtx.TotalIncome)
	fmt.Fprintf(&b, "- Total Expenses: %s\n", insightCtx.TotalExpenses)
	fmt.Fprintf(&b, "- Net Profit: %s\n", insightCtx.NetProfit)
	fmt.Fprintf(&b, "- Input GST: %s\n", insightCtx.TotalInputGst)
	fmt.Fprintf(&b, "- Output GST: %s\n", insightCtx.TotalOutputGst)
	fmt.Fprintf(&b, "- Net GST Payable: %s\n", insightCtx.NetGstPayable)
	if insightCtx.HasTopCategory {
		fmt.Fprintf(&b, "- Highest expense category: %s (%s)\n", insightCtx.TopCategory, insightCtx.TopCategoryAmount)
	}
	fmt.Fprintf(&b, "- Previous month expenses: %s\n", insightCtx.PreviousMonthExpenses)
	b.WriteString(`
Include: spending increase/decrease % if comparable, highest expense category callout, and GST due alert if net GST payable > 0. Return only valid JSON, no markdown.`)
	return b.String()
}

// parseInsightsResponse decodes the model's JSON-object reply. The shape
// is loose by nature, so fields are coerced defensively and the list is
// capped at maxInsights.
func parseInsightsResponse(content string) ([]Insight, error) {
	var payload struct {
		Insights []struct {
			Type        string      `json:"type"`
			Title       string      `json:"title"`
			Description string      `json:"description"`
			Value       interface{} `json:"value"`
		} `json:"insights"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, ErrBadResponse
	}

	items := payload.Insights
	if len(items) > maxInsights {
		items = items[:maxInsights]
	}

	insights := make([]Insight, 0, len(items))
	for _, item := range items {
		insightType := item.Type
		if insightType == "" {
			insightType = InsightGeneral
		}
		value := ""
		if item.Value != nil {
			value = fmt.Sprintf("%v", item.Value)
		}
		insights = append(insights, Insight{
			Type:        insightType,
			Title:       item.Title,
			Description: item.Description,
			Value:       value,
		})
	}
	return insights, nil
}
