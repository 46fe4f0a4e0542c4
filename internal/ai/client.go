// Package ai wraps the OpenAI chat-completions API behind the two
// collaborator contracts the ledger core consumes: the monthly insight
// generator and the invoice text parser. Both are best-effort; callers
// degrade to placeholder or empty content when this package errors.
package ai

import (
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrNotConfigured means no API key was provided. Callers show a
	// placeholder and must not cache it as real content.
	ErrNotConfigured = errors.New("ai: OPENAI_API_KEY not configured")

	// ErrBadResponse means the model returned no content or content that
	// does not parse into the expected JSON shape.
	ErrBadResponse = errors.New("ai: malformed model response")
)

// Client calls OpenAI. The zero API key leaves the client unconfigured;
// every call then fails with ErrNotConfigured.
type Client struct {
	api   *openai.Client
	model string
}

func NewClient(apiKey, model string) *Client {
	client := &Client{model: model}
	if apiKey != "" {
		client.api = openai.NewClient(apiKey)
	}
	return client
}
