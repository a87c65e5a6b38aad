package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Client talks to an OpenAI-compatible chat completion service. The API key
// is injected at construction and never appears in returned values.
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func New(opts Options) *Client {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}

	return &Client{
		client:  openai.NewClientWithConfig(cfg),
		model:   opts.Model,
		timeout: opts.Timeout,
	}
}

// Complete sends one blocking chat completion request and returns the raw
// model text. No retries; the call is bounded by the configured timeout.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		MaxTokens:   800,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: plannerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
