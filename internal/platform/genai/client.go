// Package genai wraps the external text-generation API behind a single
// prompt-in/text-out interface so request handlers can be tested against a
// stub.
package genai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the text-generation boundary: a free-text prompt goes in, a
// free-text completion comes out. Network, auth, and quota failures surface
// as ordinary errors.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient calls the OpenAI chat-completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed client. The model falls back to
// a small default when empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Generate sends the prompt as a single user message and returns the first
// completion choice.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// StubClient is a test double that returns a canned response or error.
type StubClient struct {
	Response string
	Err      error

	// Prompts records every prompt passed to Generate.
	Prompts []string
}

func (s *StubClient) Generate(_ context.Context, prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}
