// Package genai implements the text-generation collaborator: an
// OpenAI-compatible chat-completions client with round-robin key rotation,
// plus helpers for parsing structured data out of model output.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// defaultBaseURL points at Groq's OpenAI-compatible endpoint.
const defaultBaseURL = "https://api.groq.com/openai/v1"

// generateTimeout bounds one generation call.
const generateTimeout = 20 * time.Second

// Generator is the contract the enrichment pipeline and the advisor depend on.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Common errors for the generation client.
var (
	ErrUnauthorized  = errors.New("generation API unauthorized (invalid API key)")
	ErrEmptyResponse = errors.New("generation API returned no choices")
)

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	client  HTTPClient
	baseURL string
	model   string
	rotator *KeyRotator
	log     *slog.Logger
}

// NewClient creates a generation client. The rotator is owned by the caller
// and may be shared between clients.
func NewClient(rotator *KeyRotator, model string, log *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: generateTimeout,
		},
		baseURL: defaultBaseURL,
		model:   model,
		rotator: rotator,
		log:     log,
	}
}

// NewClientWithHTTP allows injecting a custom HTTP client and base URL.
// Useful for testing.
func NewClientWithHTTP(client HTTPClient, baseURL string, rotator *KeyRotator, model string, log *slog.Logger) *Client {
	return &Client{
		client:  client,
		baseURL: baseURL,
		model:   model,
		rotator: rotator,
		log:     log,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends one prompt and returns the raw model text. Callers are
// responsible for parsing; use ParseJSON for structured responses.
func (c *Client) Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	payload := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(
		reqCtx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.rotator.Next())
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute generation request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrUnauthorized
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "Generation API error", "status", resp.StatusCode, "body", string(respBody))
		return "", fmt.Errorf("generation API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	c.log.DebugContext(ctx, "Generation request finished",
		"model", c.model, "duration", time.Since(start))

	return parsed.Choices[0].Message.Content, nil
}
