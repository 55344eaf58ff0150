package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/advisorly/advisor-session/internal"
	"github.com/advisorly/advisor-session/internal/config"
	"github.com/sashabaranov/go-openai"
)

// Completion is one advisor reply with the citations Perplexity attaches
type Completion struct {
	Content   string
	Citations []string
}

// Client is the minimal surface the message handlers need; it is easy to
// fake in tests
type Client interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage) (*Completion, error)
}

// PerplexityClient talks to the Perplexity chat-completions API. The
// request and message types are the OpenAI-compatible ones; the response
// is decoded directly because Perplexity adds a top-level citations
// array the OpenAI client does not surface.
type PerplexityClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a Perplexity client from the LLM configuration
func NewClient(cfg config.LLMConfig) *PerplexityClient {
	return &PerplexityClient{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

type completionResponse struct {
	openai.ChatCompletionResponse
	Citations []string `json:"citations"`
}

// Complete sends the conversation and returns the assistant reply
func (c *PerplexityClient) Complete(ctx context.Context, messages []openai.ChatCompletionMessage) (*Completion, error) {
	if c.apiKey == "" {
		return nil, &internal.LLMError{Err: errors.New("PERPLEXITY_API_KEY not configured")}
	}

	body, err := json.Marshal(openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
		TopP:        0.9,
	})
	if err != nil {
		return nil, &internal.LLMError{Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, &internal.LLMError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &internal.LLMError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &internal.LLMError{Status: resp.StatusCode, Detail: string(detail)}
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &internal.LLMError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return nil, &internal.LLMError{Err: errors.New("no response from the advisor model")}
	}

	return &Completion{
		Content:   out.Choices[0].Message.Content,
		Citations: out.Citations,
	}, nil
}

// BuildHistory converts stored messages into the wire history: the
// system prompt first, then prior user/assistant turns. Stored system
// messages and the canned greeting are excluded, matching what the chat
// UI shows the model.
func BuildHistory(messages []internal.Message) []openai.ChatCompletionMessage {
	history := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
	}
	for _, msg := range messages {
		if msg.Role == internal.RoleSystem || msg.Content == Greeting {
			continue
		}
		history = append(history, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	return history
}
