package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/skillvet/interviewd/internal/config"
	"github.com/skillvet/interviewd/internal/interview"
)

const (
	JSONContentType = "application/json"

	defaultTemperature = 0.7
	httpClientTimeout  = time.Second * 60
)

type APIErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Client calls a chat-completion style API and implements
// interview.Generator. Every failure crosses the boundary wrapped in
// interview.ErrModelUnavailable with the underlying cause attached.
type Client struct {
	httpClient *http.Client
	cfg        *config.Config
}

// NewClient creates a new chat-completion API Client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: httpClientTimeout},
		cfg:        cfg,
	}
}

// Generate sends the accumulated history plus the new prompt as the final
// user message and returns the model's text. Internal roles are translated
// to the external schema: user stays user, model becomes assistant.
func (c *Client) Generate(ctx context.Context, prompt string, history []interview.Message) (string, error) {
	request := ChatCompletionRequest{
		Model:       c.cfg.ModelName,
		Messages:    toChatMessages(history, prompt),
		Temperature: defaultTemperature,
		MaxTokens:   c.cfg.MaxResponseTokens,
	}

	resp, err := c.getCompletion(ctx, &request)
	if err != nil {
		slog.Error("Failed to get chat completion", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response contains no choices", interview.ErrModelUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) getCompletion(ctx context.Context, request *ChatCompletionRequest) (*ChatResponse, error) {
	reqBytes, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", interview.ErrModelUnavailable, err)
	}
	completionsPath := c.cfg.ModelBaseURL + "/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, completionsPath, bytes.NewBuffer(reqBytes))
	if err != nil {
		slog.Error("Failed to build completion request", "error", err)
		return nil, fmt.Errorf("%w: build request: %v", interview.ErrModelUnavailable, err)
	}

	authHeader := fmt.Sprintf("Bearer %s", c.cfg.ModelAPIKey)
	req.Header.Set("Content-Type", JSONContentType)
	req.Header.Set("Accept", JSONContentType)
	req.Header.Set("Authorization", authHeader)

	res, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("Failed to send completion request", "error", err)
		return nil, fmt.Errorf("%w: %v", interview.ErrModelUnavailable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		slog.Error("Failed to read completion response body", "error", err)
		return nil, fmt.Errorf("%w: read response: %v", interview.ErrModelUnavailable, err)
	}

	if err := handleAPIError(res, body); err != nil {
		return nil, err
	}

	chatResp := ChatResponse{}
	if err := json.Unmarshal(body, &chatResp); err != nil {
		slog.Error("Failed to unmarshal completion response body", "error", err)
		return nil, fmt.Errorf("%w: unmarshal response: %v", interview.ErrModelUnavailable, err)
	}
	return &chatResp, nil
}

func toChatMessages(history []interview.Message, prompt string) []ChatMessage {
	messages := make([]ChatMessage, 0, len(history)+1)
	for _, m := range history {
		role := ChatModelRoleUser
		if m.Role == interview.MessageRoleModel {
			role = ChatModelRoleAssistant
		}
		messages = append(messages, ChatMessage{Role: role, Content: m.Content})
	}
	return append(messages, ChatMessage{Role: ChatModelRoleUser, Content: prompt})
}

func handleAPIError(res *http.Response, body []byte) error {
	if res.StatusCode == http.StatusOK {
		return nil
	}
	apiErr := APIErrorResponse{}
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return fmt.Errorf("%w: status code %d", interview.ErrModelUnavailable, res.StatusCode)
	}
	return fmt.Errorf("%w: status code %d, message %s", interview.ErrModelUnavailable, res.StatusCode, apiErr.Message)
}
