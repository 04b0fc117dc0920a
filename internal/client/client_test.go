package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skillvet/interviewd/internal/config"
	"github.com/skillvet/interviewd/internal/interview"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		ModelBaseURL:      baseURL,
		ModelAPIKey:       "test-key",
		ModelName:         "test-model",
		MaxResponseTokens: 256,
		ModelTimeout:      time.Second,
	}
}

func completionResponse(text string) ChatResponse {
	return ChatResponse{
		Choices: []ChatResponseChoice{
			{Message: ChatMessage{Role: ChatModelRoleAssistant, Content: text}},
		},
	}
}

func TestGenerate(t *testing.T) {
	var gotRequest ChatCompletionRequest
	var gotAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(completionResponse("What does VLOOKUP do?"))
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL))
	history := []interview.Message{
		{Role: interview.MessageRoleUser, Content: "opening prompt"},
		{Role: interview.MessageRoleModel, Content: "first question"},
	}

	text, err := c.Generate(context.Background(), "follow-up prompt", history)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "What does VLOOKUP do?" {
		t.Errorf("text: got %q", text)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization header: got %q", gotAuth)
	}
	if gotRequest.Model != "test-model" {
		t.Errorf("model: got %q", gotRequest.Model)
	}
	if gotRequest.MaxTokens != 256 {
		t.Errorf("max_tokens: got %d, want 256", gotRequest.MaxTokens)
	}

	wantMessages := []ChatMessage{
		{Role: ChatModelRoleUser, Content: "opening prompt"},
		{Role: ChatModelRoleAssistant, Content: "first question"},
		{Role: ChatModelRoleUser, Content: "follow-up prompt"},
	}
	if len(gotRequest.Messages) != len(wantMessages) {
		t.Fatalf("messages length: got %d, want %d", len(gotRequest.Messages), len(wantMessages))
	}
	for idx, want := range wantMessages {
		if gotRequest.Messages[idx] != want {
			t.Errorf("messages[%d]: got %+v, want %+v", idx, gotRequest.Messages[idx], want)
		}
	}
}

func TestGenerateEmptyHistory(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatCompletionRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Messages) != 1 {
			t.Errorf("messages length: got %d, want 1", len(req.Messages))
		}
		json.NewEncoder(w).Encode(completionResponse("greeting"))
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL))
	if _, err := c.Generate(context.Background(), "opening prompt", nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
}

func TestGenerateAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(APIErrorResponse{Code: 429, Message: "rate limited"})
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL))
	_, err := c.Generate(context.Background(), "prompt", nil)
	if !errors.Is(err, interview.ErrModelUnavailable) {
		t.Fatalf("got %v, want ErrModelUnavailable", err)
	}
}

func TestGenerateTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	c := NewClient(testConfig(ts.URL))
	_, err := c.Generate(context.Background(), "prompt", nil)
	if !errors.Is(err, interview.ErrModelUnavailable) {
		t.Fatalf("got %v, want ErrModelUnavailable", err)
	}
}

func TestGenerateNoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatResponse{})
	}))
	defer ts.Close()

	c := NewClient(testConfig(ts.URL))
	_, err := c.Generate(context.Background(), "prompt", nil)
	if !errors.Is(err, interview.ErrModelUnavailable) {
		t.Fatalf("got %v, want ErrModelUnavailable", err)
	}
}

func TestGenerateContextTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(completionResponse("too late"))
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := NewClient(testConfig(ts.URL))
	_, err := c.Generate(ctx, "prompt", nil)
	if !errors.Is(err, interview.ErrModelUnavailable) {
		t.Fatalf("got %v, want ErrModelUnavailable", err)
	}
}
