package client

// Wire types for the chat-completion API. This package is the only one
// aware of the external schema; internal message roles are translated here.

type ChatModelRole string

const (
	ChatModelRoleUser      ChatModelRole = "user"
	ChatModelRoleAssistant ChatModelRole = "assistant"
)

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type ChatMessage struct {
	Role    ChatModelRole `json:"role"`
	Content string        `json:"content"`
}

type ChatResponse struct {
	Choices []ChatResponseChoice `json:"choices"`
	Created int64                `json:"created"`
	Model   string               `json:"model"`
	Usage   ChatResponseUsage    `json:"usage"`
	Object  string               `json:"object"`
}

type ChatResponseChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type ChatResponseUsage struct {
	PromptTokens     int32 `json:"prompt_tokens"`
	CompletionTokens int32 `json:"completion_tokens"`
	TotalTokens      int32 `json:"total_tokens"`
}
