package domain

import "context"

// ChatRole is the author of an LLM chat message.
type ChatRole string

const (
	ChatRole_System    ChatRole = "system"
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
)

// LLMChatMessage represents a message in a chat request to the LLM API.
type LLMChatMessage struct {
	Role    ChatRole `yaml:"role"`
	Content string   `yaml:"content"`
}

// LLMChatRequest represents a request to the LLM API.
type LLMChatRequest struct {
	Model    string
	Messages []LLMChatMessage
	// Optional parameters.
	Temperature *float64
	MaxTokens   *int
}

// LLMUsage contains token usage information.
type LLMUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// LLMChatResponse represents the response from a chat request to the LLM API.
type LLMChatResponse struct {
	Content string
	Usage   LLMUsage
}

// LLMClient defines the interface for interacting with an LLM API.
type LLMClient interface {
	// Chat sends a chat request to the LLM and returns the full assistant response.
	Chat(ctx context.Context, req LLMChatRequest) (LLMChatResponse, error)
}
