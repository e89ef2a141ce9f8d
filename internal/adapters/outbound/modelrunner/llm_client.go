package modelrunner

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ErrEmptyCompletion is returned when the model answers without any usable text.
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// LLMClient implements domain.LLMClient on top of the chat completions endpoint.
type LLMClient struct {
	client Client
}

// NewLLMClient wraps client as a domain.LLMClient.
func NewLLMClient(client Client) LLMClient {
	return LLMClient{client: client}
}

// Chat sends the conversation and returns the first choice, trimmed.
// A blank first choice is reported as ErrEmptyCompletion.
func (a LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	chatReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, 0, len(req.Messages)),
	}
	for _, msg := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, ChatMessage{Role: string(msg.Role), Content: msg.Content})
	}

	resp, err := a.client.Chat(spanCtx, chatReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMChatResponse{}, err
	}

	var content string
	if len(resp.Choices) > 0 {
		content = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	if content == "" {
		telemetry.RecordErrorAndStatus(span, ErrEmptyCompletion)
		return domain.LLMChatResponse{}, ErrEmptyCompletion
	}

	out := domain.LLMChatResponse{Content: content}
	if resp.Usage != nil {
		out.Usage = domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// InitLLMClient registers the domain.LLMClient used for weekly report narratives.
type InitLLMClient struct {
	HttpClient *http.Client `resolve:""`
	LLMHost    string       `config:"LLM_MODEL_HOST" default:"http://localhost:12434"`
	APIKey     string       `config:"LLM_API_KEY" default:""`
}

// Initialize registers the LLMClient.
func (i InitLLMClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.LLMClient](NewLLMClient(NewClient(i.LLMHost, i.APIKey, i.HttpClient)))
	return ctx, nil
}
