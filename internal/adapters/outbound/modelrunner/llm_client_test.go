package modelrunner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/bomi/internal/common"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMClient_Chat(t *testing.T) {
	tests := map[string]struct {
		response     string
		statusCode   int
		req          domain.LLMChatRequest
		expectErr    bool
		expectedResp domain.LLMChatResponse
		validateReq  func(*testing.T, *ChatRequest)
	}{
		"success": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"\n 이번 주도 수고했어요. \n"}}],"usage": {"completion_tokens": 10,"prompt_tokens": 12,"total_tokens": 22}}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model: "ai/gemma3",
				Messages: []domain.LLMChatMessage{
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectedResp: domain.LLMChatResponse{
				Content: "이번 주도 수고했어요.",
				Usage:   domain.LLMUsage{PromptTokens: 12, CompletionTokens: 10, TotalTokens: 22},
			},
		},
		"with-params": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model:       "ai/gemma3",
				Temperature: common.Ptr(0.5),
				MaxTokens:   common.Ptr(300),
				Messages: []domain.LLMChatMessage{
					{Role: domain.ChatRole_System, Content: "sys"},
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectedResp: domain.LLMChatResponse{Content: "ok"},
			validateReq: func(t *testing.T, req *ChatRequest) {
				assert.Equal(t, "ai/gemma3", req.Model)
				require.NotNil(t, req.Temperature)
				assert.InDelta(t, 0.5, *req.Temperature, 1e-6)
				require.NotNil(t, req.MaxTokens)
				assert.Equal(t, 300, *req.MaxTokens)
				require.Len(t, req.Messages, 2)
				assert.Equal(t, "system", req.Messages[0].Role)
			},
		},
		"no-choices": {
			response:   `{"choices":[]}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model:    "ai/gemma3",
				Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			expectErr: true,
		},
		"blank-completion": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"  \n"}}]}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model:    "ai/gemma3",
				Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			expectErr: true,
		},
		"server-error": {
			response:   `Internal Server Error`,
			statusCode: http.StatusInternalServerError,
			req: domain.LLMChatRequest{
				Model:    "ai/gemma3",
				Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			expectErr: true,
		},
		"invalid-json": {
			response:   `{invalid json}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model:    "ai/gemma3",
				Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}},
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var capturedReq *ChatRequest

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				var req ChatRequest
				json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
				capturedReq = &req

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			adapter := NewLLMClient(NewClient(server.URL, "", server.Client()))

			resp, err := adapter.Chat(context.Background(), tt.req)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedResp, resp)
			if tt.validateReq != nil {
				tt.validateReq(t, capturedReq)
			}
		})
	}
}

func TestLLMClient_Chat_ValidationErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	adapter := NewLLMClient(NewClient(server.URL, "", server.Client()))

	tests := map[string]struct {
		req domain.LLMChatRequest
	}{
		"no-model":    {req: domain.LLMChatRequest{Messages: []domain.LLMChatMessage{{Role: domain.ChatRole_User, Content: "hi"}}}},
		"no-messages": {req: domain.LLMChatRequest{Model: "test"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := adapter.Chat(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestClient_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", server.Client())
	resp, err := client.Chat(context.Background(), ChatRequest{
		Model:    "m",
		Messages: []ChatMessage{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Choices[0].Message.Content)
}

func TestClient_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`model not found`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewClient(server.URL, "", server.Client())
	_, err := client.Chat(context.Background(), ChatRequest{
		Model:    "ai/missing",
		Messages: []ChatMessage{{Role: "user", Content: "hi"}},
	})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "model not found", statusErr.Body)
}

func TestInitLLMClient_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	i := InitLLMClient{HttpClient: http.DefaultClient, LLMHost: "http://localhost:12434"}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[domain.LLMClient]()
	assert.NotNil(t, r)
	assert.NoError(t, err)
}
