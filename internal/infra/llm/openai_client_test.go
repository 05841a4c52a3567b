package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitplan/config"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAITestServer(t *testing.T, status int, reply string, captured *map[string]any) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if captured != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
}

func newTestOpenAIClient(baseURL string) service.LLMClient {
	return NewOpenAIClient(&config.LLMConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL + "/v1",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   500,
		Timeout:     5 * time.Second,
	})
}

func TestOpenAIClient_Complete(t *testing.T) {
	var body map[string]any
	server := newOpenAITestServer(t, http.StatusOK,
		`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"ok\":true}"},"finish_reason":"stop"}]}`,
		&body)
	defer server.Close()

	client := newTestOpenAIClient(server.URL)

	out, err := client.Complete(t.Context(), service.CompletionRequest{
		SystemPrompt: "You are a trainer.",
		UserPrompt:   "Plan?",
		JSON:         true,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
	assert.Equal(t, "gpt-4o-mini", body["model"])
	assert.InDelta(t, 0.7, body["temperature"], 1e-6)
	assert.Equal(t, map[string]any{"type": "json_object"}, body["response_format"])

	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2)
}

func TestOpenAIClient_ServerErrorIsUpstream(t *testing.T) {
	server := newOpenAITestServer(t, http.StatusInternalServerError,
		`{"error":{"message":"overloaded","type":"server_error"}}`, nil)
	defer server.Close()

	_, err := newTestOpenAIClient(server.URL).Complete(t.Context(), service.CompletionRequest{UserPrompt: "x"})

	var upstream *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "openai", upstream.Service)
	assert.True(t, domainerrors.IsRetryable(err))
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	server := newOpenAITestServer(t, http.StatusOK, `{"id":"c1","choices":[]}`, nil)
	defer server.Close()

	_, err := newTestOpenAIClient(server.URL).Complete(t.Context(), service.CompletionRequest{UserPrompt: "x"})

	require.Error(t, err)
}
