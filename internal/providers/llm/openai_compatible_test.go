package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
)

func newTestProvider(url string) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    url,
		APIKey:     "test-key",
		Model:      "test-model",
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})
}

func TestChatParsesToolCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload struct {
			Model    string         `json:"model"`
			Messages []core.Message `json:"messages"`
			Tools    []core.Tool    `json:"tools"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "test-model", payload.Model)
		assert.Len(t, payload.Tools, 1)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{
				"message": {
					"role": "assistant",
					"content": "Checking the menu.",
					"tool_calls": [{
						"id": "call-1",
						"type": "function",
						"function": {"name": "get_menu_items", "arguments": "{\"compact\": true}"}
					}]
				}
			}]
		}`))
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	msg, err := provider.Chat(context.Background(),
		[]core.Message{{Role: core.RoleUser, Content: "menu"}},
		[]core.Tool{{Type: "function", Function: core.Function{Name: "get_menu_items", Parameters: json.RawMessage(`{}`)}}})
	require.NoError(t, err)

	assert.Equal(t, "Checking the menu.", msg.Content)
	require.Len(t, msg.ToolCalls, 1)
	assert.Equal(t, "get_menu_items", msg.ToolCalls[0].Function.Name)
	assert.Equal(t, `{"compact": true}`, msg.ToolCalls[0].Function.Arguments)
}

func TestChatRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "ok"}}]}`))
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	msg, err := provider.Chat(context.Background(),
		[]core.Message{{Role: core.RoleUser, Content: "hi"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", msg.Content)
	assert.EqualValues(t, 2, calls.Load())
}

func TestChatEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	_, err := provider.Chat(context.Background(),
		[]core.Message{{Role: core.RoleUser, Content: "hi"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty choices")
}
