package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completionBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-3.5-turbo",
  "choices": [{
    "index": 0,
    "finish_reason": "stop",
    "logprobs": null,
    "message": {"role": "assistant", "content": "  TEXTO_CORREGIDO: Hola.  ", "refusal": null}
  }],
  "usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
}`

func newTestOpenAILLM(t *testing.T, srv *httptest.Server) *OpenAILLM {
	t.Helper()
	llm, err := NewOpenAILLMFromConfig(&LLMSettings{
		Provider: "openai",
		Model:    "gpt-3.5-turbo",
		APIKey:   "test-key",
		BaseURL:  srv.URL + "/",
	})
	require.NoError(t, err)
	return llm
}

func TestNewOpenAILLMFromConfigValidation(t *testing.T) {
	_, err := NewOpenAILLMFromConfig(nil)
	assert.Error(t, err)

	_, err = NewOpenAILLMFromConfig(&LLMSettings{Model: "gpt-3.5-turbo"})
	assert.ErrorContains(t, err, "api key")

	_, err = NewOpenAILLMFromConfig(&LLMSettings{APIKey: "k"})
	assert.ErrorContains(t, err, "model")
}

func TestOpenAILLMCompleteSendsSystemAndUser(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	}))
	defer srv.Close()

	llm := newTestOpenAILLM(t, srv)
	reply, err := llm.Complete(context.Background(), BuildCorrectionPrompt("hola"))
	require.NoError(t, err)
	assert.Equal(t, "TEXTO_CORREGIDO: Hola.", reply)

	assert.Equal(t, "gpt-3.5-turbo", body["model"])
	assert.InDelta(t, 0.3, body["temperature"], 1e-9)
	assert.EqualValues(t, 1500, body["max_tokens"])

	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "user", msgs[1].(map[string]any)["role"])
	assert.Contains(t, msgs[1].(map[string]any)["content"], "Texto original:\nhola")
}

func TestOpenAILLMCompleteSingleAttemptOnError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"rate limit", http.StatusTooManyRequests},
		{"auth", http.StatusUnauthorized},
		{"server", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error": {"message": "nope", "type": "test_error"}}`))
			}))
			defer srv.Close()

			llm := newTestOpenAILLM(t, srv)
			_, err := llm.Complete(context.Background(), BuildTitlePrompt("c", 2))
			require.Error(t, err)

			var gwErr *GatewayError
			require.ErrorAs(t, err, &gwErr)
			assert.Equal(t, tt.status, gwErr.StatusCode)
			assert.Equal(t, KindTitles, gwErr.Kind)
			assert.EqualValues(t, 1, hits.Load())
		})
	}
}

func TestOpenAILLMCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "x", "object": "chat.completion", "created": 0, "model": "m", "choices": []}`))
	}))
	defer srv.Close()

	llm := newTestOpenAILLM(t, srv)
	_, err := llm.Complete(context.Background(), BuildStylePrompt("t"))
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestOpenAILLMTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	llm := newTestOpenAILLM(t, srv)
	_, err := llm.Complete(context.Background(), BuildStylePrompt("t"))

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Zero(t, gwErr.StatusCode)
}
