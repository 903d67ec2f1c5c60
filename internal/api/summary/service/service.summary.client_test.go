// Package summarysvc - Test client gọi dịch vụ tóm tắt qua httptest.
package summarysvc

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

func completionResponse(content string) string {
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestSummarize_Success(t *testing.T) {
	var gotReq chatCompletionRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(completionResponse("tóm tắt")))
	}))
	defer server.Close()

	client := NewSummarizerClient(SummarizerConfig{
		Endpoint: server.URL,
		Model:    "test-model",
		APIKey:   "secret",
	})

	summary, err := client.Summarize(context.Background(), []string{"tin 1", "tin 2"})
	require.NoError(t, err)
	assert.Equal(t, "tóm tắt", summary)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Zero(t, gotReq.Temperature)
	assert.Equal(t, 500, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Contains(t, gotReq.Messages[1].Content, `"tin 1"`)
	assert.Contains(t, gotReq.Messages[1].Content, `"tin 2"`)
}

func TestSummarize_RetriesOnRateLimit(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte("rate limited"))
			return
		}
		w.Write([]byte(completionResponse("ok")))
	}))
	defer server.Close()

	client := NewSummarizerClient(SummarizerConfig{Endpoint: server.URL, Model: "m"})

	summary, err := client.Summarize(context.Background(), []string{"tin"})
	require.NoError(t, err)
	assert.Equal(t, "ok", summary)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestSummarize_TerminalOnOtherHTTPError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("bad key"))
	}))
	defer server.Close()

	client := NewSummarizerClient(SummarizerConfig{Endpoint: server.URL, Model: "m"})

	_, err := client.Summarize(context.Background(), []string{"tin"})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "lỗi không phải 429 không được retry")

	var statusErr *httpStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.statusCode)
}

func TestSummarize_CancelDuringRetry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewSummarizerClient(SummarizerConfig{Endpoint: server.URL, Model: "m"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Summarize(ctx, []string{"tin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize_InputValidation(t *testing.T) {
	t.Run("thiếu endpoint", func(t *testing.T) {
		client := NewSummarizerClient(SummarizerConfig{})
		_, err := client.Summarize(context.Background(), []string{"tin"})
		assert.Error(t, err)
	})

	t.Run("không có tin nào", func(t *testing.T) {
		client := NewSummarizerClient(SummarizerConfig{Endpoint: "http://localhost:1"})
		_, err := client.Summarize(context.Background(), nil)
		assert.Error(t, err)
	})
}
