// Package summarysvc chứa service sinh summary theo nhóm tin gắn nhãn.
// File: service.summary.client.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package summarysvc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/anderson2805/social-live-exploration/internal/common"
)

const (
	summarizerHTTPTimeout = 120 * time.Second
	summarizerTemperature = 0.0
	summarizerMaxTokens   = 500

	// Hạn retry tổng cho lỗi kết nối và lỗi rate limit. Rate limit được chờ lâu hơn
	// nhiều vì dịch vụ tóm tắt thường hồi phục theo quota chứ không theo mạng.
	connRetryMaxElapsed = 1000 * time.Second
	rateRetryMaxElapsed = 6000 * time.Second
)

const summarizerSystemMessage = `You are a helpful assistant in summarising comments and extract the key essence of the narrative, keep it short and concise.

Provide your summary in a short paragraphs and bold on the key themes.`

const summarizerUserPreamble = `Summarising the messages and extract the key essence of the narrative, keep it short and concise.

Provide your summary in a short paragraphs and bold on the key themes.

Messages:
`

// SummarizerConfig là cấu hình kết nối dịch vụ tóm tắt bên ngoài.
type SummarizerConfig struct {
	Endpoint string // URL endpoint chat completion
	Model    string // Tên model
	APIKey   string // API key, rỗng nếu endpoint không yêu cầu
}

// SummarizerClient gọi dịch vụ tóm tắt bên ngoài (API dạng chat completion)
// với retry lũy thừa: lỗi kết nối retry tối đa 1000s, rate limit tối đa 6000s,
// lỗi khác (4xx/5xx không phải 429) coi là terminal và không retry.
type SummarizerClient struct {
	cfg        SummarizerConfig
	httpClient *http.Client
}

// NewSummarizerClient tạo mới SummarizerClient
func NewSummarizerClient(cfg SummarizerConfig) *SummarizerClient {
	return &SummarizerClient{
		cfg: SummarizerConfig{
			Endpoint: strings.TrimSpace(cfg.Endpoint),
			Model:    strings.TrimSpace(cfg.Model),
			APIKey:   strings.TrimSpace(cfg.APIKey),
		},
		httpClient: &http.Client{Timeout: summarizerHTTPTimeout},
	}
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// rateLimitError đánh dấu response 429 để chọn policy retry dài hạn.
type rateLimitError struct {
	body string
}

func (e *rateLimitError) Error() string {
	return fmt.Sprintf("summarizer rate limited: %s", strings.TrimSpace(e.body))
}

// Summarize gửi danh sách nội dung tin nhắn lên dịch vụ tóm tắt và trả về văn bản tóm tắt.
func (c *SummarizerClient) Summarize(ctx context.Context, texts []string) (string, error) {
	if c.cfg.Endpoint == "" {
		return "", common.NewError(
			common.ErrCodeExternalService,
			"Chưa cấu hình endpoint của dịch vụ tóm tắt",
			common.StatusInternalServerError,
			nil,
		)
	}
	if len(texts) == 0 {
		return "", common.ErrInvalidInput
	}

	prompt := summarizerUserPreamble + fmt.Sprintf("%q", texts)

	connBo := backoff.NewExponentialBackOff()
	connBo.MaxElapsedTime = connRetryMaxElapsed
	rateBo := backoff.NewExponentialBackOff()
	rateBo.MaxElapsedTime = rateRetryMaxElapsed

	for {
		summary, err := c.doRequest(ctx, prompt)
		if err == nil {
			return summary, nil
		}

		var next time.Duration
		var rateErr *rateLimitError
		switch {
		case errors.As(err, &rateErr):
			next = rateBo.NextBackOff()
		case isConnectionError(err):
			next = connBo.NextBackOff()
		default:
			// Lỗi terminal (payload sai, auth sai, ...): retry không giúp được
			return "", err
		}

		if next == backoff.Stop {
			return "", fmt.Errorf("summarizer retry exhausted: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"error":      err.Error(),
			"next_retry": next.String(),
		}).Warn("Summarizer request failed, retrying")

		select {
		case <-time.After(next):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

// isConnectionError nhận diện lỗi tầng vận chuyển (không nhận được response).
func isConnectionError(err error) bool {
	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return false
	}
	var rateErr *rateLimitError
	if errors.As(err, &rateErr) {
		return false
	}
	// Còn lại là lỗi dựng request, lỗi mạng hoặc lỗi đọc body
	return true
}

// httpStatusError là response không phải 2xx và không phải 429.
type httpStatusError struct {
	statusCode int
	body       string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("summarizer request: http %d: %s", e.statusCode, strings.TrimSpace(e.body))
}

// doRequest thực hiện một lần gọi dịch vụ tóm tắt.
func (c *SummarizerClient) doRequest(ctx context.Context, prompt string) (string, error) {
	payload := chatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: summarizerTemperature,
		MaxTokens:   summarizerMaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: summarizerSystemMessage},
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("summarizer request: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("summarizer request: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("summarizer request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("summarizer request: read body: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &rateLimitError{body: string(respBody)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &httpStatusError{statusCode: resp.StatusCode, body: string(respBody)}
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &httpStatusError{statusCode: resp.StatusCode, body: fmt.Sprintf("invalid response payload: %v", err)}
	}
	if len(parsed.Choices) == 0 {
		return "", &httpStatusError{statusCode: resp.StatusCode, body: "response has no choices"}
	}

	return parsed.Choices[0].Message.Content, nil
}
