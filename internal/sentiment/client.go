// Package sentiment hands free-text survey feedback to an LLM gateway for sentiment
// and theme analysis. It sits downstream of metric extraction and never feeds back into it.
package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"cx-metrics-go/internal/config"
	"cx-metrics-go/internal/logger"
)

// ErrNotConfigured is returned when neither a gateway nor mock mode is configured.
var ErrNotConfigured = errors.New("sentiment gateway not configured")

// Result is the gateway's verdict on a block of feedback text.
type Result struct {
	Sentiment string   `json:"sentiment"`
	Score     float64  `json:"score"` // -1..1
	Themes    []string `json:"themes"`
	Summary   string   `json:"summary,omitempty"`
}

type Client struct {
	cfg  config.SentimentConfig
	http *http.Client
	log  *logrus.Entry
}

func NewClient(cfg config.SentimentConfig, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Discard()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.HTTPTimeout},
		log:  log.WithField("component", "sentiment-client"),
	}
}

// BuildPrompt builds the analysis prompt for the collected feedback text.
func BuildPrompt(text string) string {
	prompt := `You are a customer feedback analyst.

Analyze the CUSTOMER FEEDBACK below and return ONLY a JSON object:
{
  "sentiment": "positive|neutral|negative|mixed",
  "score": 0.0,
  "themes": [],
  "summary": ""
}

Rules:
- score is between -1.0 (very negative) and 1.0 (very positive)
- themes are at most 5 short noun phrases taken from the feedback
- DO NOT invent facts that are not in the feedback
- DO NOT wrap the JSON in backticks

CUSTOMER FEEDBACK:
"""%s"""
`
	return fmt.Sprintf(prompt, text)
}

// Analyze sends text to the gateway, retrying transient failures with exponential backoff.
func (c *Client) Analyze(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{Sentiment: "neutral", Themes: []string{}}, nil
	}
	if c.cfg.UseMock {
		c.log.Debug("mock LLM mode ON - returning lexicon sentiment")
		return mockAnalyze(text), nil
	}
	if c.cfg.GatewayURL == "" || c.cfg.APIKey == "" {
		return Result{}, ErrNotConfigured
	}

	reqBody := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]string{
			{"role": "user", "content": BuildPrompt(text)},
		},
		"temperature": 0.0,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return Result{}, fmt.Errorf("encode request: %w", err)
	}
	c.log.WithField("payload_len", len(data)).Debug("sentiment request prepared")

	var out Result
	var lastErr error
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GatewayURL, bytes.NewReader(data))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			c.log.WithError(err).Warn("sentiment request failed")
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		c.log.WithField("http_status", resp.StatusCode).Debug("sentiment raw response")

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			lastErr = fmt.Errorf("gateway rejected request: status %d", resp.StatusCode)
			return backoff.Permanent(lastErr)
		}
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("gateway server error: status %d", resp.StatusCode)
			return lastErr
		}

		raw := extractContentFromChoices(body)
		if raw == "" {
			raw = extractJSON(string(body))
		}
		if raw == "" {
			lastErr = errors.New("no JSON found in LLM output")
			return backoff.Permanent(lastErr)
		}
		var parsed Result
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			lastErr = fmt.Errorf("decode sentiment: %w", err)
			return backoff.Permanent(lastErr)
		}
		out = normalize(parsed)
		lastErr = nil
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.cfg.MaxRetryTime
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		if lastErr == nil {
			lastErr = err
		}
		return Result{}, fmt.Errorf("sentiment analysis failed: %w", lastErr)
	}
	return out, nil
}

func normalize(r Result) Result {
	r.Sentiment = strings.ToLower(strings.TrimSpace(r.Sentiment))
	switch r.Sentiment {
	case "positive", "neutral", "negative", "mixed":
	default:
		r.Sentiment = "neutral"
	}
	if r.Score > 1 {
		r.Score = 1
	}
	if r.Score < -1 {
		r.Score = -1
	}
	if r.Themes == nil {
		r.Themes = []string{}
	}
	if len(r.Themes) > 5 {
		r.Themes = r.Themes[:5]
	}
	return r
}

// extractContentFromChoices reads openai-style choices[0].message.content JSON
func extractContentFromChoices(body []byte) string {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return ""
	}
	choices, ok := obj["choices"].([]any)
	if !ok || len(choices) == 0 {
		return ""
	}
	c0, _ := choices[0].(map[string]any)
	msg, _ := c0["message"].(map[string]any)
	content, _ := msg["content"].(string)
	return extractJSON(content)
}

// extractJSON finds the first balanced JSON object in s, after stripping markdown fences.
func extractJSON(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, r := range []string{"```json", "```", "`"} {
		s = strings.ReplaceAll(s, r, "")
	}
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start : i+1])
			}
		}
	}
	return ""
}
