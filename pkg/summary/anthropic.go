package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/codepdf/pkg/config"
	"github.com/arthur-debert/codepdf/pkg/constants"
	"github.com/arthur-debert/codepdf/pkg/errors"
	"github.com/arthur-debert/codepdf/pkg/types"
)

const (
	anthropicAPIURL  = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
)

// anthropicRequest represents an Anthropic messages API request
type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

// anthropicMessage represents a message in the Anthropic API format
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse represents an Anthropic API response
type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
	Error   *anthropicError    `json:"error,omitempty"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// AnthropicSummarizer asks the Anthropic messages API for a one-line
// description of the processed files. A single attempt is made; every
// failure mode returns an error for the composer to fall back on.
type AnthropicSummarizer struct {
	cfg     config.AI
	client  *http.Client
	baseURL string
}

// NewAnthropicSummarizer creates a summarizer from the AI config.
func NewAnthropicSummarizer(cfg config.AI) *AnthropicSummarizer {
	return &AnthropicSummarizer{
		cfg:     cfg,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: anthropicAPIURL,
	}
}

// Summarize implements Summarizer.
func (s *AnthropicSummarizer) Summarize(processed []types.ProcessedFile, pageCount int) (string, error) {
	if s.cfg.AnthropicAPIKey == "" {
		return "", errors.New(errors.ErrSummarize, "no API key configured")
	}

	reqBody := anthropicRequest{
		Model:       s.cfg.Model,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
		Messages: []anthropicMessage{
			{Role: "user", Content: buildPrompt(processed, pageCount)},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrSummarize, "failed to marshal request")
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrSummarize, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.cfg.AnthropicAPIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrSummarize, "API call failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrSummarize, "failed to read response")
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.Wrapf(err, errors.ErrSummarize, "unexpected response (status %d)", resp.StatusCode)
	}
	if parsed.Error != nil {
		return "", errors.Newf(errors.ErrSummarize, "API error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK || len(parsed.Content) == 0 {
		return "", errors.Newf(errors.ErrSummarize, "unexpected response (status %d)", resp.StatusCode)
	}

	return strings.TrimSpace(parsed.Content[0].Text), nil
}

// buildPrompt lists at most MaxFileListInPrompt file names, eliding
// the rest, plus the totals the model needs.
func buildPrompt(processed []types.ProcessedFile, pageCount int) string {
	var files []string
	for _, f := range processed {
		base := filepath.Base(f.AbsolutePath)
		ext := strings.ToLower(filepath.Ext(f.AbsolutePath))
		files = append(files, fmt.Sprintf("- %s (%s)", base, ext))
	}

	shown := files
	elided := ""
	if len(files) > constants.MaxFileListInPrompt {
		shown = files[:constants.MaxFileListInPrompt]
		elided = "..."
	}

	return fmt.Sprintf(`Analyze this list of code files and create a brief summary describing what was added to this PDF.

Files (%d total, %d pages):
%s%s

Generate a summary in this format: "Added [technology/component type] [purpose/functionality]. Added new [X] pages."

Examples:
- "Added React components for user interface. Added new 15 pages."
- "Added Python backend API functions. Added new 8 pages."
- "Added CSS styling for web components. Added new 12 pages."

Focus on:
- Main technology/language used (React, Python, CSS, JavaScript, etc.)
- Component type or functionality (components, functions, styling, etc.)
- Purpose or context (UI, backend, utilities, etc.)

Respond with ONLY the summary in the specified format.`,
		len(processed), pageCount, strings.Join(shown, "\n"), elided)
}
