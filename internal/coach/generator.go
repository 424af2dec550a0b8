// Package coach orchestrates generate → parse → validate → auto-fix →
// re-validate, with bounded regeneration and structured feedback when a
// candidate cannot be repaired.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/racecoach/internal/athlete"
)

// GenerationRequest is everything the external generator needs for one
// attempt. Feedback is empty on the first attempt and carries the previous
// attempt's regeneration feedback afterwards — attempts are strictly
// sequential because of this dependency.
type GenerationRequest struct {
	Constraints athlete.Constraints `json:"constraints"`
	WeekNumber  int                 `json:"week_number"`
	Phase       string              `json:"phase,omitempty"`
	Feedback    string              `json:"feedback,omitempty"`
}

// Generator is the external text-generation boundary. Implementations own
// their timeout policy; the orchestrator only passes the context through.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// HTTPGenerator calls a remote generation service over REST. The service
// owns prompt assembly and the LLM call; this client just ships the request
// shape and returns the raw candidate text.
type HTTPGenerator struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Generator = (*HTTPGenerator)(nil)

// NewHTTPGenerator creates a generator client for the given base URL.
func NewHTTPGenerator(baseURL, apiKey string, timeout time.Duration) *HTTPGenerator {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPGenerator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate posts the request and returns the service's raw plan text.
func (g *HTTPGenerator) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("generator: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/plans/generate", strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("generator: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		httpReq.Header.Set("X-API-Key", g.apiKey)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("generator: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("generator: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generator: returned %d: %s", resp.StatusCode, raw)
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("generator: decode response: %w", err)
	}
	return out.Text, nil
}
