package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claude/racecoach/internal/storage"
	"github.com/google/uuid"
)

// HTTPClient implements DataSource by calling the RaceCoach REST API. Used
// for remote MCP mode where the binary runs locally (stdio) but plans live
// on the server.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) ListPlans(ctx context.Context, athleteID uuid.UUID) ([]storage.PlanRow, error) {
	params := url.Values{}
	params.Set("athlete_id", athleteID.String())

	body, err := c.get(ctx, "/api/v1/plans", params)
	if err != nil {
		return nil, err
	}

	var rows []storage.PlanRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("httpclient: decode plans: %w", err)
	}
	return rows, nil
}

func (c *HTTPClient) GetPlan(ctx context.Context, id uuid.UUID) (*storage.PlanRow, error) {
	body, err := c.get(ctx, "/api/v1/plans/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	var row storage.PlanRow
	if err := json.Unmarshal(body, &row); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan: %w", err)
	}
	return &row, nil
}

func (c *HTTPClient) ListValidations(ctx context.Context, athleteID uuid.UUID, limit int) ([]storage.ValidationRun, error) {
	params := url.Values{}
	params.Set("athlete_id", athleteID.String())
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	body, err := c.get(ctx, "/api/v1/validations", params)
	if err != nil {
		return nil, err
	}

	var runs []storage.ValidationRun
	if err := json.Unmarshal(body, &runs); err != nil {
		return nil, fmt.Errorf("httpclient: decode validations: %w", err)
	}
	return runs, nil
}

func (c *HTTPClient) GetAthlete(ctx context.Context, id uuid.UUID) (*storage.AthleteRow, error) {
	body, err := c.get(ctx, "/api/v1/athletes/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	var row storage.AthleteRow
	if err := json.Unmarshal(body, &row); err != nil {
		return nil, fmt.Errorf("httpclient: decode athlete: %w", err)
	}
	return &row, nil
}
