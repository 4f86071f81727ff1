package intervals

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/johnkeller101/intervals-icu-mcp/internal/telemetry/metrics"
	"github.com/johnkeller101/intervals-icu-mcp/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Intervals.icu Basic Auth uses this literal username with the API key as
// the password.
const basicAuthUsername = "API_KEY"

// DefaultTimeout is the per-request timeout when none is configured.
const DefaultTimeout = 30 * time.Second

// Client is a thin Intervals.icu API client bound to one athlete's
// credentials. Safe for concurrent use; it holds no per-call state. Every
// method issues exactly one HTTP request: no retries, no backoff, no caching.
type Client struct {
	baseURL    string
	apiKey     string
	athleteID  string
	timeout    time.Duration
	httpClient *http.Client
	metrics    *metrics.Manager
}

type NewClientParams struct {
	BaseURL   string
	APIKey    string
	AthleteID string
	// Timeout overrides DefaultTimeout when > 0.
	Timeout time.Duration
	// HTTPClient is injected so cmd wiring can attach an otel transport;
	// nil falls back to a plain client.
	HTTPClient *http.Client
	// Metrics may be nil.
	Metrics *metrics.Manager
}

func NewClient(params NewClientParams) *Client {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    params.BaseURL,
		apiKey:     params.APIKey,
		athleteID:  params.AthleteID,
		timeout:    timeout,
		httpClient: httpClient,
		metrics:    params.Metrics,
	}
}

// AthleteID returns the athlete this client is bound to.
func (c *Client) AthleteID() string {
	return c.athleteID
}

func (c *Client) athletePath(suffix string) string {
	return fmt.Sprintf("/athlete/%s%s", c.athleteID, suffix)
}

// do issues one HTTP request and decodes the JSON response into out (when out
// is non-nil). Non-2xx responses become *APIError; transport failures are
// wrapped with ErrRequestFailed.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "intervalsApi."+op)
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.SetBasicAuth(basicAuthUsername, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Tracef("intervals api: %s %s", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.UpstreamResponse(0)
		return fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, path, err)
	}
	defer resp.Body.Close()

	c.metrics.UpstreamResponse(resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response body: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp.StatusCode, respBytes)
		log.Debugf("intervals api: %s %s -> %d: %s", method, path, apiErr.StatusCode, apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", op, err)
	}
	return nil
}

// dateRangeQuery builds the oldest/newest query params used by the list
// endpoints. Empty values are omitted.
func dateRangeQuery(oldest, newest string) url.Values {
	query := url.Values{}
	if oldest != "" {
		query.Set("oldest", oldest)
	}
	if newest != "" {
		query.Set("newest", newest)
	}
	return query
}
