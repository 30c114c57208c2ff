// Package verifier decides whether an email address is real and able to
// receive mail, by asking an external deliverability API.
package verifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/Codewith-Raja/securevault/internal/pkg/instrument"
)

const maxResponseBytes = 64 * 1024

type deliverabilityResponse struct {
	IsValidFormat struct {
		Value bool `json:"value"`
	} `json:"is_valid_format"`
	Deliverability string `json:"deliverability"`
	Error          *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client checks deliverability against an Abstract-API-shaped endpoint.
//
// Verify fails closed: any transport error, non-2xx status, malformed body, or
// API error payload means "do not proceed". It never returns an error to the
// caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	ins        instrument.Instrumentation
}

// Config configures the deliverability client.
type Config struct {
	// BaseURL is the API endpoint, e.g. https://emailvalidation.abstractapi.com/v1/.
	BaseURL string
	// APIKey authenticates against the API.
	APIKey string
	// Timeout bounds a single API call.
	Timeout time.Duration
	// Instrument provides tracing.
	Instrument instrument.Instrumentation
}

// NewClient constructs a deliverability Client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		ins:        cfg.Instrument,
	}
}

// Verify reports whether the address has a valid format and a "DELIVERABLE"
// verdict. A transient failure is retried once before failing closed.
func (c *Client) Verify(ctx context.Context, email string) bool {
	ctx, span := c.ins.Tracer("identity.outbound.verifier").Start(ctx, "Verify")
	defer span.End()

	var verdict bool
	backoff := retry.WithMaxRetries(1, retry.NewConstant(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		ok, err := c.check(ctx, email)
		if err != nil {
			return retry.RetryableError(err)
		}
		verdict = ok
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "email deliverability check failed", "error", err)
		return false
	}

	return verdict
}

func (c *Client) check(ctx context.Context, email string) (bool, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("email", email)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer func() {
		if cErr := resp.Body.Close(); cErr != nil {
			slog.WarnContext(ctx, "failed to close deliverability response body", "error", cErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("deliverability api returned status %d", resp.StatusCode)
	}

	var body deliverabilityResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return false, err
	}

	if body.Error != nil {
		slog.WarnContext(ctx, "deliverability api error", "message", body.Error.Message)
		return false, nil
	}

	return body.IsValidFormat.Value && body.Deliverability == "DELIVERABLE", nil
}
