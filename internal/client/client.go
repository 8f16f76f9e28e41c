// Package client provides the single outbound HTTP primitive shared by all
// upstream providers, plus defensive accessors for their untyped JSON payloads.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ResponseError is returned when an upstream call yields a non-200 status.
type ResponseError struct {
	StatusCode int
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("received status code: %d", e.StatusCode)
}

// Client issues outbound GET requests to upstream providers.
type Client struct {
	httpClient *http.Client
}

// New creates a Client whose outbound calls are bounded by the given timeout.
func New(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get issues a GET to endpoint with params appended as a query string.
// A 200 response is decoded as a JSON object; any other status yields
// a *ResponseError. Exactly one network call is made per invocation.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string) (Payload, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint %q: %w", endpoint, err)
	}

	if len(params) > 0 {
		q := u.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach %s: %w", u.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ResponseError{StatusCode: resp.StatusCode}
	}

	var data Payload
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: invalid json body: %v", ErrMalformedResponse, err)
	}

	return data, nil
}
