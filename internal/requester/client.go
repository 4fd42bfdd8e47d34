// Package requester provides a plain HTTP client for career pages that do
// not need a browser. It is the fallback when the renderer is disabled.
package requester

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// HTTPClient wraps the standard http.Client with User-Agent rotation and a
// bounded retry loop for network errors and 5xx responses.
type HTTPClient struct {
	client     *http.Client
	userAgents []string
	retries    int
	rand       *rand.Rand
	mu         sync.Mutex
}

// NewHTTPClient creates a new instance of our custom HTTPClient.
func NewHTTPClient(timeout time.Duration, userAgents []string, retries int) *HTTPClient {
	if retries < 0 {
		retries = 0
	}
	return &HTTPClient{
		client:     &http.Client{Timeout: timeout},
		userAgents: userAgents,
		retries:    retries,
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Fetch retrieves pageURL and returns the response body as a string.
func (c *HTTPClient) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	if len(c.userAgents) > 0 {
		c.mu.Lock()
		ua := c.userAgents[c.rand.Intn(len(c.userAgents))]
		c.mu.Unlock()
		req.Header.Set("User-Agent", ua)
	}

	var lastErr error
	for i := 0; i <= c.retries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(2 * time.Second):
			}
		}

		resp, err := c.client.Do(req.Clone(ctx))
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: %s", resp.Status)
			continue
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return "", fmt.Errorf("request failed: %s", resp.Status)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return string(body), nil
	}

	return "", lastErr
}
