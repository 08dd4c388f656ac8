package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const headerAPIKey = "X-API-Key"

// Client downloads genome files from caller-supplied URLs.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Fetch(ctx context.Context, url, apiKey string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create download request: %w", err)
	}
	if apiKey != "" {
		req.Header.Set(headerAPIKey, apiKey)
	}

	log.WithField("url", url).Debug("downloading genome file")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download genome file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download genome file: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read genome file: %w", err)
	}

	return string(body), nil
}
