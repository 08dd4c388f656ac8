package callback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"genome-analysis-service/internal/core/domain"
)

const headerServiceKey = "X-Analysis-Service-Key"

// Client POSTs job outcomes back to the caller's callback URL, authenticated
// with the service key.
type Client struct {
	httpClient *http.Client
	serviceKey string
}

func NewClient(serviceKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		serviceKey: serviceKey,
	}
}

func (c *Client) Send(ctx context.Context, url string, payload domain.CallbackPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal callback payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create callback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerServiceKey, c.serviceKey)

	log.WithFields(log.Fields{
		"job_id": payload.JobID,
		"status": payload.Status,
		"url":    url,
	}).Debug("sending callback")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("callback request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("callback request: unexpected status %d", resp.StatusCode)
	}

	return nil
}
