package ports

import (
	"context"

	"genome-analysis-service/internal/core/domain"
)

// GenomeFetcher downloads genome file content when the caller supplied a URL
// instead of inline content.
type GenomeFetcher interface {
	Fetch(ctx context.Context, url, apiKey string) (string, error)
}

// CallbackClient delivers the final job outcome to the caller's callback URL.
type CallbackClient interface {
	Send(ctx context.Context, url string, payload domain.CallbackPayload) error
}
