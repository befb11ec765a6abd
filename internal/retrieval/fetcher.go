// internal/retrieval/fetcher.go
package retrieval

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	commonhttp "leadscore/internal/common/http"
)

// Fetcher retrieves the raw body of a public page. Implementations must be
// safe for concurrent use; the pipeline calls them from worker goroutines.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// maxBodyBytes caps how much of a page is read. Indicator extraction only
// needs the head and early body markup.
const maxBodyBytes = 2 << 20

type HTTPFetcher struct {
	client *commonhttp.Client
}

func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		client: commonhttp.NewClient(timeout, userAgent),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := f.client.DoWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", url, err)
	}
	return string(body), nil
}
