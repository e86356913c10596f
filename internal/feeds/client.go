package feeds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"threatdigest/internal/config"
)

// Collector fetches the configured sources into a FeedSet. It holds one
// HTTP client for the whole pass; connections are not reused across
// runs.
type Collector struct {
	cfg    *config.Config
	client *http.Client
}

// NewCollector builds a collector around the explicit configuration.
func NewCollector(cfg *config.Config) *Collector {
	return &Collector{cfg: cfg, client: newHTTPClient(cfg.HTTP.Timeout())}
}

// newHTTPClient bounds every request by timeout and follows at most one
// redirect.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > 1 {
				return errors.New("stopped after one redirect")
			}
			return nil
		},
	}
}

// get issues one GET and returns the response body. Non-200 statuses
// are errors; the caller decides how a failure degrades.
func (c *Collector) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.cfg.HTTP.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
