package feeds

import (
	"context"
	"encoding/json"
	"fmt"
)

// FetchIndicators retrieves the C2 IP blocklist.
func (c *Collector) FetchIndicators(ctx context.Context) ([]Indicator, error) {
	body, err := c.get(ctx, c.cfg.Sources.FeodoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch ip blocklist: %w", err)
	}
	var indicators []Indicator
	if err := json.Unmarshal(body, &indicators); err != nil {
		return nil, fmt.Errorf("decode ip blocklist: %w", err)
	}
	return indicators, nil
}
