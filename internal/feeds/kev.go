package feeds

import (
	"context"
	"encoding/json"
	"fmt"
)

// FetchKEV retrieves the known-exploited-vulnerabilities catalog and
// returns its vulnerabilities array.
func (c *Collector) FetchKEV(ctx context.Context) ([]Vulnerability, error) {
	body, err := c.get(ctx, c.cfg.Sources.KEVURL)
	if err != nil {
		return nil, fmt.Errorf("fetch kev catalog: %w", err)
	}
	var cat kevCatalog
	if err := json.Unmarshal(body, &cat); err != nil {
		return nil, fmt.Errorf("decode kev catalog: %w", err)
	}
	return cat.Vulnerabilities, nil
}
