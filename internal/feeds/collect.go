package feeds

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"threatdigest/internal/config"
	"threatdigest/internal/metrics"
)

// Collect runs one full collection pass: the two JSON sources in
// sequence, then the RSS fan-out joined by an all-settle barrier. Every
// source failure is logged and degrades to empty data, so Collect
// always returns a usable set.
func (c *Collector) Collect(ctx context.Context) *FeedSet {
	set := &FeedSet{}

	start := time.Now()
	vulns, err := c.FetchKEV(ctx)
	observe("kev", start, len(vulns), err)
	if err != nil {
		slog.Error("fetch failed", "source", "kev", "err", err)
	} else {
		set.Vulnerabilities = vulns
	}

	start = time.Now()
	indicators, err := c.FetchIndicators(ctx)
	observe("feodo", start, len(indicators), err)
	if err != nil {
		slog.Error("fetch failed", "source", "feodo", "err", err)
	} else {
		set.Indicators = indicators
	}

	// Each goroutine writes only its own slot, so the barrier is the
	// only coordination needed.
	results := make([][]NewsItem, len(c.cfg.Sources.RSS))
	var wg sync.WaitGroup
	for i, feed := range c.cfg.Sources.RSS {
		wg.Add(1)
		go func(i int, feed config.RSSFeed) {
			defer wg.Done()
			start := time.Now()
			items, err := c.FetchRSS(ctx, feed)
			observe(feed.Name, start, len(items), err)
			if err != nil {
				slog.Error("fetch failed", "source", feed.Name, "err", err)
				return
			}
			results[i] = items
		}(i, feed)
	}
	wg.Wait()

	for _, items := range results {
		set.News = append(set.News, items...)
	}

	slog.Info("collection complete",
		"vulnerabilities", len(set.Vulnerabilities),
		"indicators", len(set.Indicators),
		"news", len(set.News))
	return set
}

// CollectCached consults the feed cache before going to the network.
// refresh forces a live pass; a live pass refreshes the cache.
func (c *Collector) CollectCached(ctx context.Context, refresh bool) *FeedSet {
	now := time.Now()
	if !refresh {
		if set, ok := LoadCache(c.cfg.Cache.Path, c.cfg.Cache.TTL(), now); ok {
			slog.Info("using cached feeds", "path", c.cfg.Cache.Path)
			return set
		}
	}
	set := c.Collect(ctx)
	SaveCache(c.cfg.Cache.Path, set, now)
	return set
}

func observe(source string, start time.Time, items int, err error) {
	metrics.FeedFetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	metrics.FeedFetches.WithLabelValues(source).Inc()
	if err != nil {
		metrics.FeedFetchErrors.WithLabelValues(source).Inc()
		return
	}
	metrics.FeedItems.WithLabelValues(source).Set(float64(items))
}
