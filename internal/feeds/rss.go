package feeds

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"threatdigest/internal/config"
)

// RSS extraction is deliberately permissive: item blocks and their
// fields are pulled with regexes rather than an XML parse, so a
// malformed or truncated feed yields fewer items instead of an error.
var (
	itemRe    = regexp.MustCompile(`(?is)<item(?:\s[^>]*)?>(.*?)</item>`)
	titleRe   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	linkRe    = regexp.MustCompile(`(?is)<link[^>]*>(.*?)</link>`)
	pubDateRe = regexp.MustCompile(`(?is)<pubdate[^>]*>(.*?)</pubdate>`)
	cdataRe   = regexp.MustCompile(`(?s)^\s*<!\[CDATA\[(.*?)\]\]>\s*$`)
)

// FetchRSS retrieves one news feed and extracts its items. Only
// transport failures return an error; unparseable content degrades to
// zero items.
func (c *Collector) FetchRSS(ctx context.Context, feed config.RSSFeed) ([]NewsItem, error) {
	body, err := c.get(ctx, feed.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch rss %s: %w", feed.Name, err)
	}
	return extractItems(string(body), feed.Name, c.cfg.Limits.MaxNewsPerFeed), nil
}

// extractItems scans raw feed text for item blocks. Items missing a
// title or link are skipped; at most limit items are kept (no limit
// when it is zero or negative).
func extractItems(raw, source string, limit int) []NewsItem {
	var items []NewsItem
	for _, m := range itemRe.FindAllStringSubmatch(raw, -1) {
		block := m[1]
		title := cleanField(firstMatch(titleRe, block))
		link := cleanField(firstMatch(linkRe, block))
		if title == "" || link == "" {
			continue
		}
		items = append(items, NewsItem{
			Title:   title,
			Link:    link,
			PubDate: cleanField(firstMatch(pubDateRe, block)),
			Source:  source,
		})
		if limit > 0 && len(items) == limit {
			break
		}
	}
	return items
}

func firstMatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return ""
}

// cleanField strips a CDATA wrapper, unescapes entities and trims the
// result.
func cleanField(s string) string {
	if m := cdataRe.FindStringSubmatch(s); len(m) > 1 {
		s = m[1]
	}
	return strings.TrimSpace(html.UnescapeString(s))
}
