package report

import (
	"strings"

	"threatdigest/internal/feeds"
)

// correlateNews maps each recent CVE to the news items whose lowercased
// titles mention its id, vendor or product as a substring. The match is
// a heuristic; false positives and negatives are accepted.
func correlateNews(recent []feeds.Vulnerability, news []feeds.NewsItem) map[string][]feeds.NewsItem {
	coverage := make(map[string][]feeds.NewsItem)
	for _, v := range recent {
		needles := []string{
			strings.ToLower(v.CVEID),
			strings.ToLower(v.VendorProject),
			strings.ToLower(v.Product),
		}
		for _, n := range news {
			if containsAny(strings.ToLower(n.Title), needles) {
				coverage[v.CVEID] = append(coverage[v.CVEID], n)
			}
		}
	}
	return coverage
}

// containsAny reports whether s contains any non-empty needle. Empty
// needles are ignored so a record with a blank vendor does not match
// every headline.
func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
