package report

import (
	"sort"
	"strings"

	"threatdigest/internal/feeds"
)

// maxTopics bounds the trending-topic list.
const maxTopics = 10

// trendingTopics counts keyword mentions across lowercased news titles
// and keeps the most frequent, ties broken alphabetically.
func trendingTopics(keywords []string, news []feeds.NewsItem) []Topic {
	counts := make(map[string]int, len(keywords))
	for _, n := range news {
		title := strings.ToLower(n.Title)
		for _, k := range keywords {
			kw := strings.ToLower(k)
			if kw != "" && strings.Contains(title, kw) {
				counts[kw]++
			}
		}
	}

	topics := make([]Topic, 0, len(counts))
	for kw, c := range counts {
		topics = append(topics, Topic{Keyword: kw, Count: c})
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return topics[i].Keyword < topics[j].Keyword
	})
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}
