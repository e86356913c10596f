package report

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"threatdigest/internal/config"
	"threatdigest/internal/feeds"
)

// recencyWindow is the trailing span a vulnerability's dateAdded must
// fall into to count as recent.
const recencyWindow = 7 * 24 * time.Hour

// Params carries the non-feed inputs of one aggregation pass. Now
// drives the recency filter and the default week label; Prior holds the
// persisted stats history, oldest first.
type Params struct {
	Now    time.Time
	WeekID string
	Prior  []Stats
}

// Aggregate derives the full report from one collection pass. Given
// fixed feeds, params and configuration the output is deterministic
// apart from metadata.id and metadata.generated.
func Aggregate(cfg *config.Config, set *feeds.FeedSet, p Params) *AggregatedReport {
	year, week := p.Now.ISOWeek()
	weekID := p.WeekID
	if weekID == "" {
		weekID = WeekID(p.Now)
	} else if y, w, err := ParseWeekID(weekID); err == nil {
		year, week = y, w
	}

	recent := recentVulnerabilities(set.Vulnerabilities, p.Now)
	ransomware := ransomwareSubset(recent, cfg.RansomwareCVEs)
	indicators := filterIndicators(set.Indicators, cfg.Limits.MaxIndicators)

	families := tally(indicators, func(i feeds.Indicator) string { return i.Malware })
	countries := tally(indicators, func(i feeds.Indicator) string { return i.Country })

	stats := Stats{
		KEVCount:        len(recent),
		RansomwareCount: len(ransomware),
		C2Count:         len(indicators),
		NewsCount:       len(set.News),
	}
	score := Score(&cfg.Scoring, stats.KEVCount, stats.RansomwareCount, stats.C2Count)
	level := Level(&cfg.Scoring, score, stats.RansomwareCount)

	slog.Debug("aggregation derived",
		"week", weekID, "score", score, "level", level.String(),
		"recent", stats.KEVCount, "ransomware", stats.RansomwareCount)

	return &AggregatedReport{
		Metadata: Metadata{
			ID:          uuid.NewString(),
			Week:        week,
			Year:        year,
			WeekID:      weekID,
			Generated:   time.Now().UTC(),
			ThreatLevel: level,
			ThreatScore: score,
		},
		Stats: stats,
		Trends: Trends{
			KEV:        BuildTrend(statValues(p.Prior, func(s Stats) int { return s.KEVCount }), cfg.TrendSeeds.KEV, stats.KEVCount),
			C2:         BuildTrend(statValues(p.Prior, func(s Stats) int { return s.C2Count }), cfg.TrendSeeds.C2, stats.C2Count),
			Ransomware: BuildTrend(statValues(p.Prior, func(s Stats) int { return s.RansomwareCount }), cfg.TrendSeeds.Ransomware, stats.RansomwareCount),
		},
		Data: Data{
			RecentKEVs:      recent,
			RansomwareKEVs:  ransomware,
			C2Indicators:    indicators,
			MalwareFamilies: families,
			Countries:       countries,
			NewsItems:       set.News,
			NewsCoverage:    correlateNews(recent, set.News),
			Techniques:      tagTechniques(cfg, len(recent), families),
			TrendingTopics:  trendingTopics(cfg.Keywords, set.News),
		},
	}
}

// recentVulnerabilities keeps records whose dateAdded falls within the
// trailing window of now, sorted newest first then by CVE id. Records
// with unparseable dates are dropped.
func recentVulnerabilities(vulns []feeds.Vulnerability, now time.Time) []feeds.Vulnerability {
	cutoff := now.Add(-recencyWindow)
	recent := make([]feeds.Vulnerability, 0, len(vulns))
	for _, v := range vulns {
		added, err := time.Parse("2006-01-02", v.DateAdded)
		if err != nil {
			continue
		}
		if added.After(cutoff) && !added.After(now) {
			recent = append(recent, v)
		}
	}
	sort.Slice(recent, func(i, j int) bool {
		if recent[i].DateAdded != recent[j].DateAdded {
			return recent[i].DateAdded > recent[j].DateAdded
		}
		return recent[i].CVEID < recent[j].CVEID
	})
	return recent
}

// ransomwareSubset keeps recent records that appear in the allowlist or
// whose catalog flag reads "known", case-insensitively. The result
// preserves the recent ordering, so it stays a subset in order too.
func ransomwareSubset(recent []feeds.Vulnerability, allowlist []string) []feeds.Vulnerability {
	allow := make(map[string]struct{}, len(allowlist))
	for _, id := range allowlist {
		allow[strings.ToUpper(id)] = struct{}{}
	}

	subset := make([]feeds.Vulnerability, 0, len(recent))
	for _, v := range recent {
		_, listed := allow[strings.ToUpper(v.CVEID)]
		if listed || strings.EqualFold(v.KnownRansomwareCampaignUse, "known") {
			subset = append(subset, v)
		}
	}
	return subset
}

// filterIndicators keeps entries that are online or carry no status,
// capped at max while preserving feed order.
func filterIndicators(indicators []feeds.Indicator, max int) []feeds.Indicator {
	kept := make([]feeds.Indicator, 0, len(indicators))
	for _, in := range indicators {
		if in.Status != "" && !strings.EqualFold(in.Status, "online") {
			continue
		}
		kept = append(kept, in)
		if max > 0 && len(kept) == max {
			break
		}
	}
	return kept
}

// tally counts indicators by the given label, bucketing empty labels
// under "Unknown".
func tally(indicators []feeds.Indicator, key func(feeds.Indicator) string) map[string]int {
	counts := make(map[string]int)
	for _, in := range indicators {
		k := key(in)
		if k == "" {
			k = "Unknown"
		}
		counts[k]++
	}
	return counts
}
