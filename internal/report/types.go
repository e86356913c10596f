package report

import (
	"time"

	"threatdigest/internal/feeds"
)

// AggregatedReport is the artifact one run produces: serialized to JSON
// next to the rendered HTML, and the storage format the archive tooling
// reads back. It is never mutated after aggregation.
type AggregatedReport struct {
	Metadata Metadata `json:"metadata"`
	Stats    Stats    `json:"stats"`
	Trends   Trends   `json:"trends"`
	Data     Data     `json:"data"`
}

type Metadata struct {
	ID          string      `json:"id"`
	Week        int         `json:"week"`
	Year        int         `json:"year"`
	WeekID      string      `json:"weekID"`
	Generated   time.Time   `json:"generated"`
	ThreatLevel ThreatLevel `json:"threatLevel"`
	ThreatScore int         `json:"threatScore"`
}

// Stats holds the four headline counts. The field paths stats.kevCount,
// stats.c2Count and stats.ransomwareCount are depended on by the
// archive tooling and must not move.
type Stats struct {
	KEVCount        int `json:"kevCount"`
	RansomwareCount int `json:"ransomwareCount"`
	C2Count         int `json:"c2Count"`
	NewsCount       int `json:"newsCount"`
}

type Trends struct {
	KEV        TrendMetric `json:"kev"`
	C2         TrendMetric `json:"c2"`
	Ransomware TrendMetric `json:"ransomware"`
}

// TrendMetric compares the current value against persisted history.
// History always holds historyLen values and ends in Current.
type TrendMetric struct {
	Current   int     `json:"current"`
	Previous  int     `json:"previous"`
	ChangePct float64 `json:"changePct"`
	Average   float64 `json:"average"`
	History   []int   `json:"history"`
}

type Data struct {
	RecentKEVs      []feeds.Vulnerability       `json:"recentKEVs"`
	RansomwareKEVs  []feeds.Vulnerability       `json:"ransomwareKEVs"`
	C2Indicators    []feeds.Indicator           `json:"c2Indicators"`
	MalwareFamilies map[string]int              `json:"malwareFamilies"`
	Countries       map[string]int              `json:"countries"`
	NewsItems       []feeds.NewsItem            `json:"newsItems"`
	NewsCoverage    map[string][]feeds.NewsItem `json:"newsCoverage"`
	Techniques      map[string]TechniqueStat    `json:"techniques"`
	TrendingTopics  []Topic                     `json:"trendingTopics"`
}

// TechniqueStat is one ATT&CK technique with its aggregated weight.
type TechniqueStat struct {
	TacticID      string `json:"tacticId"`
	TacticName    string `json:"tacticName"`
	TechniqueID   string `json:"techniqueId"`
	TechniqueName string `json:"techniqueName"`
	Count         int    `json:"count"`
}

// Topic is one trending keyword with its mention count.
type Topic struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}
