package report

import (
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// historyLen is the fixed length of every trend history, current value
// included.
const historyLen = 8

var weekJSONRe = regexp.MustCompile(`^\d{4}-W\d{2}\.json$`)

// LoadPriorStats reads the stats blocks of previously persisted reports
// in dir, oldest first. The report for currentWeekID is skipped so a
// regenerated week does not feed its own history. Unreadable files are
// skipped with a warning.
func LoadPriorStats(dir, currentWeekID string) []Stats {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !weekJSONRe.MatchString(e.Name()) {
			continue
		}
		if e.Name() == currentWeekID+".json" {
			continue
		}
		names = append(names, e.Name())
	}
	// Zero-padded YYYY-Www labels sort chronologically.
	sort.Strings(names)

	var prior []Stats
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("prior report unreadable", "file", name, "err", err)
			continue
		}
		var probe struct {
			Stats Stats `json:"stats"`
		}
		if err := json.Unmarshal(b, &probe); err != nil {
			slog.Warn("prior report undecodable", "file", name, "err", err)
			continue
		}
		prior = append(prior, probe.Stats)
	}
	return prior
}

// BuildTrend assembles one metric's history: the most recent persisted
// values right-aligned before the current value, remaining slots filled
// from the tail of the seed.
func BuildTrend(prior, seed []int, current int) TrendMetric {
	history := make([]int, historyLen)
	history[historyLen-1] = current

	i := historyLen - 2
	for p := len(prior) - 1; p >= 0 && i >= 0; p-- {
		history[i] = prior[p]
		i--
	}
	for s := len(seed) - 1; s >= 0 && i >= 0; s-- {
		history[i] = seed[s]
		i--
	}

	previous := history[historyLen-2]
	return TrendMetric{
		Current:   current,
		Previous:  previous,
		ChangePct: changePct(current, previous),
		Average:   round1(mean(history)),
		History:   history,
	}
}

// changePct is the percent change against previous, one decimal. A zero
// previous yields 0 for an unchanged value and 100 otherwise, never a
// division by zero.
func changePct(current, previous int) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return round1(float64(current-previous) / float64(previous) * 100)
}

func mean(vals []int) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return float64(sum) / float64(len(vals))
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// statValues projects one stats field across the prior reports.
func statValues(prior []Stats, pick func(Stats) int) []int {
	vals := make([]int, len(prior))
	for i, s := range prior {
		vals[i] = pick(s)
	}
	return vals
}
