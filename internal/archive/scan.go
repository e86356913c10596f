package archive

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"threatdigest/internal/report"
)

var weekHTMLRe = regexp.MustCompile(`^(\d{4}-W\d{2})\.html$`)

// placeholderLevel is displayed for weeks whose summary JSON is missing
// or unreadable.
const placeholderLevel = "UNKNOWN"

// WeekEntry is one rendered week as the archive shows it.
type WeekEntry struct {
	WeekID      string
	HTMLFile    string
	JSONFile    string
	Stats       report.Stats
	ThreatLevel string
	Score       int
	HasJSON     bool
}

// ScanReports lists rendered weeks newest first. Display stats come
// from each week's sibling JSON; a missing or unreadable summary falls
// back to the zero-stats placeholder rather than failing the scan.
func ScanReports(dir string) ([]WeekEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var weeks []WeekEntry
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := weekHTMLRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		week := WeekEntry{WeekID: m[1], HTMLFile: e.Name(), ThreatLevel: placeholderLevel}

		jsonName := m[1] + ".json"
		if b, err := os.ReadFile(filepath.Join(dir, jsonName)); err == nil {
			var r report.AggregatedReport
			if err := json.Unmarshal(b, &r); err != nil {
				slog.Warn("report summary unreadable", "file", jsonName, "err", err)
			} else {
				week.JSONFile = jsonName
				week.Stats = r.Stats
				week.ThreatLevel = r.Metadata.ThreatLevel.String()
				week.Score = r.Metadata.ThreatScore
				week.HasJSON = true
			}
		}
		weeks = append(weeks, week)
	}

	// Filename order is chronological, so descending names put the
	// newest week first.
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].HTMLFile > weeks[j].HTMLFile })
	return weeks, nil
}

// Totals sums the displayed counters across all weeks.
type Totals struct {
	Reports    int
	KEVs       int
	C2         int
	Ransomware int
}

func SumTotals(weeks []WeekEntry) Totals {
	t := Totals{Reports: len(weeks)}
	for _, w := range weeks {
		t.KEVs += w.Stats.KEVCount
		t.C2 += w.Stats.C2Count
		t.Ransomware += w.Stats.RansomwareCount
	}
	return t
}
