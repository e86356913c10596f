package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"threatdigest/internal/report"
)

// page is the template's view of one report, with the grouped maps
// flattened into stable display order.
type page struct {
	R          *report.AggregatedReport
	LevelClass string
	Families   []groupRow
	Countries  []groupRow
	Techniques []report.TechniqueStat
	Ransomware map[string]bool
}

type groupRow struct {
	Label string
	Count int
	Pct   float64
}

// WriteHTML renders the report page to <outDir>/<weekID>.html and
// returns the written path.
func WriteHTML(r *report.AggregatedReport, outDir string) (string, error) {
	path := filepath.Join(outDir, r.Metadata.WeekID+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report html: %w", err)
	}
	defer f.Close()

	if err := reportTmpl.Execute(f, buildPage(r)); err != nil {
		return "", fmt.Errorf("render report html: %w", err)
	}
	return path, nil
}

func buildPage(r *report.AggregatedReport) *page {
	ransomware := make(map[string]bool, len(r.Data.RansomwareKEVs))
	for _, v := range r.Data.RansomwareKEVs {
		ransomware[v.CVEID] = true
	}
	return &page{
		R:          r,
		LevelClass: strings.ToLower(r.Metadata.ThreatLevel.String()),
		Families:   groupRows(r.Data.MalwareFamilies, r.Stats.C2Count),
		Countries:  groupRows(r.Data.Countries, r.Stats.C2Count),
		Techniques: sortedTechniques(r.Data.Techniques),
		Ransomware: ransomware,
	}
}

// groupRows orders a tally by count descending then label, attaching
// each row's share of total. A zero total yields 0 shares, never NaN.
func groupRows(counts map[string]int, total int) []groupRow {
	rows := make([]groupRow, 0, len(counts))
	for label, count := range counts {
		row := groupRow{Label: label, Count: count}
		if total > 0 {
			row.Pct = float64(count) * 100 / float64(total)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}

func sortedTechniques(techniques map[string]report.TechniqueStat) []report.TechniqueStat {
	out := make([]report.TechniqueStat, 0, len(techniques))
	for _, t := range techniques {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].TechniqueID < out[j].TechniqueID
	})
	return out
}
