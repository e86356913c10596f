package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"threatdigest/internal/report"
)

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Threat Digest Archive</title>
</head>
<body>
<header>
<h1>Threat Digest Archive</h1>
<p><span data-counter="reports">0</span> reports, <span data-counter="kevs">0</span> KEV entries,
<span data-counter="c2">0</span> C2 servers, <span data-counter="ransomware">0</span> ransomware CVEs.</p>
</header>
<section id="archive-grid">
<article class="report-card"><a href="2020-W01.html"><h3>stale card</h3></a></article>
<article class="report-card"><a href="2020-W02.html"><h3>stale card</h3></a></article>
</section>
<footer>Maintained by the digest pipeline.</footer>
</body>
</html>
`

func writeReportPair(t *testing.T, dir, weekID, level string, score, kev, c2, ransomware int) {
	t.Helper()
	page := "<!DOCTYPE html><html><body>" + weekID + "</body></html>"
	require.NoError(t, os.WriteFile(filepath.Join(dir, weekID+".html"), []byte(page), 0o644))
	doc := fmt.Sprintf(`{
  "metadata": {"weekID": %q, "threatLevel": %q, "threatScore": %d},
  "stats": {"kevCount": %d, "ransomwareCount": %d, "c2Count": %d, "newsCount": 0}
}`, weekID, level, score, kev, ransomware, c2)
	require.NoError(t, os.WriteFile(filepath.Join(dir, weekID+".json"), []byte(doc), 0o644))
}

func TestScanReports(t *testing.T) {
	dir := t.TempDir()
	writeReportPair(t, dir, "2026-W32", "GUARDED", 45, 3, 20, 1)
	writeReportPair(t, dir, "2026-W34", "CRITICAL", 174, 5, 12, 3)
	writeReportPair(t, dir, "2026-W33", "LOW", 10, 0, 5, 0)

	// A rendered week without its summary, and one with a broken summary.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2026-W31.html"), []byte("<html></html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2026-W29.html"), []byte("<html></html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2026-W29.json"), []byte("{broken"), 0o644))

	// Files and directories the scan must ignore.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "assets"), 0o755))

	weeks, err := ScanReports(dir)
	require.NoError(t, err)
	require.Len(t, weeks, 5)

	ids := make([]string, len(weeks))
	for i, w := range weeks {
		ids[i] = w.WeekID
	}
	require.Equal(t, []string{"2026-W34", "2026-W33", "2026-W32", "2026-W31", "2026-W29"}, ids)

	newest := weeks[0]
	require.True(t, newest.HasJSON)
	require.Equal(t, "2026-W34.json", newest.JSONFile)
	require.Equal(t, "CRITICAL", newest.ThreatLevel)
	require.Equal(t, 174, newest.Score)
	require.Equal(t, report.Stats{KEVCount: 5, RansomwareCount: 3, C2Count: 12}, newest.Stats)

	for _, i := range []int{3, 4} {
		require.False(t, weeks[i].HasJSON)
		require.Empty(t, weeks[i].JSONFile)
		require.Equal(t, "UNKNOWN", weeks[i].ThreatLevel)
		require.Zero(t, weeks[i].Stats.KEVCount)
	}
}

func TestScanReportsMissingDir(t *testing.T) {
	_, err := ScanReports(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestSumTotals(t *testing.T) {
	weeks := []WeekEntry{
		{Stats: report.Stats{KEVCount: 5, RansomwareCount: 3, C2Count: 12}},
		{Stats: report.Stats{KEVCount: 0, RansomwareCount: 0, C2Count: 5}},
		{Stats: report.Stats{KEVCount: 3, RansomwareCount: 1, C2Count: 20}},
	}
	require.Equal(t, Totals{Reports: 3, KEVs: 8, C2: 37, Ransomware: 4}, SumTotals(weeks))
}

func TestUpdateIndex(t *testing.T) {
	dir := t.TempDir()
	writeReportPair(t, dir, "2026-W32", "GUARDED", 45, 3, 20, 1)
	writeReportPair(t, dir, "2026-W33", "LOW", 10, 0, 5, 0)
	writeReportPair(t, dir, "2026-W34", "CRITICAL", 174, 5, 12, 3)

	indexPath := filepath.Join(dir, "archive.html")
	require.NoError(t, os.WriteFile(indexPath, []byte(indexPage), 0o644))

	weeks, err := ScanReports(dir)
	require.NoError(t, err)
	require.NoError(t, UpdateIndex(indexPath, weeks))

	b, err := os.ReadFile(indexPath)
	require.NoError(t, err)
	page := string(b)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	// Full replace of the container: three fresh cards, stale ones gone.
	cards := doc.Find("#archive-grid article.report-card")
	require.Equal(t, 3, cards.Length())
	require.NotContains(t, page, "stale card")
	require.NotContains(t, page, "2020-W01.html")
	require.Equal(t, "2026-W34", cards.Eq(0).Find("h3").Text())
	require.Equal(t, "2026-W32", cards.Eq(2).Find("h3").Text())
	href, _ := cards.Eq(0).Find("a").Attr("href")
	require.Equal(t, "2026-W34.html", href)
	require.Contains(t, page, "level-critical")

	require.Equal(t, "3", doc.Find(`[data-counter="reports"]`).Text())
	require.Equal(t, "8", doc.Find(`[data-counter="kevs"]`).Text())
	require.Equal(t, "37", doc.Find(`[data-counter="c2"]`).Text())
	require.Equal(t, "4", doc.Find(`[data-counter="ransomware"]`).Text())

	// Markup outside the container survives the rewrite.
	require.Contains(t, page, "<h1>Threat Digest Archive</h1>")
	require.Contains(t, page, "Maintained by the digest pipeline.")

	// A second run over the same weeks must not drift the document.
	require.NoError(t, UpdateIndex(indexPath, weeks))
	again, err := os.ReadFile(indexPath)
	require.NoError(t, err)
	require.Equal(t, page, string(again))
}

func TestUpdateIndexEmptyWeeks(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "archive.html")
	require.NoError(t, os.WriteFile(indexPath, []byte(indexPage), 0o644))

	require.NoError(t, UpdateIndex(indexPath, nil))

	b, err := os.ReadFile(indexPath)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(b)))
	require.NoError(t, err)

	require.Zero(t, doc.Find("#archive-grid").Children().Length())
	require.Equal(t, "0", doc.Find(`[data-counter="reports"]`).Text())
}

func TestUpdateIndexMissingIndex(t *testing.T) {
	err := UpdateIndex(filepath.Join(t.TempDir(), "archive.html"), nil)
	require.ErrorIs(t, err, ErrNoIndex)
}

func TestUpdateIndexMissingContainer(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "archive.html")
	page := "<!DOCTYPE html><html><body><p>no grid here</p></body></html>"
	require.NoError(t, os.WriteFile(indexPath, []byte(page), 0o644))

	err := UpdateIndex(indexPath, nil)
	require.ErrorIs(t, err, ErrNoContainer)

	// The file must be untouched after a refused rewrite.
	b, readErr := os.ReadFile(indexPath)
	require.NoError(t, readErr)
	require.Equal(t, page, string(b))
}

func TestRenderCards(t *testing.T) {
	out, err := renderCards([]WeekEntry{{
		WeekID:      "2026-W34",
		HTMLFile:    "2026-W34.html",
		ThreatLevel: "CRITICAL",
		Stats:       report.Stats{KEVCount: 5, RansomwareCount: 3, C2Count: 12},
	}})
	require.NoError(t, err)
	require.Contains(t, out, `href="2026-W34.html"`)
	require.Contains(t, out, "level-critical")
	require.Contains(t, out, "<strong>12</strong> C2 servers")
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	weeks := []WeekEntry{
		{
			WeekID: "2026-W34", HTMLFile: "2026-W34.html", JSONFile: "2026-W34.json",
			Stats: report.Stats{KEVCount: 5, RansomwareCount: 3, C2Count: 12}, ThreatLevel: "CRITICAL", Score: 174, HasJSON: true,
		},
		{WeekID: "2026-W33", HTMLFile: "2026-W33.html", ThreatLevel: "UNKNOWN"},
	}

	require.NoError(t, WriteManifest(dir, weeks))

	b, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(b, &m))
	require.Equal(t, 2, m.Count)
	require.Len(t, m.Reports, 2)
	require.Equal(t, "2026-W34", m.Reports[0].WeekID)
	require.Equal(t, 174, m.Reports[0].Score)
	require.False(t, m.Generated.IsZero())

	// Weeks without a summary omit the json field entirely.
	var raw struct {
		Reports []map[string]any `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(b, &raw))
	require.NotContains(t, raw.Reports[1], "json")
	require.Contains(t, raw.Reports[0], "json")
}
