package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"threatdigest/internal/report"
)

// Manifest summarizes the rendered archive for API consumers, newest
// report first.
type Manifest struct {
	Generated time.Time       `json:"generated"`
	Count     int             `json:"count"`
	Reports   []ManifestEntry `json:"reports"`
}

type ManifestEntry struct {
	WeekID      string       `json:"weekID"`
	HTMLFile    string       `json:"html"`
	JSONFile    string       `json:"json,omitempty"`
	Stats       report.Stats `json:"stats"`
	ThreatLevel string       `json:"threatLevel"`
	Score       int          `json:"threatScore"`
}

// WriteManifest writes manifest.json into the reports directory.
func WriteManifest(dir string, weeks []WeekEntry) error {
	m := Manifest{
		Generated: time.Now().UTC(),
		Count:     len(weeks),
		Reports:   make([]ManifestEntry, 0, len(weeks)),
	}
	for _, w := range weeks {
		m.Reports = append(m.Reports, ManifestEntry{
			WeekID:      w.WeekID,
			HTMLFile:    w.HTMLFile,
			JSONFile:    w.JSONFile,
			Stats:       w.Stats,
			ThreatLevel: w.ThreatLevel,
			Score:       w.Score,
		})
	}

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
