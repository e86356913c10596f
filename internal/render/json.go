package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"threatdigest/internal/report"
)

// WriteJSON serializes the full report to <outDir>/<weekID>.json, the
// format the archive tooling reads back, and returns the written path.
func WriteJSON(r *report.AggregatedReport, outDir string) (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	path := filepath.Join(outDir, r.Metadata.WeekID+".json")
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write report json: %w", err)
	}
	return path, nil
}
