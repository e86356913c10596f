package feeds

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// cacheFile is the on-disk shape of one cached collection pass.
type cacheFile struct {
	FetchedAt time.Time `json:"fetchedAt"`
	Feeds     FeedSet   `json:"feeds"`
}

// LoadCache returns the cached FeedSet when the file at path exists, is
// readable and is younger than ttl. Any problem is a cache miss.
func LoadCache(path string, ttl time.Duration, now time.Time) (*FeedSet, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var cf cacheFile
	if err := json.Unmarshal(b, &cf); err != nil {
		slog.Warn("feed cache unreadable", "path", path, "err", err)
		return nil, false
	}
	if cf.FetchedAt.IsZero() || now.Sub(cf.FetchedAt) > ttl {
		return nil, false
	}
	return &cf.Feeds, true
}

// SaveCache writes the FeedSet with its fetch timestamp. The cache is
// an optimization only, so failures are logged and swallowed.
func SaveCache(path string, fs *FeedSet, now time.Time) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		slog.Warn("feed cache dir", "path", path, "err", err)
		return
	}
	b, err := json.MarshalIndent(cacheFile{FetchedAt: now, Feeds: *fs}, "", "  ")
	if err != nil {
		slog.Warn("feed cache encode", "err", err)
		return
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		slog.Warn("feed cache write", "path", path, "err", err)
	}
}
