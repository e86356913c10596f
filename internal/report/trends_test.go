package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTrendFullHistory(t *testing.T) {
	prior := []int{1, 2, 3, 4, 5, 6, 7}
	m := BuildTrend(prior, []int{9, 9, 9, 9, 9, 9, 9}, 10)

	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 10}, m.History)
	require.Equal(t, 10, m.Current)
	require.Equal(t, 7, m.Previous)
	require.InDelta(t, 42.9, m.ChangePct, 0.01)
	require.InDelta(t, 4.8, m.Average, 0.01)
}

func TestBuildTrendSeedFallback(t *testing.T) {
	seed := []int{11, 12, 13, 14, 15, 16, 17}

	// Two persisted weeks leave five slots for the seed's tail.
	m := BuildTrend([]int{4, 6}, seed, 8)
	require.Equal(t, []int{13, 14, 15, 16, 17, 4, 6, 8}, m.History)
	require.Equal(t, 6, m.Previous)

	// No persisted weeks at all: the seed carries the whole history.
	m = BuildTrend(nil, seed, 8)
	require.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 8}, m.History)
	require.Equal(t, 17, m.Previous)
}

func TestBuildTrendLongPriorKeepsNewest(t *testing.T) {
	prior := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	m := BuildTrend(prior, nil, 11)

	require.Equal(t, []int{4, 5, 6, 7, 8, 9, 10, 11}, m.History)
	require.Equal(t, 10, m.Previous)
}

func TestBuildTrendShortSeedPadsWithZero(t *testing.T) {
	m := BuildTrend(nil, []int{5}, 3)

	require.Len(t, m.History, 8)
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 5, 3}, m.History)
}

func TestChangePct(t *testing.T) {
	require.Equal(t, 0.0, changePct(0, 0))
	require.Equal(t, 100.0, changePct(5, 0))
	require.Equal(t, -50.0, changePct(5, 10))
	require.Equal(t, 25.0, changePct(10, 8))
	require.InDelta(t, 33.3, changePct(4, 3), 0.01)
}

func TestLoadPriorStats(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, kev, c2, rw int) {
		t.Helper()
		body := struct {
			Stats Stats `json:"stats"`
		}{Stats{KEVCount: kev, C2Count: c2, RansomwareCount: rw}}
		b, err := json.Marshal(body)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), b, 0o644))
	}

	write("2026-W31.json", 7, 40, 1)
	write("2026-W33.json", 9, 55, 2)
	write("2026-W32.json", 8, 47, 1)
	write("2026-W34.json", 99, 99, 99) // current week, must be skipped
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2026-W30.json"), []byte("{broken"), 0o644))

	prior := LoadPriorStats(dir, "2026-W34")

	require.Len(t, prior, 3)
	require.Equal(t, 7, prior[0].KEVCount)
	require.Equal(t, 8, prior[1].KEVCount)
	require.Equal(t, 9, prior[2].KEVCount)
}

func TestLoadPriorStatsMissingDir(t *testing.T) {
	require.Empty(t, LoadPriorStats(filepath.Join(t.TempDir(), "nope"), "2026-W34"))
}
