package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"threatdigest/internal/config"
	"threatdigest/internal/feeds"
	"threatdigest/internal/logging"
	"threatdigest/internal/metrics"
	"threatdigest/internal/render"
	"threatdigest/internal/report"
)

// Populated at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

// runTimeout bounds one whole collection pass; individual requests are
// bounded separately by the HTTP client timeout.
const runTimeout = 2 * time.Minute

func main() {
	var (
		outDir      = flag.String("out", "", "output directory for rendered reports (overrides config)")
		configPath  = flag.String("config", "", "path to a YAML config file")
		weekID      = flag.String("week", "", "override the report week (YYYY-Www)")
		refresh     = flag.Bool("refresh", false, "bypass the feed cache")
		dryRun      = flag.Bool("dry-run", false, "aggregate and log the summary without writing files")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("threatdigest %s (%s)\n", version, commit)
		return
	}

	_ = godotenv.Load()
	logging.Init()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	now := time.Now()
	wid := *weekID
	if wid == "" {
		wid = report.WeekID(now)
	} else if _, _, err := report.ParseWeekID(wid); err != nil {
		slog.Error("invalid -week value", "week", wid, "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	collector := feeds.NewCollector(cfg)
	set := collector.CollectCached(ctx, *refresh)

	prior := report.LoadPriorStats(cfg.OutputDir, wid)
	rep := report.Aggregate(cfg, set, report.Params{Now: now, WeekID: wid, Prior: prior})

	metrics.ReportsGenerated.Inc()
	metrics.ThreatScore.Set(float64(rep.Metadata.ThreatScore))

	slog.Info("report aggregated",
		"week", rep.Metadata.WeekID,
		"level", rep.Metadata.ThreatLevel.String(),
		"score", rep.Metadata.ThreatScore,
		"kev", rep.Stats.KEVCount,
		"ransomware", rep.Stats.RansomwareCount,
		"c2", rep.Stats.C2Count,
		"news", rep.Stats.NewsCount)

	if *dryRun {
		slog.Info("dry run, nothing written")
		return
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		slog.Error("create output dir", "dir", cfg.OutputDir, "err", err)
		os.Exit(1)
	}
	jsonPath, err := render.WriteJSON(rep, cfg.OutputDir)
	if err != nil {
		slog.Error("write report json", "err", err)
		os.Exit(1)
	}
	htmlPath, err := render.WriteHTML(rep, cfg.OutputDir)
	if err != nil {
		slog.Error("write report html", "err", err)
		os.Exit(1)
	}
	slog.Info("report written", "html", htmlPath, "json", jsonPath)
}
