package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"threatdigest/internal/archive"
	"threatdigest/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	var (
		reportsDir  = flag.String("reports", "site/reports", "directory of rendered weekly reports")
		indexPath   = flag.String("index", "site/archive.html", "archive index page to rewrite")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("archive-updater %s (%s)\n", version, commit)
		return
	}

	logging.Init()

	weeks, err := archive.ScanReports(*reportsDir)
	if err != nil {
		slog.Error("scan reports", "dir", *reportsDir, "err", err)
		os.Exit(1)
	}
	// A missing index or container is fatal: rewriting the page on a
	// bad structural match would corrupt it.
	if err := archive.UpdateIndex(*indexPath, weeks); err != nil {
		slog.Error("update archive index", "index", *indexPath, "err", err)
		os.Exit(1)
	}
	if err := archive.WriteManifest(*reportsDir, weeks); err != nil {
		slog.Error("write manifest", "err", err)
		os.Exit(1)
	}
	slog.Info("archive updated", "index", *indexPath, "reports", len(weeks))
}
