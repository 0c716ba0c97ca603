// Command export-csv writes the teams, submissions and scores reports from
// the configured backend to an output directory.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"hackmanager/internal/config"
	"hackmanager/internal/storage"
	"hackmanager/internal/store"
)

func main() {
	outDir := flag.String("out", "exports", "directory the CSV files are written to")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	backend, err := storage.Open(cfg.Storage, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}
	defer backend.Close()

	s, err := store.New(cfg.Event, backend)
	if err != nil {
		log.Fatalf("Failed to build event store: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	reports := []struct {
		name    string
		content string
	}{
		{"teams.csv", s.ExportTeamsCSV()},
		{"submissions.csv", s.ExportSubmissionsCSV()},
		{"scores.csv", s.ExportScoresCSV()},
	}
	for _, report := range reports {
		path := filepath.Join(*outDir, report.name)
		if err := os.WriteFile(path, []byte(report.content), 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("Wrote %s", path)
	}
}
