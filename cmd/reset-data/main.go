// Command reset-data clears every persisted key in the configured backend
// and re-seeds the demo dataset.
package main

import (
	"log"

	"hackmanager/internal/config"
	"hackmanager/internal/storage"
	"hackmanager/internal/store"
)

func main() {
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

	if err := s.Reset(); err != nil {
		log.Fatalf("Failed to reset event data: %v", err)
	}
	log.Printf("Event data reset: %d users, %d teams seeded", len(s.AllUsers()), len(s.AllTeams()))
}
