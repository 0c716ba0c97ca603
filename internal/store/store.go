// Package store implements the event data store: a five-phase state machine
// and the domain operations it gates (users, teams, submissions, judge
// assignments, scores, leaderboard, CSV export). Every mutation validates
// first, applies, then writes the full state back to the storage backend.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hackmanager/internal/config"
	"hackmanager/internal/models"
	"hackmanager/internal/storage"
)

// Storage keys, one JSON blob per collection.
const (
	keyConfig      = "hackathon_config"
	keyUsers       = "hackathon_users"
	keyTeams       = "hackathon_teams"
	keySubmissions = "hackathon_submissions"
	keyAssignments = "hackathon_judge_assignments"
	keyScores      = "hackathon_scores"
	keyCurrentUser = "hackathon_current_user"
)

var allKeys = []string{
	keyConfig, keyUsers, keyTeams, keySubmissions,
	keyAssignments, keyScores, keyCurrentUser,
}

// EventStore owns all domain state for one event. It is synchronous and not
// safe for concurrent use: every caller blocks until the mutation and its
// persistence complete, and there is no locking discipline because there is
// no concurrent access in the intended single-session deployment.
type EventStore struct {
	backend  storage.Backend
	defaults config.EventConfig

	config          *models.EventConfig
	users           []*models.User
	usersByID       map[string]*models.User
	teams           []*models.Team
	teamsByID       map[string]*models.Team
	submissions     []*models.Submission
	submissionsByID map[string]*models.Submission
	assignments     []models.JudgeAssignment
	scores          []*models.Score
	scoresByID      map[string]*models.Score
	currentUserID   string
}

// New loads every collection from the backend, falling back to an empty
// collection (or a freshly built default config) on a missing or corrupt
// key, and seeds the demo dataset when no users exist yet.
func New(defaults config.EventConfig, backend storage.Backend) (*EventStore, error) {
	s := &EventStore{
		backend:  backend,
		defaults: defaults,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	if len(s.users) == 0 {
		s.seedDemoData()
		if err := s.persist(); err != nil {
			return nil, fmt.Errorf("failed to persist seeded data: %w", err)
		}
	}
	return s, nil
}

func (s *EventStore) defaultConfig() *models.EventConfig {
	return &models.EventConfig{
		ID:           generateID(),
		Name:         s.defaults.Name,
		CurrentState: models.EventStateDraft,
		MaxTeamSize:  s.defaults.MaxTeamSize,
		MaxTeams:     s.defaults.MaxTeams,
		StateHistory: []models.StateChange{},
		CreatedAt:    time.Now(),
	}
}

// loadKey unmarshals one collection; missing and corrupt values both land on
// the provided default, never on an error. Corruption is deliberately
// swallowed here: a damaged blob degrades to a fresh start, not a crash.
func loadKey[T any](s *EventStore, key string, target *T) error {
	data, err := s.backend.Get(context.Background(), key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if data == nil {
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil
	}
	*target = value
	return nil
}

func (s *EventStore) load() error {
	s.config = s.defaultConfig()
	var cfg models.EventConfig
	data, err := s.backend.Get(context.Background(), keyConfig)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", keyConfig, err)
	}
	if data != nil {
		if err := json.Unmarshal(data, &cfg); err == nil {
			s.config = &cfg
		}
	}

	s.users = []*models.User{}
	s.teams = []*models.Team{}
	s.submissions = []*models.Submission{}
	s.assignments = []models.JudgeAssignment{}
	s.scores = []*models.Score{}
	s.currentUserID = ""

	if err := loadKey(s, keyUsers, &s.users); err != nil {
		return err
	}
	if err := loadKey(s, keyTeams, &s.teams); err != nil {
		return err
	}
	if err := loadKey(s, keySubmissions, &s.submissions); err != nil {
		return err
	}
	if err := loadKey(s, keyAssignments, &s.assignments); err != nil {
		return err
	}
	if err := loadKey(s, keyScores, &s.scores); err != nil {
		return err
	}
	if err := loadKey(s, keyCurrentUser, &s.currentUserID); err != nil {
		return err
	}

	s.reindex()
	return nil
}

// reindex rebuilds the id lookup maps from the ordered slices. The slices
// are the source of truth for ordering; the maps exist for O(1) lookup.
func (s *EventStore) reindex() {
	s.usersByID = make(map[string]*models.User, len(s.users))
	for _, u := range s.users {
		s.usersByID[u.ID] = u
	}
	s.teamsByID = make(map[string]*models.Team, len(s.teams))
	for _, t := range s.teams {
		s.teamsByID[t.ID] = t
	}
	s.submissionsByID = make(map[string]*models.Submission, len(s.submissions))
	for _, sub := range s.submissions {
		s.submissionsByID[sub.ID] = sub
	}
	s.scoresByID = make(map[string]*models.Score, len(s.scores))
	for _, sc := range s.scores {
		s.scoresByID[sc.ID] = sc
	}
}

// persist re-serializes every collection. O(total entities) per mutation,
// which is fine at the tens-to-hundreds scale this store is built for.
func (s *EventStore) persist() error {
	ctx := context.Background()
	blobs := []struct {
		key   string
		value interface{}
	}{
		{keyConfig, s.config},
		{keyUsers, s.users},
		{keyTeams, s.teams},
		{keySubmissions, s.submissions},
		{keyAssignments, s.assignments},
		{keyScores, s.scores},
		{keyCurrentUser, s.currentUserID},
	}
	for _, blob := range blobs {
		data, err := json.Marshal(blob.value)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", blob.key, err)
		}
		if err := s.backend.Set(ctx, blob.key, data); err != nil {
			return fmt.Errorf("failed to persist %s: %w", blob.key, err)
		}
	}
	return nil
}

// Reset deletes every persisted key and rebuilds the store from scratch,
// demo dataset included. Full blow-away, not a rollback.
func (s *EventStore) Reset() error {
	if err := s.backend.Delete(context.Background(), allKeys...); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}

	s.config = s.defaultConfig()
	s.users = []*models.User{}
	s.teams = []*models.Team{}
	s.submissions = []*models.Submission{}
	s.assignments = []models.JudgeAssignment{}
	s.scores = []*models.Score{}
	s.currentUserID = ""
	s.reindex()

	s.seedDemoData()
	return s.persist()
}

// Config returns a copy of the event configuration.
func (s *EventStore) Config() models.EventConfig {
	cfg := *s.config
	cfg.StateHistory = append([]models.StateChange{}, s.config.StateHistory...)
	return cfg
}

// State returns the current event phase.
func (s *EventStore) State() models.EventState {
	return s.config.CurrentState
}
