// Command demo resets the configured backend and walks the full event
// lifecycle end to end: registration, team formation, submission, judging,
// scoring and the published leaderboard.
package main

import (
	"fmt"
	"log"

	"hackmanager/internal/config"
	"hackmanager/internal/models"
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
	log.Printf("Event %q reset, %d seeded users", s.Config().Name, len(s.AllUsers()))

	mustTransition(s, models.EventStateRegistrationOpen)

	alice, err := s.RegisterUser(store.RegistrationData{
		Email:  "alice@example.com",
		Name:   "Alice",
		Skills: []string{"Go", "Postgres"},
		Role:   models.RoleParticipant,
	})
	if err != nil {
		log.Fatalf("Failed to register Alice: %v", err)
	}

	team, err := s.CreateTeam("Demo Dynamos", alice.ID)
	if err != nil {
		log.Fatalf("Failed to create team: %v", err)
	}
	log.Printf("Team %q created, invite code %s", team.Name, team.InviteCode)

	bob, err := s.RegisterUser(store.RegistrationData{
		Email:  "bob@example.com",
		Name:   "Bob",
		Skills: []string{"React"},
		Role:   models.RoleParticipant,
	})
	if err != nil {
		log.Fatalf("Failed to register Bob: %v", err)
	}
	if _, err := s.JoinTeam(team.InviteCode, bob.ID); err != nil {
		log.Fatalf("Failed to join team: %v", err)
	}

	mustTransition(s, models.EventStateSubmissionOpen)

	submission, err := s.CreateOrUpdateSubmission(team.ID, store.SubmissionData{
		Title:            "Realtime Ride Pooling",
		ProblemStatement: "Urban Mobility",
		Description:      "Matches commuters into shared rides on the fly.",
		GithubURL:        "https://github.com/demo/ride-pooling",
		DemoURL:          "https://ride-pooling.example.com",
		TechStack:        []string{"Go", "Postgres", "React"},
		FileName:         "pitch-deck.pdf",
		FileSize:         "2.4 MB",
	})
	if err != nil {
		log.Fatalf("Failed to submit project: %v", err)
	}
	log.Printf("Submission %q recorded for team %q", submission.Title, team.Name)

	mustTransition(s, models.EventStateJudgingOpen)

	created, err := s.AutoAssignJudges()
	if err != nil {
		log.Fatalf("Failed to auto-assign judges: %v", err)
	}
	log.Printf("Auto-assigned %d judge/submission pairs", created)

	judges := s.Judges()
	if _, err := s.SubmitScore(judges[0].ID, submission.ID, store.ScoreData{
		Innovation:   8,
		Execution:    7,
		Presentation: 9,
		Impact:       6,
		CodeQuality:  10,
		Comments:     "Solid execution, strong demo.",
	}); err != nil {
		log.Fatalf("Failed to submit score: %v", err)
	}

	mustTransition(s, models.EventStateResultsPublished)

	fmt.Println("\nLeaderboard:")
	for _, entry := range s.Leaderboard() {
		fmt.Printf("%3d. %-20s avg %.1f (%d scores)\n",
			entry.Rank, entry.Team.Name, entry.AverageScore, entry.ScoreCount)
	}
}

func mustTransition(s *store.EventStore, state models.EventState) {
	if _, err := s.Transition(state, "admin-1"); err != nil {
		log.Fatalf("Failed to transition to %s: %v", state, err)
	}
	log.Printf("Event is now %s", state)
}
