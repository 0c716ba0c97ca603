package store

import (
	"strings"
	"time"

	"hackmanager/internal/models"
)

// validTransitions is the directed edge set of the event state machine.
// Backward edges exist so an organizer can reopen a phase; the cycle closes
// with RESULTS_PUBLISHED -> DRAFT for the next event.
var validTransitions = map[models.EventState][]models.EventState{
	models.EventStateDraft:            {models.EventStateRegistrationOpen},
	models.EventStateRegistrationOpen: {models.EventStateSubmissionOpen, models.EventStateDraft},
	models.EventStateSubmissionOpen:   {models.EventStateJudgingOpen, models.EventStateRegistrationOpen},
	models.EventStateJudgingOpen:      {models.EventStateResultsPublished, models.EventStateSubmissionOpen},
	models.EventStateResultsPublished: {models.EventStateDraft},
}

// Transition moves the event to newState if the edge is legal, recording the
// previous state in the history. Leaving SUBMISSION_OPEN for JUDGING_OPEN
// additionally locks every existing submission; this is the only transition
// with a cross-entity side effect.
func (s *EventStore) Transition(newState models.EventState, actorID string) (models.EventState, error) {
	allowed := validTransitions[s.config.CurrentState]

	legal := false
	for _, state := range allowed {
		if state == newState {
			legal = true
			break
		}
	}
	if !legal {
		names := make([]string, len(allowed))
		for i, state := range allowed {
			names[i] = string(state)
		}
		return "", newError(CodeInvalidTransition,
			"Cannot transition from %s to %s. Valid transitions: %s",
			s.config.CurrentState, newState, strings.Join(names, ", "))
	}

	if s.config.CurrentState == models.EventStateSubmissionOpen && newState == models.EventStateJudgingOpen {
		for _, sub := range s.submissions {
			sub.IsLocked = true
		}
	}

	s.config.StateHistory = append(s.config.StateHistory, models.StateChange{
		State:     s.config.CurrentState,
		ChangedAt: time.Now(),
		ChangedBy: actorID,
	})
	s.config.CurrentState = newState

	if err := s.persist(); err != nil {
		return "", err
	}
	return newState, nil
}
