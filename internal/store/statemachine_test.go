package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackmanager/internal/models"
)

var allStates = []models.EventState{
	models.EventStateDraft,
	models.EventStateRegistrationOpen,
	models.EventStateSubmissionOpen,
	models.EventStateJudgingOpen,
	models.EventStateResultsPublished,
}

func TestTransitionCoversEveryEdge(t *testing.T) {
	for from, targets := range validTransitions {
		for _, to := range targets {
			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				s := newBareStore(t)
				s.config.CurrentState = from

				historyBefore := len(s.config.StateHistory)
				got, err := s.Transition(to, "admin-1")
				require.NoError(t, err)
				assert.Equal(t, to, got)
				assert.Equal(t, to, s.State())

				require.Len(t, s.config.StateHistory, historyBefore+1)
				last := s.config.StateHistory[len(s.config.StateHistory)-1]
				assert.Equal(t, from, last.State)
				assert.Equal(t, "admin-1", last.ChangedBy)
			})
		}
	}
}

func TestTransitionRejectsEveryIllegalPair(t *testing.T) {
	for _, from := range allStates {
		allowed := map[models.EventState]bool{}
		for _, to := range validTransitions[from] {
			allowed[to] = true
		}

		for _, to := range allStates {
			if allowed[to] {
				continue
			}
			s := newBareStore(t)
			s.config.CurrentState = from

			_, err := s.Transition(to, "admin-1")
			require.Error(t, err, "%s -> %s should be illegal", from, to)
			assert.Equal(t, CodeInvalidTransition, Code(err))
			assert.Contains(t, err.Error(), string(from))
			assert.Equal(t, from, s.State())
			assert.Empty(t, s.config.StateHistory)
		}
	}
}

func TestTransitionToJudgingLocksAllSubmissions(t *testing.T) {
	s := newBareStore(t)
	advanceTo(t, s, models.EventStateRegistrationOpen)

	alice := registerParticipant(t, s, "alice@example.com", "Alice")
	teamA, err := s.CreateTeam("Alpha", alice.ID)
	require.NoError(t, err)
	bob := registerParticipant(t, s, "bob@example.com", "Bob")
	teamB, err := s.CreateTeam("Beta", bob.ID)
	require.NoError(t, err)

	advanceTo(t, s, models.EventStateSubmissionOpen)
	subA, err := s.CreateOrUpdateSubmission(teamA.ID, SubmissionData{Title: "A"})
	require.NoError(t, err)
	subB, err := s.CreateOrUpdateSubmission(teamB.ID, SubmissionData{Title: "B"})
	require.NoError(t, err)
	assert.False(t, subA.IsLocked)
	assert.False(t, subB.IsLocked)

	_, err = s.Transition(models.EventStateJudgingOpen, "admin-1")
	require.NoError(t, err)

	assert.True(t, s.SubmissionByID(subA.ID).IsLocked)
	assert.True(t, s.SubmissionByID(subB.ID).IsLocked)
}

func TestReopeningSubmissionsDoesNotUnlock(t *testing.T) {
	s := newBareStore(t)
	advanceTo(t, s, models.EventStateRegistrationOpen)
	alice := registerParticipant(t, s, "alice@example.com", "Alice")
	team, err := s.CreateTeam("Alpha", alice.ID)
	require.NoError(t, err)

	advanceTo(t, s, models.EventStateSubmissionOpen)
	sub, err := s.CreateOrUpdateSubmission(team.ID, SubmissionData{Title: "A"})
	require.NoError(t, err)

	_, err = s.Transition(models.EventStateJudgingOpen, "admin-1")
	require.NoError(t, err)
	_, err = s.Transition(models.EventStateSubmissionOpen, "admin-1")
	require.NoError(t, err)

	// The bulk lock is one-way; going back to SUBMISSION_OPEN leaves the
	// lock in place until an organizer unlocks explicitly.
	assert.True(t, s.SubmissionByID(sub.ID).IsLocked)
}
