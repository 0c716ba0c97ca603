package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackmanager/internal/models"
)

func TestExportTeamsCSV(t *testing.T) {
	s := newBareStore(t)
	advanceTo(t, s, models.EventStateRegistrationOpen)
	alice := registerParticipant(t, s, "alice@example.com", "Alice")
	team, err := s.CreateTeam("Alpha", alice.ID)
	require.NoError(t, err)

	out := s.ExportTeamsCSV()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"Team ID,Team Name,Invite Code,Leader,Members,Member Count,Has Submission,Is Locked,Is Disqualified,Created At",
		lines[0])
	assert.Contains(t, lines[1], `"Alpha"`)
	assert.Contains(t, lines[1], `"Alice"`)
	assert.Contains(t, lines[1], `"`+team.InviteCode+`"`)
	assert.Contains(t, lines[1], `"1"`)
	assert.Contains(t, lines[1], `"No"`)
}

func TestExportSubmissionsCSV(t *testing.T) {
	s := newBareStore(t)
	advanceTo(t, s, models.EventStateRegistrationOpen)
	alice := registerParticipant(t, s, "alice@example.com", "Alice")
	team, err := s.CreateTeam("Alpha", alice.ID)
	require.NoError(t, err)
	advanceTo(t, s, models.EventStateSubmissionOpen)
	_, err = s.CreateOrUpdateSubmission(team.ID, SubmissionData{
		Title:     "Ride Pooling",
		TechStack: []string{"Go", "React"},
		GithubURL: "https://github.com/a/b",
	})
	require.NoError(t, err)

	out := s.ExportSubmissionsCSV()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Submission ID,Team ID,Team Name,Title"))
	assert.Contains(t, lines[1], `"Ride Pooling"`)
	assert.Contains(t, lines[1], `"Go; React"`)
	assert.Contains(t, lines[1], `"Alpha"`)
}

func TestExportScoresCSV(t *testing.T) {
	s, judge, sub := judgingFixture(t)
	_, err := s.SubmitScore(judge.ID, sub.ID, validScore())
	require.NoError(t, err)

	out := s.ExportScoresCSV()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Score ID,Judge ID,Judge Name"))
	assert.Contains(t, lines[1], `"Judge"`)
	assert.Contains(t, lines[1], `"77.5"`)
	assert.Contains(t, lines[1], `"Nice work"`)
}

func TestExportQuotesEveryFieldAndDoublesEmbeddedQuotes(t *testing.T) {
	s := newBareStore(t)
	advanceTo(t, s, models.EventStateRegistrationOpen)
	alice := registerParticipant(t, s, "alice@example.com", "Alice")
	_, err := s.CreateTeam(`The "Best" Team`, alice.ID)
	require.NoError(t, err)

	lines := strings.Split(s.ExportTeamsCSV(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"The ""Best"" Team"`)

	for _, field := range strings.Split(lines[1], `",`) {
		assert.True(t, strings.HasPrefix(field, `"`), "field %q not quoted", field)
	}
}

func TestExportEmptyCollections(t *testing.T) {
	s := newBareStore(t)

	assert.Equal(t, 1, len(strings.Split(s.ExportTeamsCSV(), "\n")))
	assert.Equal(t, 1, len(strings.Split(s.ExportSubmissionsCSV(), "\n")))
	assert.Equal(t, 1, len(strings.Split(s.ExportScoresCSV(), "\n")))
}
