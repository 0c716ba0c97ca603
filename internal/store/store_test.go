package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackmanager/internal/config"
	"hackmanager/internal/models"
	"hackmanager/internal/storage"
)

func testDefaults() config.EventConfig {
	return config.EventConfig{
		Name:        "Test Hackathon",
		MaxTeamSize: 4,
		MaxTeams:    100,
	}
}

// newBareStore builds a store with no demo data so tests control every
// entity themselves.
func newBareStore(t *testing.T) *EventStore {
	t.Helper()
	s := &EventStore{
		backend:  storage.NewMemoryBackend(),
		defaults: testDefaults(),
	}
	require.NoError(t, s.load())
	return s
}

func newSeededStore(t *testing.T) *EventStore {
	t.Helper()
	s, err := New(testDefaults(), storage.NewMemoryBackend())
	require.NoError(t, err)
	return s
}

// advanceTo walks the store forward through legal transitions until it
// reaches the target state.
func advanceTo(t *testing.T, s *EventStore, target models.EventState) {
	t.Helper()
	path := []models.EventState{
		models.EventStateDraft,
		models.EventStateRegistrationOpen,
		models.EventStateSubmissionOpen,
		models.EventStateJudgingOpen,
		models.EventStateResultsPublished,
	}
	index := func(state models.EventState) int {
		for i, candidate := range path {
			if candidate == state {
				return i
			}
		}
		t.Fatalf("unknown state %s", state)
		return -1
	}

	from, to := index(s.State()), index(target)
	require.GreaterOrEqual(t, to, from, "cannot advance backwards to %s", target)
	for i := from + 1; i <= to; i++ {
		_, err := s.Transition(path[i], "admin-1")
		require.NoError(t, err)
	}
}

func registerParticipant(t *testing.T, s *EventStore, email, name string) *models.User {
	t.Helper()
	user, err := s.RegisterUser(RegistrationData{
		Email: email,
		Name:  name,
		Role:  models.RoleParticipant,
	})
	require.NoError(t, err)
	return user
}

func registerJudge(t *testing.T, s *EventStore, email, name string) *models.User {
	t.Helper()
	user, err := s.RegisterUser(RegistrationData{
		Email: email,
		Name:  name,
		Role:  models.RoleJudge,
	})
	require.NoError(t, err)
	return user
}

func TestNewSeedsDemoDataWhenEmpty(t *testing.T) {
	s := newSeededStore(t)

	assert.Len(t, s.Judges(), 5)
	assert.Len(t, s.AllTeams(), 6)
	assert.NotNil(t, s.UserByEmail("admin@glhackathon.com"))
	assert.Equal(t, models.EventStateDraft, s.State())

	ninjas := s.TeamByID("team-1")
	require.NotNil(t, ninjas)
	assert.Equal(t, "Code Ninjas", ninjas.Name)
	assert.Len(t, s.TeamMembers(ninjas.ID), 3)
	assert.Equal(t, ninjas.MemberIDs[0], ninjas.LeaderID)
}

func TestStateSurvivesReload(t *testing.T) {
	backend := storage.NewMemoryBackend()

	first, err := New(testDefaults(), backend)
	require.NoError(t, err)
	advanceTo(t, first, models.EventStateRegistrationOpen)
	user := registerParticipant(t, first, "carol@example.com", "Carol")
	team, err := first.CreateTeam("Reload Rangers", user.ID)
	require.NoError(t, err)

	second, err := New(testDefaults(), backend)
	require.NoError(t, err)

	assert.Equal(t, models.EventStateRegistrationOpen, second.State())
	reloaded := second.TeamByID(team.ID)
	require.NotNil(t, reloaded)
	assert.Equal(t, "Reload Rangers", reloaded.Name)
	assert.Equal(t, team.InviteCode, reloaded.InviteCode)

	current := second.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestCorruptKeyFallsBackToDefault(t *testing.T) {
	backend := storage.NewMemoryBackend()

	first, err := New(testDefaults(), backend)
	require.NoError(t, err)
	advanceTo(t, first, models.EventStateRegistrationOpen)

	ctx := context.Background()
	require.NoError(t, backend.Set(ctx, keyConfig, []byte("{not json")))
	require.NoError(t, backend.Set(ctx, keyTeams, []byte("also not json")))

	second, err := New(testDefaults(), backend)
	require.NoError(t, err)

	// Config and teams degrade to fresh defaults; users survived intact, so
	// no re-seed happens.
	assert.Equal(t, models.EventStateDraft, second.State())
	assert.Empty(t, second.AllTeams())
	assert.Len(t, second.Judges(), 5)
}

func TestResetReseedsFromScratch(t *testing.T) {
	s := newSeededStore(t)
	advanceTo(t, s, models.EventStateRegistrationOpen)
	registerParticipant(t, s, "dave@example.com", "Dave")

	require.NoError(t, s.Reset())

	assert.Equal(t, models.EventStateDraft, s.State())
	assert.Empty(t, s.Config().StateHistory)
	assert.Nil(t, s.UserByEmail("dave@example.com"))
	assert.Nil(t, s.CurrentUser())
	assert.Len(t, s.Judges(), 5)
	assert.Len(t, s.AllTeams(), 6)
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := generateID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestInviteCodeFormat(t *testing.T) {
	code := generateInviteCode("Code Ninjas")
	assert.Regexp(t, `^CODEN-[A-Z0-9]{4}$`, code)

	short := generateInviteCode("Ab")
	assert.Regexp(t, `^AB-[A-Z0-9]{4}$`, short)
}
