package store

import (
	"time"

	"hackmanager/internal/models"
)

// CreateTeam makes a new team with the leader as sole member. Allowed only
// in DRAFT and REGISTRATION_OPEN, while the team cap has not been reached.
func (s *EventStore) CreateTeam(name, leaderID string) (*models.Team, error) {
	leader := s.usersByID[leaderID]
	if leader == nil {
		return nil, newError(CodeNotFound, "User not found")
	}

	if leader.TeamID != "" {
		return nil, newError(CodeAlreadyInTeam, "You are already in a team")
	}

	if s.config.CurrentState != models.EventStateRegistrationOpen && s.config.CurrentState != models.EventStateDraft {
		return nil, newError(CodeTeamPhaseClosed, "Team creation is closed")
	}

	if len(s.teams) >= s.config.MaxTeams {
		return nil, newError(CodeMaxTeamsReached, "Maximum number of teams reached")
	}

	team := &models.Team{
		ID:         generateID(),
		Name:       name,
		InviteCode: s.uniqueInviteCode(name),
		LeaderID:   leaderID,
		MemberIDs:  []string{leaderID},
		CreatedAt:  time.Now(),
	}

	s.teams = append(s.teams, team)
	s.teamsByID[team.ID] = team
	leader.TeamID = team.ID
	if err := s.persist(); err != nil {
		return nil, err
	}
	return team, nil
}

// uniqueInviteCode regenerates until the code collides with no live team.
// With a 4-character random suffix a retry is already rare.
func (s *EventStore) uniqueInviteCode(teamName string) string {
	for {
		code := generateInviteCode(teamName)
		if s.TeamByInviteCode(code) == nil {
			return code
		}
	}
}

// JoinTeam adds the user to the team matching the invite code. Refused once
// the team is locked or full, and in the JUDGING_OPEN and RESULTS_PUBLISHED
// phases.
func (s *EventStore) JoinTeam(inviteCode, userID string) (*models.Team, error) {
	user := s.usersByID[userID]
	if user == nil {
		return nil, newError(CodeNotFound, "User not found")
	}

	if user.TeamID != "" {
		return nil, newError(CodeAlreadyInTeam, "You are already in a team. Leave your current team first.")
	}

	team := s.TeamByInviteCode(inviteCode)
	if team == nil {
		return nil, newError(CodeInvalidCode, "Invalid invite code")
	}

	if team.IsLocked {
		return nil, newError(CodeTeamLocked, "This team is locked and cannot accept new members")
	}

	if len(team.MemberIDs) >= s.config.MaxTeamSize {
		return nil, newError(CodeTeamFull, "Team is full (max %d members)", s.config.MaxTeamSize)
	}

	if s.config.CurrentState == models.EventStateJudgingOpen || s.config.CurrentState == models.EventStateResultsPublished {
		return nil, newError(CodePhaseClosed, "Team changes are no longer allowed")
	}

	team.MemberIDs = append(team.MemberIDs, userID)
	user.TeamID = team.ID
	if err := s.persist(); err != nil {
		return nil, err
	}
	return team, nil
}

// LeaveTeam removes the user from their team; an emptied team is deleted.
// The leader cannot leave while other members remain.
func (s *EventStore) LeaveTeam(userID string) error {
	user := s.usersByID[userID]
	if user == nil || user.TeamID == "" {
		return newError(CodeNotInTeam, "You are not in a team")
	}

	team := s.teamsByID[user.TeamID]
	if team == nil {
		return newError(CodeTeamNotFound, "Team not found")
	}

	if team.IsLocked {
		return newError(CodeTeamLocked, "Cannot leave team after submission")
	}

	if team.LeaderID == userID && len(team.MemberIDs) > 1 {
		return newError(CodeLeaderCannotLeave,
			"Team leader cannot leave while team has other members. Transfer leadership first.")
	}

	members := team.MemberIDs[:0]
	for _, id := range team.MemberIDs {
		if id != userID {
			members = append(members, id)
		}
	}
	team.MemberIDs = members
	user.TeamID = ""

	if len(team.MemberIDs) == 0 {
		s.deleteTeam(team.ID)
	}

	return s.persist()
}

func (s *EventStore) deleteTeam(teamID string) {
	delete(s.teamsByID, teamID)
	for i, team := range s.teams {
		if team.ID == teamID {
			s.teams = append(s.teams[:i], s.teams[i+1:]...)
			return
		}
	}
}

// DisqualifyTeam flags the team out of submission intake and the
// leaderboard. No phase restriction; organizer-only by convention.
func (s *EventStore) DisqualifyTeam(teamID string) (*models.Team, error) {
	return s.setDisqualified(teamID, true)
}

func (s *EventStore) ReinstateTeam(teamID string) (*models.Team, error) {
	return s.setDisqualified(teamID, false)
}

func (s *EventStore) setDisqualified(teamID string, disqualified bool) (*models.Team, error) {
	team := s.teamsByID[teamID]
	if team == nil {
		return nil, newError(CodeTeamNotFound, "Team not found")
	}

	team.IsDisqualified = disqualified
	if err := s.persist(); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *EventStore) TeamByID(teamID string) *models.Team {
	return s.teamsByID[teamID]
}

func (s *EventStore) TeamByInviteCode(code string) *models.Team {
	for _, team := range s.teams {
		if team.InviteCode == code {
			return team
		}
	}
	return nil
}

func (s *EventStore) AllTeams() []*models.Team {
	return append([]*models.Team{}, s.teams...)
}

// TeamMembers resolves the member id list to users, skipping dangling ids.
func (s *EventStore) TeamMembers(teamID string) []*models.User {
	team := s.teamsByID[teamID]
	if team == nil {
		return nil
	}
	var members []*models.User
	for _, id := range team.MemberIDs {
		if user := s.usersByID[id]; user != nil {
			members = append(members, user)
		}
	}
	return members
}
