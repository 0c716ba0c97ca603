package store

import (
	"fmt"
	"strings"
	"time"

	"hackmanager/internal/models"
)

var demoJudgeNames = []string{"Dr. Sharma", "Prof. Patel", "Ms. Gupta", "Mr. Kumar", "Dr. Singh"}

var demoTeams = []struct {
	name    string
	members []string
}{
	{"Code Ninjas", []string{"Anish K.", "Priya M.", "Rahul S."}},
	{"Data Hawks", []string{"Amit P.", "Sneha R.", "Vikram T.", "Neha K."}},
	{"Tech Titans", []string{"Ravi S.", "Deepa M."}},
	{"Binary Brains", []string{"Kiran L.", "Pooja D.", "Suresh M."}},
	{"Algo Wizards", []string{"Arjun K.", "Meera S.", "Anil R.", "Divya P."}},
	{"Cloud Crew", []string{"Sanjay M.", "Lakshmi V.", "Prasad K."}},
}

var demoSkills = []string{"React", "Python", "Node.js"}

func emailLocalPart(name string) string {
	lower := strings.ToLower(name)
	lower = strings.ReplaceAll(lower, ".", "")
	return strings.ReplaceAll(lower, " ", "")
}

// seedDemoData populates an empty store with a demo roster: one admin, five
// judges, and six teams of two to four participants. Fixed ids so demo
// walkthroughs are repeatable.
func (s *EventStore) seedDemoData() {
	now := time.Now()

	admin := &models.User{
		ID:        "admin-1",
		Email:     "admin@glhackathon.com",
		Name:      "Admin User",
		Skills:    []string{},
		Role:      models.RoleAdmin,
		CreatedAt: now,
	}
	s.users = append(s.users, admin)

	for i, name := range demoJudgeNames {
		judge := &models.User{
			ID:        fmt.Sprintf("judge-%d", i+1),
			Email:     emailLocalPart(name) + "@glhackathon.com",
			Name:      name,
			Skills:    []string{},
			Role:      models.RoleJudge,
			CreatedAt: now,
		}
		s.users = append(s.users, judge)
	}

	for teamIndex, demo := range demoTeams {
		teamID := fmt.Sprintf("team-%d", teamIndex+1)
		var memberIDs []string

		for memberIndex, memberName := range demo.members {
			user := &models.User{
				ID:        fmt.Sprintf("user-%d-%d", teamIndex, memberIndex),
				Email:     emailLocalPart(memberName) + "@example.com",
				Name:      memberName,
				Phone:     "9876543210",
				Skills:    demoSkills[:memberIndex%len(demoSkills)+1],
				Role:      models.RoleParticipant,
				TeamID:    teamID,
				CreatedAt: now,
			}
			s.users = append(s.users, user)
			memberIDs = append(memberIDs, user.ID)
		}

		team := &models.Team{
			ID:         teamID,
			Name:       demo.name,
			InviteCode: generateInviteCode(demo.name),
			LeaderID:   memberIDs[0],
			MemberIDs:  memberIDs,
			CreatedAt:  now,
		}
		s.teams = append(s.teams, team)
	}

	s.reindex()
}
