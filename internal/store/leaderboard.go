package store

import (
	"sort"

	"hackmanager/internal/models"
)

// Leaderboard ranks every submission whose team is not disqualified by
// descending average composite score, with unscored submissions counted as
// zero so they sink to the bottom. Equal averages order by earlier
// submission time.
func (s *EventStore) Leaderboard() []models.LeaderboardEntry {
	var entries []models.LeaderboardEntry
	for _, submission := range s.submissions {
		team := s.teamsByID[submission.TeamID]
		if team == nil || team.IsDisqualified {
			continue
		}

		average, _ := s.AverageScore(submission.ID)
		entries = append(entries, models.LeaderboardEntry{
			Team:         team,
			Submission:   submission,
			AverageScore: average,
			ScoreCount:   len(s.ScoresForSubmission(submission.ID)),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].AverageScore != entries[j].AverageScore {
			return entries[i].AverageScore > entries[j].AverageScore
		}
		return entries[i].Submission.SubmittedAt.Before(entries[j].Submission.SubmittedAt)
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
