package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The exports quote every field and double embedded quotes. encoding/csv is
// deliberately not used: it quotes only fields that need it, and the report
// contract wraps every field.
func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func csvDocument(headers []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, row := range rows {
		lines = append(lines, csvLine(row))
	}
	return strings.Join(lines, "\n")
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

// ExportTeamsCSV renders every team with its resolved leader and member
// names.
func (s *EventStore) ExportTeamsCSV() string {
	headers := []string{
		"Team ID", "Team Name", "Invite Code", "Leader", "Members",
		"Member Count", "Has Submission", "Is Locked", "Is Disqualified", "Created At",
	}

	var rows [][]string
	for _, team := range s.teams {
		leaderName := "Unknown"
		if leader := s.usersByID[team.LeaderID]; leader != nil {
			leaderName = leader.Name
		}

		var memberNames []string
		for _, member := range s.TeamMembers(team.ID) {
			memberNames = append(memberNames, member.Name)
		}

		rows = append(rows, []string{
			team.ID,
			team.Name,
			team.InviteCode,
			leaderName,
			strings.Join(memberNames, "; "),
			strconv.Itoa(len(team.MemberIDs)),
			yesNo(team.SubmissionID != ""),
			yesNo(team.IsLocked),
			yesNo(team.IsDisqualified),
			team.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return csvDocument(headers, rows)
}

// ExportSubmissionsCSV renders every submission joined with its team name.
func (s *EventStore) ExportSubmissionsCSV() string {
	headers := []string{
		"Submission ID", "Team ID", "Team Name", "Title", "Problem Statement",
		"Tech Stack", "GitHub URL", "Demo URL", "Is Locked", "Submitted At", "Last Edited At",
	}

	var rows [][]string
	for _, submission := range s.submissions {
		teamName := "Unknown"
		if team := s.teamsByID[submission.TeamID]; team != nil {
			teamName = team.Name
		}

		rows = append(rows, []string{
			submission.ID,
			submission.TeamID,
			teamName,
			submission.Title,
			submission.ProblemStatement,
			strings.Join(submission.TechStack, "; "),
			submission.GithubURL,
			submission.DemoURL,
			yesNo(submission.IsLocked),
			submission.SubmittedAt.UTC().Format(time.RFC3339),
			submission.LastEditedAt.UTC().Format(time.RFC3339),
		})
	}

	return csvDocument(headers, rows)
}

// ExportScoresCSV renders every score with judge and team names and the
// weighted total.
func (s *EventStore) ExportScoresCSV() string {
	headers := []string{
		"Score ID", "Judge ID", "Judge Name", "Submission ID", "Team Name",
		"Innovation", "Execution", "Presentation", "Impact", "Code Quality",
		"Total Score", "Comments", "Flagged", "Submitted At",
	}

	var rows [][]string
	for _, score := range s.scores {
		judgeName := "Unknown"
		if judge := s.usersByID[score.JudgeID]; judge != nil {
			judgeName = judge.Name
		}

		teamName := "Unknown"
		if submission := s.submissionsByID[score.SubmissionID]; submission != nil {
			if team := s.teamsByID[submission.TeamID]; team != nil {
				teamName = team.Name
			}
		}

		rows = append(rows, []string{
			score.ID,
			score.JudgeID,
			judgeName,
			score.SubmissionID,
			teamName,
			strconv.Itoa(score.Innovation),
			strconv.Itoa(score.Execution),
			strconv.Itoa(score.Presentation),
			strconv.Itoa(score.Impact),
			strconv.Itoa(score.CodeQuality),
			fmt.Sprintf("%.1f", TotalScore(score)),
			score.Comments,
			yesNo(score.Flagged),
			score.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}

	return csvDocument(headers, rows)
}
