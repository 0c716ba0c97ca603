package store

import (
	"time"

	"hackmanager/internal/models"
)

// SubmissionData carries the mutable content fields of a submission. File
// name and size are recorded for display only, never validated or stored
// as bytes.
type SubmissionData struct {
	Title            string
	ProblemStatement string
	Description      string
	GithubURL        string
	DemoURL          string
	TechStack        []string
	FileName         string
	FileSize         string
}

// CreateOrUpdateSubmission records the team's project. A team has at most
// one submission: the first call creates it and permanently locks the team's
// membership; later calls overwrite the content fields and refresh
// LastEditedAt, leaving SubmittedAt and the lock flag untouched.
func (s *EventStore) CreateOrUpdateSubmission(teamID string, data SubmissionData) (*models.Submission, error) {
	if s.config.CurrentState != models.EventStateSubmissionOpen {
		return nil, newError(CodeSubmissionsClosed, "Submissions are not currently open")
	}

	team := s.teamsByID[teamID]
	if team == nil {
		return nil, newError(CodeTeamNotFound, "Team not found")
	}

	if team.IsDisqualified {
		return nil, newError(CodeTeamDisqualified, "Your team has been disqualified")
	}

	if existing := s.SubmissionByTeam(teamID); existing != nil {
		if existing.IsLocked {
			return nil, newError(CodeSubmissionLocked, "Submission is locked and cannot be edited")
		}

		applySubmissionData(existing, data)
		existing.LastEditedAt = time.Now()
		if err := s.persist(); err != nil {
			return nil, err
		}
		return existing, nil
	}

	now := time.Now()
	submission := &models.Submission{
		ID:           generateID(),
		TeamID:       teamID,
		SubmittedAt:  now,
		LastEditedAt: now,
	}
	applySubmissionData(submission, data)

	s.submissions = append(s.submissions, submission)
	s.submissionsByID[submission.ID] = submission
	team.SubmissionID = submission.ID
	team.IsLocked = true
	if err := s.persist(); err != nil {
		return nil, err
	}
	return submission, nil
}

func applySubmissionData(submission *models.Submission, data SubmissionData) {
	submission.Title = data.Title
	submission.ProblemStatement = data.ProblemStatement
	submission.Description = data.Description
	submission.GithubURL = data.GithubURL
	submission.DemoURL = data.DemoURL
	submission.TechStack = data.TechStack
	submission.FileName = data.FileName
	submission.FileSize = data.FileSize
}

// LockSubmission is the organizer override that freezes one submission's
// content regardless of phase.
func (s *EventStore) LockSubmission(submissionID string) (*models.Submission, error) {
	submission := s.submissionsByID[submissionID]
	if submission == nil {
		return nil, newError(CodeSubmissionNotFound, "Submission not found")
	}

	submission.IsLocked = true
	if err := s.persist(); err != nil {
		return nil, err
	}
	return submission, nil
}

// UnlockSubmission reverses an organizer lock, but only while the submission
// phase is still open. Once judging has begun there is no way back.
func (s *EventStore) UnlockSubmission(submissionID string) (*models.Submission, error) {
	submission := s.submissionsByID[submissionID]
	if submission == nil {
		return nil, newError(CodeSubmissionNotFound, "Submission not found")
	}

	if s.config.CurrentState != models.EventStateSubmissionOpen {
		return nil, newError(CodeNotSubmissionPhase, "Can only unlock submissions during submission phase")
	}

	submission.IsLocked = false
	if err := s.persist(); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *EventStore) SubmissionByID(submissionID string) *models.Submission {
	return s.submissionsByID[submissionID]
}

func (s *EventStore) SubmissionByTeam(teamID string) *models.Submission {
	for _, submission := range s.submissions {
		if submission.TeamID == teamID {
			return submission
		}
	}
	return nil
}

func (s *EventStore) AllSubmissions() []*models.Submission {
	return append([]*models.Submission{}, s.submissions...)
}
