package store

import (
	"time"

	"hackmanager/internal/models"
)

// AssignJudge creates a (judge, submission) pair authorizing that judge to
// score that submission. The pair must not already exist.
func (s *EventStore) AssignJudge(judgeID, submissionID string) (*models.JudgeAssignment, error) {
	judge := s.usersByID[judgeID]
	if judge == nil || judge.Role != models.RoleJudge {
		return nil, newError(CodeInvalidJudge, "Invalid judge")
	}

	if s.submissionsByID[submissionID] == nil {
		return nil, newError(CodeSubmissionNotFound, "Submission not found")
	}

	if s.IsJudgeAssigned(judgeID, submissionID) {
		return nil, newError(CodeAlreadyAssigned, "Judge is already assigned to this submission")
	}

	assignment := models.JudgeAssignment{
		JudgeID:      judgeID,
		SubmissionID: submissionID,
		AssignedAt:   time.Now(),
	}
	s.assignments = append(s.assignments, assignment)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *EventStore) RemoveJudgeAssignment(judgeID, submissionID string) error {
	for i, a := range s.assignments {
		if a.JudgeID == judgeID && a.SubmissionID == submissionID {
			s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)
			return s.persist()
		}
	}
	return newError(CodeNotFound, "Assignment not found")
}

// AutoAssignJudges assigns every judge to every submission whose team is not
// disqualified, skipping pairs that already exist. Intentionally the full
// cross product, not a balanced partition: each judge reviews everything.
// Returns the number of newly created pairs.
func (s *EventStore) AutoAssignJudges() (int, error) {
	judges := s.Judges()

	var eligible []*models.Submission
	for _, submission := range s.submissions {
		team := s.teamsByID[submission.TeamID]
		if team != nil && !team.IsDisqualified {
			eligible = append(eligible, submission)
		}
	}

	if len(judges) == 0 {
		return 0, newError(CodeNoJudges, "No judges available")
	}
	if len(eligible) == 0 {
		return 0, newError(CodeNoSubmissions, "No submissions to assign")
	}

	created := 0
	for _, submission := range eligible {
		for _, judge := range judges {
			if s.IsJudgeAssigned(judge.ID, submission.ID) {
				continue
			}
			s.assignments = append(s.assignments, models.JudgeAssignment{
				JudgeID:      judge.ID,
				SubmissionID: submission.ID,
				AssignedAt:   time.Now(),
			})
			created++
		}
	}

	if err := s.persist(); err != nil {
		return 0, err
	}
	return created, nil
}

func (s *EventStore) AssignmentsForJudge(judgeID string) []models.JudgeAssignment {
	var result []models.JudgeAssignment
	for _, a := range s.assignments {
		if a.JudgeID == judgeID {
			result = append(result, a)
		}
	}
	return result
}

func (s *EventStore) AssignmentsForSubmission(submissionID string) []models.JudgeAssignment {
	var result []models.JudgeAssignment
	for _, a := range s.assignments {
		if a.SubmissionID == submissionID {
			result = append(result, a)
		}
	}
	return result
}

func (s *EventStore) IsJudgeAssigned(judgeID, submissionID string) bool {
	for _, a := range s.assignments {
		if a.JudgeID == judgeID && a.SubmissionID == submissionID {
			return true
		}
	}
	return false
}
