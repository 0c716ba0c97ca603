package store

import (
	"time"

	"hackmanager/internal/models"
)

// ScoreData carries the five criterion marks (each 1-10) plus commentary.
type ScoreData struct {
	Innovation   int
	Execution    int
	Presentation int
	Impact       int
	CodeQuality  int
	Comments     string
	Flagged      bool
}

// ScoreUpdate is a partial score change; nil fields are left as they are.
type ScoreUpdate struct {
	Innovation   *int
	Execution    *int
	Presentation *int
	Impact       *int
	CodeQuality  *int
	Comments     *string
	Flagged      *bool
}

// SubmitScore records a judge's score for an assigned submission. Allowed
// only in JUDGING_OPEN, once per (judge, submission) pair; a second attempt
// must go through UpdateScore.
func (s *EventStore) SubmitScore(judgeID, submissionID string, data ScoreData) (*models.Score, error) {
	if s.config.CurrentState != models.EventStateJudgingOpen {
		return nil, newError(CodeScoringClosed, "Scoring is not currently open")
	}

	judge := s.usersByID[judgeID]
	if judge == nil || judge.Role != models.RoleJudge {
		return nil, newError(CodeInvalidJudge, "Invalid judge")
	}

	if s.submissionsByID[submissionID] == nil {
		return nil, newError(CodeSubmissionNotFound, "Submission not found")
	}

	if !s.IsJudgeAssigned(judgeID, submissionID) {
		return nil, newError(CodeNotAssigned, "You are not assigned to score this submission")
	}

	if s.ScoreByJudgeAndSubmission(judgeID, submissionID) != nil {
		return nil, newError(CodeDuplicateScore, "You have already scored this submission. Use UpdateScore to modify.")
	}

	marks := []struct {
		name  string
		value int
	}{
		{"innovation", data.Innovation},
		{"execution", data.Execution},
		{"presentation", data.Presentation},
		{"impact", data.Impact},
		{"codeQuality", data.CodeQuality},
	}
	for _, mark := range marks {
		if mark.value < 1 || mark.value > 10 {
			return nil, newError(CodeOutOfRange, "%s must be between 1 and 10", mark.name)
		}
	}

	score := &models.Score{
		ID:           generateID(),
		JudgeID:      judgeID,
		SubmissionID: submissionID,
		Innovation:   data.Innovation,
		Execution:    data.Execution,
		Presentation: data.Presentation,
		Impact:       data.Impact,
		CodeQuality:  data.CodeQuality,
		Comments:     data.Comments,
		Flagged:      data.Flagged,
		SubmittedAt:  time.Now(),
	}

	s.scores = append(s.scores, score)
	s.scoresByID[score.ID] = score
	if err := s.persist(); err != nil {
		return nil, err
	}
	return score, nil
}

// UpdateScore merges the provided fields into an existing score and stamps
// SubmittedAt with the update time, so the field reads as "last modified".
func (s *EventStore) UpdateScore(scoreID string, updates ScoreUpdate) (*models.Score, error) {
	if s.config.CurrentState != models.EventStateJudgingOpen {
		return nil, newError(CodeScoringClosed, "Scoring modifications are not currently allowed")
	}

	score := s.scoresByID[scoreID]
	if score == nil {
		return nil, newError(CodeNotFound, "Score not found")
	}

	marks := []struct {
		name  string
		value *int
	}{
		{"innovation", updates.Innovation},
		{"execution", updates.Execution},
		{"presentation", updates.Presentation},
		{"impact", updates.Impact},
		{"codeQuality", updates.CodeQuality},
	}
	for _, mark := range marks {
		if mark.value != nil && (*mark.value < 1 || *mark.value > 10) {
			return nil, newError(CodeOutOfRange, "%s must be between 1 and 10", mark.name)
		}
	}

	if updates.Innovation != nil {
		score.Innovation = *updates.Innovation
	}
	if updates.Execution != nil {
		score.Execution = *updates.Execution
	}
	if updates.Presentation != nil {
		score.Presentation = *updates.Presentation
	}
	if updates.Impact != nil {
		score.Impact = *updates.Impact
	}
	if updates.CodeQuality != nil {
		score.CodeQuality = *updates.CodeQuality
	}
	if updates.Comments != nil {
		score.Comments = *updates.Comments
	}
	if updates.Flagged != nil {
		score.Flagged = *updates.Flagged
	}
	score.SubmittedAt = time.Now()

	if err := s.persist(); err != nil {
		return nil, err
	}
	return score, nil
}

// TotalScore is the weighted composite on a 0-100 scale: innovation 25%,
// execution 25%, presentation 20%, impact 20%, code quality 10%.
func TotalScore(score *models.Score) float64 {
	return float64(score.Innovation)*2.5 +
		float64(score.Execution)*2.5 +
		float64(score.Presentation)*2.0 +
		float64(score.Impact)*2.0 +
		float64(score.CodeQuality)*1.0
}

// AverageScore is the mean composite over all scores for the submission.
// The second return is false when no scores exist; "unscored" and "scored
// zero" are different answers.
func (s *EventStore) AverageScore(submissionID string) (float64, bool) {
	scores := s.ScoresForSubmission(submissionID)
	if len(scores) == 0 {
		return 0, false
	}

	total := 0.0
	for _, score := range scores {
		total += TotalScore(score)
	}
	return total / float64(len(scores)), true
}

func (s *EventStore) ScoreByID(scoreID string) *models.Score {
	return s.scoresByID[scoreID]
}

func (s *EventStore) ScoreByJudgeAndSubmission(judgeID, submissionID string) *models.Score {
	for _, score := range s.scores {
		if score.JudgeID == judgeID && score.SubmissionID == submissionID {
			return score
		}
	}
	return nil
}

func (s *EventStore) ScoresForSubmission(submissionID string) []*models.Score {
	var result []*models.Score
	for _, score := range s.scores {
		if score.SubmissionID == submissionID {
			result = append(result, score)
		}
	}
	return result
}

func (s *EventStore) ScoresByJudge(judgeID string) []*models.Score {
	var result []*models.Score
	for _, score := range s.scores {
		if score.JudgeID == judgeID {
			result = append(result, score)
		}
	}
	return result
}

func (s *EventStore) AllScores() []*models.Score {
	return append([]*models.Score{}, s.scores...)
}
