package models

import (
	"time"
)

type EventState string

const (
	EventStateDraft            EventState = "DRAFT"
	EventStateRegistrationOpen EventState = "REGISTRATION_OPEN"
	EventStateSubmissionOpen   EventState = "SUBMISSION_OPEN"
	EventStateJudgingOpen      EventState = "JUDGING_OPEN"
	EventStateResultsPublished EventState = "RESULTS_PUBLISHED"
)

type Role string

const (
	RoleParticipant Role = "participant"
	RoleJudge       Role = "judge"
	RoleAdmin       Role = "admin"
)

// StateChange is one row of the append-only state history. It records the
// state the event was in before the change, not the state entered.
type StateChange struct {
	State     EventState `json:"state"`
	ChangedAt time.Time  `json:"changed_at"`
	ChangedBy string     `json:"changed_by"`
}

type EventConfig struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CurrentState EventState    `json:"current_state"`
	MaxTeamSize  int           `json:"max_team_size"`
	MaxTeams     int           `json:"max_teams"`
	StateHistory []StateChange `json:"state_history"`
	CreatedAt    time.Time     `json:"created_at"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Skills    []string  `json:"skills"`
	Role      Role      `json:"role"`
	TeamID    string    `json:"team_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Team struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	InviteCode     string    `json:"invite_code"`
	LeaderID       string    `json:"leader_id"`
	MemberIDs      []string  `json:"member_ids"`
	SubmissionID   string    `json:"submission_id,omitempty"`
	IsLocked       bool      `json:"is_locked"`
	IsDisqualified bool      `json:"is_disqualified"`
	CreatedAt      time.Time `json:"created_at"`
}

type Submission struct {
	ID               string    `json:"id"`
	TeamID           string    `json:"team_id"`
	Title            string    `json:"title"`
	ProblemStatement string    `json:"problem_statement"`
	Description      string    `json:"description"`
	GithubURL        string    `json:"github_url"`
	DemoURL          string    `json:"demo_url"`
	TechStack        []string  `json:"tech_stack"`
	FileName         string    `json:"file_name"`
	FileSize         string    `json:"file_size"`
	SubmittedAt      time.Time `json:"submitted_at"`
	LastEditedAt     time.Time `json:"last_edited_at"`
	IsLocked         bool      `json:"is_locked"`
}

// JudgeAssignment authorizes one judge to score one submission. The
// (JudgeID, SubmissionID) pair is the identity; there is no separate id.
type JudgeAssignment struct {
	JudgeID      string    `json:"judge_id"`
	SubmissionID string    `json:"submission_id"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// Score holds one judge's five criterion marks for one submission,
// each in the range 1-10.
type Score struct {
	ID           string    `json:"id"`
	JudgeID      string    `json:"judge_id"`
	SubmissionID string    `json:"submission_id"`
	Innovation   int       `json:"innovation"`
	Execution    int       `json:"execution"`
	Presentation int       `json:"presentation"`
	Impact       int       `json:"impact"`
	CodeQuality  int       `json:"code_quality"`
	Comments     string    `json:"comments"`
	Flagged      bool      `json:"flagged"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type LeaderboardEntry struct {
	Rank         int         `json:"rank"`
	Team         *Team       `json:"team"`
	Submission   *Submission `json:"submission"`
	AverageScore float64     `json:"average_score"`
	ScoreCount   int         `json:"score_count"`
}
