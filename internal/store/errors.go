package store

import (
	"errors"
	"fmt"
)

// Stable codes for expected domain failures. Callers branch on the code,
// never on the message text.
const (
	CodeInvalidTransition  = "INVALID_TRANSITION"
	CodeRegistrationClosed = "REGISTRATION_CLOSED"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyInTeam      = "ALREADY_IN_TEAM"
	CodeTeamPhaseClosed    = "TEAM_PHASE_CLOSED"
	CodeMaxTeamsReached    = "MAX_TEAMS_REACHED"
	CodeInvalidCode        = "INVALID_CODE"
	CodeTeamLocked         = "TEAM_LOCKED"
	CodeTeamFull           = "TEAM_FULL"
	CodePhaseClosed        = "PHASE_CLOSED"
	CodeNotInTeam          = "NOT_IN_TEAM"
	CodeLeaderCannotLeave  = "LEADER_CANNOT_LEAVE"
	CodeTeamNotFound       = "TEAM_NOT_FOUND"
	CodeSubmissionsClosed  = "SUBMISSIONS_CLOSED"
	CodeTeamDisqualified   = "TEAM_DISQUALIFIED"
	CodeSubmissionLocked   = "SUBMISSION_LOCKED"
	CodeSubmissionNotFound = "SUBMISSION_NOT_FOUND"
	CodeNotSubmissionPhase = "NOT_SUBMISSION_PHASE"
	CodeInvalidJudge       = "INVALID_JUDGE"
	CodeAlreadyAssigned    = "ALREADY_ASSIGNED"
	CodeNoJudges           = "NO_JUDGES"
	CodeNoSubmissions      = "NO_SUBMISSIONS"
	CodeScoringClosed      = "SCORING_CLOSED"
	CodeNotAssigned        = "NOT_ASSIGNED"
	CodeDuplicateScore     = "DUPLICATE_SCORE"
	CodeOutOfRange         = "OUT_OF_RANGE"
)

// Error is an expected domain violation: the operation was refused and no
// state changed. The message is meant for display to the end user.
type Error struct {
	ErrCode string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrCode, e.Message)
}

func newError(code, format string, args ...interface{}) *Error {
	return &Error{
		ErrCode: code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Code extracts the domain error code, or "" when err is nil or not a
// domain error.
func Code(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.ErrCode
	}
	return ""
}

// UserMessage returns the display message for domain errors and the plain
// Error() text for anything else.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}
