package store

import (
	"time"

	"hackmanager/internal/models"
)

// RegistrationData carries the caller-supplied fields of a new user.
// Role tagging is trusted here; authorization is not this layer's job.
type RegistrationData struct {
	Email  string
	Name   string
	Phone  string
	Skills []string
	Role   models.Role
}

// RegisterUser creates a user and makes it the active session user.
// Allowed only in DRAFT and REGISTRATION_OPEN. Email matching is exact and
// case-sensitive.
func (s *EventStore) RegisterUser(data RegistrationData) (*models.User, error) {
	if s.config.CurrentState != models.EventStateRegistrationOpen && s.config.CurrentState != models.EventStateDraft {
		return nil, newError(CodeRegistrationClosed, "Registration is closed")
	}

	if s.UserByEmail(data.Email) != nil {
		return nil, newError(CodeDuplicateEmail, "Email already registered")
	}

	user := &models.User{
		ID:        generateID(),
		Email:     data.Email,
		Name:      data.Name,
		Phone:     data.Phone,
		Skills:    data.Skills,
		Role:      data.Role,
		CreatedAt: time.Now(),
	}

	s.users = append(s.users, user)
	s.usersByID[user.ID] = user
	s.currentUserID = user.ID
	if err := s.persist(); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginUser sets the session user by email lookup. Identity only, no
// password verification.
func (s *EventStore) LoginUser(email string) (*models.User, error) {
	user := s.UserByEmail(email)
	if user == nil {
		return nil, newError(CodeNotFound, "User not found")
	}

	s.currentUserID = user.ID
	if err := s.persist(); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *EventStore) LogoutUser() error {
	s.currentUserID = ""
	return s.persist()
}

func (s *EventStore) CurrentUser() *models.User {
	if s.currentUserID == "" {
		return nil
	}
	return s.usersByID[s.currentUserID]
}

func (s *EventStore) SetCurrentUser(userID string) error {
	s.currentUserID = userID
	return s.persist()
}

func (s *EventStore) UserByID(userID string) *models.User {
	return s.usersByID[userID]
}

func (s *EventStore) UserByEmail(email string) *models.User {
	for _, user := range s.users {
		if user.Email == email {
			return user
		}
	}
	return nil
}

func (s *EventStore) AllUsers() []*models.User {
	return append([]*models.User{}, s.users...)
}

func (s *EventStore) Participants() []*models.User {
	return s.usersByRole(models.RoleParticipant)
}

func (s *EventStore) Judges() []*models.User {
	return s.usersByRole(models.RoleJudge)
}

func (s *EventStore) usersByRole(role models.Role) []*models.User {
	var result []*models.User
	for _, user := range s.users {
		if user.Role == role {
			result = append(result, user)
		}
	}
	return result
}
