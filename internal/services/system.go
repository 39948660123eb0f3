// Package services holds the system core: the single owner and mutator of
// users, sessions and communities.
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"jackut/internal/models"
	"jackut/internal/storage"
)

// Store is the persistence collaborator: it restores the whole system state
// at startup and writes it back in one shot at shutdown.
type Store interface {
	Load() (*storage.Snapshot, error)
	Save(*storage.Snapshot) error
}

// System owns the registries of users, sessions and communities and
// enforces every business rule. Entities are never mutated from outside.
type System struct {
	store       Store
	users       map[string]*models.User
	sessions    map[string]*models.Session
	communities map[string]*models.Community
}

// NewSystem creates an empty system bound to a persistence store.
func NewSystem(store Store) *System {
	return &System{
		store:       store,
		users:       make(map[string]*models.User),
		sessions:    make(map[string]*models.Session),
		communities: make(map[string]*models.Community),
	}
}

// Restore loads the persisted snapshot into the registries. Sessions are
// re-linked against the user registry; sessions whose user no longer exists
// are dropped.
func (s *System) Restore() error {
	snap, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("failed to restore system state: %v", err)
	}

	s.users = snap.Users
	s.communities = snap.Communities
	s.sessions = make(map[string]*models.Session)
	for id, login := range snap.Sessions {
		if user, ok := s.users[login]; ok {
			s.sessions[id] = models.NewSession(id, user)
		}
	}

	logrus.WithFields(logrus.Fields{
		"users":       len(s.users),
		"communities": len(s.communities),
	}).Info("System state restored")
	return nil
}

// Persist writes the full system state through the store.
func (s *System) Persist() error {
	snap := storage.NewSnapshot()
	snap.Users = s.users
	snap.Communities = s.communities
	for id, session := range s.sessions {
		snap.Sessions[id] = session.User.Login
	}

	if err := s.store.Save(snap); err != nil {
		logrus.WithError(err).Error("Failed to persist system state")
		return models.NewPersistenceError(err)
	}
	return nil
}

// CreateUser registers a new account with empty relationships and queue.
func (s *System) CreateUser(login, password, name string) error {
	if login == "" {
		return models.NewInvalidInputError("login")
	}
	if password == "" {
		return models.NewInvalidInputError("password")
	}
	if _, exists := s.users[login]; exists {
		logrus.WithField("login", login).Warn("Attempt to register duplicate login")
		return models.NewDuplicateUserError()
	}

	s.users[login] = models.NewUser(login, password, name)
	logrus.WithField("login", login).Info("User registered")
	return nil
}

// OpenSession authenticates a user and returns a fresh session id.
func (s *System) OpenSession(login, password string) (string, error) {
	user, ok := s.users[login]
	if !ok || user.Password != password {
		logrus.WithField("login", login).Warn("Failed login attempt")
		return "", models.NewInvalidCredentialsError()
	}

	id := uuid.NewString()
	s.sessions[id] = models.NewSession(id, user)
	logrus.WithField("login", login).Info("Session opened")
	return id, nil
}

// SessionUser resolves a session id to its authenticated user.
func (s *System) SessionUser(sessionID string) (*models.User, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.NewInvalidSessionError()
	}
	return session.User, nil
}

func (s *System) getUser(login string) (*models.User, error) {
	user, ok := s.users[login]
	if !ok {
		return nil, models.NewUnknownUserError()
	}
	return user, nil
}

// GetUserAttribute reads a profile field of any registered user.
func (s *System) GetUserAttribute(login, attribute string) (string, error) {
	user, err := s.getUser(login)
	if err != nil {
		return "", err
	}

	value, ok := user.GetAttribute(attribute)
	if !ok {
		return "", models.NewMissingAttributeError()
	}
	return value, nil
}

// EditProfile sets a profile field on the session's user. Attribute names
// and values are free-form.
func (s *System) EditProfile(sessionID, attribute, value string) error {
	user, err := s.SessionUser(sessionID)
	if err != nil {
		return err
	}

	user.SetAttribute(attribute, value)
	return nil
}

// ResetSystem clears all users, sessions and communities. Idempotent.
func (s *System) ResetSystem() {
	s.users = make(map[string]*models.User)
	s.sessions = make(map[string]*models.Session)
	s.communities = make(map[string]*models.Community)
	logrus.Info("System reset to empty state")
}

// RemoveUser deletes the session's user and cascades: the login is stripped
// from every other user's relationship sets, from every community's member
// list, and communities the user owns are deleted. Sessions bound to the
// user are invalidated.
func (s *System) RemoveUser(sessionID string) error {
	user, err := s.SessionUser(sessionID)
	if err != nil {
		return err
	}
	login := user.Login

	delete(s.users, login)

	for _, other := range s.users {
		other.Unlink(login)
	}

	for name, community := range s.communities {
		if community.Owner == login {
			for _, member := range community.Members {
				if u, ok := s.users[member]; ok {
					u.LeaveCommunity(name)
				}
			}
			delete(s.communities, name)
			continue
		}
		community.RemoveMember(login)
	}

	for id, session := range s.sessions {
		if session.User.Login == login {
			delete(s.sessions, id)
		}
	}

	logrus.WithField("login", login).Info("User removed with cascade")
	return nil
}
