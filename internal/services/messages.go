package services

import (
	"github.com/sirupsen/logrus"

	"jackut/internal/models"
)

// SendMessage appends a private message to the target user's queue.
func (s *System) SendMessage(sessionID, targetLogin, text string) error {
	actor, err := s.SessionUser(sessionID)
	if err != nil {
		return err
	}
	target, err := s.getUser(targetLogin)
	if err != nil {
		return err
	}

	if actor.Login == targetLogin {
		return models.NewSelfMessageError()
	}
	if enemyBetween(actor, target) {
		return models.NewBlockedRelationError(target.Name)
	}

	target.QueueMessage(text)
	logrus.WithFields(logrus.Fields{
		"sender":   actor.Login,
		"receiver": targetLogin,
	}).Info("Message delivered")
	return nil
}

// ReadMessage pops the oldest message from the session user's queue.
func (s *System) ReadMessage(sessionID string) (string, error) {
	user, err := s.SessionUser(sessionID)
	if err != nil {
		return "", err
	}

	msg, ok := user.NextMessage()
	if !ok {
		return "", models.NewEmptyQueueError()
	}
	return msg, nil
}
