package services

import (
	"github.com/sirupsen/logrus"

	"jackut/internal/models"
)

// CreateCommunity registers a community owned by the session's user, who
// becomes its first member.
func (s *System) CreateCommunity(sessionID, name, description string) error {
	owner, err := s.SessionUser(sessionID)
	if err != nil {
		return err
	}
	if _, exists := s.communities[name]; exists {
		return models.NewDuplicateCommunityError()
	}

	s.communities[name] = models.NewCommunity(name, description, owner.Login)
	owner.JoinCommunity(name)
	logrus.WithFields(logrus.Fields{
		"community": name,
		"owner":     owner.Login,
	}).Info("Community created")
	return nil
}

func (s *System) getCommunity(name string) (*models.Community, error) {
	community, ok := s.communities[name]
	if !ok {
		return nil, models.NewUnknownCommunityError()
	}
	return community, nil
}

// GetCommunityDescription returns the description set at creation.
func (s *System) GetCommunityDescription(name string) (string, error) {
	community, err := s.getCommunity(name)
	if err != nil {
		return "", err
	}
	return community.Description, nil
}

// GetCommunityOwner returns the login of the creating user.
func (s *System) GetCommunityOwner(name string) (string, error) {
	community, err := s.getCommunity(name)
	if err != nil {
		return "", err
	}
	return community.Owner, nil
}

// GetCommunityMembers lists member logins in joining order.
func (s *System) GetCommunityMembers(name string) ([]string, error) {
	community, err := s.getCommunity(name)
	if err != nil {
		return nil, err
	}
	return community.Members, nil
}

// GetUserCommunities lists the communities a user belongs to.
func (s *System) GetUserCommunities(login string) ([]string, error) {
	user, err := s.getUser(login)
	if err != nil {
		return nil, err
	}
	return user.Communities, nil
}

// JoinCommunity adds the session's user to an existing community.
func (s *System) JoinCommunity(sessionID, name string) error {
	user, err := s.SessionUser(sessionID)
	if err != nil {
		return err
	}
	community, err := s.getCommunity(name)
	if err != nil {
		return err
	}
	if community.HasMember(user.Login) {
		return models.NewExistingMembershipError()
	}

	community.AddMember(user.Login)
	user.JoinCommunity(name)
	logrus.WithFields(logrus.Fields{
		"community": name,
		"login":     user.Login,
	}).Info("User joined community")
	return nil
}

// SendCommunityMessage fans the message out to every current member's
// personal queue, the sender included. Users joining later do not receive
// messages sent before they joined.
func (s *System) SendCommunityMessage(sessionID, name, text string) error {
	if _, err := s.SessionUser(sessionID); err != nil {
		return err
	}
	community, err := s.getCommunity(name)
	if err != nil {
		return err
	}

	for _, member := range community.Members {
		if user, ok := s.users[member]; ok {
			user.QueueMessage(text)
		}
	}

	logrus.WithFields(logrus.Fields{
		"community": name,
		"members":   len(community.Members),
	}).Info("Community message broadcast")
	return nil
}
