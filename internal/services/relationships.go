package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"jackut/internal/models"
)

// enemyBetween reports whether an enemy relation exists in either direction.
// Such a pair is blocked from every positive interaction.
func enemyBetween(a, b *models.User) bool {
	return a.HasEnemy(b.Login) || b.HasEnemy(a.Login)
}

// AddFriend sends a friend invitation, or confirms the friendship when the
// target had already invited the acting user.
func (s *System) AddFriend(sessionID, friendLogin string) error {
	actor, err := s.SessionUser(sessionID)
	if err != nil {
		return err
	}
	friend, err := s.getUser(friendLogin)
	if err != nil {
		return err
	}

	if actor.Login == friendLogin {
		return models.NewSelfRelationError("a friend")
	}
	if actor.IsFriend(friendLogin) {
		return models.NewExistingRelationError("friends")
	}
	if friend.HasRequestFrom(actor.Login) {
		return models.NewExistingRelationError("friends, awaiting invitation acceptance")
	}
	if enemyBetween(actor, friend) {
		return models.NewBlockedRelationError(friend.Name)
	}

	if actor.HasRequestFrom(friendLogin) {
		actor.ConfirmFriend(friendLogin)
		friend.Friends = append(friend.Friends, actor.Login)
		logrus.WithFields(logrus.Fields{
			"user":   actor.Login,
			"friend": friendLogin,
		}).Info("Friendship confirmed")
		return nil
	}

	friend.AddFriendRequest(actor.Login)
	logrus.WithFields(logrus.Fields{
		"sender":   actor.Login,
		"receiver": friendLogin,
	}).Info("Friend invitation sent")
	return nil
}

// IsFriend reports whether the mutual friendship holds.
func (s *System) IsFriend(login, friendLogin string) (bool, error) {
	user, err := s.getUser(login)
	if err != nil {
		return false, err
	}
	return user.IsFriend(friendLogin), nil
}

// GetFriends lists a user's confirmed friends in insertion order.
func (s *System) GetFriends(login string) ([]string, error) {
	user, err := s.getUser(login)
	if err != nil {
		return nil, err
	}
	return user.Friends, nil
}

// AddIdol makes the acting user a fan of the given idol.
func (s *System) AddIdol(sessionID, idolLogin string) error {
	actor, err := s.SessionUser(sessionID)
	if err != nil {
		return err
	}
	idol, err := s.getUser(idolLogin)
	if err != nil {
		return err
	}

	if actor.Login == idolLogin {
		return models.NewSelfRelationError("their own fan")
	}
	if actor.HasIdol(idolLogin) {
		return models.NewExistingRelationError("a fan of this user")
	}
	if enemyBetween(actor, idol) {
		return models.NewBlockedRelationError(idol.Name)
	}

	actor.AddIdol(idolLogin)
	idol.AddFan(actor.Login)
	logrus.WithFields(logrus.Fields{
		"fan":  actor.Login,
		"idol": idolLogin,
	}).Info("Idol added")
	return nil
}

// IsFan reports whether login follows idolLogin.
func (s *System) IsFan(login, idolLogin string) (bool, error) {
	user, err := s.getUser(login)
	if err != nil {
		return false, err
	}
	return user.HasIdol(idolLogin), nil
}

// GetFans lists the fans of a user in insertion order.
func (s *System) GetFans(login string) ([]string, error) {
	user, err := s.getUser(login)
	if err != nil {
		return nil, err
	}
	return user.Fans, nil
}

// AddCrush registers a crush. When the crush is mutual both users receive a
// system notification in their message queues.
func (s *System) AddCrush(sessionID, crushLogin string) error {
	actor, err := s.SessionUser(sessionID)
	if err != nil {
		return err
	}
	crush, err := s.getUser(crushLogin)
	if err != nil {
		return err
	}

	if actor.Login == crushLogin {
		return models.NewSelfRelationError("their own crush")
	}
	if actor.HasCrush(crushLogin) {
		return models.NewExistingRelationError("registered as a crush")
	}
	if enemyBetween(actor, crush) {
		return models.NewBlockedRelationError(crush.Name)
	}

	actor.AddCrush(crushLogin)

	if crush.HasCrush(actor.Login) {
		actor.QueueMessage(fmt.Sprintf("%s is your crush - Jackut message.", crush.Name))
		crush.QueueMessage(fmt.Sprintf("%s is your crush - Jackut message.", actor.Name))
		logrus.WithFields(logrus.Fields{
			"user":  actor.Login,
			"crush": crushLogin,
		}).Info("Mutual crush, both users notified")
	}
	return nil
}

// IsCrush reports whether login registered crushLogin as a crush.
func (s *System) IsCrush(login, crushLogin string) (bool, error) {
	user, err := s.getUser(login)
	if err != nil {
		return false, err
	}
	return user.HasCrush(crushLogin), nil
}

// GetCrushes lists a user's crushes in insertion order.
func (s *System) GetCrushes(login string) ([]string, error) {
	user, err := s.getUser(login)
	if err != nil {
		return nil, err
	}
	return user.Crushes, nil
}

// AddEnemy declares a directional enemy relation. Existing positive
// relations are left untouched; only future interactions are blocked.
func (s *System) AddEnemy(sessionID, enemyLogin string) error {
	actor, err := s.SessionUser(sessionID)
	if err != nil {
		return err
	}
	if _, err := s.getUser(enemyLogin); err != nil {
		return err
	}

	if actor.Login == enemyLogin {
		return models.NewSelfRelationError("their own enemy")
	}
	if actor.HasEnemy(enemyLogin) {
		return models.NewExistingRelationError("registered as an enemy")
	}

	actor.AddEnemy(enemyLogin)
	logrus.WithFields(logrus.Fields{
		"user":  actor.Login,
		"enemy": enemyLogin,
	}).Info("Enemy declared")
	return nil
}

// GetEnemies lists a user's declared enemies in insertion order.
func (s *System) GetEnemies(login string) ([]string, error) {
	user, err := s.getUser(login)
	if err != nil {
		return nil, err
	}
	return user.Enemies, nil
}
