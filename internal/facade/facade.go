// Package facade exposes one operation per system capability. It is the
// single integration point for external drivers: it restores persisted
// state when constructed and persists it on shutdown.
package facade

import (
	"jackut/internal/services"
	"jackut/pkg/format"
)

// Facade wraps the system core. Collection results are rendered in the
// "{a,b,c}" presentation form.
type Facade struct {
	system *services.System
}

// New builds the facade over a fresh system restored from the store.
func New(store services.Store) (*Facade, error) {
	system := services.NewSystem(store)
	if err := system.Restore(); err != nil {
		return nil, err
	}
	return &Facade{system: system}, nil
}

// ResetSystem wipes all users, sessions and communities.
func (f *Facade) ResetSystem() {
	f.system.ResetSystem()
}

// CreateUser registers a new account.
func (f *Facade) CreateUser(login, password, name string) error {
	return f.system.CreateUser(login, password, name)
}

// OpenSession authenticates a user and returns the session id.
func (f *Facade) OpenSession(login, password string) (string, error) {
	return f.system.OpenSession(login, password)
}

// GetUserAttribute reads a profile field of a registered user.
func (f *Facade) GetUserAttribute(login, attribute string) (string, error) {
	return f.system.GetUserAttribute(login, attribute)
}

// EditProfile sets a profile field on the session's user.
func (f *Facade) EditProfile(sessionID, attribute, value string) error {
	return f.system.EditProfile(sessionID, attribute, value)
}

// RemoveUser deletes the session's user and all references to them.
func (f *Facade) RemoveUser(sessionID string) error {
	return f.system.RemoveUser(sessionID)
}

// AddFriend invites a user, or confirms the friendship on a mutual invite.
func (f *Facade) AddFriend(sessionID, friendLogin string) error {
	return f.system.AddFriend(sessionID, friendLogin)
}

// IsFriend reports whether two users are confirmed friends.
func (f *Facade) IsFriend(login, friendLogin string) (bool, error) {
	return f.system.IsFriend(login, friendLogin)
}

// GetFriends renders a user's friends as "{a,b,c}".
func (f *Facade) GetFriends(login string) (string, error) {
	friends, err := f.system.GetFriends(login)
	if err != nil {
		return "", err
	}
	return format.Braced(friends), nil
}

// SendMessage delivers a private message to the target's queue.
func (f *Facade) SendMessage(sessionID, targetLogin, text string) error {
	return f.system.SendMessage(sessionID, targetLogin, text)
}

// ReadMessage pops the next message from the session user's queue.
func (f *Facade) ReadMessage(sessionID string) (string, error) {
	return f.system.ReadMessage(sessionID)
}

// AddIdol makes the session's user a fan of the given user.
func (f *Facade) AddIdol(sessionID, idolLogin string) error {
	return f.system.AddIdol(sessionID, idolLogin)
}

// IsFan reports whether login follows idolLogin.
func (f *Facade) IsFan(login, idolLogin string) (bool, error) {
	return f.system.IsFan(login, idolLogin)
}

// GetFans renders a user's fans as "{a,b,c}".
func (f *Facade) GetFans(login string) (string, error) {
	fans, err := f.system.GetFans(login)
	if err != nil {
		return "", err
	}
	return format.Braced(fans), nil
}

// AddCrush registers a crush for the session's user.
func (f *Facade) AddCrush(sessionID, crushLogin string) error {
	return f.system.AddCrush(sessionID, crushLogin)
}

// IsCrush reports whether the session's user registered the given crush.
func (f *Facade) IsCrush(sessionID, crushLogin string) (bool, error) {
	user, err := f.system.SessionUser(sessionID)
	if err != nil {
		return false, err
	}
	return f.system.IsCrush(user.Login, crushLogin)
}

// GetCrushes renders the session user's crushes as "{a,b,c}".
func (f *Facade) GetCrushes(sessionID string) (string, error) {
	user, err := f.system.SessionUser(sessionID)
	if err != nil {
		return "", err
	}
	crushes, err := f.system.GetCrushes(user.Login)
	if err != nil {
		return "", err
	}
	return format.Braced(crushes), nil
}

// AddEnemy declares an enemy for the session's user.
func (f *Facade) AddEnemy(sessionID, enemyLogin string) error {
	return f.system.AddEnemy(sessionID, enemyLogin)
}

// GetEnemies renders a user's enemies as "{a,b,c}".
func (f *Facade) GetEnemies(login string) (string, error) {
	enemies, err := f.system.GetEnemies(login)
	if err != nil {
		return "", err
	}
	return format.Braced(enemies), nil
}

// CreateCommunity registers a community owned by the session's user.
func (f *Facade) CreateCommunity(sessionID, name, description string) error {
	return f.system.CreateCommunity(sessionID, name, description)
}

// GetCommunityDescription returns a community's description.
func (f *Facade) GetCommunityDescription(name string) (string, error) {
	return f.system.GetCommunityDescription(name)
}

// GetCommunityOwner returns the login of a community's creator.
func (f *Facade) GetCommunityOwner(name string) (string, error) {
	return f.system.GetCommunityOwner(name)
}

// GetCommunityMembers renders a community's members as "{a,b,c}".
func (f *Facade) GetCommunityMembers(name string) (string, error) {
	members, err := f.system.GetCommunityMembers(name)
	if err != nil {
		return "", err
	}
	return format.Braced(members), nil
}

// GetUserCommunities renders the communities a user belongs to.
func (f *Facade) GetUserCommunities(login string) (string, error) {
	communities, err := f.system.GetUserCommunities(login)
	if err != nil {
		return "", err
	}
	return format.Braced(communities), nil
}

// JoinCommunity adds the session's user to a community.
func (f *Facade) JoinCommunity(sessionID, name string) error {
	return f.system.JoinCommunity(sessionID, name)
}

// SendCommunityMessage broadcasts a message to every current member.
func (f *Facade) SendCommunityMessage(sessionID, name, text string) error {
	return f.system.SendCommunityMessage(sessionID, name, text)
}

// Shutdown persists the whole system state. A failure here is fatal to the
// caller; nothing is retried.
func (f *Facade) Shutdown() error {
	return f.system.Persist()
}
