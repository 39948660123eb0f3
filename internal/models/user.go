package models

// User represents a registered account with its profile, relationship sets
// and message queue. Login and Password never change after creation.
// Relation slices keep insertion order; the services.System is the only
// component that mutates them.
type User struct {
	Login          string            `json:"login"`
	Password       string            `json:"password"`
	Name           string            `json:"name"`
	Attributes     map[string]string `json:"attributes"`
	Friends        []string          `json:"friends,omitempty"`
	FriendRequests []string          `json:"friend_requests,omitempty"`
	Idols          []string          `json:"idols,omitempty"`
	Fans           []string          `json:"fans,omitempty"`
	Crushes        []string          `json:"crushes,omitempty"`
	Enemies        []string          `json:"enemies,omitempty"`
	Messages       []string          `json:"messages,omitempty"`
	Communities    []string          `json:"communities,omitempty"`
}

// NewUser creates a user with empty relationship sets and message queue.
func NewUser(login, password, name string) *User {
	return &User{
		Login:      login,
		Password:   password,
		Name:       name,
		Attributes: make(map[string]string),
	}
}

func contains(set []string, login string) bool {
	for _, l := range set {
		if l == login {
			return true
		}
	}
	return false
}

func remove(set []string, login string) []string {
	for i, l := range set {
		if l == login {
			return append(set[:i], set[i+1:]...)
		}
	}
	return set
}

// SetAttribute sets or overwrites a profile field. The reserved "name"
// attribute maps to the display name.
func (u *User) SetAttribute(attribute, value string) {
	if attribute == "name" {
		u.Name = value
		return
	}
	if u.Attributes == nil {
		u.Attributes = make(map[string]string)
	}
	u.Attributes[attribute] = value
}

// GetAttribute reads a profile field. The second return reports whether the
// attribute was ever set.
func (u *User) GetAttribute(attribute string) (string, bool) {
	if attribute == "name" {
		return u.Name, u.Name != ""
	}
	v, ok := u.Attributes[attribute]
	return v, ok
}

func (u *User) IsFriend(login string) bool { return contains(u.Friends, login) }

func (u *User) HasRequestFrom(login string) bool { return contains(u.FriendRequests, login) }

func (u *User) HasIdol(login string) bool { return contains(u.Idols, login) }

func (u *User) HasFan(login string) bool { return contains(u.Fans, login) }

func (u *User) HasCrush(login string) bool { return contains(u.Crushes, login) }

func (u *User) HasEnemy(login string) bool { return contains(u.Enemies, login) }

func (u *User) IsMemberOf(name string) bool { return contains(u.Communities, name) }

// AddFriendRequest records a pending invitation from the given login.
func (u *User) AddFriendRequest(login string) {
	u.FriendRequests = append(u.FriendRequests, login)
}

// ConfirmFriend promotes a pending invitation to a confirmed friendship.
func (u *User) ConfirmFriend(login string) {
	u.FriendRequests = remove(u.FriendRequests, login)
	u.Friends = append(u.Friends, login)
}

func (u *User) AddIdol(login string) { u.Idols = append(u.Idols, login) }

func (u *User) AddFan(login string) { u.Fans = append(u.Fans, login) }

func (u *User) AddCrush(login string) { u.Crushes = append(u.Crushes, login) }

func (u *User) AddEnemy(login string) { u.Enemies = append(u.Enemies, login) }

// QueueMessage appends a message to the tail of the queue.
func (u *User) QueueMessage(text string) {
	u.Messages = append(u.Messages, text)
}

// NextMessage pops the head of the queue. The second return is false when
// the queue is empty.
func (u *User) NextMessage() (string, bool) {
	if len(u.Messages) == 0 {
		return "", false
	}
	msg := u.Messages[0]
	u.Messages = u.Messages[1:]
	return msg, true
}

// JoinCommunity records membership in the named community.
func (u *User) JoinCommunity(name string) {
	u.Communities = append(u.Communities, name)
}

// LeaveCommunity drops membership in the named community.
func (u *User) LeaveCommunity(name string) {
	u.Communities = remove(u.Communities, name)
}

// Unlink removes every relationship this user holds toward the given login.
// Used when that login is deleted from the system.
func (u *User) Unlink(login string) {
	u.Friends = remove(u.Friends, login)
	u.FriendRequests = remove(u.FriendRequests, login)
	u.Idols = remove(u.Idols, login)
	u.Fans = remove(u.Fans, login)
	u.Crushes = remove(u.Crushes, login)
	u.Enemies = remove(u.Enemies, login)
}
