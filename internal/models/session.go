package models

// Session binds a generated identifier to one authenticated user. The user
// is borrowed from the system registry; removing the user invalidates the
// session, never the other way around.
type Session struct {
	ID   string
	User *User
}

// NewSession creates a session for an authenticated user.
func NewSession(id string, user *User) *Session {
	return &Session{ID: id, User: user}
}
