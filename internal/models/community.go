package models

// Community is a named group owned by the login that created it. Members
// keep insertion order; the owner is always the first member. Community
// messages fan out to the members' personal queues at send time, so the
// community itself holds no queue state.
type Community struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Owner       string   `json:"owner"`
	Members     []string `json:"members"`
}

// NewCommunity creates a community with the owner as sole member.
func NewCommunity(name, description, owner string) *Community {
	return &Community{
		Name:        name,
		Description: description,
		Owner:       owner,
		Members:     []string{owner},
	}
}

// HasMember reports whether the login belongs to the community.
func (c *Community) HasMember(login string) bool {
	return contains(c.Members, login)
}

// AddMember appends a login to the member set.
func (c *Community) AddMember(login string) {
	c.Members = append(c.Members, login)
}

// RemoveMember drops a login from the member set.
func (c *Community) RemoveMember(login string) {
	c.Members = remove(c.Members, login)
}
