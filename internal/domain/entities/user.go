package entities

// User is a portal account. Role is one of the auth.Role values; it is kept
// as a plain string here so the entity has no dependency on the policy.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI username-index: username
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Department   string `json:"department,omitempty"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}

// UserRef is the display projection used wherever a user id is resolved.
type UserRef struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Username: u.Username, Email: u.Email}
}
