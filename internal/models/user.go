package models

import "time"

const (
	RoleEndUser = "end_user"
	RoleClient  = "client"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Role         string    `json:"role"`
	BlackBoxID   string    `json:"blackbox_id,omitempty"`
	LastLoggedIn time.Time `json:"last_logged_in"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) GetID() string       { return u.ID }
func (u *User) GetUsername() string { return u.Username }
func (u *User) GetEmail() string    { return u.Email }
func (u *User) GetRole() string     { return u.Role }

func (u *User) GetDisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TokenGrant is the normalized result of a successful code exchange or
// refresh against the auth hub.
type TokenGrant struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Expiry computes the absolute token expiry from the grant's relative
// expires_in, anchored at now.
func (g *TokenGrant) Expiry(now time.Time) time.Time {
	return now.Add(time.Duration(g.ExpiresIn) * time.Second)
}
