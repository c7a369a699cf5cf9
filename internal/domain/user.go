package domain

import "time"

const (
	RoleAdmin  = "Admin"
	RoleClient = "Client"
)

type UserKind string

const (
	UserKindAdministrator UserKind = "administrator"
	UserKindClient        UserKind = "client"
)

// User is stored in a single table; Kind is the discriminator.
// BirthDate is only set for clients.
type User struct {
	ID           int64
	Name         string
	Surname      string
	Email        string
	PasswordHash string
	Kind         UserKind
	BirthDate    *time.Time
}

// Role maps the user variant to the authorization role carried in tokens.
func (u User) Role() string {
	if u.Kind == UserKindAdministrator {
		return RoleAdmin
	}
	return RoleClient
}
