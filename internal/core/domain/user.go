package domain

import (
	"errors"
	"time"
)

// Role is the access level attached to an identity.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

var ErrIdentityNotFound = errors.New("identity not found")
var ErrInvalidRole = errors.New("invalid role")

// Identity models a signed-in person. It is created on the first successful
// sign-in and is immutable afterwards except for Role.
type Identity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Image       string    `json:"image,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Account links an identity to a provider subject. The provider subject is
// never used as the identity id.
type Account struct {
	IdentityID        string
	Provider          string
	ProviderAccountID string
}
