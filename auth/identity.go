package auth

import (
	"context"
	"errors"
)

type Role string

const (
	RoleHomeOwner Role = "HOME_OWNER"
	RoleCleaner   Role = "CLEANER"
)

// Identity is the acting user as supplied by the session provider.
// The rest of the backend trusts it as authoritative.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

var ErrInvalidSession = errors.New("invalid or expired session")

type IdentityProvider interface {
	IdentityForToken(ctx context.Context, token string) (Identity, error)
}
