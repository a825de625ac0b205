package model

import "time"

// DefaultRoleName is reported when a credential has no role attached.
const DefaultRoleName = "Sin rol"

// Credential is a row of usuarios joined with roles. RoleName is nil when the
// join yields NULL.
type Credential struct {
	ID           int64
	Username     string
	Email        *string
	PasswordHash string
	RoleID       *int64
	RoleName     *string
	Active       bool
}

// Identity returns the caller-facing view of the credential. Only a NULL role
// falls back to DefaultRoleName; a stored empty name is reported as is.
func (c Credential) Identity() Identity {
	roleName := DefaultRoleName
	if c.RoleName != nil {
		roleName = *c.RoleName
	}

	return Identity{
		ID:       c.ID,
		Username: c.Username,
		Email:    c.Email,
		RoleID:   c.RoleID,
		RoleName: roleName,
	}
}

// SessionClaim is the payload carried inside an access token. It is never
// stored server-side.
type SessionClaim struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type Identity struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	RoleID   *int64  `json:"rol_id"`
	RoleName string  `json:"rol_nombre"`
}

type TokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	UserInfo    Identity `json:"user_info"`
}
