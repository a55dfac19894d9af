package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload is the set of session claims identifying an authenticated
// principal. It is derived at issuance time and embedded in signed tokens;
// it is never persisted.
type Payload struct {
	SubjectID   string `json:"sub"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role,omitempty"`
	WorkspaceID string `json:"workspace_id,omitempty"`
	Internal    bool   `json:"internal,omitempty"`
}

// Claims is a verified token's payload plus the expiry metadata added at
// signing time.
type Claims struct {
	Payload
	TokenID   string
	ExpiresAt time.Time
}

// sessionClaims is the wire shape of a signed session token.
type sessionClaims struct {
	Email       string `json:"email,omitempty"`
	Role        string `json:"role,omitempty"`
	WorkspaceID string `json:"workspace_id,omitempty"`
	Internal    bool   `json:"internal,omitempty"`
	jwt.RegisteredClaims
}
