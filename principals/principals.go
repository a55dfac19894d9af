package principals

import (
	"fmt"
	"time"

	"unicode"

	"github.com/playercore/go-auth-guard/workspaces"
	"golang.org/x/crypto/bcrypt"
)

// RoleType represents a principal's capability tag
type RoleType string

const (
	RoleSuperAdmin RoleType = "super_admin" // Can manage all workspaces and system configuration
	RoleAdmin      RoleType = "admin"       // Can manage principals and settings within a workspace
	RoleMember     RoleType = "member"      // Regular principal within a workspace
)

type Principal struct {
	ID           string    `json:"id,omitempty"`    // Unique identifier for the principal
	Email        string    `json:"email,omitempty"` // Principal's email address, unique, case-sensitive as stored
	PasswordHash string    `json:"-"`               // Hashed version of the principal's password - never serialize
	Role         RoleType  `json:"role,omitempty"`
	DateJoined   time.Time `json:"date_joined,omitempty"` // Date and time when the principal was created
	LastLogin    time.Time `json:"last_login,omitempty"`  // Last time the principal logged in

	// Workspace membership. WorkspaceID is empty for internal principals;
	// Workspace is resolved transitively by the store when set.
	WorkspaceID string                `json:"workspace_id,omitempty"`
	Workspace   *workspaces.Workspace `json:"workspace,omitempty"`

	Active         bool `json:"active,omitempty"`          // Active, can the principal log in at all
	Internal       bool `json:"internal,omitempty"`        // Internal, marks principals not bound to a workspace
	FailedAttempts int  `json:"failed_attempts,omitempty"` // Consecutive failed login attempts, reset on success
}

// PublicPrincipal is the redacted projection returned alongside issued
// sessions. It never carries the password hash or the attempts counter.
type PublicPrincipal struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        RoleType  `json:"role"`
	WorkspaceID string    `json:"workspace_id,omitempty"`
	Internal    bool      `json:"internal"`
	LastLogin   time.Time `json:"last_login,omitempty"`
}

// Public returns the redacted projection of the principal.
func (p *Principal) Public() PublicPrincipal {
	return PublicPrincipal{
		ID:          p.ID,
		Email:       p.Email,
		Role:        p.Role,
		WorkspaceID: p.WorkspaceID,
		Internal:    p.Internal,
		LastLogin:   p.LastLogin,
	}
}

// HasWorkspace reports whether the principal is bound to a workspace.
func (p *Principal) HasWorkspace() bool {
	return p.WorkspaceID != ""
}

// IsSuperAdmin returns true if the principal has super admin privileges
func (p *Principal) IsSuperAdmin() bool {
	return p.Role == RoleSuperAdmin
}

// ValidatePasswordStrength checks if password meets security requirements:
// - At least 8 characters long
// - Contains uppercase and lowercase letters
// - Contains at least one number
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var (
		hasUpper  bool
		hasLower  bool
		hasNumber bool
	)

	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		} else if unicode.IsLower(char) {
			hasLower = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}

	return nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
