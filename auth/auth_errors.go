package auth

import "errors"

// Every failure the guard surfaces is an authorization denial. The kinds
// below are deliberately asymmetric: lockout, disabled and inactive
// workspace keep their own kind, while an unknown email, a password
// mismatch and any unexpected fault during validation all fold into
// InvalidCredentialsErr so those paths stay indistinguishable to a caller.
var (
	InvalidCredentialsErr  = errors.New("invalid credentials")
	AccountDisabledErr     = errors.New("account disabled")
	WorkspaceInactiveErr   = errors.New("workspace inactive")
	AccountLockedErr       = errors.New("account locked")
	InvalidRefreshTokenErr = errors.New("invalid refresh token")
)

// Kind returns the telemetry tag for a guard failure, or an empty string
// for errors that are not authorization denials.
func Kind(err error) string {
	switch {
	case errors.Is(err, InvalidCredentialsErr):
		return "invalid_credentials"
	case errors.Is(err, AccountDisabledErr):
		return "account_disabled"
	case errors.Is(err, WorkspaceInactiveErr):
		return "workspace_inactive"
	case errors.Is(err, AccountLockedErr):
		return "account_locked"
	case errors.Is(err, InvalidRefreshTokenErr):
		return "invalid_refresh_token"
	}
	return ""
}
