package auth

import (
	"time"

	"github.com/pkg/errors"
	"github.com/playercore/go-auth-guard/principals"
	"github.com/playercore/go-auth-guard/token"
)

// MaxFailedAttempts is the lockout threshold: a principal whose counter has
// reached it is refused before the password is even compared, so a locked
// account never leaks password correctness.
const MaxFailedAttempts = 5

// Session is the result of a successful login or renewal: a short-lived
// access token, a longer-lived refresh token signed with an independent
// secret, and the redacted principal projection.
type Session struct {
	AccessToken  string                     `json:"access_token"`
	RefreshToken string                     `json:"refresh_token"`
	User         principals.PublicPrincipal `json:"user"`
}

// Guard orchestrates credential validation, lockout policy, workspace
// gating and token issuance. It holds no authoritative state: counters,
// active flags and timestamps live behind the principals.Store adapter.
type Guard struct {
	store   principals.Store
	tokens  token.Pair
	bypass  map[string]struct{}
	audit   AuditRecorder
	nowTime func() time.Time
}

// GuardOption defines a function type to modify the Guard instance.
type GuardOption func(*Guard)

// WithBypassPrincipals sets the emails exempt from the inactive-workspace
// gate.
func WithBypassPrincipals(emails ...string) GuardOption {
	return func(g *Guard) {
		for _, email := range emails {
			g.bypass[email] = struct{}{}
		}
	}
}

// WithAuditRecorder routes authentication events to the given recorder.
func WithAuditRecorder(recorder AuditRecorder) GuardOption {
	return func(g *Guard) {
		g.audit = recorder
	}
}

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) GuardOption {
	return func(g *Guard) {
		g.nowTime = nowFunc
	}
}

// NewGuard initializes a new Guard with required dependencies.
// Optional configuration can be provided via options (e.g. the bypass set).
func NewGuard(store principals.Store, tokens token.Pair, options ...GuardOption) (*Guard, error) {
	if store == nil {
		return nil, errors.New("[NewGuard] principal store is required")
	}
	if tokens.Access == nil || tokens.Refresh == nil {
		return nil, errors.New("[NewGuard] access and refresh signers are required")
	}

	guard := &Guard{
		store:   store,
		tokens:  tokens,
		bypass:  make(map[string]struct{}),
		audit:   NoopRecorder{},
		nowTime: time.Now,
	}

	for _, opt := range options {
		opt(guard)
	}

	return guard, nil
}

// ValidateCredentials authenticates a principal by email and password,
// applying each policy gate in order. Unknown emails, password mismatches
// and adapter faults are indistinguishable to the caller; the disabled,
// inactive-workspace and locked gates keep their own kind.
func (g *Guard) ValidateCredentials(email, password string) (*principals.Principal, error) {
	principal, err := g.validateCredentials(email, password)
	g.audit.LoginAttempt(email, Kind(err))
	return principal, err
}

func (g *Guard) validateCredentials(email, password string) (*principals.Principal, error) {
	principal, err := g.store.GetByEmail(email)
	if err != nil || principal == nil {
		return nil, InvalidCredentialsErr
	}

	if !principal.Active {
		return nil, AccountDisabledErr
	}

	if principal.Workspace != nil && !principal.Workspace.Active && !g.isBypass(principal.Email) {
		return nil, WorkspaceInactiveErr
	}

	if principal.FailedAttempts >= MaxFailedAttempts {
		return nil, AccountLockedErr
	}

	if !g.store.ComparePassword(principal, password) {
		_ = g.store.IncrementFailedAttempts(principal.ID)
		return nil, InvalidCredentialsErr
	}

	if err := g.store.ResetFailedAttempts(principal.ID); err != nil {
		return nil, InvalidCredentialsErr
	}
	if err := g.store.UpdateLastLogin(principal.ID); err != nil {
		return nil, InvalidCredentialsErr
	}

	principal.FailedAttempts = 0
	principal.LastLogin = g.nowTime()
	return principal, nil
}

// IssueSession builds the session payload from the principal's current
// state and signs the access/refresh pair from it. No side effects beyond
// signing.
func (g *Guard) IssueSession(principal *principals.Principal) (*Session, error) {
	payload := token.Payload{
		SubjectID:   principal.ID,
		Email:       principal.Email,
		Role:        string(principal.Role),
		WorkspaceID: principal.WorkspaceID,
		Internal:    principal.Internal,
	}

	accessToken, err := g.tokens.Access.Sign(payload)
	if err != nil {
		return nil, errors.Wrap(err, "[Guard.IssueSession] failed to sign access token")
	}
	refreshToken, err := g.tokens.Refresh.Sign(payload)
	if err != nil {
		return nil, errors.Wrap(err, "[Guard.IssueSession] failed to sign refresh token")
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         principal.Public(),
	}, nil
}

// Login validates the credentials and issues a session. A validation
// failure propagates unchanged.
func (g *Guard) Login(email, password string) (*Session, error) {
	principal, err := g.ValidateCredentials(email, password)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, InvalidCredentialsErr
	}
	return g.IssueSession(principal)
}

// RenewSession verifies a refresh token, re-reads the principal's current
// state, re-applies the active and workspace gates, and issues a brand-new
// access/refresh pair. Every failure on this path is normalized to
// InvalidRefreshTokenErr: a disabled or workspace-revoked principal must
// not mint new tokens from a stale refresh token even though the token
// itself is cryptographically valid.
func (g *Guard) RenewSession(refreshToken string) (*Session, error) {
	claims, err := g.tokens.Refresh.Verify(refreshToken)
	if err != nil {
		g.audit.SessionRenewal("", Kind(InvalidRefreshTokenErr))
		return nil, InvalidRefreshTokenErr
	}

	session, err := g.renewSession(claims.SubjectID)
	g.audit.SessionRenewal(claims.SubjectID, Kind(err))
	return session, err
}

func (g *Guard) renewSession(subjectID string) (*Session, error) {
	principal, err := g.store.GetByID(subjectID)
	if err != nil || principal == nil {
		return nil, InvalidRefreshTokenErr
	}

	if !principal.Active {
		return nil, InvalidRefreshTokenErr
	}
	if principal.Workspace != nil && !principal.Workspace.Active && !g.isBypass(principal.Email) {
		return nil, InvalidRefreshTokenErr
	}

	session, err := g.IssueSession(principal)
	if err != nil {
		return nil, InvalidRefreshTokenErr
	}
	return session, nil
}

// GetProfile reads a principal by id through the adapter. No additional
// policy is applied.
func (g *Guard) GetProfile(subjectID string) (*principals.Principal, error) {
	principal, err := g.store.GetByID(subjectID)
	if err != nil {
		return nil, errors.Wrap(err, "[Guard.GetProfile] store.GetByID")
	}
	return principal, nil
}

func (g *Guard) isBypass(email string) bool {
	_, ok := g.bypass[email]
	return ok
}
