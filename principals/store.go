package principals

// CredentialUpdate carries the mutable credential fields for an
// administrative update. Zero-value fields are left untouched.
type CredentialUpdate struct {
	PasswordHash  string // New bcrypt hash, empty to keep the current one
	UnlockAccount bool   // Reset the failed-attempts counter to zero
}

// Store is the adapter boundary the guard depends on. Implementations own
// all durable principal state; the guard never holds authoritative copies.
// A returned Principal has its Workspace resolved when WorkspaceID is set.
type Store interface {
	Upsert(principal *Principal) error
	GetByEmail(email string) (*Principal, error)
	GetByID(id string) (*Principal, error)
	ComparePassword(principal *Principal, plaintext string) bool
	IncrementFailedAttempts(id string) error
	ResetFailedAttempts(id string) error
	UpdateLastLogin(id string) error
	UpdateCredentials(id string, update CredentialUpdate) error
}
