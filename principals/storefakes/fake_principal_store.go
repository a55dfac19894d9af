package storefakes

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/playercore/go-auth-guard/principals"
	"github.com/playercore/go-auth-guard/workspaces"
)

var _ principals.Store = (*FakePrincipalStore)(nil)

type FakePrincipalStore struct {
	principals map[string]*principals.Principal
	emailIds   map[string]string // email to principal id
	workspaces workspaces.Repo
	lock       sync.RWMutex
}

// NewFakePrincipalStore creates an in-memory store. When a workspace repo is
// provided, reads resolve the principal's workspace transitively the way a
// real store would join it.
func NewFakePrincipalStore(workspaceRepo workspaces.Repo) *FakePrincipalStore {
	return &FakePrincipalStore{
		principals: make(map[string]*principals.Principal),
		emailIds:   make(map[string]string),
		workspaces: workspaceRepo,
	}
}

func (ps *FakePrincipalStore) Upsert(principal *principals.Principal) error {
	ps.lock.Lock()
	defer ps.lock.Unlock()

	if principal.ID == "" {
		principal.ID = uuid.New().String()
	}
	ps.principals[principal.ID] = principal
	ps.emailIds[principal.Email] = principal.ID
	return nil
}

func (ps *FakePrincipalStore) GetByEmail(email string) (*principals.Principal, error) {
	ps.lock.RLock()
	id, ok := ps.emailIds[email]
	ps.lock.RUnlock()
	if !ok {
		return nil, errors.New("not found")
	}
	return ps.GetByID(id)
}

func (ps *FakePrincipalStore) GetByID(id string) (*principals.Principal, error) {
	ps.lock.RLock()
	defer ps.lock.RUnlock()

	principal, ok := ps.principals[id]
	if !ok {
		return nil, errors.New("not found")
	}

	copied := *principal
	if copied.HasWorkspace() && ps.workspaces != nil {
		if workspace, err := ps.workspaces.Get(copied.WorkspaceID); err == nil {
			copied.Workspace = workspace
		}
	}
	return &copied, nil
}

func (ps *FakePrincipalStore) ComparePassword(principal *principals.Principal, plaintext string) bool {
	return principals.CheckPasswordHash(plaintext, principal.PasswordHash)
}

func (ps *FakePrincipalStore) IncrementFailedAttempts(id string) error {
	ps.lock.Lock()
	defer ps.lock.Unlock()

	principal, ok := ps.principals[id]
	if !ok {
		return errors.New("not found")
	}
	principal.FailedAttempts++
	return nil
}

func (ps *FakePrincipalStore) ResetFailedAttempts(id string) error {
	ps.lock.Lock()
	defer ps.lock.Unlock()

	principal, ok := ps.principals[id]
	if !ok {
		return errors.New("not found")
	}
	principal.FailedAttempts = 0
	return nil
}

func (ps *FakePrincipalStore) UpdateLastLogin(id string) error {
	ps.lock.Lock()
	defer ps.lock.Unlock()

	principal, ok := ps.principals[id]
	if !ok {
		return errors.New("not found")
	}
	principal.LastLogin = time.Now()
	return nil
}

func (ps *FakePrincipalStore) UpdateCredentials(id string, update principals.CredentialUpdate) error {
	ps.lock.Lock()
	defer ps.lock.Unlock()

	principal, ok := ps.principals[id]
	if !ok {
		return errors.New("not found")
	}
	if update.PasswordHash != "" {
		principal.PasswordHash = update.PasswordHash
	}
	if update.UnlockAccount {
		principal.FailedAttempts = 0
	}
	return nil
}
