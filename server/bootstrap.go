package server

import (
	"fmt"
	"log"
	"time"

	"github.com/playercore/go-auth-guard/internal/config"
	"github.com/playercore/go-auth-guard/principals"
	"github.com/playercore/go-auth-guard/workspaces"
)

const systemWorkspaceID = "system"

// InitialiseSystem creates the system workspace and the super admin
// principal when they do not already exist. The generated password is
// printed once, on first creation only.
func (s *Server) InitialiseSystem(config config.Config) error {
	workspace, err := s.initialiseSystemWorkspace()
	if err != nil {
		return fmt.Errorf("[Server InitialiseSystem] failed to bootstrap system workspace: %w", err)
	}

	bypass := config.GetBypassPrincipals()
	if len(bypass) == 0 {
		return fmt.Errorf("[Server InitialiseSystem] no bypass principal configured")
	}
	superAdminEmail := bypass[0]

	generatedPassword, err := s.createSuperAdmin(superAdminEmail)
	if err != nil {
		return fmt.Errorf("[Server InitialiseSystem] failed to bootstrap super admin: %w", err)
	}

	if generatedPassword != "" {
		log.Printf("System workspace: %s", workspace.ID)
		log.Printf("Super admin credentials:")
		log.Printf("   Email:    %s", superAdminEmail)
		log.Printf("   Password: %s     (change on first login)", generatedPassword)
	}
	return nil
}

// initialiseSystemWorkspace creates the system workspace if it doesn't exist
func (s *Server) initialiseSystemWorkspace() (*workspaces.Workspace, error) {
	if workspace, err := s.workspaces.Get(systemWorkspaceID); err == nil {
		return workspace, nil
	}

	workspace := &workspaces.Workspace{
		ID:     systemWorkspaceID,
		Name:   "System",
		Active: true,
	}
	if err := s.workspaces.Upsert(workspace); err != nil {
		return nil, fmt.Errorf("[server initialiseSystemWorkspace] failed to create workspace: %w", err)
	}
	return workspace, nil
}

// createSuperAdmin creates the super admin principal if it doesn't exist.
// Returns the generated password on first creation (empty string if the
// principal already exists).
func (s *Server) createSuperAdmin(email string) (string, error) {
	if _, err := s.store.GetByEmail(email); err == nil {
		return "", nil
	}

	password := generateRandomString(24)
	hash, err := principals.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("[server createSuperAdmin] failed to hash password: %w", err)
	}

	err = s.store.Upsert(&principals.Principal{
		Email:        email,
		PasswordHash: hash,
		Role:         principals.RoleSuperAdmin,
		DateJoined:   time.Now(),
		Active:       true,
		Internal:     true,
	})
	if err != nil {
		return "", fmt.Errorf("[server createSuperAdmin] failed to create principal: %w", err)
	}
	return password, nil
}
