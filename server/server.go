package server

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/playercore/go-auth-guard/auth"
	"github.com/playercore/go-auth-guard/internal/config"
	"github.com/playercore/go-auth-guard/principals"
	"github.com/playercore/go-auth-guard/token"
	"github.com/playercore/go-auth-guard/workspaces"
	zlog "github.com/rs/zerolog/log"
)

type Server struct {
	env        string // Environment (e.g., "DEV", "PROD")
	mux        *http.ServeMux
	routes     []string
	config     config.Config
	guard      *auth.Guard
	store      principals.Store
	workspaces workspaces.Repo
	tokens     token.Pair
	blacklist  token.Blacklist
}

func New(config config.Config, store principals.Store, workspaceRepo workspaces.Repo) (*Server, error) {
	tokens := token.NewPair(
		secretOrGenerated(config.GetPrimarySecret(), "PRIMARY_SECRET"),
		config.GetPrimaryTTL(),
		secretOrGenerated(config.GetRefreshSecret(), "REFRESH_SECRET"),
		config.GetRefreshTTL(),
	)

	guard, err := auth.NewGuard(store, tokens,
		auth.WithBypassPrincipals(config.GetBypassPrincipals()...),
		auth.WithAuditRecorder(auth.NewLogRecorder(zlog.Logger)),
	)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create guard: %w", err)
	}

	s := &Server{
		mux:        http.NewServeMux(),
		config:     config,
		guard:      guard,
		store:      store,
		workspaces: workspaceRepo,
		tokens:     tokens,
		blacklist:  token.NewInMemoryBlacklist(),
	}
	s.env = config.GetEnv()

	// Bootstrap: ensure the system workspace and super admin exist
	if err := s.InitialiseSystem(config); err != nil {
		return nil, fmt.Errorf("[Server New] failed to initialise the system: %w", err)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// secretOrGenerated falls back to a random per-process secret when the env
// var is unset. Sessions then do not survive a restart, which is fine for
// development but logged loudly.
func secretOrGenerated(secret, name string) string {
	if secret != "" {
		return secret
	}
	zlog.Warn().Str("var", name).Msg("Secret not configured, generating a random per-process secret")
	return generateRandomString(32)
}

// generateRandomString creates a random base64url string
func generateRandomString(length int) string {
	b := make([]byte, length)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
