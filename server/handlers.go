package server

import (
	"encoding/json"
	"net/http"

	"github.com/playercore/go-auth-guard/auth"
	"github.com/playercore/go-auth-guard/principals"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type credentialsRequest struct {
	Password string `json:"password"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HealthHandler reports process liveness
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// LoginHandler authenticates by email/password and returns the signed
// session pair plus the redacted principal.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "malformed request body")
			return
		}
		if req.Email == "" || req.Password == "" {
			writeBadRequest(w, "email and password are required")
			return
		}

		session, err := s.guard.Login(req.Email, req.Password)
		if err != nil {
			s.writeGuardError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, session)
	}
}

// RefreshHandler mints a new session pair from a valid refresh token.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "malformed request body")
			return
		}
		if req.RefreshToken == "" {
			writeBadRequest(w, "refresh_token is required")
			return
		}

		session, err := s.guard.RenewSession(req.RefreshToken)
		if err != nil {
			s.writeGuardError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, session)
	}
}

// LogoutHandler routes the refresh token's id to the blacklist
// collaborator. The guard itself never consults the blacklist; revocation
// enforcement belongs to whoever fronts it.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "malformed request body")
			return
		}

		claims, err := s.tokens.Refresh.Verify(req.RefreshToken)
		if err != nil {
			writeAuthDenied(w, auth.Kind(auth.InvalidRefreshTokenErr))
			return
		}

		if err := s.blacklist.Add(claims.TokenID, claims.ExpiresAt); err != nil {
			log.Err(err).Msg("Failed to blacklist refresh token")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ProfileHandler returns the authenticated principal's redacted projection.
func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subjectID, ok := r.Context().Value(ContextKeySubjectID).(string)
		if !ok || subjectID == "" {
			writeAuthDenied(w, "invalid_token")
			return
		}

		principal, err := s.guard.GetProfile(subjectID)
		if err != nil {
			writeAuthDenied(w, "invalid_token")
			return
		}
		writeJSON(w, http.StatusOK, principal.Public())
	}
}

// UpdateCredentialsHandler is the administrative credential reset. It lives
// behind its own authorization and is not reachable from the login path;
// resetting also lifts an account lockout.
func (s *Server) UpdateCredentialsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principalID := r.PathValue("id")
		if principalID == "" {
			writeBadRequest(w, "principal id is required")
			return
		}

		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "malformed request body")
			return
		}
		if err := principals.ValidatePasswordStrength(req.Password); err != nil {
			writeBadRequest(w, err.Error())
			return
		}

		hash, err := principals.HashPassword(req.Password)
		if err != nil {
			log.Err(err).Msg("Failed to hash password")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		update := principals.CredentialUpdate{PasswordHash: hash, UnlockAccount: true}
		if err := s.store.UpdateCredentials(principalID, update); err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "principal not found"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeGuardError maps a guard failure onto the uniform authorization
// denied response: the kind tag is the only detail callers ever see.
func (s *Server) writeGuardError(w http.ResponseWriter, err error) {
	if kind := auth.Kind(err); kind != "" {
		writeAuthDenied(w, kind)
		return
	}
	log.Err(err).Msg("Unexpected guard failure")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeAuthDenied(w http.ResponseWriter, kind string) {
	writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization denied", Kind: kind})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("Failed to encode response")
	}
}
