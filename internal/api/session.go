package api

import (
	"context"
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/ce-es/dashboard/internal/auth"
	"github.com/ce-es/dashboard/internal/domain"
)

type sessionKey struct{}

// tokenHeader carries the session token issued by login.
const tokenHeader = "X-Auth-Token"

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := s.users.Authenticate(req.Username, req.Password)
	switch {
	case errors.Is(err, domain.ErrUserDisabled):
		writeError(w, http.StatusForbidden, "Konto deaktiviert")
		return
	case err != nil:
		writeError(w, http.StatusUnauthorized, "Benutzername oder Passwort falsch")
		return
	}

	token := uuid.NewString()
	s.sessMu.Lock()
	s.sessions[token] = sess
	s.sessMu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": sess})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(tokenHeader)
	s.sessMu.Lock()
	delete(s.sessions, token)
	s.sessMu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// requireSession resolves the token header into a session and rejects
// unauthenticated requests.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.sessMu.Lock()
		sess := s.sessions[r.Header.Get(tokenHeader)]
		s.sessMu.Unlock()
		if sess == nil {
			writeError(w, http.StatusUnauthorized, "Nicht angemeldet")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

// requirePermission gates a route group on one permission.
func (s *Server) requirePermission(perm auth.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, _ := r.Context().Value(sessionKey{}).(*auth.Session)
			if !sess.HasPermission(perm) {
				writeError(w, http.StatusForbidden, "Keine Berechtigung")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// sessionFrom returns the authenticated session of the request.
func sessionFrom(r *http.Request) *auth.Session {
	sess, _ := r.Context().Value(sessionKey{}).(*auth.Session)
	return sess
}
