package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ce-es/dashboard/internal/auth"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("unique") == "1" {
		writeJSON(w, http.StatusOK, s.users.UniqueUsers())
		return
	}
	writeJSON(w, http.StatusOK, s.users.Users())
}

func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var u auth.ManagedUser
	if !readJSON(w, r, &u) {
		return
	}
	if u.Username == "" || u.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	if u.Role == "" {
		u.Role = auth.RoleStaff
	}
	if len(u.Permissions) == 0 && u.Role == auth.RoleStaff {
		u.Permissions = append([]auth.Permission(nil), auth.DefaultStaffPermissions...)
	}
	writeJSON(w, http.StatusCreated, s.users.Add(u))
}

type userPatchReq struct {
	Username    *string            `json:"username"`
	Password    *string            `json:"password"`
	Name        *string            `json:"name"`
	Email       *string            `json:"email"`
	Role        *auth.Role         `json:"role"`
	Avatar      *string            `json:"avatar"`
	Permissions *[]auth.Permission `json:"permissions"`
	Active      *bool              `json:"active"`
	Phone       *string            `json:"phone"`
	Position    *string            `json:"position"`
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req userPatchReq
	if !readJSON(w, r, &req) {
		return
	}
	s.users.Update(chi.URLParam(r, "id"), auth.UserPatch{
		Username: req.Username, Password: req.Password, Name: req.Name, Email: req.Email,
		Role: req.Role, Avatar: req.Avatar, Permissions: req.Permissions,
		Active: req.Active, Phone: req.Phone, Position: req.Position,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	// Admins cannot delete themselves; that would lock the team view.
	if sess := sessionFrom(r); sess != nil && sess.ID == id {
		writeError(w, http.StatusConflict, "eigenes Konto kann nicht gelöscht werden")
		return
	}
	s.users.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePermissions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"permissions": auth.AllPermissions,
		"groups":      auth.PermissionGroups(),
	})
}
