package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ce-es/dashboard/internal/domain"
)

// ManagedUser is a full user record as the team view manages it.
// Passwords are plain text, matching the reference dataset; this runs on
// a trusted single-tenant box behind the office VPN.
type ManagedUser struct {
	ID          string       `json:"id"`
	Username    string       `json:"username"`
	Password    string       `json:"password"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        Role         `json:"role"`
	Avatar      string       `json:"avatar"`
	Permissions []Permission `json:"permissions"`
	Active      bool         `json:"active"`
	CreatedAt   string       `json:"createdAt"`
	LastLogin   string       `json:"lastLogin,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Position    string       `json:"position,omitempty"`
}

// Session is the authenticated identity handed back on login. It never
// carries the password.
type Session struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        Role         `json:"role"`
	Avatar      string       `json:"avatar"`
	Permissions []Permission `json:"permissions"`
}

// HasPermission reports whether the session may use the capability.
// Admins pass for everything.
func (s *Session) HasPermission(p Permission) bool {
	if s == nil {
		return false
	}
	if s.Role == RoleAdmin {
		return true
	}
	for _, have := range s.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// Registry is the runtime-mutable user database.
type Registry struct {
	mu    sync.Mutex
	users []ManagedUser
	now   func() time.Time
}

// NewRegistry builds a registry preloaded with the given users.
func NewRegistry(users []ManagedUser) *Registry {
	r := &Registry{now: time.Now}
	r.users = append(r.users, users...)
	return r
}

// SetNow overrides the timestamp source for login and creation stamps.
func (r *Registry) SetNow(fn func() time.Time) { r.now = fn }

// SeedUsers is the initial user database of the practice.
func SeedUsers() []ManagedUser {
	admin := AdminPermissions()
	return []ManagedUser{
		{ID: "u1", Username: "admin", Password: "admin", Name: "Holger Schäfer", Email: "hs@ce-es.de",
			Role: RoleAdmin, Avatar: "HS", Permissions: admin, Active: true, CreatedAt: "2024-01-15",
			LastLogin: "2025-02-05T08:12:00", Phone: "+49 7133 1200-950", Position: "Geschäftsführer"},
		{ID: "u2", Username: "holger", Password: "cees2025", Name: "Holger Schäfer", Email: "hs@ce-es.de",
			Role: RoleAdmin, Avatar: "HS", Permissions: admin, Active: true, CreatedAt: "2024-01-15",
			Phone: "+49 7133 1200-950", Position: "Geschäftsführer"},
		{ID: "u7", Username: "marcel", Password: "admin123", Name: "Marcel", Email: "marcel@ce-es.de",
			Role: RoleAdmin, Avatar: "MA", Permissions: admin, Active: true, CreatedAt: "2025-02-05",
			Position: "IT-Administrator"},
		{ID: "u3", Username: "christine", Password: "cees2025", Name: "Christine Schäfer", Email: "cs@ce-es.de",
			Role: RoleStaff, Avatar: "CS", Permissions: DefaultStaffPermissions, Active: true, CreatedAt: "2024-03-01",
			LastLogin: "2025-02-04T16:45:00", Phone: "+49 7133 1200-951", Position: "Beraterin"},
		{ID: "u4", Username: "mitarbeiter", Password: "mitarbeiter", Name: "Christine Schäfer", Email: "cs@ce-es.de",
			Role: RoleStaff, Avatar: "CS", Permissions: DefaultStaffPermissions, Active: true, CreatedAt: "2024-03-01",
			Position: "Beraterin"},
		{ID: "u5", Username: "thomas", Password: "cees2025", Name: "Thomas Weber", Email: "tw@ce-es.de",
			Role: RoleStaff, Avatar: "TW",
			Permissions: []Permission{PermClients, PermCreditors, PermCalendar, PermScanner, PermAI},
			Active:      true, CreatedAt: "2024-06-15", LastLogin: "2025-02-03T09:30:00",
			Phone: "+49 7133 1200-952", Position: "Sachbearbeiter"},
		{ID: "u6", Username: "maria", Password: "cees2025", Name: "Maria Hoffmann", Email: "mh@ce-es.de",
			Role: RoleStaff, Avatar: "MH",
			Permissions: []Permission{PermClients, PermCalendar, PermFiles, PermInvoices},
			Active:      false, CreatedAt: "2024-09-01", Position: "Assistenz (Elternzeit)"},
	}
}

// Authenticate checks credentials and returns a session. The username
// match is case-insensitive, the password match is exact, and disabled
// accounts are rejected with a distinct error so the UI can say why. A
// successful login stamps lastLogin on the stored record.
func (r *Registry) Authenticate(username, password string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		u := &r.users[i]
		if !strings.EqualFold(u.Username, username) || u.Password != password {
			continue
		}
		if !u.Active {
			return nil, domain.ErrUserDisabled
		}
		u.LastLogin = r.now().Format("2006-01-02T15:04:05")
		perms := u.Permissions
		if u.Role == RoleAdmin {
			perms = AdminPermissions()
		}
		return &Session{
			ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Avatar: u.Avatar,
			Permissions: append([]Permission(nil), perms...),
		}, nil
	}
	return nil, domain.ErrBadCredentials
}

// Users returns all records in insertion order.
func (r *Registry) Users() []ManagedUser {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ManagedUser(nil), r.users...)
}

// UniqueUsers deduplicates the directory by email and role, preferring
// the record with the longer username. The seed data carries alias
// logins (admin/holger, mitarbeiter/christine) for the same person.
func (r *Registry) UniqueUsers() []ManagedUser {
	r.mu.Lock()
	defer r.mu.Unlock()
	type key struct {
		email string
		role  Role
	}
	index := make(map[key]int)
	var out []ManagedUser
	for _, u := range r.users {
		k := key{u.Email, u.Role}
		if i, ok := index[k]; ok {
			if len(u.Username) > len(out[i].Username) {
				out[i] = u
			}
			continue
		}
		index[k] = len(out)
		out = append(out, u)
	}
	return out
}

// Add stores a new user with a generated id and today's creation date.
func (r *Registry) Add(u ManagedUser) ManagedUser {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = "u-" + uuid.NewString()
	u.CreatedAt = r.now().Format(time.DateOnly)
	r.users = append(r.users, u)
	return u
}

// UserPatch is a partial update for a managed user.
type UserPatch struct {
	Username    *string
	Password    *string
	Name        *string
	Email       *string
	Role        *Role
	Avatar      *string
	Permissions *[]Permission
	Active      *bool
	Phone       *string
	Position    *string
}

// Update merges the patch into the user. Unknown ids are ignored.
func (r *Registry) Update(id string, p UserPatch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		u := &r.users[i]
		if p.Username != nil {
			u.Username = *p.Username
		}
		if p.Password != nil {
			u.Password = *p.Password
		}
		if p.Name != nil {
			u.Name = *p.Name
		}
		if p.Email != nil {
			u.Email = *p.Email
		}
		if p.Role != nil {
			u.Role = *p.Role
		}
		if p.Avatar != nil {
			u.Avatar = *p.Avatar
		}
		if p.Permissions != nil {
			u.Permissions = append([]Permission(nil), (*p.Permissions)...)
		}
		if p.Active != nil {
			u.Active = *p.Active
		}
		if p.Phone != nil {
			u.Phone = *p.Phone
		}
		if p.Position != nil {
			u.Position = *p.Position
		}
		return
	}
}

// Delete removes the user. Deleting a missing id is a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.users[:0]
	for _, u := range r.users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	r.users = out
}
