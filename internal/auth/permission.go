// Package auth holds the user registry and the permission model: a
// closed set of permission ids, their grouped display metadata and the
// route-to-permission mapping the API enforces.
package auth

import (
	"fmt"

	"github.com/ce-es/dashboard/internal/domain"
)

// Role separates administrators from regular staff. Admins implicitly
// hold every permission.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "mitarbeiter"
)

// Permission is one grantable capability. The set is closed; there is no
// way to mint permissions at runtime.
type Permission string

const (
	PermClients   Permission = "clients"
	PermCreditors Permission = "creditors"
	PermCalendar  Permission = "calendar"
	PermFiles     Permission = "files"
	PermScanner   Permission = "scanner"
	PermInvoices  Permission = "invoices"
	PermBank      Permission = "bank"
	PermDatev     Permission = "datev"
	PermLexware   Permission = "lexware"
	PermSecurity  Permission = "security"
	PermTeam      Permission = "team"
	PermAI        Permission = "ai"
)

// PermissionInfo is the display metadata for one permission.
type PermissionInfo struct {
	ID          Permission `json:"id"`
	Label       string     `json:"label"`
	Group       string     `json:"group"`
	Description string     `json:"description"`
}

// AllPermissions lists every permission in display order.
var AllPermissions = []PermissionInfo{
	{ID: PermClients, Label: "Klienten", Group: "Beratung", Description: "Klienten anlegen, bearbeiten, einsehen"},
	{ID: PermCreditors, Label: "Gläubiger", Group: "Beratung", Description: "Gläubiger-Management und Verhandlungen"},
	{ID: PermCalendar, Label: "Termine", Group: "Beratung", Description: "Terminkalender und Planung"},
	{ID: PermFiles, Label: "Akten", Group: "Beratung", Description: "Dokumentenablage und Aktenführung"},
	{ID: PermScanner, Label: "Scanner", Group: "Beratung", Description: "Dokumente scannen und OCR"},
	{ID: PermInvoices, Label: "Rechnungen", Group: "Finanzen", Description: "Rechnungen und Angebote verwalten"},
	{ID: PermBank, Label: "Bankkonto", Group: "Finanzen", Description: "Kontostände und Transaktionen"},
	{ID: PermDatev, Label: "DATEV", Group: "Schnittstellen", Description: "DATEV Unternehmen online"},
	{ID: PermLexware, Label: "Lexware", Group: "Schnittstellen", Description: "Lexware Buchhaltung"},
	{ID: PermSecurity, Label: "Datenschutz", Group: "System", Description: "DSGVO, Sicherheit, Protokolle"},
	{ID: PermTeam, Label: "Benutzerverwaltung", Group: "System", Description: "Mitarbeiter anlegen und verwalten"},
	{ID: PermAI, Label: "KI-Assistent", Group: "System", Description: "KI-Assistent nutzen"},
}

// PermissionGroups returns the group names in first-appearance order.
func PermissionGroups() []string {
	var groups []string
	seen := make(map[string]bool)
	for _, p := range AllPermissions {
		if !seen[p.Group] {
			seen[p.Group] = true
			groups = append(groups, p.Group)
		}
	}
	return groups
}

// AdminPermissions is the full set, granted to every admin.
func AdminPermissions() []Permission {
	out := make([]Permission, len(AllPermissions))
	for i, p := range AllPermissions {
		out[i] = p.ID
	}
	return out
}

// DefaultStaffPermissions is the grant set for newly created staff.
var DefaultStaffPermissions = []Permission{
	PermClients, PermCreditors, PermCalendar, PermFiles, PermScanner, PermInvoices, PermAI,
}

// routePermissions maps every protected API resource segment to the
// permission it requires. Aggregate endpoints derive from creditor data
// and share that permission.
var routePermissions = map[string]Permission{
	"clients":      PermClients,
	"creditors":    PermCreditors,
	"progress":     PermCreditors,
	"deadlines":    PermCreditors,
	"pipeline":     PermCreditors,
	"portfolio":    PermCreditors,
	"successes":    PermCreditors,
	"appointments": PermCalendar,
	"files":        PermFiles,
	"scanner":      PermScanner,
	"invoices":     PermInvoices,
	"offers":       PermInvoices,
	"bank":         PermBank,
	"datev":        PermDatev,
	"lexware":      PermLexware,
	"audit":        PermSecurity,
	"security":     PermSecurity,
	"users":        PermTeam,
	"team":         PermTeam,
	"chat":         PermAI,
	"ai":           PermAI,
}

// RouteToPermission resolves a protected resource segment to its required
// permission. It is total over registered routes and fails loudly on
// anything else, so a new route cannot silently ship unprotected.
func RouteToPermission(resource string) (Permission, error) {
	p, ok := routePermissions[resource]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownRoute, resource)
	}
	return p, nil
}
