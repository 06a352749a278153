// Package domain contains pure business types with ZERO infrastructure imports.
// This is the innermost ring of the application — it depends on nothing but
// the decimal money type.
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Dates are carried as ISO strings (YYYY-MM-DD) throughout the domain.
// That is the wire and CSV format of every record, and ISO dates sort
// lexicographically, so list ordering needs no parsing.

// ─── Client Types ───────────────────────────────────────────────────────────

// ClientStatus is the lifecycle state of a client engagement.
type ClientStatus string

const (
	ClientActive   ClientStatus = "aktiv"
	ClientCritical ClientStatus = "kritisch"
	ClientClosed   ClientStatus = "abgeschlossen"
)

// ConsultationType classifies the kind of engagement a client has booked.
type ConsultationType string

const (
	ConsultManagement ConsultationType = "Managementberatung"
	ConsultDebt       ConsultationType = "Schuldnerberatung"
	ConsultInsolvency ConsultationType = "Insolvenzberatung"
	ConsultCoaching   ConsultationType = "Coaching"
)

// Client is a consultancy client record.
type Client struct {
	ID      int              `json:"id"`
	Name    string           `json:"name"`
	Company string           `json:"company,omitempty"`
	Type    ConsultationType `json:"type"`
	Subtype string           `json:"subtype,omitempty"`
	Phone   string           `json:"phone,omitempty"`
	Email   string           `json:"email,omitempty"`
	Address string           `json:"address,omitempty"`
	Status  ClientStatus     `json:"status"`
	// Debt is the client's total debt figure, nil for clients without
	// an active debt case (management/coaching engagements).
	Debt    *decimal.Decimal `json:"schulden,omitempty"`
	Created string           `json:"created"`
	Notes   string           `json:"notes,omitempty"`
}

// ─── Appointment Types ──────────────────────────────────────────────────────

// Priority orders appointments in the day view.
type Priority string

const (
	PriorityHigh   Priority = "hoch"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "niedrig"
)

// Appointment is a calendar entry linked to a client.
type Appointment struct {
	ID       int              `json:"id"`
	ClientID int              `json:"clientId"`
	Title    string           `json:"title"`
	Date     string           `json:"date"`
	Time     string           `json:"time"`
	Duration int              `json:"duration"` // minutes
	Type     ConsultationType `json:"type"`
	Location string           `json:"location,omitempty"`
	Priority Priority         `json:"priority"`
}

// ─── Invoice / Offer Types ──────────────────────────────────────────────────

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceOpen      InvoiceStatus = "offen"
	InvoicePaid      InvoiceStatus = "bezahlt"
	InvoiceOverdue   InvoiceStatus = "überfällig"
	InvoiceDraft     InvoiceStatus = "entwurf"
	InvoiceCancelled InvoiceStatus = "storniert"
)

// OfferStatus is the lifecycle state of a quote.
type OfferStatus string

const (
	OfferSent     OfferStatus = "versendet"
	OfferAccepted OfferStatus = "angenommen"
	OfferDraft    OfferStatus = "entwurf"
	OfferRejected OfferStatus = "abgelehnt"
	OfferOpen     OfferStatus = "offen"
	OfferExpired  OfferStatus = "abgelaufen"
)

// Invoice is an outgoing invoice. IDs follow the RE-<year>-<seq> scheme.
type Invoice struct {
	ID          string          `json:"id"`
	ClientID    int             `json:"clientId"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Due         string          `json:"due"`
	Status      InvoiceStatus   `json:"status"`
	Description string          `json:"description,omitempty"`
}

// Offer is a quote sent to a client. IDs follow the AN-<year>-<seq> scheme.
type Offer struct {
	ID          string          `json:"id"`
	ClientID    int             `json:"clientId"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	ValidUntil  string          `json:"validUntil"`
	Status      OfferStatus     `json:"status"`
	Description string          `json:"description,omitempty"`
}

// ─── Case File / Document Types ─────────────────────────────────────────────

// DocType is the closed set of document kinds a case file may hold.
type DocType string

const (
	DocPDF   DocType = "pdf"
	DocWord  DocType = "docx"
	DocExcel DocType = "xlsx"
	DocEmail DocType = "email"
	DocScan  DocType = "scan"
	DocNote  DocType = "note"
)

// Document is a file inside a case file. Binary content, when present,
// is base64-encoded inline; there is no external blob store.
type Document struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     DocType `json:"type"`
	Size     string  `json:"size"` // display string, e.g. "2.4 MB"
	Date     string  `json:"date"`
	Preview  string  `json:"preview,omitempty"`
	FileData string  `json:"fileData,omitempty"` // base64
	MimeType string  `json:"mimeType,omitempty"`
}

// CaseFile groups documents for one client matter.
type CaseFile struct {
	ID         int              `json:"id"`
	ClientID   int              `json:"clientId"`
	Name       string           `json:"name"`
	Docs       []Document       `json:"docs"`
	LastUpdate string           `json:"lastUpdate"`
	Category   ConsultationType `json:"category"`
	Urgent     bool             `json:"urgent"`
}

// DocTypeForExtension maps an upload file extension (without dot, lower
// case) to the document taxonomy. Unknown extensions fall back to note.
func DocTypeForExtension(ext string) DocType {
	switch ext {
	case "pdf":
		return DocPDF
	case "doc", "docx":
		return DocWord
	case "xls", "xlsx", "csv":
		return DocExcel
	case "msg", "eml":
		return DocEmail
	case "jpg", "jpeg", "png", "gif", "webp":
		return DocScan
	default:
		return DocNote
	}
}

// ─── Money Helpers ──────────────────────────────────────────────────────────

// D builds a decimal from an integer euro amount. Seed data helper.
func D(euros int64) decimal.Decimal { return decimal.NewFromInt(euros) }

// DP points at a decimal built from an integer euro amount.
func DP(euros int64) *decimal.Decimal {
	d := decimal.NewFromInt(euros)
	return &d
}

// FormatEUR renders an amount the way the dashboard displays money:
// dot thousands separator, decimal comma, trailing € sign.
func FormatEUR(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)
	intPart := s[:len(s)-3]
	frac := s[len(s)-2:]
	var grouped []byte
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, intPart[i])
	}
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%s,%s €", sign, grouped, frac)
}
