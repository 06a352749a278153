package domain

import "github.com/shopspring/decimal"

// ─── Bookkeeping Sync Types ─────────────────────────────────────────────────
// The DATEV/Lexware/bank views are sync mirrors of external systems. The
// records here are display data, not a real integration.

// BankAccount is the firm's business account header.
type BankAccount struct {
	Bank        string          `json:"bank"`
	IBAN        string          `json:"iban"`
	BIC         string          `json:"bic"`
	Holder      string          `json:"inhaber"`
	Balance     decimal.Decimal `json:"kontostand"`
	Available   decimal.Decimal `json:"verfuegbar"`
	CreditLine  decimal.Decimal `json:"kreditlinie"`
}

// TransactionKind is the direction of a bank transaction.
type TransactionKind string

const (
	TxInflow  TransactionKind = "eingang"
	TxOutflow TransactionKind = "ausgang"
)

// BankTransaction is one account statement row.
type BankTransaction struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"betrag"`
	Contra    string          `json:"gegenkonto"`
	Reference string          `json:"verwendungszweck"`
	Balance   decimal.Decimal `json:"saldo"`
	Kind      TransactionKind `json:"type"`
}

// BookingStatus is the posting state of a DATEV journal entry.
type BookingStatus string

const (
	BookingPosted BookingStatus = "gebucht"
	BookingOpen   BookingStatus = "offen"
	BookingFaulty BookingStatus = "fehlerhaft"
)

// DatevEntry is one row of the DATEV journal mirror.
type DatevEntry struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	DebitAcct   string          `json:"kontoSoll"`
	CreditAcct  string          `json:"kontoHaben"`
	Amount      decimal.Decimal `json:"betrag"`
	Text        string          `json:"buchungstext"`
	ReceiptNo   string          `json:"belegnr"`
	Status      BookingStatus   `json:"status"`
}

// SyncDirection marks whether a sync run pushed or pulled data.
type SyncDirection string

const (
	SyncExport SyncDirection = "export"
	SyncImport SyncDirection = "import"
)

// SyncStatus is the outcome of one sync run.
type SyncStatus string

const (
	SyncOK      SyncStatus = "ok"
	SyncWarning SyncStatus = "warnung"
	SyncFailed  SyncStatus = "fehler"
)

// SyncLogEntry is one row of the Lexware sync protocol.
type SyncLogEntry struct {
	ID        string        `json:"id"`
	Kind      string        `json:"typ"`
	Direction SyncDirection `json:"richtung"`
	Timestamp string        `json:"datum"` // RFC 3339 without zone, as logged
	Status    SyncStatus    `json:"status"`
	Details   string        `json:"details"`
	Count     int           `json:"count"`
}

// ─── Audit Log ──────────────────────────────────────────────────────────────

// RiskLevel grades an audit event.
type RiskLevel string

const (
	RiskLow    RiskLevel = "niedrig"
	RiskMedium RiskLevel = "mittel"
	RiskHigh   RiskLevel = "hoch"
)

// AuditEvent is one append-only audit log row.
type AuditEvent struct {
	ID        string    `json:"id"`
	Timestamp string    `json:"datum"`
	User      string    `json:"user"`
	Action    string    `json:"aktion"`
	Details   string    `json:"details"`
	Risk      RiskLevel `json:"risiko"`
}
