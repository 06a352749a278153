// Package export renders the CSV downloads. The format is fixed by the
// downstream consumers (Excel with German locale settings, DATEV
// import): semicolon separator, UTF-8 BOM so Excel detects the
// encoding, amounts with a decimal comma and two places.
package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ce-es/dashboard/internal/domain"
)

// bom is prepended to every file; without it Excel mangles umlauts.
const bom = "\uFEFF"

// Report is one rendered download.
type Report struct {
	Filename string
	CSV      string
}

// amount renders a decimal with two places and a decimal comma.
func amount(d decimal.Decimal) string {
	return strings.ReplaceAll(d.StringFixed(2), ".", ",")
}

func buildCSV(header string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(bom)
	b.WriteString(header)
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(strings.Join(row, ";"))
	}
	return b.String()
}

// BankStatement renders the account statement export. The date goes
// into the filename, not the content.
func BankStatement(acct domain.BankAccount, txs []domain.BankTransaction, isoDate string) Report {
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []string{
			t.Date, t.Contra, t.Reference, amount(t.Amount), amount(t.Balance), string(t.Kind),
		})
	}
	return Report{
		Filename: fmt.Sprintf("Kontoauszug_%s_%s.csv", strings.ReplaceAll(acct.IBAN, " ", ""), isoDate),
		CSV:      buildCSV("Datum;Gegenkonto;Verwendungszweck;Betrag;Saldo;Typ", rows),
	}
}

// DatevJournal renders the DATEV booking export.
func DatevJournal(entries []domain.DatevEntry, isoDate string) Report {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID, e.Date, e.DebitAcct, e.CreditAcct, amount(e.Amount), e.Text, e.ReceiptNo, string(e.Status),
		})
	}
	return Report{
		Filename: fmt.Sprintf("DATEV_Export_%s.csv", isoDate),
		CSV:      buildCSV("Buchungs-Nr.;Datum;Konto Soll;Konto Haben;Betrag;Buchungstext;Beleg-Nr.;Status", rows),
	}
}

// LexwareSyncLog renders the sync protocol export.
func LexwareSyncLog(entries []domain.SyncLogEntry, isoDate string) Report {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID, e.Kind, string(e.Direction), e.Timestamp, string(e.Status), e.Details, fmt.Sprint(e.Count),
		})
	}
	return Report{
		Filename: fmt.Sprintf("Lexware_Sync_Log_%s.csv", isoDate),
		CSV:      buildCSV("ID;Typ;Richtung;Datum;Status;Details;Anzahl", rows),
	}
}

// AuditLog renders the audit protocol export.
func AuditLog(events []domain.AuditEvent, isoDate string) Report {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.ID, e.Timestamp, e.User, e.Action, e.Details, string(e.Risk),
		})
	}
	return Report{
		Filename: fmt.Sprintf("Audit_Log_%s.csv", isoDate),
		CSV:      buildCSV("ID;Zeitpunkt;Benutzer;Aktion;Details;Risiko", rows),
	}
}
