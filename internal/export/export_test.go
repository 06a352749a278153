package export

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ce-es/dashboard/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBankStatement(t *testing.T) {
	acct := domain.BankAccount{IBAN: "DE89 6205 0000 0001 2345 78"}
	txs := []domain.BankTransaction{
		{Date: "2025-02-05", Contra: "Weber & Söhne KG", Reference: "RE-2025-001", Amount: dec("850"), Balance: dec("48250.30"), Kind: domain.TxInflow},
		{Date: "2025-02-04", Contra: "Vermieter GmbH", Reference: "Miete Februar", Amount: dec("-1850"), Balance: dec("47400.30"), Kind: domain.TxOutflow},
	}
	got := BankStatement(acct, txs, "2025-02-05")

	if got.Filename != "Kontoauszug_DE89620500000001234578_2025-02-05.csv" {
		t.Errorf("Filename = %q", got.Filename)
	}
	if !strings.HasPrefix(got.CSV, "\uFEFF") {
		t.Error("CSV missing UTF-8 BOM")
	}
	lines := strings.Split(strings.TrimPrefix(got.CSV, "\uFEFF"), "\n")
	if lines[0] != "Datum;Gegenkonto;Verwendungszweck;Betrag;Saldo;Typ" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2025-02-05;Weber & Söhne KG;RE-2025-001;850,00;48250,30;eingang" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "2025-02-04;Vermieter GmbH;Miete Februar;-1850,00;47400,30;ausgang" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestDatevJournal(t *testing.T) {
	entries := []domain.DatevEntry{
		{ID: "BU-2025-0141", Date: "2025-02-05", DebitAcct: "1200", CreditAcct: "8400",
			Amount: dec("850"), Text: "Erlöse Beratung", ReceiptNo: "RE-2025-001", Status: domain.BookingPosted},
	}
	got := DatevJournal(entries, "2025-02-05")

	if got.Filename != "DATEV_Export_2025-02-05.csv" {
		t.Errorf("Filename = %q", got.Filename)
	}
	lines := strings.Split(strings.TrimPrefix(got.CSV, "\uFEFF"), "\n")
	if lines[0] != "Buchungs-Nr.;Datum;Konto Soll;Konto Haben;Betrag;Buchungstext;Beleg-Nr.;Status" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "BU-2025-0141;2025-02-05;1200;8400;850,00;Erlöse Beratung;RE-2025-001;gebucht" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestLexwareSyncLog(t *testing.T) {
	entries := []domain.SyncLogEntry{
		{ID: "LS-001", Kind: "Rechnungen", Direction: domain.SyncExport, Timestamp: "2025-02-05T08:20:00",
			Status: domain.SyncOK, Details: "9 Rechnungen exportiert", Count: 9},
	}
	got := LexwareSyncLog(entries, "2025-02-05")

	if got.Filename != "Lexware_Sync_Log_2025-02-05.csv" {
		t.Errorf("Filename = %q", got.Filename)
	}
	lines := strings.Split(strings.TrimPrefix(got.CSV, "\uFEFF"), "\n")
	if lines[0] != "ID;Typ;Richtung;Datum;Status;Details;Anzahl" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "LS-001;Rechnungen;export;2025-02-05T08:20:00;ok;9 Rechnungen exportiert;9" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestAuditLog(t *testing.T) {
	events := []domain.AuditEvent{
		{ID: "AU-001", Timestamp: "2025-02-05T08:22:00", User: "H. Schäfer", Action: "Login",
			Details: "Erfolgreiche Anmeldung via 2FA (Büro-PC)", Risk: domain.RiskLow},
	}
	got := AuditLog(events, "2025-02-05")

	if got.Filename != "Audit_Log_2025-02-05.csv" {
		t.Errorf("Filename = %q", got.Filename)
	}
	lines := strings.Split(strings.TrimPrefix(got.CSV, "\uFEFF"), "\n")
	if lines[0] != "ID;Zeitpunkt;Benutzer;Aktion;Details;Risiko" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "AU-001;2025-02-05T08:22:00;H. Schäfer;Login;Erfolgreiche Anmeldung via 2FA (Büro-PC);niedrig" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestEmptyExportIsHeaderOnly(t *testing.T) {
	got := DatevJournal(nil, "2025-02-05")
	want := "\uFEFFBuchungs-Nr.;Datum;Konto Soll;Konto Haben;Betrag;Buchungstext;Beleg-Nr.;Status"
	if got.CSV != want {
		t.Errorf("CSV = %q, want header only", got.CSV)
	}
}
