package seed

import (
	"github.com/shopspring/decimal"

	"github.com/ce-es/dashboard/internal/domain"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// Account returns the firm's demo bank account header.
func Account() domain.BankAccount {
	return domain.BankAccount{
		Bank:       "Sparkasse Heilbronn",
		IBAN:       "DE89 6205 0000 0012 3456 78",
		BIC:        "HEISDE66XXX",
		Holder:     "Ce-eS Management Consultant Schäfer & Schäfer GbR",
		Balance:    dec(24680.45),
		Available:  dec(22480.45),
		CreditLine: domain.D(15000),
	}
}

// BankTransactions returns the demo account statement, newest first.
func BankTransactions() []domain.BankTransaction {
	return []domain.BankTransaction{
		{ID: "BT-01", Date: "2025-02-04", Amount: domain.D(6200), Contra: "Fuchs Bau GmbH", Reference: "RE-2025-007 Interims-Management Feb", Balance: dec(24680.45), Kind: domain.TxInflow},
		{ID: "BT-02", Date: "2025-02-03", Amount: domain.D(-420), Contra: "Telekom Deutschland", Reference: "Rg. 8834567 Internet+Telefon Feb", Balance: dec(18480.45), Kind: domain.TxOutflow},
		{ID: "BT-03", Date: "2025-02-01", Amount: domain.D(-2200), Contra: "Zukunftspark Verwaltung", Reference: "Büromiete Februar 2025", Balance: dec(18900.45), Kind: domain.TxOutflow},
		{ID: "BT-04", Date: "2025-01-30", Amount: domain.D(980), Contra: "Claudia Mayer", Reference: "RE-2025-008 Schuldnerberatung", Balance: dec(21100.45), Kind: domain.TxInflow},
		{ID: "BT-05", Date: "2025-01-28", Amount: dec(-185.50), Contra: "HUK-COBURG", Reference: "Berufshaftpflicht Jan 2025", Balance: dec(20120.45), Kind: domain.TxOutflow},
		{ID: "BT-06", Date: "2025-01-25", Amount: domain.D(-8500), Contra: "Gehaltskonto", Reference: "Gehälter Januar 2025", Balance: dec(20305.95), Kind: domain.TxOutflow},
		{ID: "BT-07", Date: "2025-01-22", Amount: domain.D(1200), Contra: "Sandra Becker", Reference: "RE-2025-002 Schuldnerberatung", Balance: dec(28805.95), Kind: domain.TxInflow},
		{ID: "BT-08", Date: "2025-01-20", Amount: domain.D(-340), Contra: "DATEV eG", Reference: "DATEV Unternehmen online Jan", Balance: dec(27605.95), Kind: domain.TxOutflow},
		{ID: "BT-09", Date: "2025-01-15", Amount: domain.D(5200), Contra: "Schwarz IT Solutions", Reference: "RE-2024-048 Marketingstrategie", Balance: dec(27945.95), Kind: domain.TxInflow},
		{ID: "BT-10", Date: "2025-01-10", Amount: domain.D(-890), Contra: "Amazon Business", Reference: "Büromaterial + Technik", Balance: dec(22745.95), Kind: domain.TxOutflow},
		{ID: "BT-11", Date: "2025-01-05", Amount: domain.D(-2200), Contra: "Zukunftspark Verwaltung", Reference: "Büromiete Januar 2025", Balance: dec(23635.95), Kind: domain.TxOutflow},
		{ID: "BT-12", Date: "2025-01-03", Amount: domain.D(8400), Contra: "Thomas Müller / MM GmbH", Reference: "AN-2025-002 Anzahlung Interims-Mgmt", Balance: dec(25835.95), Kind: domain.TxInflow},
	}
}

// DatevEntries returns the demo DATEV journal mirror.
func DatevEntries() []domain.DatevEntry {
	return []domain.DatevEntry{
		{ID: "BU-2025-001", Date: "2025-02-04", DebitAcct: "1200 Forderungen", CreditAcct: "8400 Erlöse", Amount: domain.D(6200), Text: "RE-2025-007 Interims-Mgmt Fuchs Bau", ReceiptNo: "RE-2025-007", Status: domain.BookingPosted},
		{ID: "BU-2025-002", Date: "2025-02-03", DebitAcct: "1200 Forderungen", CreditAcct: "8400 Erlöse", Amount: domain.D(850), Text: "RE-2025-006 Schuldnerberatung Richter", ReceiptNo: "RE-2025-006", Status: domain.BookingOpen},
		{ID: "BU-2025-003", Date: "2025-02-01", DebitAcct: "1200 Forderungen", CreditAcct: "8400 Erlöse", Amount: domain.D(2800), Text: "RE-2025-005 Insolvenzberatung Klein", ReceiptNo: "RE-2025-005", Status: domain.BookingPosted},
		{ID: "BU-2025-004", Date: "2025-01-30", DebitAcct: "1800 Bank", CreditAcct: "1200 Forderungen", Amount: domain.D(980), Text: "Zahlungseingang Mayer RE-2025-008", ReceiptNo: "BK-0130", Status: domain.BookingPosted},
		{ID: "BU-2025-005", Date: "2025-01-28", DebitAcct: "1200 Forderungen", CreditAcct: "8400 Erlöse", Amount: domain.D(3600), Text: "RE-2025-004 Insolvenzberatung Weber", ReceiptNo: "RE-2025-004", Status: domain.BookingFaulty},
		{ID: "BU-2025-006", Date: "2025-01-25", DebitAcct: "1200 Forderungen", CreditAcct: "8400 Erlöse", Amount: domain.D(2400), Text: "RE-2025-003 Gründungsberatung Hoffmann", ReceiptNo: "RE-2025-003", Status: domain.BookingPosted},
		{ID: "BU-2025-007", Date: "2025-01-20", DebitAcct: "1800 Bank", CreditAcct: "1200 Forderungen", Amount: domain.D(1200), Text: "Zahlungseingang Becker RE-2025-002", ReceiptNo: "BK-0120", Status: domain.BookingPosted},
		{ID: "BU-2025-008", Date: "2025-01-15", DebitAcct: "1200 Forderungen", CreditAcct: "8400 Erlöse", Amount: domain.D(4800), Text: "RE-2025-001 Krisenmanagement Müller", ReceiptNo: "RE-2025-001", Status: domain.BookingPosted},
		{ID: "BU-2025-009", Date: "2025-01-10", DebitAcct: "4100 Gehälter", CreditAcct: "1800 Bank", Amount: domain.D(8500), Text: "Gehaltszahlung Januar 2025", ReceiptNo: "GH-0110", Status: domain.BookingPosted},
		{ID: "BU-2025-010", Date: "2025-01-05", DebitAcct: "4210 Miete", CreditAcct: "1800 Bank", Amount: domain.D(2200), Text: "Büromiete Im Zukunftspark 4, Jan 2025", ReceiptNo: "MI-0105", Status: domain.BookingPosted},
		{ID: "BU-2024-098", Date: "2024-12-20", DebitAcct: "1800 Bank", CreditAcct: "1200 Forderungen", Amount: domain.D(5200), Text: "Zahlungseingang Schwarz IT RE-2024-048", ReceiptNo: "BK-1220", Status: domain.BookingPosted},
		{ID: "BU-2024-097", Date: "2024-12-15", DebitAcct: "4900 Sonstige", CreditAcct: "1800 Bank", Amount: domain.D(1800), Text: "Versicherungen Q4/2024", ReceiptNo: "VS-1215", Status: domain.BookingPosted},
	}
}

// SyncLog returns the demo Lexware sync protocol.
func SyncLog() []domain.SyncLogEntry {
	return []domain.SyncLogEntry{
		{ID: "LS-001", Kind: "Rechnungen", Direction: domain.SyncExport, Timestamp: "2025-02-05T08:20:00", Status: domain.SyncOK, Details: "9 Rechnungen exportiert nach Lexware faktura+auftrag", Count: 9},
		{ID: "LS-002", Kind: "Kundenstamm", Direction: domain.SyncExport, Timestamp: "2025-02-05T08:20:00", Status: domain.SyncOK, Details: "10 Kunden synchronisiert", Count: 10},
		{ID: "LS-003", Kind: "Angebote", Direction: domain.SyncExport, Timestamp: "2025-02-05T08:20:00", Status: domain.SyncWarning, Details: "5 von 6 Angeboten exportiert – AN-2025-003 (Entwurf) übersprungen", Count: 5},
		{ID: "LS-004", Kind: "Zahlungen", Direction: domain.SyncImport, Timestamp: "2025-02-04T19:00:00", Status: domain.SyncOK, Details: "3 Zahlungseingänge importiert aus Lexware", Count: 3},
		{ID: "LS-005", Kind: "Artikel/Leistungen", Direction: domain.SyncExport, Timestamp: "2025-02-04T08:15:00", Status: domain.SyncOK, Details: "Leistungskatalog aktualisiert (12 Positionen)", Count: 12},
		{ID: "LS-006", Kind: "Rechnungen", Direction: domain.SyncExport, Timestamp: "2025-02-04T08:15:00", Status: domain.SyncFailed, Details: "RE-2025-004 – USt-Satz Konflikt (19% vs. 0% Insolvenzberatung)", Count: 0},
		{ID: "LS-007", Kind: "Mahnwesen", Direction: domain.SyncImport, Timestamp: "2025-02-03T19:00:00", Status: domain.SyncOK, Details: "1 Mahnstufe importiert (RE-2025-004, Stufe 2)", Count: 1},
		{ID: "LS-008", Kind: "Kundenstamm", Direction: domain.SyncImport, Timestamp: "2025-02-03T08:15:00", Status: domain.SyncOK, Details: "Adressänderung Braun importiert", Count: 1},
	}
}

// AuditLog returns the demo audit trail, newest first.
func AuditLog() []domain.AuditEvent {
	return []domain.AuditEvent{
		{ID: "AU-001", Timestamp: "2025-02-05T08:22:00", User: "H. Schäfer", Action: "Login", Details: "Erfolgreiche Anmeldung via 2FA (Büro-PC)", Risk: domain.RiskLow},
		{ID: "AU-002", Timestamp: "2025-02-05T08:20:00", User: "System", Action: "Lexware-Sync", Details: "Automatische Synchronisation – 9 Rechnungen, 10 Kunden", Risk: domain.RiskLow},
		{ID: "AU-003", Timestamp: "2025-02-05T08:15:00", User: "System", Action: "DATEV-Sync", Details: "Buchungsdaten exportiert (12 Einträge)", Risk: domain.RiskLow},
		{ID: "AU-004", Timestamp: "2025-02-04T17:45:00", User: "H. Schäfer", Action: "Klient bearbeitet", Details: "Weber & Söhne KG – Notiz aktualisiert", Risk: domain.RiskLow},
		{ID: "AU-005", Timestamp: "2025-02-04T16:30:00", User: "C. Schäfer", Action: "Dokument hochgeladen", Details: "Sanierungskonzept_v3.pdf → Akte Weber & Söhne", Risk: domain.RiskLow},
		{ID: "AU-006", Timestamp: "2025-02-04T14:00:00", User: "H. Schäfer", Action: "Rechnung erstellt", Details: "RE-2025-007 – Fuchs Bau GmbH – 6.200 €", Risk: domain.RiskLow},
		{ID: "AU-007", Timestamp: "2025-02-04T10:30:00", User: "System", Action: "Backup", Details: "Vollbackup erfolgreich (verschlüsselt, 2.4 GB)", Risk: domain.RiskLow},
		{ID: "AU-008", Timestamp: "2025-02-03T21:15:00", User: "System", Action: "Fehlgeschlagener Login", Details: "3 fehlgeschlagene Versuche von IP 192.168.1.105 – Account gesperrt (30 Min)", Risk: domain.RiskHigh},
		{ID: "AU-009", Timestamp: "2025-02-03T18:00:00", User: "System", Action: "Daten-Export", Details: "Klient Schwarz – Projektdaten archiviert und exportiert", Risk: domain.RiskMedium},
		{ID: "AU-010", Timestamp: "2025-02-03T09:00:00", User: "H. Schäfer", Action: "Bankdaten eingesehen", Details: "IBAN angezeigt – Zugriff protokolliert", Risk: domain.RiskMedium},
	}
}
