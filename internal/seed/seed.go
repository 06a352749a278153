// Package seed holds the demo dataset the dashboard ships with. All
// deadlines and appointments are relative to the demo reference date so a
// consulting demo stays reproducible; production deployments replace the
// fixed clock, not this data.
package seed

import (
	"github.com/shopspring/decimal"

	"github.com/ce-es/dashboard/internal/domain"
)

// Today is the demo reference date. Deadline urgency and "today's
// appointments" are computed against it when the fixed clock is active.
const Today = "2025-02-05"

// Clients returns the demo client roster.
func Clients() []domain.Client {
	return []domain.Client{
		{ID: 1, Name: "Thomas Müller", Company: "Müller Maschinenbau GmbH", Type: domain.ConsultManagement, Subtype: "Krisenmanagement", Phone: "+49 7131 456789", Email: "t.mueller@mm-gmbh.de", Address: "Industriestr. 12, 74072 Heilbronn", Status: domain.ClientActive, Created: "2024-08-15", Notes: "Restrukturierung Produktion, wöchentliche Meetings. Kostensenkungsprogramm seit Q4/2024."},
		{ID: 2, Name: "Sandra Becker", Type: domain.ConsultDebt, Subtype: "Vergleichsverhandlung", Phone: "+49 7133 234567", Email: "s.becker@web.de", Address: "Gartenstr. 5, 74076 Heilbronn", Status: domain.ClientActive, Debt: domain.DP(34520), Created: "2024-11-03", Notes: "4 Gläubiger, Vergleich mit Sparkasse läuft. Ratenzahlungsplan wird erstellt."},
		{ID: 3, Name: "Markus Weber", Company: "Weber & Söhne KG", Type: domain.ConsultInsolvency, Subtype: "Insolvenzabwendung", Phone: "+49 7132 987654", Email: "m.weber@weber-soehne.de", Address: "Hauptstr. 88, 74081 Heilbronn", Status: domain.ClientCritical, Debt: domain.DP(185000), Created: "2024-06-20", Notes: "Drohende Insolvenz, Frist 28.02.2025 – Eilbedarf! Sanierungskonzept wird erarbeitet."},
		{ID: 4, Name: "Lisa Hoffmann", Company: "Hoffmann Consulting", Type: domain.ConsultManagement, Subtype: "Neugründung", Phone: "+49 176 34567890", Email: "lisa@hoffmann-consulting.de", Address: "Mozartstr. 3, 74074 Heilbronn", Status: domain.ClientActive, Created: "2025-01-10", Notes: "Businessplan-Erstellung, Fördermittelberatung. KfW-Antrag in Vorbereitung."},
		{ID: 5, Name: "Klaus Richter", Type: domain.ConsultDebt, Subtype: "Schuldenabbau", Phone: "+49 7133 111222", Email: "k.richter@gmx.de", Address: "Am Markt 7, 74078 Heilbronn", Status: domain.ClientActive, Debt: domain.DP(12800), Created: "2025-01-22", Notes: "3 Gläubiger, Ratenzahlung vereinbart. Monatliche Rate: 250 €."},
		{ID: 6, Name: "Anna Schwarz", Company: "Schwarz IT Solutions", Type: domain.ConsultManagement, Subtype: "Marketingstrategie", Phone: "+49 7131 556677", Email: "a.schwarz@schwarz-it.de", Address: "Technopark 5, 74076 Heilbronn", Status: domain.ClientClosed, Created: "2024-03-12", Notes: "Projekt erfolgreich abgeschlossen. Umsatzsteigerung von 22 % erreicht."},
		{ID: 7, Name: "Peter Klein", Company: "Klein Gastronomie GmbH", Type: domain.ConsultInsolvency, Subtype: "Insolvenzverschleppung", Phone: "+49 7133 445566", Email: "p.klein@klein-gastro.de", Address: "Bahnhofstr. 22, 74076 Heilbronn", Status: domain.ClientCritical, Debt: domain.DP(95000), Created: "2024-09-08", Notes: "Dringende Beratung wg. Haftungsrisiken. Anwalt eingeschaltet."},
		{ID: 8, Name: "Maria Braun", Type: domain.ConsultDebt, Subtype: "Vergleichsverhandlung", Phone: "+49 176 99887766", Email: "m.braun@outlook.de", Address: "Ringstr. 14, 74072 Heilbronn", Status: domain.ClientActive, Debt: domain.DP(8450), Created: "2025-02-01", Notes: "Erstberatung erfolgt, Schuldenaufstellung läuft."},
		{ID: 9, Name: "Stefan Fuchs", Company: "Fuchs Bau GmbH", Type: domain.ConsultManagement, Subtype: "Interims-Management", Phone: "+49 7131 778899", Email: "s.fuchs@fuchs-bau.de", Address: "Neckarstr. 45, 74072 Heilbronn", Status: domain.ClientActive, Created: "2024-12-01", Notes: "Interims-Geschäftsführung seit Dez 2024. Stabilisierung läuft."},
		{ID: 10, Name: "Claudia Mayer", Type: domain.ConsultDebt, Subtype: "Schuldenabbau", Phone: "+49 176 55443322", Email: "c.mayer@yahoo.de", Address: "Bergstr. 8, 74074 Heilbronn", Status: domain.ClientActive, Debt: domain.DP(21300), Created: "2024-10-15", Notes: "5 Gläubiger. Schulden um 40 % reduziert."},
	}
}

// Appointments returns the demo calendar.
func Appointments() []domain.Appointment {
	return []domain.Appointment{
		{ID: 1, ClientID: 3, Title: "Eiltermin Weber & Söhne", Date: "2025-02-05", Time: "09:00", Duration: 90, Type: domain.ConsultInsolvency, Location: "Büro Heilbronn", Priority: domain.PriorityHigh},
		{ID: 2, ClientID: 2, Title: "Vergleichsgespräch Becker", Date: "2025-02-05", Time: "11:00", Duration: 60, Type: domain.ConsultDebt, Location: "Büro Heilbronn", Priority: domain.PriorityNormal},
		{ID: 3, ClientID: 4, Title: "Businessplan Review Hoffmann", Date: "2025-02-05", Time: "14:30", Duration: 60, Type: domain.ConsultManagement, Location: "Vor Ort", Priority: domain.PriorityNormal},
		{ID: 4, ClientID: 1, Title: "Restrukturierung Update Müller", Date: "2025-02-06", Time: "10:00", Duration: 120, Type: domain.ConsultManagement, Location: "Müller Maschinenbau", Priority: domain.PriorityNormal},
		{ID: 5, ClientID: 7, Title: "Haftungsprüfung Klein", Date: "2025-02-06", Time: "14:00", Duration: 90, Type: domain.ConsultInsolvency, Location: "Büro Heilbronn", Priority: domain.PriorityHigh},
		{ID: 6, ClientID: 8, Title: "Erstberatung Braun", Date: "2025-02-07", Time: "09:30", Duration: 60, Type: domain.ConsultDebt, Location: "Büro Heilbronn", Priority: domain.PriorityNormal},
		{ID: 7, ClientID: 5, Title: "Ratenzahlung Richter", Date: "2025-02-07", Time: "11:00", Duration: 45, Type: domain.ConsultDebt, Location: "Telefonisch", Priority: domain.PriorityLow},
		{ID: 8, ClientID: 9, Title: "Interims-Report Fuchs Bau", Date: "2025-02-07", Time: "15:00", Duration: 90, Type: domain.ConsultManagement, Location: "Fuchs Bau GmbH", Priority: domain.PriorityNormal},
		{ID: 9, ClientID: 10, Title: "Vergleichsergebnis Mayer", Date: "2025-02-10", Time: "09:00", Duration: 60, Type: domain.ConsultDebt, Location: "Büro Heilbronn", Priority: domain.PriorityNormal},
		{ID: 10, ClientID: 1, Title: "Coaching Sitzung Müller", Date: "2025-02-10", Time: "14:00", Duration: 120, Type: domain.ConsultCoaching, Location: "Büro Heilbronn", Priority: domain.PriorityNormal},
	}
}

// Invoices returns the demo invoice book.
func Invoices() []domain.Invoice {
	return []domain.Invoice{
		{ID: "RE-2025-001", ClientID: 1, Amount: domain.D(4800), Date: "2025-01-15", Due: "2025-02-14", Status: domain.InvoiceOpen, Description: "Krisenmanagement-Beratung Januar 2025"},
		{ID: "RE-2025-002", ClientID: 2, Amount: domain.D(1200), Date: "2025-01-20", Due: "2025-02-19", Status: domain.InvoicePaid, Description: "Schuldnerberatung – Vergleichsverhandlung"},
		{ID: "RE-2025-003", ClientID: 4, Amount: domain.D(2400), Date: "2025-01-25", Due: "2025-02-24", Status: domain.InvoiceOpen, Description: "Neugründungsberatung & Businessplan Phase 1"},
		{ID: "RE-2025-004", ClientID: 3, Amount: domain.D(3600), Date: "2025-01-28", Due: "2025-02-27", Status: domain.InvoiceOverdue, Description: "Insolvenzberatung – Eilmandat Weber & Söhne"},
		{ID: "RE-2025-005", ClientID: 7, Amount: domain.D(2800), Date: "2025-02-01", Due: "2025-03-03", Status: domain.InvoiceOpen, Description: "Insolvenzberatung – Haftungsprüfung GF"},
		{ID: "RE-2024-048", ClientID: 6, Amount: domain.D(5200), Date: "2024-12-10", Due: "2025-01-09", Status: domain.InvoicePaid, Description: "Marketingstrategie Schwarz IT"},
		{ID: "RE-2025-006", ClientID: 5, Amount: domain.D(850), Date: "2025-02-03", Due: "2025-03-05", Status: domain.InvoiceDraft, Description: "Schuldnerberatung – Ratenzahlungsvereinbarung"},
		{ID: "RE-2025-007", ClientID: 9, Amount: domain.D(6200), Date: "2025-02-01", Due: "2025-03-03", Status: domain.InvoiceOpen, Description: "Interims-Management Fuchs Bau – Feb 2025"},
		{ID: "RE-2025-008", ClientID: 10, Amount: domain.D(980), Date: "2025-01-30", Due: "2025-02-28", Status: domain.InvoicePaid, Description: "Schuldnerberatung – Vergleich Mayer"},
	}
}

// Offers returns the demo quote book.
func Offers() []domain.Offer {
	return []domain.Offer{
		{ID: "AN-2025-001", ClientID: 8, Amount: domain.D(1500), Date: "2025-02-01", ValidUntil: "2025-02-28", Status: domain.OfferSent, Description: "Schuldnerberatung – Komplettpaket Braun"},
		{ID: "AN-2025-002", ClientID: 1, Amount: domain.D(8400), Date: "2025-01-30", ValidUntil: "2025-02-28", Status: domain.OfferAccepted, Description: "Interims-Management Feb–Apr 2025 Müller"},
		{ID: "AN-2025-003", ClientID: 4, Amount: domain.D(3200), Date: "2025-02-03", ValidUntil: "2025-03-05", Status: domain.OfferDraft, Description: "Fördermittelberatung & Coaching Hoffmann"},
		{ID: "AN-2024-018", ClientID: 6, Amount: domain.D(5200), Date: "2024-11-15", ValidUntil: "2024-12-15", Status: domain.OfferAccepted, Description: "Marketingstrategie Schwarz IT"},
		{ID: "AN-2025-004", ClientID: 7, Amount: domain.D(4500), Date: "2025-02-04", ValidUntil: "2025-03-04", Status: domain.OfferSent, Description: "Sanierungsberatung Klein Gastronomie"},
		{ID: "AN-2025-005", ClientID: 9, Amount: domain.D(18600), Date: "2025-01-28", ValidUntil: "2025-02-15", Status: domain.OfferAccepted, Description: "Interims-Management Q1 2025 Fuchs Bau"},
	}
}

// CaseFiles returns the demo case files with their documents.
func CaseFiles() []domain.CaseFile {
	return []domain.CaseFile{
		{ID: 1, ClientID: 3, Name: "Insolvenzabwendung Weber & Söhne", LastUpdate: "2025-02-04", Category: domain.ConsultInsolvency, Urgent: true, Docs: []domain.Document{
			{ID: "d1-1", Name: "Sanierungskonzept_v3.pdf", Type: domain.DocPDF, Size: "2.4 MB", Date: "2025-02-04", Preview: "Sanierungskonzept mit Maßnahmenplan, Zeitplan und Finanzierungsvorschlag für Weber & Söhne KG. Inhalt: Kostenreduktion Personal (-15%), Standortkonsolidierung, Verhandlung Bankenpool."},
			{ID: "d1-2", Name: "Gläubigerliste_komplett.xlsx", Type: domain.DocExcel, Size: "145 KB", Date: "2025-02-03", Preview: "Gläubiger: Sparkasse HN (78.000€), Volksbank (42.000€), Finanzamt HN (35.000€), Lieferant Schmid GmbH (30.000€). Gesamt: 185.000€."},
			{ID: "d1-3", Name: "Anwaltsschreiben_RA_Bauer.pdf", Type: domain.DocPDF, Size: "890 KB", Date: "2025-02-01", Preview: "Stellungnahme RA Dr. Bauer zur Haftungssituation der Geschäftsführer. Empfehlung: Sofortige Einberufung Gesellschafterversammlung."},
			{ID: "d1-4", Name: "Protokoll_Bankengespräch_20250125.docx", Type: domain.DocWord, Size: "320 KB", Date: "2025-01-25", Preview: "Protokoll Gespräch mit Sparkasse HN: Stillhalteabkommen bis 28.02., Bedingung: Vorlage Sanierungskonzept."},
			{ID: "d1-5", Name: "Mail_FA_Heilbronn_Stundung.email", Type: domain.DocEmail, Size: "45 KB", Date: "2025-01-20", Preview: "Finanzamt Heilbronn gewährt vorläufige Stundung USt Q3+Q4/2024 (35.000€) bis 31.03.2025."},
			{ID: "d1-6", Name: "Vermerk_Erstgespräch.note", Type: domain.DocNote, Size: "28 KB", Date: "2024-06-20", Preview: "Erstgespräch mit Herrn Weber: Umsatzrückgang seit 2023, Hauptursache Wegfall Großkunde Automobilzulieferer. Dringender Handlungsbedarf signalisiert."},
		}},
		{ID: 2, ClientID: 2, Name: "Vergleichsakte Becker", LastUpdate: "2025-02-03", Category: domain.ConsultDebt, Docs: []domain.Document{
			{ID: "d2-1", Name: "Schuldenaufstellung_Becker.xlsx", Type: domain.DocExcel, Size: "98 KB", Date: "2025-01-15", Preview: "4 Gläubiger: Sparkasse (14.200€), Barclays Kreditkarte (8.500€), Zalando/Klarna (6.820€), Vermieter Rückstand (5.000€). Gesamt: 34.520€."},
			{ID: "d2-2", Name: "Vergleichsangebot_Sparkasse.pdf", Type: domain.DocPDF, Size: "420 KB", Date: "2025-02-03", Preview: "Vergleichsangebot an Sparkasse HN: Einmalzahlung 8.500€ (60% Nachlass). Frist Annahme: 28.02.2025."},
		}},
		{ID: 3, ClientID: 1, Name: "Restrukturierung Müller Maschinenbau", LastUpdate: "2025-02-01", Category: domain.ConsultManagement, Docs: []domain.Document{
			{ID: "d3-1", Name: "Kostensenkungsprogramm_Q1.pdf", Type: domain.DocPDF, Size: "1.2 MB", Date: "2025-02-01", Preview: "Maßnahmenkatalog Q1/2025: Einkaufsbündelung, Schichtmodell-Anpassung, Energiekosten."},
			{ID: "d3-2", Name: "Protokoll_Jour_Fixe_KW5.docx", Type: domain.DocWord, Size: "180 KB", Date: "2025-01-30", Preview: "Wöchentliches Jour fixe: Produktionskennzahlen, Stand Kostensenkungsprogramm."},
		}},
		{ID: 4, ClientID: 7, Name: "Haftungsprüfung Klein Gastronomie", LastUpdate: "2025-02-04", Category: domain.ConsultInsolvency, Urgent: true, Docs: []domain.Document{
			{ID: "d4-1", Name: "Haftungsgutachten_Entwurf.pdf", Type: domain.DocPDF, Size: "760 KB", Date: "2025-02-04", Preview: "Entwurf RA Schmidt: Prüfung Insolvenzverschleppung, Zahlungsunfähigkeit seit voraussichtlich Nov 2024."},
			{ID: "d4-2", Name: "Mahnung_Finanzamt.scan", Type: domain.DocScan, Size: "310 KB", Date: "2025-01-28", Preview: "Vollstreckungsankündigung Finanzamt Heilbronn, USt+LSt Rückstände 28.000€."},
		}},
		{ID: 5, ClientID: 4, Name: "Gründungsunterlagen Hoffmann", LastUpdate: "2025-01-28", Category: domain.ConsultManagement, Docs: []domain.Document{
			{ID: "d5-1", Name: "Businessplan_v2.docx", Type: domain.DocWord, Size: "540 KB", Date: "2025-01-28", Preview: "Businessplan Hoffmann Consulting: Marktanalyse, Finanzplan 3 Jahre, KfW-Gründerkredit."},
		}},
		{ID: 6, ClientID: 5, Name: "Schuldenplan Richter", LastUpdate: "2025-01-25", Category: domain.ConsultDebt, Docs: []domain.Document{
			{ID: "d6-1", Name: "Ratenzahlungsplan.xlsx", Type: domain.DocExcel, Size: "72 KB", Date: "2025-01-25", Preview: "Ratenplan Commerzbank 150€/Monat über 42 Monate, Stadtwerke Stundung beantragt."},
		}},
		{ID: 7, ClientID: 8, Name: "Erstberatung Braun", LastUpdate: "2025-02-01", Category: domain.ConsultDebt, Docs: []domain.Document{
			{ID: "d7-1", Name: "Vermerk_Erstberatung.note", Type: domain.DocNote, Size: "18 KB", Date: "2025-02-01", Preview: "Erstberatung: 2 Gläubiger, 8.450€. Mahnung Stufe 3 Consors, Bonprix kündigt Mahnbescheid an."},
		}},
		{ID: 8, ClientID: 9, Name: "Interims-Management Fuchs Bau", LastUpdate: "2025-02-04", Category: domain.ConsultManagement, Docs: []domain.Document{
			{ID: "d8-1", Name: "Monatsreport_Januar.pdf", Type: domain.DocPDF, Size: "980 KB", Date: "2025-02-04", Preview: "Interims-Report Januar: Auftragslage stabil, Liquidität verbessert, zwei Großprojekte akquiriert."},
		}},
		{ID: 9, ClientID: 10, Name: "Schuldenabbau Mayer", LastUpdate: "2025-02-02", Category: domain.ConsultDebt, Docs: []domain.Document{
			{ID: "d9-1", Name: "Vergleichsvereinbarung_Targobank.pdf", Type: domain.DocPDF, Size: "380 KB", Date: "2025-01-15", Preview: "Vergleichsvereinbarung Targobank: 4.200€ statt 8.500€ (50,6% Ersparnis), Zahlung erfolgt."},
			{ID: "d9-2", Name: "Vergleichsvereinbarung_Otto.pdf", Type: domain.DocPDF, Size: "290 KB", Date: "2025-01-20", Preview: "Vergleich Otto Versand: 1.800€ statt 4.300€ (58,1% Ersparnis), Zahlung erfolgt."},
		}},
	}
}

// sp points at a settlement offer amount.
func sp(euros int64) *decimal.Decimal { return domain.DP(euros) }
