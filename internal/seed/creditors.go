package seed

import "github.com/ce-es/dashboard/internal/domain"

// Creditors returns the demo creditor ledger: every creditor of every
// debt-case client, with the negotiation state as of the reference date.
func Creditors() []domain.Creditor {
	return []domain.Creditor{
		// Sandra Becker (clientId 2) – 4 creditors, 34.520€
		{ID: "GL-B01", ClientID: 2, Name: "Sparkasse Heilbronn", Type: domain.CreditorBank, OriginalAmount: domain.D(14200), CurrentAmount: domain.D(14200), SettlementOffer: sp(8500), AmountPaid: domain.D(0), Status: domain.StatusOfferMade, Lawyer: "RA Keller", ContactDate: "2025-01-18", LastAction: "Vergleichsangebot 8.500€ (60%) an Sparkasse gesendet, Frist 28.02.", NextDeadline: "2025-02-28", NextDeadlineType: domain.DeadlineSettlementOffer, Notes: "Sachbearbeiterin Fr. Müller, Sparkasse hat Gesprächsbereitschaft signalisiert"},
		{ID: "GL-B02", ClientID: 2, Name: "Barclays Kreditkarte", Type: domain.CreditorCreditCard, OriginalAmount: domain.D(8500), CurrentAmount: domain.D(8500), AmountPaid: domain.D(0), Status: domain.StatusContacted, Lawyer: "RA Keller", ContactDate: "2025-01-20", LastAction: "Erste Kontaktaufnahme, warten auf Rückmeldung", NextDeadline: "2025-02-15", NextDeadlineType: domain.DeadlinePaymentOrder, Notes: "Inkasso EOS angekündigt"},
		{ID: "GL-B03", ClientID: 2, Name: "Klarna / Zalando", Type: domain.CreditorMailOrder, OriginalAmount: domain.D(6820), CurrentAmount: domain.D(6820), AmountPaid: domain.D(0), Status: domain.StatusNegotiating, Lawyer: "RA Keller", ContactDate: "2025-01-22", LastAction: "Mahnbescheid AG Heilbronn Az. 12 C 4567/24 – Widerspruch eingelegt", NextDeadline: "2025-02-20", NextDeadlineType: domain.DeadlinePaymentOrder, Notes: "Widerspruch fristgerecht eingelegt, Verhandlung läuft", CaseReference: "12 C 4567/24"},
		{ID: "GL-B04", ClientID: 2, Name: "Vermieter Rückstand", Type: domain.CreditorLandlord, OriginalAmount: domain.D(5000), CurrentAmount: domain.D(5000), AmountPaid: domain.D(0), Status: domain.StatusContacted, ContactDate: "2025-01-25", LastAction: "Direkte Kontaktaufnahme, Ratenzahlung vorgeschlagen", NextDeadline: "2025-02-28", NextDeadlineType: domain.DeadlineInstallmentPlan, Notes: "Vermieter zeigt sich gesprächsbereit, 250€/Monat vorgeschlagen"},

		// Klaus Richter (clientId 5) – 3 creditors, 12.800€
		{ID: "GL-R01", ClientID: 5, Name: "Commerzbank", Type: domain.CreditorBank, OriginalAmount: domain.D(6200), CurrentAmount: domain.D(5500), AmountPaid: domain.D(700), Status: domain.StatusPaymentPlan, Lawyer: "RA Keller", ContactDate: "2025-01-05", LastAction: "Ratenzahlung 150€/Monat vereinbart, läuft seit Feb", Notes: "Vereinbarung: 150€/Monat über 42 Monate, Zinsverzicht ab 01.02."},
		{ID: "GL-R02", ClientID: 5, Name: "MediaMarkt / CreditPlus", Type: domain.CreditorServiceProvider, OriginalAmount: domain.D(4100), CurrentAmount: domain.D(4100), SettlementOffer: sp(2000), AmountPaid: domain.D(0), Status: domain.StatusOfferMade, Lawyer: "RA Keller", ContactDate: "2025-01-15", LastAction: "Vergleichsangebot 2.000€ (49%) gesendet", NextDeadline: "2025-02-22", NextDeadlineType: domain.DeadlineSettlementOffer, Notes: "CreditPlus-Sachbearbeiter prüft Angebot"},
		{ID: "GL-R03", ClientID: 5, Name: "Stadtwerke Heilbronn", Type: domain.CreditorServiceProvider, OriginalAmount: domain.D(2500), CurrentAmount: domain.D(2500), AmountPaid: domain.D(0), Status: domain.StatusNegotiating, ContactDate: "2025-01-18", LastAction: "Stundung beantragt, Stadtwerke prüfen", NextDeadline: "2025-02-18", NextDeadlineType: domain.DeadlineDeferral, Notes: "Abschaltung Strom/Gas angedroht – Eilbedarf!"},

		// Claudia Mayer (clientId 10) – 5 creditors, 35.500€ (21.300€ verbleibend)
		{ID: "GL-M01", ClientID: 10, Name: "Targobank", Type: domain.CreditorBank, OriginalAmount: domain.D(8500), CurrentAmount: domain.D(0), SettlementOffer: sp(4200), SettlementAgreed: true, AmountPaid: domain.D(4200), Status: domain.StatusDone, Lawyer: "RA Dr. Bauer", ContactDate: "2024-11-10", LastAction: "Vergleich erfolgreich! 4.200€ statt 8.500€ gezahlt", Notes: "50,6% Ersparnis – Vergleichsvereinbarung vom 15.01.2025"},
		{ID: "GL-M02", ClientID: 10, Name: "Otto Versand", Type: domain.CreditorMailOrder, OriginalAmount: domain.D(4300), CurrentAmount: domain.D(0), SettlementOffer: sp(1800), SettlementAgreed: true, AmountPaid: domain.D(1800), Status: domain.StatusDone, Lawyer: "RA Dr. Bauer", ContactDate: "2024-11-15", LastAction: "Vergleich erfolgreich! 1.800€ statt 4.300€ gezahlt", Notes: "58,1% Ersparnis – Vergleich vom 20.01.2025"},
		{ID: "GL-M03", ClientID: 10, Name: "Santander Consumer Bank", Type: domain.CreditorBank, OriginalAmount: domain.D(9200), CurrentAmount: domain.D(9200), AmountPaid: domain.D(0), Status: domain.StatusNegotiating, Lawyer: "RA Dr. Bauer", ContactDate: "2025-01-10", LastAction: "Vergleichsgespräch für 12.02.2025 vereinbart", NextDeadline: "2025-02-12", NextDeadlineType: domain.DeadlineSettlementOffer, Notes: "Ansprechpartnerin Fr. Wagner, zeigt Gesprächsbereitschaft"},
		{ID: "GL-M04", ClientID: 10, Name: "Consors Finanz", Type: domain.CreditorBank, OriginalAmount: domain.D(7800), CurrentAmount: domain.D(7800), SettlementOffer: sp(3500), AmountPaid: domain.D(0), Status: domain.StatusOfferMade, Lawyer: "RA Dr. Bauer", ContactDate: "2025-01-05", LastAction: "Vergleichsangebot 3.500€ (45%) gesendet, warten", NextDeadline: "2025-02-25", NextDeadlineType: domain.DeadlineSettlementOffer, Notes: "Inkasso-Abteilung prüft, Rückmeldung erwartet"},
		{ID: "GL-M05", ClientID: 10, Name: "Vodafone / Inkasso", Type: domain.CreditorCollectionAgency, OriginalAmount: domain.D(5700), CurrentAmount: domain.D(4300), AmountPaid: domain.D(1400), Status: domain.StatusPaymentPlan, ContactDate: "2024-12-01", LastAction: "Ratenzahlung 200€/Monat, 7 von 21 Raten gezahlt", Notes: "Laufende Ratenzahlung, bisher pünktlich"},

		// Maria Braun (clientId 8) – 2 creditors, 8.450€
		{ID: "GL-BR01", ClientID: 8, Name: "Consors Finanz", Type: domain.CreditorBank, OriginalAmount: domain.D(5200), CurrentAmount: domain.D(5200), AmountPaid: domain.D(0), Status: domain.StatusNotContacted, LastAction: "Erstberatung erfolgt, Schuldenaufstellung läuft", NextDeadline: "2025-02-15", NextDeadlineType: domain.DeadlinePaymentOrder, Notes: "Mahnung Stufe 3 erhalten, Inkasso angekündigt"},
		{ID: "GL-BR02", ClientID: 8, Name: "Bonprix Versand", Type: domain.CreditorMailOrder, OriginalAmount: domain.D(3250), CurrentAmount: domain.D(3250), AmountPaid: domain.D(0), Status: domain.StatusNotContacted, LastAction: "Noch nicht kontaktiert", NextDeadline: "2025-02-10", NextDeadlineType: domain.DeadlinePaymentOrder, Notes: "Gerichtlicher Mahnbescheid angekündigt"},

		// Markus Weber (clientId 3) – 4 creditors, 185.000€
		{ID: "GL-W01", ClientID: 3, Name: "Sparkasse Heilbronn", Type: domain.CreditorBank, OriginalAmount: domain.D(78000), CurrentAmount: domain.D(78000), AmountPaid: domain.D(0), Status: domain.StatusNegotiating, Lawyer: "RA Dr. Bauer", ContactDate: "2024-12-15", LastAction: "Stillhalteabkommen bis 28.02. – Sanierungskonzept Bedingung", NextDeadline: "2025-02-28", NextDeadlineType: domain.DeadlineInsolvencyFiling, Notes: "KRITISCH: Frist 28.02. für Sanierungskonzept, sonst kündigt Bank Kredit"},
		{ID: "GL-W02", ClientID: 3, Name: "Volksbank Heilbronn", Type: domain.CreditorBank, OriginalAmount: domain.D(42000), CurrentAmount: domain.D(42000), AmountPaid: domain.D(0), Status: domain.StatusContacted, Lawyer: "RA Dr. Bauer", ContactDate: "2025-01-10", LastAction: "Erstgespräch geführt, Stillhalteabkommen erbeten", NextDeadline: "2025-02-20", NextDeadlineType: domain.DeadlineEnforcement, Notes: "Volksbank wartet Sparkasse-Entscheidung ab"},
		{ID: "GL-W03", ClientID: 3, Name: "Finanzamt Heilbronn", Type: domain.CreditorTaxAuthority, OriginalAmount: domain.D(35000), CurrentAmount: domain.D(35000), AmountPaid: domain.D(0), Status: domain.StatusNegotiating, ContactDate: "2025-01-15", LastAction: "Stundung USt Q3+Q4/2024 gewährt bis 31.03.2025", NextDeadline: "2025-03-31", NextDeadlineType: domain.DeadlineDeferral, Notes: "Stundung genehmigt – Raten ab April vereinbaren"},
		{ID: "GL-W04", ClientID: 3, Name: "Schmid GmbH (Lieferant)", Type: domain.CreditorOther, OriginalAmount: domain.D(30000), CurrentAmount: domain.D(30000), SettlementOffer: sp(22000), AmountPaid: domain.D(0), Status: domain.StatusOfferMade, Lawyer: "RA Dr. Bauer", ContactDate: "2025-01-20", LastAction: "Vergleich 22.000€ (73%) angeboten, Schmid prüft", NextDeadline: "2025-02-15", NextDeadlineType: domain.DeadlineSettlementOffer, Notes: "Schmid droht mit Lieferstopp, Vergleich dringend"},

		// Peter Klein (clientId 7) – 3 creditors, 95.000€
		{ID: "GL-K01", ClientID: 7, Name: "Finanzamt Heilbronn", Type: domain.CreditorTaxAuthority, OriginalAmount: domain.D(28000), CurrentAmount: domain.D(28000), AmountPaid: domain.D(0), Status: domain.StatusContacted, Lawyer: "RA Schmidt", ContactDate: "2025-01-28", LastAction: "Stundungsantrag eingereicht, Vollstreckung angedroht", NextDeadline: "2025-02-14", NextDeadlineType: domain.DeadlineEnforcement, Notes: "USt+LSt Rückstände, Vollstreckungsankündigung erhalten", Garnishment: true},
		{ID: "GL-K02", ClientID: 7, Name: "Brauerei Dinkelacker", Type: domain.CreditorOther, OriginalAmount: domain.D(38000), CurrentAmount: domain.D(38000), AmountPaid: domain.D(0), Status: domain.StatusNegotiating, Lawyer: "RA Schmidt", ContactDate: "2025-02-01", LastAction: "Ratenzahlung verhandelt, Lieferung vorerst fortgesetzt", NextDeadline: "2025-02-28", NextDeadlineType: domain.DeadlineInstallmentPlan, Notes: "Lieferantenkredit, droht mit Lieferstopp"},
		{ID: "GL-K03", ClientID: 7, Name: "Vermieter Gewerberäume", Type: domain.CreditorLandlord, OriginalAmount: domain.D(29000), CurrentAmount: domain.D(29000), AmountPaid: domain.D(0), Status: domain.StatusContacted, Lawyer: "RA Schmidt", ContactDate: "2025-02-03", LastAction: "Mietrückstand 6 Monate, Räumungsklage angedroht", NextDeadline: "2025-02-21", NextDeadlineType: domain.DeadlineEnforcement, Notes: "Räumungsklage droht – höchste Priorität!"},
	}
}

// Progress returns the per-client aggregate records as of the reference date.
func Progress() []domain.ClientProgress {
	return []domain.ClientProgress{
		{ClientID: 2, Phase: domain.PhaseNegotiating, StartDate: "2024-11-03", DebtAtStart: domain.D(34520), DebtCurrent: domain.D(34520), CreditorsTotal: 4, Lawyer: "RA Keller", NextStep: "Vergleichsantwort Sparkasse abwarten (Frist 28.02.)"},
		{ClientID: 5, Phase: domain.PhaseSettlementsRunning, StartDate: "2025-01-22", DebtAtStart: domain.D(12800), DebtCurrent: domain.D(12100), CreditorsTotal: 3, Lawyer: "RA Keller", NextStep: "CreditPlus-Vergleich klären, Stadtwerke-Stundung sichern"},
		{ClientID: 10, Phase: domain.PhaseSettlementsRunning, StartDate: "2024-10-15", DebtAtStart: domain.D(35500), DebtCurrent: domain.D(21300), SettlementsWon: 2, CreditorsTotal: 5, CreditorsDone: 2, Lawyer: "RA Dr. Bauer", NextStep: "Santander-Vergleichsgespräch 12.02., Consors-Angebot nachfassen"},
		{ClientID: 8, Phase: domain.PhaseDebtIntake, StartDate: "2025-02-01", DebtAtStart: domain.D(8450), DebtCurrent: domain.D(8450), CreditorsTotal: 2, Lawyer: "—", NextStep: "Anwalt beauftragen, Gläubiger kontaktieren"},
		{ClientID: 3, Phase: domain.PhaseCreditorsContacted, StartDate: "2024-06-20", DebtAtStart: domain.D(185000), DebtCurrent: domain.D(185000), CreditorsTotal: 4, Lawyer: "RA Dr. Bauer", NextStep: "Sanierungskonzept bis 28.02. vorlegen (Sparkasse-Frist!)"},
		{ClientID: 7, Phase: domain.PhaseCreditorsContacted, StartDate: "2024-09-08", DebtAtStart: domain.D(95000), DebtCurrent: domain.D(95000), CreditorsTotal: 3, Lawyer: "RA Schmidt", NextStep: "Haftungsprüfung GF abschließen, Insolvenzantragsfrist beachten!"},
	}
}

// Deadlines returns the obligation calendar as of the reference date.
func Deadlines() []domain.Deadline {
	return []domain.Deadline{
		{ID: "FR-01", ClientID: 8, ClientName: "Maria Braun", Type: domain.DeadlinePaymentOrder, Date: "2025-02-10", Description: "Bonprix – Gerichtlicher Mahnbescheid droht, Widerspruchsfrist", Critical: true},
		{ID: "FR-02", ClientID: 10, ClientName: "Claudia Mayer", Type: domain.DeadlineSettlementOffer, Date: "2025-02-12", Description: "Santander – Vergleichsgespräch Termin"},
		{ID: "FR-03", ClientID: 7, ClientName: "Peter Klein", Type: domain.DeadlineEnforcement, Date: "2025-02-14", Description: "Finanzamt – Vollstreckungsankündigung USt+LSt", Critical: true},
		{ID: "FR-04", ClientID: 2, ClientName: "Sandra Becker", Type: domain.DeadlinePaymentOrder, Date: "2025-02-15", Description: "Barclays – Inkasso EOS angekündigt", Critical: true},
		{ID: "FR-05", ClientID: 3, ClientName: "Markus Weber", Type: domain.DeadlineSettlementOffer, Date: "2025-02-15", Description: "Schmid GmbH – Vergleichsantwort erwartet"},
		{ID: "FR-06", ClientID: 5, ClientName: "Klaus Richter", Type: domain.DeadlineDeferral, Date: "2025-02-18", Description: "Stadtwerke – Stundungsentscheidung erwartet", Critical: true},
		{ID: "FR-07", ClientID: 2, ClientName: "Sandra Becker", Type: domain.DeadlinePaymentOrder, Date: "2025-02-20", Description: "Klarna – Gerichtsverhandlung nach Widerspruch"},
		{ID: "FR-08", ClientID: 3, ClientName: "Markus Weber", Type: domain.DeadlineEnforcement, Date: "2025-02-20", Description: "Volksbank – Entscheidung Stillhalteabkommen", Critical: true},
		{ID: "FR-09", ClientID: 7, ClientName: "Peter Klein", Type: domain.DeadlineEnforcement, Date: "2025-02-21", Description: "Vermieter – Räumungsklage droht!", Critical: true},
		{ID: "FR-10", ClientID: 5, ClientName: "Klaus Richter", Type: domain.DeadlineSettlementOffer, Date: "2025-02-22", Description: "CreditPlus – Vergleichsantwort erwartet"},
		{ID: "FR-11", ClientID: 10, ClientName: "Claudia Mayer", Type: domain.DeadlineSettlementOffer, Date: "2025-02-25", Description: "Consors Finanz – Vergleichsangebot 3.500€ Frist"},
		{ID: "FR-12", ClientID: 2, ClientName: "Sandra Becker", Type: domain.DeadlineSettlementOffer, Date: "2025-02-28", Description: "Sparkasse – Vergleichsangebot 8.500€ Antwortfrist", Critical: true},
		{ID: "FR-13", ClientID: 3, ClientName: "Markus Weber", Type: domain.DeadlineInsolvencyFiling, Date: "2025-02-28", Description: "KRITISCH: Sparkasse-Frist für Sanierungskonzept!", Critical: true},
		{ID: "FR-14", ClientID: 7, ClientName: "Peter Klein", Type: domain.DeadlineInstallmentPlan, Date: "2025-02-28", Description: "Brauerei – Ratenzahlungsvereinbarung Frist"},
		{ID: "FR-15", ClientID: 3, ClientName: "Markus Weber", Type: domain.DeadlineDeferral, Date: "2025-03-31", Description: "Finanzamt – Stundung USt läuft aus"},
	}
}
