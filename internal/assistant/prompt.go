// Package assistant builds the AI gateway payloads: the system prompt
// with the practice's live data, multimodal message content for attached
// documents, and the parsed answer with its web sources.
package assistant

import (
	"fmt"
	"strings"

	"github.com/ce-es/dashboard/internal/domain"
	"github.com/ce-es/dashboard/internal/store"
)

var germanMonths = [...]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}

// germanDate renders an ISO date as "5. Feb 2025". Malformed input
// passes through unchanged.
func germanDate(iso string) string {
	if len(iso) != 10 {
		return iso
	}
	var y, m, d int
	if _, err := fmt.Sscanf(iso, "%d-%d-%d", &y, &m, &d); err != nil || m < 1 || m > 12 {
		return iso
	}
	return fmt.Sprintf("%d. %s %d", d, germanMonths[m-1], y)
}

// spaced turns enum wire values into readable text ("in_verhandlung" ->
// "in verhandlung").
func spaced[T ~string](v T) string { return strings.ReplaceAll(string(v), "_", " ") }

// BuildSystemPrompt assembles the assistant's system prompt from a store
// snapshot. The data sections keep the assistant grounded in the
// practice's actual numbers instead of hallucinating clients.
func BuildSystemPrompt(snap store.Snapshot, todayISO string) string {
	names := make(map[int]string, len(snap.Clients))
	for _, c := range snap.Clients {
		names[c.ID] = c.Name
	}
	name := func(id int) string {
		if n, ok := names[id]; ok {
			return n
		}
		return "?"
	}

	var clients []string
	for _, c := range snap.Clients {
		company := ""
		if c.Company != "" {
			company = fmt.Sprintf(" (%s)", c.Company)
		}
		debt := "k.A."
		if c.Debt != nil {
			debt = domain.FormatEUR(*c.Debt)
		}
		clients = append(clients, fmt.Sprintf("- %s%s: %s, Status: %s, Schulden: %s, seit %s",
			c.Name, company, c.Type, c.Status, debt, c.Created))
	}

	var creditors []string
	for _, g := range snap.Creditors {
		line := fmt.Sprintf("- %s (%s) → %s: Original %s, Aktuell %s, Status: %s",
			g.Name, g.Type, name(g.ClientID),
			domain.FormatEUR(g.OriginalAmount), domain.FormatEUR(g.CurrentAmount), spaced(g.Status))
		if g.SettlementOffer != nil {
			line += fmt.Sprintf(", Vergleich: %s", domain.FormatEUR(*g.SettlementOffer))
		}
		creditors = append(creditors, line)
	}

	var deadlines []string
	for _, f := range snap.Deadlines {
		if f.Completed {
			continue
		}
		line := fmt.Sprintf("- %s: %s (%s)", f.Date, f.Description, name(f.ClientID))
		if f.Critical {
			line += " ⚠️ KRITISCH"
		}
		deadlines = append(deadlines, line)
	}

	var progress []string
	for _, m := range snap.Progress {
		progress = append(progress, fmt.Sprintf("- %s: Start %s → Aktuell %s (%s), Gläubiger: %d, davon erledigt: %d",
			name(m.ClientID), domain.FormatEUR(m.DebtAtStart), domain.FormatEUR(m.DebtCurrent),
			spaced(m.Phase), m.CreditorsTotal, m.CreditorsDone))
	}

	var invoices []string
	for _, i := range snap.Invoices {
		invoices = append(invoices, fmt.Sprintf("- %s: %s, %s, Status: %s, Fällig: %s",
			i.ID, name(i.ClientID), domain.FormatEUR(i.Amount), i.Status, i.Due))
	}

	var today []string
	for _, a := range snap.Appointments {
		if a.Date != todayISO {
			continue
		}
		today = append(today, fmt.Sprintf("- %s Uhr: %s (%s, %s)", a.Time, a.Title, name(a.ClientID), a.Location))
	}
	todayBlock := strings.Join(today, "\n")
	if todayBlock == "" {
		todayBlock = "Keine Termine heute"
	}

	return fmt.Sprintf(`Du bist der KI-Assistent von Ce-eS Management Consultant, einer Schuldnerberatungsfirma in Heilbronn.

Du bist ein vielseitiger Assistent, der bei ALLEM helfen kann:

1. **Mandantendaten**: Du hast Zugriff auf die aktuellen Klienten-, Gläubiger- und Finanzdaten (siehe unten).
2. **Allgemeines Wissen**: Du kannst Fragen zu Recht, Insolvenzrecht, Schuldnerberatung, Betriebswirtschaft und allen anderen Themen beantworten.
3. **Web-Suche**: Du kannst im Internet nach aktuellen Informationen suchen.
4. **Dokumentenanalyse**: Wenn der Nutzer ein Dokument (PDF, Bild, etc.) anhängt, analysiere es gründlich. Du kannst Verträge prüfen, Rechnungen auslesen, Schriftstücke zusammenfassen, und Dokumente mit den Mandantendaten abgleichen.

Wenn ein Dokument angehängt ist:
- Fasse den Inhalt zusammen
- Identifiziere relevante Informationen (Beträge, Fristen, Namen, Aktenzeichen)
- Vergleiche mit bestehenden Mandantendaten wenn möglich
- Gib konkrete Handlungsempfehlungen

Antworte immer auf Deutsch, professionell aber freundlich. Formatiere Geldbeträge mit € und Tausendertrennzeichen.

═══ KLIENTEN (%d) ═══
%s

═══ GLÄUBIGER (%d) ═══
%s

═══ OFFENE FRISTEN ═══
%s

═══ MANDANTEN-FORTSCHRITT ═══
%s

═══ RECHNUNGEN ═══
%s

═══ HEUTIGE TERMINE (%s) ═══
%s`,
		len(snap.Clients), strings.Join(clients, "\n"),
		len(snap.Creditors), strings.Join(creditors, "\n"),
		strings.Join(deadlines, "\n"),
		strings.Join(progress, "\n"),
		strings.Join(invoices, "\n"),
		germanDate(todayISO), todayBlock)
}
