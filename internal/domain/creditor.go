package domain

import "github.com/shopspring/decimal"

// ─── Creditor / Settlement Tracking (core business) ─────────────────────────
// Enum values are the German wire values of the reference dataset; the
// constant names give them English handles.

// NegotiationStatus is the per-creditor negotiation state. The ordering is
// by meaning, not by value: not contacted → contacted → negotiating →
// offer made → offer accepted → payment plan agreed → done, with rejected
// as the terminal failure branch.
type NegotiationStatus string

const (
	StatusNotContacted     NegotiationStatus = "nicht_kontaktiert"
	StatusContacted        NegotiationStatus = "kontaktiert"
	StatusNegotiating      NegotiationStatus = "in_verhandlung"
	StatusOfferMade        NegotiationStatus = "angebot_gemacht"
	StatusOfferAccepted    NegotiationStatus = "angebot_angenommen"
	StatusPaymentPlan      NegotiationStatus = "zahlung_vereinbart"
	StatusDone             NegotiationStatus = "erledigt"
	StatusRejected         NegotiationStatus = "abgelehnt"
)

// CreditorType classifies the counterparty.
type CreditorType string

const (
	CreditorBank             CreditorType = "bank"
	CreditorMailOrder        CreditorType = "versandhaus"
	CreditorTaxAuthority     CreditorType = "finanzamt"
	CreditorLandlord         CreditorType = "vermieter"
	CreditorServiceProvider  CreditorType = "dienstleister"
	CreditorCreditCard       CreditorType = "kreditkarte"
	CreditorCollectionAgency CreditorType = "inkasso"
	CreditorOther            CreditorType = "sonstige"
)

// ClientPhase is the pipeline stage of a debt-case client. Step ordering
// lives in PhaseLabels and is load-bearing: it is the canonical sort key
// for the pipeline view and the fill level of the progress bar.
type ClientPhase string

const (
	PhaseInitialConsultation ClientPhase = "erstberatung"
	PhaseDebtIntake          ClientPhase = "erfassung"
	PhaseLawyerEngaged       ClientPhase = "anwalt_beauftragt"
	PhaseCreditorsContacted  ClientPhase = "gläubiger_kontaktiert"
	PhaseNegotiating         ClientPhase = "in_verhandlung"
	PhaseSettlementsRunning  ClientPhase = "vergleiche_laufend"
	PhaseCompleted           ClientPhase = "abgeschlossen"
)

// DeadlineType is the deadline/obligation taxonomy.
type DeadlineType string

const (
	DeadlineInsolvencyFiling DeadlineType = "insolvenzantrag"
	DeadlinePaymentOrder     DeadlineType = "mahnbescheid"
	DeadlineEnforcement      DeadlineType = "vollstreckung"
	DeadlineSettlementOffer  DeadlineType = "vergleichsangebot"
	DeadlineDeferral         DeadlineType = "stundung"
	DeadlineInstallmentPlan  DeadlineType = "ratenzahlung"
	DeadlineCourtDate        DeadlineType = "gerichtstermin"
)

// Creditor is the negotiation unit: one debt a client owes to one
// counterparty, with the running settlement state.
//
// OriginalAmount is immutable once set. CurrentAmount, AmountPaid and
// SettlementOffer are independently settable fields, matching the
// reference data; ledger.Check reports drift between them.
type Creditor struct {
	ID                string            `json:"id"`
	ClientID          int               `json:"clientId"`
	Name              string            `json:"name"`
	Type              CreditorType      `json:"typ"`
	OriginalAmount    decimal.Decimal   `json:"originalBetrag"`
	CurrentAmount     decimal.Decimal   `json:"aktuellerBetrag"`
	SettlementOffer   *decimal.Decimal  `json:"vergleichsAngebot,omitempty"`
	SettlementAgreed  bool              `json:"vergleichAkzeptiert"`
	AmountPaid        decimal.Decimal   `json:"gezahlt"`
	Status            NegotiationStatus `json:"status"`
	Lawyer            string            `json:"anwalt,omitempty"`
	ContactDate       string            `json:"kontaktDatum,omitempty"`
	LastAction        string            `json:"letzteAktion,omitempty"`
	NextDeadline      string            `json:"naechsteFrist,omitempty"`
	NextDeadlineType  DeadlineType      `json:"fristTyp,omitempty"`
	Notes             string            `json:"notizen,omitempty"`
	Garnishment       bool              `json:"pfaendung"`
	CaseReference     string            `json:"aktenzeichen,omitempty"`
}

// ClientProgress is the per-client aggregate debt-case record, one per
// client with an active debt case.
type ClientProgress struct {
	ClientID         int             `json:"clientId"`
	Phase            ClientPhase     `json:"phase"`
	StartDate        string          `json:"startDatum"`
	DebtAtStart      decimal.Decimal `json:"schuldenStart"`
	DebtCurrent      decimal.Decimal `json:"schuldenAktuell"`
	SettlementsWon   int             `json:"vergleicheErreicht"`
	CreditorsTotal   int             `json:"glaeubigerGesamt"`
	CreditorsDone    int             `json:"glaeubigerErledigt"`
	Lawyer           string          `json:"anwalt"`
	NextStep         string          `json:"naechsterSchritt"`
}

// Deadline is an obligation with a due date, linked to a client.
// ClientName is denormalized for display.
type Deadline struct {
	ID          string       `json:"id"`
	ClientID    int          `json:"clientId"`
	ClientName  string       `json:"clientName"`
	Type        DeadlineType `json:"typ"`
	Date        string       `json:"datum"`
	Description string       `json:"beschreibung"`
	Critical    bool         `json:"kritisch"`
	Completed   bool         `json:"erledigt"`
}

// ─── Label Tables ───────────────────────────────────────────────────────────
// Presentation metadata for the closed enums. The Step in PhaseInfo is the
// canonical pipeline ordering, not just decoration.

// PhaseInfo describes one pipeline stage.
type PhaseInfo struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Step  int    `json:"step"`
}

// PhaseLabels maps every phase to its display label and ordering step.
var PhaseLabels = map[ClientPhase]PhaseInfo{
	PhaseInitialConsultation: {Label: "Erstberatung", Color: "#94a3b8", Step: 1},
	PhaseDebtIntake:          {Label: "Schuldenerfassung", Color: "#6366f1", Step: 2},
	PhaseLawyerEngaged:       {Label: "Anwalt beauftragt", Color: "#8b5cf6", Step: 3},
	PhaseCreditorsContacted:  {Label: "Gläubiger kontaktiert", Color: "#d97706", Step: 4},
	PhaseNegotiating:         {Label: "In Verhandlung", Color: "#ea580c", Step: 5},
	PhaseSettlementsRunning:  {Label: "Vergleiche laufend", Color: "#0891b2", Step: 6},
	PhaseCompleted:           {Label: "Abgeschlossen", Color: "#16a34a", Step: 7},
}

// PhaseStepCount is the number of pipeline segments the progress bar renders.
const PhaseStepCount = 7

// StatusInfo describes one negotiation status.
type StatusInfo struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Bg    string `json:"bg"`
}

// StatusLabels maps every negotiation status to its display metadata.
var StatusLabels = map[NegotiationStatus]StatusInfo{
	StatusNotContacted:  {Label: "Nicht kontaktiert", Color: "#94a3b8", Bg: "#f1f5f9"},
	StatusContacted:     {Label: "Kontaktiert", Color: "#6366f1", Bg: "#eef2ff"},
	StatusNegotiating:   {Label: "In Verhandlung", Color: "#d97706", Bg: "#fffbeb"},
	StatusOfferMade:     {Label: "Angebot gemacht", Color: "#ea580c", Bg: "#fff7ed"},
	StatusOfferAccepted: {Label: "Angenommen", Color: "#0891b2", Bg: "#ecfeff"},
	StatusPaymentPlan:   {Label: "Ratenzahlung", Color: "#7c3aed", Bg: "#f5f3ff"},
	StatusDone:          {Label: "✓ Erledigt", Color: "#16a34a", Bg: "#f0fdf4"},
	StatusRejected:      {Label: "Abgelehnt", Color: "#dc2626", Bg: "#fef2f2"},
}

// DeadlineTypeInfo describes one deadline type.
type DeadlineTypeInfo struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// DeadlineTypeLabels maps every deadline type to its display metadata.
var DeadlineTypeLabels = map[DeadlineType]DeadlineTypeInfo{
	DeadlineInsolvencyFiling: {Label: "Insolvenzantrag", Icon: "🚨", Color: "#dc2626"},
	DeadlinePaymentOrder:     {Label: "Mahnbescheid", Icon: "⚖️", Color: "#ea580c"},
	DeadlineEnforcement:      {Label: "Vollstreckung", Icon: "🔴", Color: "#dc2626"},
	DeadlineSettlementOffer:  {Label: "Vergleich", Icon: "🤝", Color: "#0891b2"},
	DeadlineDeferral:         {Label: "Stundung", Icon: "⏸️", Color: "#7c3aed"},
	DeadlineInstallmentPlan:  {Label: "Ratenzahlung", Icon: "💰", Color: "#16a34a"},
	DeadlineCourtDate:        {Label: "Gerichtstermin", Icon: "🏛️", Color: "#d97706"},
}
