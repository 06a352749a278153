package assistant

// Model and limits of the upstream messages call.
const (
	DefaultModel     = "claude-sonnet-4-5-20250929"
	DefaultMaxTokens = 4096
	webSearchMaxUses = 3
)

// ChatMessage is one turn of the conversation. Content is either a
// string or a []ContentBlock from BuildContent.
type ChatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// Tool declares an upstream tool the model may call.
type Tool struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	MaxUses int    `json:"max_uses,omitempty"`
}

// ChatRequest is the upstream messages request body.
type ChatRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system,omitempty"`
	Messages  []ChatMessage `json:"messages"`
	Tools     []Tool        `json:"tools,omitempty"`
}

// NewChatRequest builds a request with the default model, token limit
// and the web search tool enabled.
func NewChatRequest(system string, messages []ChatMessage) ChatRequest {
	return ChatRequest{
		Model:     DefaultModel,
		MaxTokens: DefaultMaxTokens,
		System:    system,
		Messages:  messages,
		Tools:     []Tool{{Type: "web_search_20250305", Name: "web_search", MaxUses: webSearchMaxUses}},
	}
}

// QuickPrompt is one canned question of the prompt catalog.
type QuickPrompt struct {
	Label    string `json:"label"`
	Prompt   string `json:"prompt"`
	Category string `json:"cat"`
}

// QuickPrompts is the catalog shown above the chat input. Categories:
// intern (answered from practice data), web (needs search), allgemein.
var QuickPrompts = []QuickPrompt{
	{Label: "Kritische Fälle", Prompt: "Welche Klienten sind aktuell in einem kritischen Status? Gib mir eine Zusammenfassung mit den wichtigsten Handlungsempfehlungen.", Category: "intern"},
	{Label: "Schulden-Übersicht", Prompt: "Erstelle mir eine Übersicht über den aktuellen Stand der Schuldenreduzierung aller Mandanten. Wie viel wurde bereits eingespart?", Category: "intern"},
	{Label: "Fristen diese Woche", Prompt: "Welche kritischen Fristen stehen diese Woche an? Was muss dringend erledigt werden?", Category: "intern"},
	{Label: "Verhandlungserfolge", Prompt: "Zeige mir die erfolgreichsten Gläubiger-Verhandlungen. Bei welchen Gläubigern konnten wir die besten Vergleiche erzielen?", Category: "intern"},
	{Label: "Offene Rechnungen", Prompt: "Welche Rechnungen sind noch offen oder überfällig? Wie hoch ist der Gesamtbetrag?", Category: "intern"},
	{Label: "Nächste Schritte", Prompt: "Was sind die wichtigsten nächsten Schritte für alle aktiven Mandanten? Priorisiere nach Dringlichkeit.", Category: "intern"},
	{Label: "Insolvenzrecht aktuell", Prompt: "Was gibt es Neues im deutschen Insolvenzrecht? Gibt es aktuelle Gesetzesänderungen die für unsere Mandanten relevant sind?", Category: "web"},
	{Label: "Schuldnerberatung Trends", Prompt: "Welche aktuellen Trends und Best Practices gibt es in der Schuldnerberatung in Deutschland?", Category: "web"},
	{Label: "§ 305 InsO Erklärung", Prompt: "Erkläre mir den außergerichtlichen Schuldenbereinigungsplan nach § 305 InsO. Wann ist er sinnvoll und wie läuft das Verfahren ab?", Category: "allgemein"},
}
