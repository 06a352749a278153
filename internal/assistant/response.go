package assistant

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/ce-es/dashboard/internal/domain"
)

// maxSources caps the citation list per answer.
const maxSources = 5

// Source is one web citation attached to an answer.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Answer is the parsed upstream response.
type Answer struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}

type apiResponse struct {
	Content []apiBlock `json:"content"`
}

type apiBlock struct {
	Type    string      `json:"type"`
	Text    string      `json:"text"`
	Content []apiResult `json:"content"`
}

type apiResult struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ParseResponse extracts the answer text and the deduplicated web
// sources from a raw messages response. Text blocks are joined with
// newlines; an answer without any text block reads "Keine Antwort
// erhalten." so the chat never shows an empty bubble.
func ParseResponse(raw []byte) (Answer, error) {
	var resp apiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Answer{}, err
	}

	var parts []string
	var sources []Source
	seen := make(map[string]bool)
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			if block.Text != "" {
				parts = append(parts, block.Text)
			}
		case "web_search_tool_result":
			for _, r := range block.Content {
				if r.Type != "web_search_result" || r.Title == "" || r.URL == "" || seen[r.URL] {
					continue
				}
				seen[r.URL] = true
				sources = append(sources, Source{Title: r.Title, URL: r.URL})
			}
		}
	}
	if len(sources) > maxSources {
		sources = sources[:maxSources]
	}

	text := strings.Join(parts, "\n")
	if text == "" {
		text = "Keine Antwort erhalten."
	}
	return Answer{Text: text, Sources: sources}, nil
}

// FailureText maps an upstream HTTP status to the German message the
// chat displays. Unknown statuses fall through to a generic line.
func FailureText(status int) string {
	switch status {
	case 401:
		return "API-Key ungültig. Bitte prüfen Sie die .env Datei."
	case 429:
		return "Zu viele Anfragen. Bitte warten Sie kurz."
	case 413:
		return "Dokument zu groß für die API. Versuchen Sie ein kleineres Dokument."
	default:
		return "Unbekannter Fehler"
	}
}

// FailureError maps an upstream HTTP status to its sentinel, so callers
// can classify the recorded outcome with errors.Is.
func FailureError(status int) error {
	switch status {
	case 401:
		return domain.ErrInvalidAPIKey
	case 429:
		return domain.ErrRateLimited
	case 413:
		return domain.ErrPayloadTooLarge
	default:
		return domain.ErrUpstream
	}
}
