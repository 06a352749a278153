package assistant

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ce-es/dashboard/internal/domain"
)

// FallbackAnalysisPrompt is sent when a document arrives without a
// question attached.
const FallbackAnalysisPrompt = "Bitte analysiere dieses Dokument. Fasse den Inhalt zusammen und identifiziere die wichtigsten Informationen."

// MaxAttachments caps how many documents one message may carry.
const MaxAttachments = 3

// Attachment pairs a stored document with the filename shown in chat.
type Attachment struct {
	Doc      domain.Document
	FileName string
}

// BlockSource is the base64 payload of a document or image block.
type BlockSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// ContentBlock is one element of a multimodal message.
type ContentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *BlockSource `json:"source,omitempty"`
}

// BuildContent assembles the message content. Without attachments the
// content is the plain text; with attachments it becomes a block list
// where every document precedes the user's text. PDFs and unknown
// office formats go as document blocks, images as image blocks, and
// plain text or CSV files are decoded inline. Empty text falls back to
// the analysis instruction so a bare attachment still asks a question.
func BuildContent(text string, atts []Attachment) any {
	if len(atts) == 0 {
		return text
	}
	var blocks []ContentBlock
	for _, att := range atts {
		if att.Doc.FileData == "" || att.Doc.MimeType == "" {
			continue
		}
		mime := att.Doc.MimeType
		switch {
		case mime == "application/pdf":
			blocks = append(blocks, ContentBlock{Type: "document",
				Source: &BlockSource{Type: "base64", MediaType: mime, Data: att.Doc.FileData}})
		case strings.HasPrefix(mime, "image/"):
			blocks = append(blocks, ContentBlock{Type: "image",
				Source: &BlockSource{Type: "base64", MediaType: mime, Data: att.Doc.FileData}})
		case mime == "text/plain" || mime == "text/csv":
			decoded, err := base64.StdEncoding.DecodeString(att.Doc.FileData)
			if err != nil {
				blocks = append(blocks, ContentBlock{Type: "text",
					Text: fmt.Sprintf("[Datei: %s – konnte nicht gelesen werden]", att.FileName)})
				continue
			}
			blocks = append(blocks, ContentBlock{Type: "text",
				Text: fmt.Sprintf("[Dateiinhalt von %q]\n\n%s", att.FileName, decoded)})
		default:
			blocks = append(blocks, ContentBlock{Type: "document",
				Source: &BlockSource{Type: "base64", MediaType: mime, Data: att.Doc.FileData}})
		}
	}
	if text == "" {
		text = FallbackAnalysisPrompt
	}
	return append(blocks, ContentBlock{Type: "text", Text: text})
}

// PendingDocPrompt is the auto-sent question when a document is handed
// over from the files view for analysis.
func PendingDocPrompt(docName string) string {
	return fmt.Sprintf("Bitte analysiere das Dokument %q und fasse den Inhalt zusammen. "+
		"Identifiziere relevante Informationen wie Beträge, Fristen, Namen und Aktenzeichen. "+
		"Vergleiche wenn möglich mit den Mandantendaten.", docName)
}
