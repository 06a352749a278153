package assistant

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/ce-es/dashboard/internal/domain"
	"github.com/ce-es/dashboard/internal/seed"
	"github.com/ce-es/dashboard/internal/store"
)

func TestBuildSystemPromptSections(t *testing.T) {
	snap := store.New(store.Snapshot{
		Clients:      seed.Clients(),
		Appointments: seed.Appointments(),
		Invoices:     seed.Invoices(),
		Creditors:    seed.Creditors(),
		Progress:     seed.Progress(),
		Deadlines:    seed.Deadlines(),
	}).Snapshot()
	prompt := BuildSystemPrompt(snap, seed.Today)

	for _, section := range []string{
		"═══ KLIENTEN (10) ═══",
		"═══ GLÄUBIGER (21) ═══",
		"═══ OFFENE FRISTEN ═══",
		"═══ MANDANTEN-FORTSCHRITT ═══",
		"═══ RECHNUNGEN ═══",
		"═══ HEUTIGE TERMINE (5. Feb 2025) ═══",
	} {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}
	if !strings.Contains(prompt, "Schuldnerberatungsfirma in Heilbronn") {
		t.Error("prompt missing role preamble")
	}
	// Enum wire values are spaced out for readability.
	if strings.Contains(prompt, "in_verhandlung") {
		t.Error("prompt leaks raw enum value in_verhandlung")
	}
}

func TestBuildSystemPromptEmptyDay(t *testing.T) {
	snap := store.New(store.Snapshot{
		Clients: []domain.Client{{ID: 1, Name: "Thomas Becker", Debt: domain.DP(45230)}},
	}).Snapshot()
	prompt := BuildSystemPrompt(snap, "2025-03-01")

	if !strings.Contains(prompt, "Keine Termine heute") {
		t.Error("prompt missing empty-day placeholder")
	}
	if !strings.Contains(prompt, "45.230,00 €") {
		t.Error("prompt missing formatted debt figure")
	}
	if !strings.Contains(prompt, "1. Mär 2025") {
		t.Error("prompt missing German date heading")
	}
}

func TestBuildContentPlainText(t *testing.T) {
	got := BuildContent("Hallo", nil)
	if s, ok := got.(string); !ok || s != "Hallo" {
		t.Errorf("BuildContent without attachments = %v, want plain string", got)
	}
}

func TestBuildContentBlocks(t *testing.T) {
	csvData := base64.StdEncoding.EncodeToString([]byte("a;b\n1;2"))
	atts := []Attachment{
		{Doc: domain.Document{ID: "d1", FileData: "QUJD", MimeType: "application/pdf"}, FileName: "Mahnung.pdf"},
		{Doc: domain.Document{ID: "d2", FileData: "QUJD", MimeType: "image/png"}, FileName: "Scan.png"},
		{Doc: domain.Document{ID: "d3", FileData: csvData, MimeType: "text/csv"}, FileName: "Liste.csv"},
		{Doc: domain.Document{ID: "d4", MimeType: "application/pdf"}, FileName: "leer.pdf"}, // no payload, skipped
	}
	got, ok := BuildContent("Was steht da?", atts).([]ContentBlock)
	if !ok {
		t.Fatal("BuildContent with attachments did not return blocks")
	}
	if len(got) != 4 {
		t.Fatalf("len(blocks) = %d, want 4 (3 attachments + text)", len(got))
	}
	if got[0].Type != "document" || got[0].Source == nil || got[0].Source.MediaType != "application/pdf" {
		t.Errorf("block 0 = %+v, want pdf document block", got[0])
	}
	if got[1].Type != "image" || got[1].Source == nil || got[1].Source.MediaType != "image/png" {
		t.Errorf("block 1 = %+v, want image block", got[1])
	}
	if got[2].Type != "text" || !strings.Contains(got[2].Text, "a;b\n1;2") {
		t.Errorf("block 2 = %+v, want decoded csv text", got[2])
	}
	if got[3].Type != "text" || got[3].Text != "Was steht da?" {
		t.Errorf("block 3 = %+v, want user text last", got[3])
	}
}

func TestBuildContentFallbackInstruction(t *testing.T) {
	atts := []Attachment{{Doc: domain.Document{ID: "d1", FileData: "QUJD", MimeType: "application/pdf"}, FileName: "x.pdf"}}
	blocks := BuildContent("", atts).([]ContentBlock)
	last := blocks[len(blocks)-1]
	if last.Text != FallbackAnalysisPrompt {
		t.Errorf("last block = %q, want fallback analysis prompt", last.Text)
	}
}

func TestNewChatRequestDefaults(t *testing.T) {
	req := NewChatRequest("system", []ChatMessage{{Role: "user", Content: "Hi"}})
	if req.Model != "claude-sonnet-4-5-20250929" {
		t.Errorf("Model = %q", req.Model)
	}
	if req.MaxTokens != 4096 {
		t.Errorf("MaxTokens = %d, want 4096", req.MaxTokens)
	}
	if len(req.Tools) != 1 || req.Tools[0].Type != "web_search_20250305" || req.Tools[0].MaxUses != 3 {
		t.Errorf("Tools = %+v, want web search with 3 uses", req.Tools)
	}
}

func TestParseResponse(t *testing.T) {
	raw := []byte(`{"content":[
		{"type":"text","text":"Erster Teil."},
		{"type":"web_search_tool_result","content":[
			{"type":"web_search_result","title":"InsO Reform","url":"https://example.de/inso"},
			{"type":"web_search_result","title":"Doppelt","url":"https://example.de/inso"},
			{"type":"web_search_result","title":"BGH Urteil","url":"https://example.de/bgh"}
		]},
		{"type":"text","text":"Zweiter Teil."}
	]}`)
	got, err := ParseResponse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got.Text != "Erster Teil.\nZweiter Teil." {
		t.Errorf("Text = %q", got.Text)
	}
	if len(got.Sources) != 2 {
		t.Fatalf("len(Sources) = %d, want 2 (url dedupe)", len(got.Sources))
	}
	if got.Sources[0].Title != "InsO Reform" || got.Sources[1].Title != "BGH Urteil" {
		t.Errorf("Sources = %+v", got.Sources)
	}
}

func TestParseResponseWithoutText(t *testing.T) {
	got, err := ParseResponse([]byte(`{"content":[]}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.Text != "Keine Antwort erhalten." {
		t.Errorf("Text = %q, want placeholder", got.Text)
	}
}

func TestFailureText(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{401, "API-Key ungültig. Bitte prüfen Sie die .env Datei."},
		{429, "Zu viele Anfragen. Bitte warten Sie kurz."},
		{413, "Dokument zu groß für die API. Versuchen Sie ein kleineres Dokument."},
		{500, "Unbekannter Fehler"},
	}
	for _, tt := range tests {
		if got := FailureText(tt.status); got != tt.want {
			t.Errorf("FailureText(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestFailureError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{401, domain.ErrInvalidAPIKey},
		{429, domain.ErrRateLimited},
		{413, domain.ErrPayloadTooLarge},
		{500, domain.ErrUpstream},
	}
	for _, tt := range tests {
		if got := FailureError(tt.status); !errors.Is(got, tt.want) {
			t.Errorf("FailureError(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestRunnerLifecycle(t *testing.T) {
	r := NewRunner()
	if r.State() != StateIdle {
		t.Fatalf("initial state = %q, want idle", r.State())
	}

	ctx, err := r.Begin(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if r.State() != StatePending {
		t.Errorf("state after Begin = %q, want pending", r.State())
	}
	if _, err := r.Begin(context.Background()); !errors.Is(err, domain.ErrRequestInFlight) {
		t.Errorf("second Begin error = %v, want ErrRequestInFlight", err)
	}

	r.Finish(nil)
	if r.State() != StateSucceeded {
		t.Errorf("state after Finish(nil) = %q, want succeeded", r.State())
	}
	select {
	case <-ctx.Done():
	default:
		t.Error("request context not released after Finish")
	}

	// A finished runner accepts the next request.
	if _, err := r.Begin(context.Background()); err != nil {
		t.Fatal(err)
	}
	r.Finish(errors.New("upstream down"))
	if r.State() != StateFailed {
		t.Errorf("state after Finish(err) = %q, want failed", r.State())
	}
}

func TestRunnerCancel(t *testing.T) {
	r := NewRunner()
	if r.Cancel() {
		t.Error("Cancel on idle runner reported a running request")
	}
	ctx, err := r.Begin(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !r.Cancel() {
		t.Fatal("Cancel on pending runner returned false")
	}
	select {
	case <-ctx.Done():
	default:
		t.Error("request context still alive after Cancel")
	}
	if r.State() != StateFailed {
		t.Errorf("state after Cancel = %q, want failed", r.State())
	}
}
