package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/ce-es/dashboard/internal/assistant"
	"github.com/ce-es/dashboard/internal/domain"
)

// maxChatBody caps the proxied request body; attachments are inlined
// base64, so documents count against this.
const maxChatBody = 5 << 20

const anthropicVersion = "2023-06-01"

// writeProxyError uses the flat error envelope the chat client expects,
// distinct from the regular API error shape.
func writeProxyError(w http.ResponseWriter, status int, message, detail string) {
	body := map[string]any{"error": true, "message": message}
	if detail != "" {
		body["detail"] = detail
	}
	writeJSON(w, status, body)
}

// handleChatProxy forwards the request body verbatim to the messages
// endpoint, injecting the API key server-side so it never reaches the
// browser. At most one request is in flight; the runner rejects
// concurrent sends the same way the UI's disabled send button does.
func (s *Server) handleChatProxy(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxChatBody))
	if err != nil {
		chatRequestsTotal.WithLabelValues("too_large").Inc()
		writeProxyError(w, http.StatusRequestEntityTooLarge, "Anfrage zu groß (max 5 MB)", "")
		return
	}

	ctx, err := s.runner.Begin(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrRequestInFlight) {
			chatRequestsTotal.WithLabelValues("busy").Inc()
			writeProxyError(w, http.StatusConflict, "Eine Anfrage läuft bereits", "")
			return
		}
		writeProxyError(w, http.StatusInternalServerError, "Verbindung zur KI fehlgeschlagen", "")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.upstreamURL, bytes.NewReader(body))
	if err != nil {
		s.runner.Finish(err)
		writeProxyError(w, http.StatusInternalServerError, "Verbindung zur KI fehlgeschlagen", "")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	chatUpstreamSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		s.runner.Finish(domain.ErrUpstreamOffline)
		chatRequestsTotal.WithLabelValues("network_error").Inc()
		log.Printf("chat proxy: upstream unreachable: %v", err)
		writeProxyError(w, http.StatusInternalServerError, "Verbindung zur KI fehlgeschlagen", "")
		return
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		s.runner.Finish(domain.ErrUpstreamOffline)
		chatRequestsTotal.WithLabelValues("network_error").Inc()
		writeProxyError(w, http.StatusInternalServerError, "Verbindung zur KI fehlgeschlagen", "")
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.runner.Finish(assistant.FailureError(resp.StatusCode))
		chatRequestsTotal.WithLabelValues("upstream_error").Inc()
		log.Printf("chat proxy: API Fehler %d: %s", resp.StatusCode, truncate(payload, 200))
		writeProxyError(w, resp.StatusCode, fmt.Sprintf("API Fehler: %d", resp.StatusCode), string(payload))
		return
	}

	s.runner.Finish(nil)
	chatRequestsTotal.WithLabelValues("ok").Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "…"
}

// ─── Assistant Gateway ──────────────────────────────────────────────────────

type assistantMessageReq struct {
	Text    string                  `json:"text"`
	DocIDs  []string                `json:"docIds"`
	History []assistant.ChatMessage `json:"history"`
}

// handleAssistantMessage is the high-level chat endpoint: the server
// assembles the system prompt, resolves attached documents into content
// blocks, calls upstream and returns the parsed answer with its web
// sources. Clients that want the raw exchange use /chat instead.
func (s *Server) handleAssistantMessage(w http.ResponseWriter, r *http.Request) {
	var req assistantMessageReq
	if !readJSON(w, r, &req) {
		return
	}
	if len(req.DocIDs) > assistant.MaxAttachments {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("höchstens %d Anhänge pro Nachricht", assistant.MaxAttachments))
		return
	}

	atts, err := s.resolveAttachments(req.DocIDs)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	system := assistant.BuildSystemPrompt(s.store.Snapshot(), s.today())
	messages := append(req.History, assistant.ChatMessage{
		Role:    "user",
		Content: assistant.BuildContent(req.Text, atts),
	})
	body, err := json.Marshal(assistant.NewChatRequest(system, messages))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "request encoding failed")
		return
	}

	ctx, err := s.runner.Begin(r.Context())
	if err != nil {
		chatRequestsTotal.WithLabelValues("busy").Inc()
		writeError(w, http.StatusConflict, "Eine Anfrage läuft bereits")
		return
	}

	upReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.upstreamURL, bytes.NewReader(body))
	if err != nil {
		s.runner.Finish(err)
		writeError(w, http.StatusInternalServerError, "Verbindung zur KI fehlgeschlagen")
		return
	}
	upReq.Header.Set("Content-Type", "application/json")
	upReq.Header.Set("x-api-key", s.apiKey)
	upReq.Header.Set("anthropic-version", anthropicVersion)

	start := time.Now()
	resp, err := s.httpClient.Do(upReq)
	chatUpstreamSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		s.runner.Finish(domain.ErrUpstreamOffline)
		chatRequestsTotal.WithLabelValues("network_error").Inc()
		writeError(w, http.StatusInternalServerError, "Verbindung zur KI fehlgeschlagen")
		return
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		s.runner.Finish(domain.ErrUpstreamOffline)
		chatRequestsTotal.WithLabelValues("network_error").Inc()
		writeError(w, http.StatusInternalServerError, "Verbindung zur KI fehlgeschlagen")
		return
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.runner.Finish(assistant.FailureError(resp.StatusCode))
		chatRequestsTotal.WithLabelValues("upstream_error").Inc()
		writeError(w, resp.StatusCode, assistant.FailureText(resp.StatusCode))
		return
	}

	answer, err := assistant.ParseResponse(payload)
	if err != nil {
		s.runner.Finish(err)
		chatRequestsTotal.WithLabelValues("upstream_error").Inc()
		writeError(w, http.StatusBadGateway, "Antwort konnte nicht gelesen werden")
		return
	}
	s.runner.Finish(nil)
	chatRequestsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, answer)
}

// resolveAttachments looks the document ids up across all case files.
func (s *Server) resolveAttachments(docIDs []string) ([]assistant.Attachment, error) {
	if len(docIDs) == 0 {
		return nil, nil
	}
	byID := make(map[string]domain.Document)
	for _, cf := range s.store.CaseFiles() {
		for _, doc := range cf.Docs {
			byID[doc.ID] = doc
		}
	}
	atts := make([]assistant.Attachment, 0, len(docIDs))
	for _, id := range docIDs {
		doc, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("Dokument %s nicht gefunden: %w", id, domain.ErrNotFound)
		}
		atts = append(atts, assistant.Attachment{Doc: doc, FileName: doc.Name})
	}
	return atts, nil
}

// ─── Assistant Helpers ──────────────────────────────────────────────────────

func (s *Server) handleQuickPrompts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, assistant.QuickPrompts)
}

// handleSystemPrompt returns the data-grounded system prompt so the
// client does not need the raw collections to assemble it.
func (s *Server) handleSystemPrompt(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"system": assistant.BuildSystemPrompt(s.store.Snapshot(), s.today()),
	})
}

// handlePendingDoc hands over the document queued by the files view.
// The slot is one-shot: a second read finds it empty.
func (s *Server) handlePendingDoc(w http.ResponseWriter, r *http.Request) {
	doc := s.store.TakePendingAIDoc()
	if doc == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"doc":    doc,
		"prompt": assistant.PendingDocPrompt(doc.Name),
	})
}

func (s *Server) handleAssistantState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"state": string(s.runner.State())})
}

func (s *Server) handleAssistantCancel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"cancelled": s.runner.Cancel()})
}

// handleAnalyzeDocument queues a case file document for the assistant.
func (s *Server) handleAnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	fileID, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	docID := chi.URLParam(r, "docID")
	for _, cf := range s.store.CaseFiles() {
		if cf.ID != fileID {
			continue
		}
		for _, doc := range cf.Docs {
			if doc.ID == docID {
				if doc.FileData == "" {
					writeError(w, http.StatusConflict, "Dokument hat keine Dateidaten")
					return
				}
				d := doc
				s.store.SetPendingAIDoc(&d)
				w.WriteHeader(http.StatusAccepted)
				return
			}
		}
	}
	writeError(w, http.StatusNotFound, "document not found")
}
