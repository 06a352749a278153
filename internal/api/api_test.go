package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/ce-es/dashboard/internal/auth"
	"github.com/ce-es/dashboard/internal/books"
	"github.com/ce-es/dashboard/internal/deadline"
	"github.com/ce-es/dashboard/internal/ledger"
	"github.com/ce-es/dashboard/internal/seed"
	"github.com/ce-es/dashboard/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st := store.New(store.Snapshot{
		Clients:      seed.Clients(),
		Appointments: seed.Appointments(),
		Invoices:     seed.Invoices(),
		Offers:       seed.Offers(),
		CaseFiles:    seed.CaseFiles(),
		Creditors:    seed.Creditors(),
		Progress:     seed.Progress(),
		Deadlines:    seed.Deadlines(),
	})
	st.SetToday(func() string { return seed.Today })
	clock := deadline.FixedClock{Date: seed.Today}
	b := books.New(seed.Account(), seed.BankTransactions(), seed.DatevEntries(), seed.SyncLog())
	return NewServer(st, ledger.New(st), deadline.NewTracker(st, clock), b, auth.NewRegistry(auth.SeedUsers()), nil, clock)
}

// do runs a request against the handler and decodes the JSON body into out
// when out is non-nil.
func do(t *testing.T, h http.Handler, method, path, token string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if out != nil {
		if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode response: %v", method, path, err)
		}
	}
	return rec
}

func login(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	rec := do(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"username": username, "password": password,
	}, &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status = %d, want %d", username, rec.Code, http.StatusOK)
	}
	if resp.Token == "" {
		t.Fatalf("login %s: empty token", username)
	}
	return resp.Token
}

func TestLogin(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		name     string
		username string
		password string
		want     int
	}{
		{"valid", "admin", "admin", http.StatusOK},
		{"case insensitive username", "ADMIN", "admin", http.StatusOK},
		{"wrong password", "admin", "nope", http.StatusUnauthorized},
		{"unknown user", "nobody", "x", http.StatusUnauthorized},
		{"disabled account", "maria", "cees2025", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/login", "", map[string]string{
				"username": tt.username, "password": tt.password,
			}, nil)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireSession(t *testing.T) {
	h := newTestServer(t).Handler()
	rec := do(t, h, http.MethodGet, "/api/clients", "", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	h := newTestServer(t).Handler()
	token := login(t, h, "admin", "admin")

	if rec := do(t, h, http.MethodGet, "/api/clients", token, nil, nil); rec.Code != http.StatusOK {
		t.Fatalf("before logout: status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec := do(t, h, http.MethodPost, "/api/logout", token, nil, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("logout: status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if rec := do(t, h, http.MethodGet, "/api/clients", token, nil, nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("after logout: status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestPermissionScoping(t *testing.T) {
	h := newTestServer(t).Handler()
	// thomas holds clients, creditors, calendar, scanner and ai but
	// neither files nor any finance permission.
	token := login(t, h, "thomas", "cees2025")

	if rec := do(t, h, http.MethodGet, "/api/clients", token, nil, nil); rec.Code != http.StatusOK {
		t.Errorf("clients: status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec := do(t, h, http.MethodGet, "/api/files", token, nil, nil); rec.Code != http.StatusForbidden {
		t.Errorf("files: status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if rec := do(t, h, http.MethodGet, "/api/bank/stats", token, nil, nil); rec.Code != http.StatusForbidden {
		t.Errorf("bank stats: status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if rec := do(t, h, http.MethodGet, "/api/users", token, nil, nil); rec.Code != http.StatusForbidden {
		t.Errorf("users: status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	// christine's default staff set does include files.
	staff := login(t, h, "christine", "cees2025")
	if rec := do(t, h, http.MethodGet, "/api/files", staff, nil, nil); rec.Code != http.StatusOK {
		t.Errorf("files as christine: status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestClientCRUD(t *testing.T) {
	h := newTestServer(t).Handler()
	token := login(t, h, "admin", "admin")

	var created struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	rec := do(t, h, http.MethodPost, "/api/clients", token, map[string]any{
		"name": "Neumann Logistik KG", "type": "unternehmensberatung", "status": "aktiv",
	}, &created)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if created.ID == 0 {
		t.Fatal("add: no id assigned")
	}

	path := "/api/clients/" + strconv.Itoa(created.ID)
	if rec := do(t, h, http.MethodPatch, path, token, map[string]any{"notes": "Erstgespräch vereinbart"}, nil); rec.Code != http.StatusNoContent {
		t.Errorf("patch: status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	var got struct {
		Notes string `json:"notes"`
	}
	if rec := do(t, h, http.MethodGet, path, token, nil, &got); rec.Code != http.StatusOK {
		t.Fatalf("get: status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got.Notes != "Erstgespräch vereinbart" {
		t.Errorf("notes = %q, want %q", got.Notes, "Erstgespräch vereinbart")
	}

	if rec := do(t, h, http.MethodDelete, path, token, nil, nil); rec.Code != http.StatusNoContent {
		t.Errorf("delete: status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if rec := do(t, h, http.MethodGet, path, token, nil, nil); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetClientNotFound(t *testing.T) {
	h := newTestServer(t).Handler()
	token := login(t, h, "admin", "admin")
	if rec := do(t, h, http.MethodGet, "/api/clients/999", token, nil, nil); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestNextInvoiceID(t *testing.T) {
	h := newTestServer(t).Handler()
	token := login(t, h, "admin", "admin")

	var resp struct {
		ID string `json:"id"`
	}
	if rec := do(t, h, http.MethodGet, "/api/invoices/next-id", token, nil, &resp); rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.HasPrefix(resp.ID, "RE-2025-") {
		t.Errorf("id = %q, want RE-2025- prefix", resp.ID)
	}
}

func TestCriticalDeadlines(t *testing.T) {
	h := newTestServer(t).Handler()
	token := login(t, h, "admin", "admin")

	var views []struct {
		Critical  bool `json:"kritisch"`
		Completed bool `json:"erledigt"`
		Days      int  `json:"tageVerbleibend"`
	}
	if rec := do(t, h, http.MethodGet, "/api/deadlines/critical", token, nil, &views); rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if len(views) == 0 {
		t.Fatal("no critical deadlines in seed data")
	}
	for _, v := range views {
		if !v.Critical || v.Completed {
			t.Errorf("non-critical entry in critical list: %+v", v)
		}
		if v.Days < 0 || v.Days > deadline.CriticalHorizonDays {
			t.Errorf("days = %d, outside critical horizon", v.Days)
		}
	}
}

func TestBankExportCSV(t *testing.T) {
	h := newTestServer(t).Handler()
	token := login(t, h, "admin", "admin")

	rec := do(t, h, http.MethodGet, "/api/bank/export", token, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "Kontoauszug_DE89620500000012345678_2025-02-05.csv") {
		t.Errorf("Content-Disposition = %q, want statement filename", cd)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "\uFEFF") {
		t.Error("export missing UTF-8 BOM")
	}
	if !strings.Contains(body, "Datum;Gegenkonto;Verwendungszweck;Betrag;Saldo;Typ") {
		t.Error("export missing header row")
	}
}

func TestChatProxyPassThrough(t *testing.T) {
	var gotKey, gotVersion string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"Hallo"}]}`))
	}))
	defer upstream.Close()

	srv := newTestServer(t)
	srv.SetUpstream(upstream.URL, "test-key")
	h := srv.Handler()
	token := login(t, h, "admin", "admin")

	rec := do(t, h, http.MethodPost, "/api/chat", token, map[string]any{"model": "m", "messages": []any{}}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotKey != "test-key" {
		t.Errorf("x-api-key = %q, want %q", gotKey, "test-key")
	}
	if gotVersion != anthropicVersion {
		t.Errorf("anthropic-version = %q, want %q", gotVersion, anthropicVersion)
	}
	if !strings.Contains(rec.Body.String(), "Hallo") {
		t.Errorf("body = %q, want upstream payload", rec.Body.String())
	}
}

func TestChatProxyUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"type":"rate_limit_error"}}`))
	}))
	defer upstream.Close()

	srv := newTestServer(t)
	srv.SetUpstream(upstream.URL, "test-key")
	h := srv.Handler()
	token := login(t, h, "admin", "admin")

	var resp struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	rec := do(t, h, http.MethodPost, "/api/chat", token, map[string]any{}, &resp)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if !resp.Error || resp.Message != "API Fehler: 429" {
		t.Errorf("envelope = %+v, want API Fehler: 429", resp)
	}
	if !strings.Contains(resp.Detail, "rate_limit_error") {
		t.Errorf("detail = %q, want upstream body", resp.Detail)
	}
}

func TestChatProxyUpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // port is now dead

	srv := newTestServer(t)
	srv.SetUpstream(upstream.URL, "test-key")
	h := srv.Handler()
	token := login(t, h, "admin", "admin")

	var resp struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	rec := do(t, h, http.MethodPost, "/api/chat", token, map[string]any{}, &resp)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if resp.Message != "Verbindung zur KI fehlgeschlagen" {
		t.Errorf("message = %q, want connection failure text", resp.Message)
	}
}

func TestAssistantMessageParsesAnswer(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[
			{"type":"text","text":"Die Frist läuft am 28.02. ab."},
			{"type":"web_search_tool_result","content":[
				{"type":"web_search_result","title":"InsO §305","url":"https://example.org/inso"}
			]}
		]}`))
	}))
	defer upstream.Close()

	srv := newTestServer(t)
	srv.SetUpstream(upstream.URL, "test-key")
	h := srv.Handler()
	token := login(t, h, "admin", "admin")

	var answer struct {
		Text    string `json:"text"`
		Sources []struct {
			URL string `json:"url"`
		} `json:"sources"`
	}
	rec := do(t, h, http.MethodPost, "/api/ai/message", token, map[string]any{
		"text": "Wann läuft die Sparkassen-Frist ab?",
	}, &answer)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if answer.Text != "Die Frist läuft am 28.02. ab." {
		t.Errorf("text = %q, want upstream text", answer.Text)
	}
	if len(answer.Sources) != 1 || answer.Sources[0].URL != "https://example.org/inso" {
		t.Errorf("sources = %+v, want one citation", answer.Sources)
	}
}

func TestAssistantMessageFailureText(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer upstream.Close()

	srv := newTestServer(t)
	srv.SetUpstream(upstream.URL, "bad-key")
	h := srv.Handler()
	token := login(t, h, "admin", "admin")

	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	rec := do(t, h, http.MethodPost, "/api/ai/message", token, map[string]any{"text": "Hallo"}, &resp)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(resp.Error.Message, "API-Key ungültig") {
		t.Errorf("message = %q, want invalid key text", resp.Error.Message)
	}
}

func TestAssistantMessageRejectsTooManyAttachments(t *testing.T) {
	h := newTestServer(t).Handler()
	token := login(t, h, "admin", "admin")

	rec := do(t, h, http.MethodPost, "/api/ai/message", token, map[string]any{
		"text": "x", "docIds": []string{"a", "b", "c", "d"},
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAssistantMessageUnknownDocument(t *testing.T) {
	h := newTestServer(t).Handler()
	token := login(t, h, "admin", "admin")

	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	rec := do(t, h, http.MethodPost, "/api/ai/message", token, map[string]any{
		"text": "x", "docIds": []string{"gibt-es-nicht"},
	}, &resp)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(resp.Error.Message, "gibt-es-nicht") {
		t.Errorf("message = %q, want the missing document id", resp.Error.Message)
	}
}

func TestAnalyzeDocumentQueuesPendingDoc(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()
	token := login(t, h, "admin", "admin")

	fileID := seed.CaseFiles()[0].ID
	var doc struct {
		ID string `json:"id"`
	}
	rec := do(t, h, http.MethodPost, "/api/files/"+strconv.Itoa(fileID)+"/docs", token, map[string]any{
		"name": "Mahnbescheid.pdf", "type": "mahnung",
		"fileData": "JVBERi0=", "mimeType": "application/pdf",
	}, &doc)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add doc: status = %d, want %d", rec.Code, http.StatusCreated)
	}

	path := "/api/files/" + strconv.Itoa(fileID) + "/docs/" + doc.ID + "/analyze"
	if rec := do(t, h, http.MethodPost, path, token, nil, nil); rec.Code != http.StatusAccepted {
		t.Fatalf("analyze: status = %d, want %d", rec.Code, http.StatusAccepted)
	}

	var resp struct {
		Prompt string `json:"prompt"`
	}
	if rec := do(t, h, http.MethodGet, "/api/ai/pending-doc", token, nil, &resp); rec.Code != http.StatusOK {
		t.Fatalf("pending-doc: status = %d, want %d", rec.Code, http.StatusOK)
	}
	if resp.Prompt == "" {
		t.Error("pending-doc: empty prompt")
	}

	// The slot is one-shot.
	if rec := do(t, h, http.MethodGet, "/api/ai/pending-doc", token, nil, nil); rec.Code != http.StatusNoContent {
		t.Errorf("second read: status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestSystemPromptEndpoint(t *testing.T) {
	h := newTestServer(t).Handler()
	token := login(t, h, "admin", "admin")

	var resp struct {
		System string `json:"system"`
	}
	if rec := do(t, h, http.MethodGet, "/api/ai/system-prompt", token, nil, &resp); rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(resp.System, "HEUTIGE TERMINE (5. Feb 2025)") {
		t.Error("system prompt missing reference-date section")
	}
}

func TestMetricsGate(t *testing.T) {
	srv := newTestServer(t)
	if rec := do(t, srv.Handler(), http.MethodGet, "/metrics", "", nil, nil); rec.Code != http.StatusNotFound {
		t.Errorf("disabled: status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	srv.EnableMetrics()
	if rec := do(t, srv.Handler(), http.MethodGet, "/metrics", "", nil, nil); rec.Code != http.StatusOK {
		t.Errorf("enabled: status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHealth(t *testing.T) {
	h := newTestServer(t).Handler()
	rec := do(t, h, http.MethodGet, "/health", "", nil, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
