// Package api provides the HTTP server for the Ce-eS dashboard backend.
// It exposes the entity CRUD, the negotiation and deadline views, the
// bookkeeping mirrors, the CSV exports and the AI proxy.
package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ce-es/dashboard/internal/assistant"
	"github.com/ce-es/dashboard/internal/auth"
	"github.com/ce-es/dashboard/internal/books"
	"github.com/ce-es/dashboard/internal/deadline"
	"github.com/ce-es/dashboard/internal/ledger"
	"github.com/ce-es/dashboard/internal/sqlite"
	"github.com/ce-es/dashboard/internal/store"
)

// Server is the dashboard HTTP API server.
type Server struct {
	store   *store.Store
	ledger  *ledger.Ledger
	tracker *deadline.Tracker
	books   *books.Service
	users   *auth.Registry
	runner  *assistant.Runner
	db      *sqlite.DB
	clock   deadline.Clock

	upstreamURL string
	apiKey      string
	httpClient  *http.Client

	metricsEnabled bool
	staticDir      string

	sessMu   sync.Mutex
	sessions map[string]*auth.Session
}

// NewServer wires the API over the application services. db may be nil
// in tests that do not touch the audit endpoints.
func NewServer(s *store.Store, l *ledger.Ledger, tr *deadline.Tracker, b *books.Service, users *auth.Registry, db *sqlite.DB, clock deadline.Clock) *Server {
	s.Subscribe(func(ev store.Event) {
		storeMutationsTotal.WithLabelValues(ev.Collection, string(ev.Op)).Inc()
	})
	return &Server{
		store:      s,
		ledger:     l,
		tracker:    tr,
		books:      b,
		users:      users,
		runner:     assistant.NewRunner(),
		db:         db,
		clock:      clock,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		sessions:   make(map[string]*auth.Session),
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetUpstream points the AI proxy at the messages endpoint.
func (s *Server) SetUpstream(url, apiKey string) {
	s.upstreamURL = url
	s.apiKey = apiKey
}

// SetStaticDir serves the built dashboard from dir, with an index.html
// fallback for client-side routes.
func (s *Server) SetStaticDir(dir string) { s.staticDir = dir }

// today returns the reference date as ISO string.
func (s *Server) today() string {
	return s.clock.Today().Format(time.DateOnly)
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))
	r.Use(corsMiddleware)
	r.Use(countRequests)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/login", s.handleLogin)
	r.Post("/api/logout", s.handleLogout)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)

			s.protect(r, "clients", func(r chi.Router) {
				r.Get("/clients", s.handleListClients)
				r.Post("/clients", s.handleAddClient)
				r.Get("/clients/{id}", s.handleGetClient)
				r.Patch("/clients/{id}", s.handleUpdateClient)
				r.Delete("/clients/{id}", s.handleDeleteClient)
			})
			s.protect(r, "appointments", func(r chi.Router) {
				r.Get("/appointments", s.handleListAppointments)
				r.Post("/appointments", s.handleAddAppointment)
				r.Patch("/appointments/{id}", s.handleUpdateAppointment)
				r.Delete("/appointments/{id}", s.handleDeleteAppointment)
			})
			s.protect(r, "invoices", func(r chi.Router) {
				r.Get("/invoices", s.handleListInvoices)
				r.Post("/invoices", s.handleAddInvoice)
				r.Get("/invoices/next-id", s.handleNextInvoiceID)
				r.Patch("/invoices/{id}", s.handleUpdateInvoice)
				r.Delete("/invoices/{id}", s.handleDeleteInvoice)
				r.Get("/offers", s.handleListOffers)
				r.Post("/offers", s.handleAddOffer)
				r.Get("/offers/next-id", s.handleNextOfferID)
				r.Patch("/offers/{id}", s.handleUpdateOffer)
				r.Delete("/offers/{id}", s.handleDeleteOffer)
			})
			s.protect(r, "files", func(r chi.Router) {
				r.Get("/files", s.handleListCaseFiles)
				r.Post("/files", s.handleAddCaseFile)
				r.Get("/files/{id}", s.handleGetCaseFile)
				r.Delete("/files/{id}", s.handleDeleteCaseFile)
				r.Post("/files/{id}/docs", s.handleAddDocument)
				r.Delete("/files/{id}/docs/{docID}", s.handleDeleteDocument)
				r.Post("/files/{id}/docs/{docID}/analyze", s.handleAnalyzeDocument)
			})
			s.protect(r, "scanner", func(r chi.Router) {
				r.Post("/scanner/documents", s.handleScanDocument)
			})
			s.protect(r, "creditors", func(r chi.Router) {
				r.Get("/creditors", s.handleListCreditors)
				r.Post("/creditors", s.handleAddCreditor)
				r.Patch("/creditors/{id}", s.handleUpdateCreditor)
				r.Delete("/creditors/{id}", s.handleDeleteCreditor)
				r.Get("/clients/{id}/creditors", s.handleClientCreditors)
				r.Get("/clients/{id}/totals", s.handleClientTotals)
				r.Get("/clients/{id}/deadlines", s.handleClientDeadlines)
				r.Get("/progress", s.handleListProgress)
				r.Put("/progress/{clientID}", s.handleUpsertProgress)
				r.Delete("/progress/{clientID}", s.handleDeleteProgress)
				r.Get("/deadlines", s.handleListDeadlines)
				r.Get("/deadlines/critical", s.handleCriticalDeadlines)
				r.Post("/deadlines", s.handleAddDeadline)
				r.Patch("/deadlines/{id}", s.handleUpdateDeadline)
				r.Delete("/deadlines/{id}", s.handleDeleteDeadline)
				r.Get("/pipeline", s.handlePipeline)
				r.Get("/portfolio", s.handlePortfolio)
				r.Get("/successes", s.handleSuccesses)
				r.Get("/check", s.handleLedgerCheck)
			})
			s.protect(r, "bank", func(r chi.Router) {
				r.Get("/bank/account", s.handleBankAccount)
				r.Get("/bank/transactions", s.handleBankTransactions)
				r.Get("/bank/stats", s.handleBankStats)
				r.Get("/bank/export", s.handleBankExport)
			})
			s.protect(r, "datev", func(r chi.Router) {
				r.Get("/datev/entries", s.handleDatevEntries)
				r.Get("/datev/stats", s.handleDatevStats)
				r.Get("/datev/export", s.handleDatevExport)
			})
			s.protect(r, "lexware", func(r chi.Router) {
				r.Get("/lexware/sync-log", s.handleSyncLog)
				r.Get("/lexware/stats", s.handleSyncStats)
				r.Get("/lexware/export", s.handleSyncLogExport)
				r.Post("/lexware/sync", s.handleRunSync)
			})
			s.protect(r, "audit", func(r chi.Router) {
				r.Get("/audit", s.handleAuditLog)
				r.Get("/audit/export", s.handleAuditExport)
			})
			s.protect(r, "team", func(r chi.Router) {
				r.Get("/users", s.handleListUsers)
				r.Post("/users", s.handleAddUser)
				r.Patch("/users/{id}", s.handleUpdateUser)
				r.Delete("/users/{id}", s.handleDeleteUser)
				r.Get("/permissions", s.handlePermissions)
			})
			s.protect(r, "chat", func(r chi.Router) {
				r.Post("/chat", s.handleChatProxy)
			})
			s.protect(r, "ai", func(r chi.Router) {
				r.Post("/ai/message", s.handleAssistantMessage)
				r.Get("/ai/prompts", s.handleQuickPrompts)
				r.Get("/ai/system-prompt", s.handleSystemPrompt)
				r.Get("/ai/pending-doc", s.handlePendingDoc)
				r.Get("/ai/state", s.handleAssistantState)
				r.Post("/ai/cancel", s.handleAssistantCancel)
			})
		})
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	if s.staticDir != "" {
		s.mountStatic(r)
	}

	return r
}

// protect registers routes that require the permission mapped to the
// resource. Resolution happens at startup, so an unmapped resource is a
// programming error that fails loudly instead of shipping an open route.
func (s *Server) protect(r chi.Router, resource string, register func(chi.Router)) {
	perm, err := auth.RouteToPermission(resource)
	if err != nil {
		panic(fmt.Sprintf("api: unprotectable route group: %v", err))
	}
	r.Group(func(r chi.Router) {
		r.Use(s.requirePermission(perm))
		register(r)
	})
}

// mountStatic serves the built dashboard. Unknown non-API paths fall
// back to index.html for the client-side router.
func (s *Server) mountStatic(r chi.Router) {
	fileServer := http.FileServer(http.Dir(s.staticDir))
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			http.NotFound(w, req)
			return
		}
		path := filepath.Join(s.staticDir, filepath.Clean(req.URL.Path))
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			fileServer.ServeHTTP(w, req)
			return
		}
		http.ServeFile(w, req, filepath.Join(s.staticDir, "index.html"))
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Auth-Token")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
